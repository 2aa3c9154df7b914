package expr

// Substitute replaces bound variables with number literals and copies
// everything else. Unbound variables are left as they are. Running
// FoldConstants afterwards collapses whatever became literal.
type Substitute struct {
	Bindings map[string]float64
}

func (Substitute) TransformNumber(n *NumberNode) Node {
	return &NumberNode{val: n.val}
}

func (s Substitute) TransformBinary(b *BinaryNode) Node {
	return &BinaryNode{
		op:    b.op,
		left:  b.left.Accept(s),
		right: b.right.Accept(s),
	}
}

func (s Substitute) TransformCall(c *CallNode) Node {
	return &CallNode{name: c.name, arg: c.arg.Accept(s)}
}

func (s Substitute) TransformVar(v *VarNode) Node {
	if val, ok := s.Bindings[v.name]; ok {
		return &NumberNode{val: val}
	}
	return &VarNode{name: v.name}
}
