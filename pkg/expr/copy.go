package expr

// CopyTree is the identity transformation. It rebuilds every node, so the
// result is structurally equal to the input but shares no nodes with it.
// It is also the smallest template for a new pass.
type CopyTree struct{}

func (CopyTree) TransformNumber(n *NumberNode) Node {
	return &NumberNode{val: n.val}
}

func (t CopyTree) TransformBinary(b *BinaryNode) Node {
	return &BinaryNode{
		op:    b.op,
		left:  b.left.Accept(t),
		right: b.right.Accept(t),
	}
}

func (t CopyTree) TransformCall(c *CallNode) Node {
	return &CallNode{
		name: c.name,
		arg:  c.arg.Accept(t),
	}
}

func (CopyTree) TransformVar(v *VarNode) Node {
	return &VarNode{name: v.name}
}

// Clone returns a deep copy of node.
func Clone(node Node) Node {
	return node.Accept(CopyTree{})
}
