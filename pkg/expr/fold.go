package expr

// FoldConstants collapses every subtree whose operands are all literals
// into a single NumberNode. Subtrees that contain a variable are rebuilt
// around their folded children; a variable is never replaced by the 0 its
// Eval returns.
//
// Children are folded before their parent looks at them, so one bottom-up
// pass reaches the fixed point: folding the result again changes nothing.
type FoldConstants struct{}

func (FoldConstants) TransformNumber(n *NumberNode) Node {
	return &NumberNode{val: n.val}
}

func (f FoldConstants) TransformBinary(b *BinaryNode) Node {
	left := b.left.Accept(f)
	right := b.right.Accept(f)

	lc, lok := left.(*NumberNode)
	rc, rok := right.(*NumberNode)
	if lok && rok {
		return &NumberNode{val: applyBinary(b.op, lc.val, rc.val)}
	}
	return &BinaryNode{op: b.op, left: left, right: right}
}

func (f FoldConstants) TransformCall(c *CallNode) Node {
	arg := c.arg.Accept(f)
	if ac, ok := arg.(*NumberNode); ok {
		return &NumberNode{val: applyFunc(c.name, ac.val)}
	}
	return &CallNode{name: c.name, arg: arg}
}

func (FoldConstants) TransformVar(v *VarNode) Node {
	return &VarNode{name: v.name}
}

// Fold returns the constant-folded form of node.
func Fold(node Node) Node {
	return node.Accept(FoldConstants{})
}
