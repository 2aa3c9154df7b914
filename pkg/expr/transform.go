package expr

// Transformer rewrites an expression tree into a new one. Each handler
// receives a node of the matching variant and returns a newly built
// subtree, which may be of a different variant. Handlers for composite
// nodes recurse by calling Accept on the children themselves, so the
// traversal order is up to the pass. Passes that inspect child results
// must recurse first.
//
// New passes are added by implementing Transformer; node types stay as
// they are.
type Transformer interface {
	TransformNumber(n *NumberNode) Node
	TransformBinary(b *BinaryNode) Node
	TransformCall(c *CallNode) Node
	TransformVar(v *VarNode) Node
}

func (n *NumberNode) Accept(t Transformer) Node { return t.TransformNumber(n) }
func (b *BinaryNode) Accept(t Transformer) Node { return t.TransformBinary(b) }
func (c *CallNode) Accept(t Transformer) Node   { return t.TransformCall(c) }
func (v *VarNode) Accept(t Transformer) Node    { return t.TransformVar(v) }

// Transform applies t to the tree rooted at node and returns the result.
// The input tree is left untouched.
func Transform(node Node, t Transformer) Node {
	return node.Accept(t)
}
