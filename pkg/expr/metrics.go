package expr

import "math"

// NodeCount returns the number of nodes in the tree.
func NodeCount(node Node) int {
	switch n := node.(type) {
	case *BinaryNode:
		return 1 + NodeCount(n.left) + NodeCount(n.right)
	case *CallNode:
		return 1 + NodeCount(n.arg)
	default:
		return 1
	}
}

// Depth returns the length of the longest root-to-leaf path; a leaf has depth 1.
func Depth(node Node) int {
	switch n := node.(type) {
	case *BinaryNode:
		ld := Depth(n.left)
		rd := Depth(n.right)
		if ld > rd {
			return 1 + ld
		}
		return 1 + rd
	case *CallNode:
		return 1 + Depth(n.arg)
	default:
		return 1
	}
}

// ContainsVar reports whether the expression tree references any variable.
func ContainsVar(node Node) bool {
	switch n := node.(type) {
	case *VarNode:
		return true
	case *BinaryNode:
		return ContainsVar(n.left) || ContainsVar(n.right)
	case *CallNode:
		return ContainsVar(n.arg)
	default:
		return false
	}
}

// Equal reports whether a and b have the same shape, operators, names and
// literal values. NaN literals compare equal to each other, and +0 and -0
// are told apart. Two nil nodes are equal.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *NumberNode:
		y, ok := b.(*NumberNode)
		return ok && sameFloat(x.val, y.val)
	case *VarNode:
		y, ok := b.(*VarNode)
		return ok && x.name == y.name
	case *CallNode:
		y, ok := b.(*CallNode)
		return ok && x.name == y.name && Equal(x.arg, y.arg)
	case *BinaryNode:
		y, ok := b.(*BinaryNode)
		return ok && x.op == y.op && Equal(x.left, y.left) && Equal(x.right, y.right)
	default:
		return a == nil && b == nil
	}
}

func sameFloat(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Float64bits(a) == math.Float64bits(b)
}
