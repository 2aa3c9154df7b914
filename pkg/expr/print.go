package expr

import (
	"fmt"
	"strconv"
)

var binaryOpSymbols = map[BinaryOp]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

// String returns the operator symbol.
func (op BinaryOp) String() string {
	if sym, ok := binaryOpSymbols[op]; ok {
		return sym
	}
	return fmt.Sprintf("op(%d)", int(op))
}

// String methods

func (n *NumberNode) String() string {
	return formatNumber(n.val)
}

// String renders left, symbol and right with no parentheses or spaces, so
// the result does not round-trip for nested operations.
func (b *BinaryNode) String() string {
	return b.left.String() + b.op.String() + b.right.String()
}

func (c *CallNode) String() string {
	return c.name + "(" + c.arg.String() + ")"
}

func (v *VarNode) String() string {
	return v.name
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// LaTeX renders node as a LaTeX math fragment. Unlike String, operand
// grouping is explicit.
func LaTeX(node Node) string {
	switch n := node.(type) {
	case *NumberNode:
		return formatNumber(n.val)
	case *VarNode:
		return n.name
	case *CallNode:
		arg := LaTeX(n.arg)
		if n.name == FuncSqrt {
			return fmt.Sprintf("\\sqrt{%s}", arg)
		}
		return fmt.Sprintf("\\left|%s\\right|", arg)
	case *BinaryNode:
		left := LaTeX(n.left)
		right := LaTeX(n.right)
		switch n.op {
		case OpAdd:
			return fmt.Sprintf("{%s} + {%s}", left, right)
		case OpSub:
			return fmt.Sprintf("{%s} - {%s}", left, right)
		case OpMul:
			return fmt.Sprintf("{%s} \\cdot {%s}", left, right)
		case OpDiv:
			return fmt.Sprintf("\\frac{%s}{%s}", left, right)
		}
	}
	return ""
}
