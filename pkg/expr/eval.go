package expr

import "math"

// Eval for NumberNode returns the stored value.
func (n *NumberNode) Eval() float64 {
	return n.val
}

// Eval for BinaryNode evaluates both sides and applies the operator.
// Division by zero yields ±Inf or NaN.
func (b *BinaryNode) Eval() float64 {
	return applyBinary(b.op, b.left.Eval(), b.right.Eval())
}

// Eval for CallNode evaluates the argument and applies the function.
// sqrt of a negative number yields NaN.
func (c *CallNode) Eval() float64 {
	return applyFunc(c.name, c.arg.Eval())
}

// Eval for VarNode always returns 0; no binding environment exists.
func (v *VarNode) Eval() float64 {
	return 0
}

func applyBinary(op BinaryOp, left, right float64) float64 {
	switch op {
	case OpAdd:
		return left + right
	case OpSub:
		return left - right
	case OpMul:
		return left * right
	case OpDiv:
		return left / right
	default:
		return math.NaN()
	}
}

func applyFunc(name string, arg float64) float64 {
	switch name {
	case FuncSqrt:
		return math.Sqrt(arg)
	case FuncAbs:
		return math.Abs(arg)
	default:
		return math.NaN()
	}
}
