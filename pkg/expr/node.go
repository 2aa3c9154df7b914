package expr

import "fmt"

// Node is the interface for all expression tree nodes.
// The set of implementations is closed: NumberNode, BinaryNode, CallNode
// and VarNode. Nodes are immutable once constructed.
type Node interface {
	Eval() float64
	String() string
	Accept(t Transformer) Node
	exprNode()
}

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

// Valid reports whether op is one of the four supported operators.
func (op BinaryOp) Valid() bool {
	return op >= OpAdd && op <= OpDiv
}

// Names of the supported unary functions.
const (
	FuncSqrt = "sqrt"
	FuncAbs  = "abs"
)

// NumberNode is a floating-point literal.
type NumberNode struct {
	val float64
}

// BinaryNode applies a binary operation to two owned subtrees.
type BinaryNode struct {
	op          BinaryOp
	left, right Node
}

// CallNode applies a whitelisted unary function to an owned subtree.
type CallNode struct {
	name string
	arg  Node
}

// VarNode references a variable by name.
type VarNode struct {
	name string
}

func (*NumberNode) exprNode() {}
func (*BinaryNode) exprNode() {}
func (*CallNode) exprNode()   {}
func (*VarNode) exprNode()    {}

// NewNumber returns a literal holding v. Inf and NaN are accepted.
func NewNumber(v float64) *NumberNode {
	return &NumberNode{val: v}
}

// NewBinary returns left op right. Both operands are mandatory.
func NewBinary(left Node, op BinaryOp, right Node) (*BinaryNode, error) {
	if isNil(left) {
		return nil, fmt.Errorf("binary %s: left: %w", op, ErrMissingOperand)
	}
	if isNil(right) {
		return nil, fmt.Errorf("binary %s: right: %w", op, ErrMissingOperand)
	}
	if !op.Valid() {
		return nil, fmt.Errorf("binary op %d: %w", int(op), ErrInvalidOperator)
	}
	return &BinaryNode{op: op, left: left, right: right}, nil
}

// NewCall returns name(arg). Only "sqrt" and "abs" are accepted.
func NewCall(name string, arg Node) (*CallNode, error) {
	if name != FuncSqrt && name != FuncAbs {
		return nil, fmt.Errorf("call %q: %w", name, ErrInvalidFunctionName)
	}
	if isNil(arg) {
		return nil, fmt.Errorf("call %s: %w", name, ErrMissingOperand)
	}
	return &CallNode{name: name, arg: arg}, nil
}

// NewVar returns a reference to the variable name.
func NewVar(name string) (*VarNode, error) {
	if name == "" {
		return nil, fmt.Errorf("var: %w", ErrInvalidVariableName)
	}
	return &VarNode{name: name}, nil
}

// MustBinary is like NewBinary but panics on error.
// Intended for trees whose shape is known statically.
func MustBinary(left Node, op BinaryOp, right Node) *BinaryNode {
	b, err := NewBinary(left, op, right)
	if err != nil {
		panic(err)
	}
	return b
}

// MustCall is like NewCall but panics on error.
func MustCall(name string, arg Node) *CallNode {
	c, err := NewCall(name, arg)
	if err != nil {
		panic(err)
	}
	return c
}

// MustVar is like NewVar but panics on error.
func MustVar(name string) *VarNode {
	v, err := NewVar(name)
	if err != nil {
		panic(err)
	}
	return v
}

func (n *NumberNode) Value() float64 { return n.val }

func (b *BinaryNode) Left() Node   { return b.left }
func (b *BinaryNode) Right() Node  { return b.right }
func (b *BinaryNode) Op() BinaryOp { return b.op }

func (c *CallNode) Name() string { return c.name }
func (c *CallNode) Arg() Node    { return c.arg }

func (v *VarNode) Name() string { return v.name }

// isNil catches both untyped nil and a nil pointer of a node type.
func isNil(n Node) bool {
	switch p := n.(type) {
	case nil:
		return true
	case *NumberNode:
		return p == nil
	case *BinaryNode:
		return p == nil
	case *CallNode:
		return p == nil
	case *VarNode:
		return p == nil
	default:
		return false
	}
}
