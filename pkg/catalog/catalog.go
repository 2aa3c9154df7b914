package catalog

import (
	"sort"

	"github.com/wildfunctions/exprfold/pkg/expr"
)

// Example is a named sample tree. Build returns a fresh tree on every call.
type Example struct {
	Name        string
	Description string
	Build       func() expr.Node
}

var registry = map[string]*Example{}

// Register adds an example to the catalog.
func Register(e *Example) {
	registry[e.Name] = e
}

// Get returns the example with the given name, or nil if none exists.
func Get(name string) *Example {
	return registry[name]
}

// Names returns all example names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func num(v float64) expr.Node { return expr.NewNumber(v) }

func init() {
	Register(&Example{
		Name:        "demo",
		Description: "abs(var * sqrt(32 - 16))",
		Build: func() expr.Node {
			minus := expr.MustBinary(num(32), expr.OpSub, num(16))
			callSqrt := expr.MustCall(expr.FuncSqrt, minus)
			mult := expr.MustBinary(expr.MustVar("var"), expr.OpMul, callSqrt)
			return expr.MustCall(expr.FuncAbs, mult)
		},
	})
	Register(&Example{
		Name:        "partial",
		Description: "x * (2 + 3)",
		Build: func() expr.Node {
			sum := expr.MustBinary(num(2), expr.OpAdd, num(3))
			return expr.MustBinary(expr.MustVar("x"), expr.OpMul, sum)
		},
	})
	Register(&Example{
		Name:        "literal",
		Description: "(2 + 3) * (4 - 4) + sqrt(81) / abs(-3)",
		Build: func() expr.Node {
			left := expr.MustBinary(
				expr.MustBinary(num(2), expr.OpAdd, num(3)),
				expr.OpMul,
				expr.MustBinary(num(4), expr.OpSub, num(4)),
			)
			right := expr.MustBinary(
				expr.MustCall(expr.FuncSqrt, num(81)),
				expr.OpDiv,
				expr.MustCall(expr.FuncAbs, num(-3)),
			)
			return expr.MustBinary(left, expr.OpAdd, right)
		},
	})
	Register(&Example{
		Name:        "degenerate",
		Description: "1 / 0 + sqrt(-1)",
		Build: func() expr.Node {
			div := expr.MustBinary(num(1), expr.OpDiv, num(0))
			return expr.MustBinary(div, expr.OpAdd, expr.MustCall(expr.FuncSqrt, num(-1)))
		},
	})
}
