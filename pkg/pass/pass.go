package pass

import (
	"fmt"
	"sort"

	"github.com/wildfunctions/exprfold/pkg/expr"
)

// Options carries the inputs a pass constructor may need.
type Options struct {
	Bindings map[string]float64
}

// Constructor builds a transformer for one pipeline run.
type Constructor func(opts Options) expr.Transformer

var registry = map[string]Constructor{}

// Register adds a pass constructor to the registry.
func Register(name string, constructor Constructor) {
	registry[name] = constructor
}

// Get returns the constructor registered under name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown pass: %s (available: %v)", name, Names())
	}
	return ctor, nil
}

// Names returns all registered pass names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("copy", func(Options) expr.Transformer { return expr.CopyTree{} })
	Register("fold", func(Options) expr.Transformer { return expr.FoldConstants{} })
	Register("substitute", func(opts Options) expr.Transformer {
		return expr.Substitute{Bindings: opts.Bindings}
	})
}
