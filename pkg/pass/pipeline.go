package pass

import (
	"fmt"

	"github.com/wildfunctions/exprfold/pkg/expr"
)

// Step records the tree produced by one pass.
type Step struct {
	Pass   string
	Output expr.Node
}

// Pipeline applies a fixed sequence of named passes.
type Pipeline struct {
	names        []string
	transformers []expr.Transformer
}

// NewPipeline resolves each name against the registry.
func NewPipeline(names []string, opts Options) (*Pipeline, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("pipeline needs at least one pass")
	}
	p := &Pipeline{names: names}
	for _, name := range names {
		ctor, err := Get(name)
		if err != nil {
			return nil, err
		}
		p.transformers = append(p.transformers, ctor(opts))
	}
	return p, nil
}

// Names returns the pass names in execution order.
func (p *Pipeline) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Run feeds root through every pass in order. Each step's output is a
// new tree; root and earlier outputs are never modified.
func (p *Pipeline) Run(root expr.Node) []Step {
	steps := make([]Step, 0, len(p.transformers))
	cur := root
	for i, t := range p.transformers {
		cur = expr.Transform(cur, t)
		steps = append(steps, Step{Pass: p.names[i], Output: cur})
	}
	return steps
}
