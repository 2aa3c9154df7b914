package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/wildfunctions/exprfold/pkg/config"
	"github.com/wildfunctions/exprfold/pkg/expr"
	"github.com/wildfunctions/exprfold/pkg/pass"
)

// Snapshot summarizes one tree. Value is kept as text because JSON has no
// encoding for Inf and NaN.
type Snapshot struct {
	Expr      string   `json:"expr" yaml:"expr"`
	LaTeX     string   `json:"latex" yaml:"latex"`
	Value     string   `json:"value" yaml:"value"`
	NodeCount int      `json:"node_count" yaml:"node_count"`
	Depth     int      `json:"depth" yaml:"depth"`
	Tree      *TreeDoc `json:"tree,omitempty" yaml:"tree,omitempty"`
}

// StepReport summarizes the output of one pass.
type StepReport struct {
	Pass   string   `json:"pass" yaml:"pass"`
	Result Snapshot `json:"result" yaml:"result"`
}

// FinalReport summarizes the entire run.
type FinalReport struct {
	Config config.Config `json:"config" yaml:"config"`
	Input  Snapshot      `json:"input" yaml:"input"`
	Steps  []StepReport  `json:"steps" yaml:"steps"`
	Final  Snapshot      `json:"final" yaml:"final"`
}

// TreeDoc is a nested, serialization-friendly view of a tree.
type TreeDoc struct {
	Kind     string     `json:"kind" yaml:"kind"`
	Value    string     `json:"value,omitempty" yaml:"value,omitempty"`
	Op       string     `json:"op,omitempty" yaml:"op,omitempty"`
	Name     string     `json:"name,omitempty" yaml:"name,omitempty"`
	Children []*TreeDoc `json:"children,omitempty" yaml:"children,omitempty"`
}

// Dump converts node into a TreeDoc.
func Dump(node expr.Node) *TreeDoc {
	switch n := node.(type) {
	case *expr.NumberNode:
		return &TreeDoc{Kind: "number", Value: formatValue(n.Value())}
	case *expr.VarNode:
		return &TreeDoc{Kind: "variable", Name: n.Name()}
	case *expr.CallNode:
		return &TreeDoc{Kind: "call", Name: n.Name(), Children: []*TreeDoc{Dump(n.Arg())}}
	case *expr.BinaryNode:
		return &TreeDoc{
			Kind:     "binary",
			Op:       n.Op().String(),
			Children: []*TreeDoc{Dump(n.Left()), Dump(n.Right())},
		}
	default:
		return &TreeDoc{Kind: "unknown"}
	}
}

// Snap builds the snapshot for node.
func Snap(node expr.Node) Snapshot {
	return Snapshot{
		Expr:      node.String(),
		LaTeX:     expr.LaTeX(node),
		Value:     formatValue(node.Eval()),
		NodeCount: expr.NodeCount(node),
		Depth:     expr.Depth(node),
		Tree:      Dump(node),
	}
}

// New assembles the report for input and the steps the pipeline produced.
func New(cfg config.Config, input expr.Node, steps []pass.Step) FinalReport {
	r := FinalReport{
		Config: cfg,
		Input:  Snap(input),
		Steps:  make([]StepReport, 0, len(steps)),
		Final:  Snap(input),
	}
	for _, s := range steps {
		r.Steps = append(r.Steps, StepReport{Pass: s.Pass, Result: Snap(s.Output)})
	}
	if len(steps) > 0 {
		r.Final = Snap(steps[len(steps)-1].Output)
	}
	return r
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteTextStep writes a single step in human-readable format.
func WriteTextStep(w io.Writer, i int, s StepReport) {
	fmt.Fprintf(w, "Pass %2d %-10s | nodes %3d | depth %2d | %s\n",
		i+1, s.Pass, s.Result.NodeCount, s.Result.Depth, s.Result.Expr)
}

// WriteTextFinal writes the final report in human-readable format.
func WriteTextFinal(w io.Writer, r FinalReport) {
	fmt.Fprintf(w, "Example:   %s\n", r.Config.Example)
	fmt.Fprintf(w, "Input:     %s\n", r.Input.Expr)
	fmt.Fprintf(w, "Value:     %s\n", r.Input.Value)
	fmt.Fprintln(w)
	for i, s := range r.Steps {
		WriteTextStep(w, i, s)
	}
	fmt.Fprintln(w, "\n========== FINAL RESULT ==========")
	fmt.Fprintf(w, "Expr:      %s\n", r.Final.Expr)
	fmt.Fprintf(w, "LaTeX:     %s\n", r.Final.LaTeX)
	fmt.Fprintf(w, "Value:     %s\n", r.Final.Value)
	fmt.Fprintf(w, "Nodes:     %d -> %d\n", r.Input.NodeCount, r.Final.NodeCount)
	fmt.Fprintf(w, "Depth:     %d -> %d\n", r.Input.Depth, r.Final.Depth)
	fmt.Fprintln(w, "==================================")
}

// WriteJSONFinal writes the final report as JSON.
func WriteJSONFinal(w io.Writer, r FinalReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAMLFinal writes the final report as YAML.
func WriteYAMLFinal(w io.Writer, r FinalReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
