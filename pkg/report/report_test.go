package report

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wildfunctions/exprfold/pkg/catalog"
	"github.com/wildfunctions/exprfold/pkg/config"
	"github.com/wildfunctions/exprfold/pkg/expr"
	"github.com/wildfunctions/exprfold/pkg/pass"
)

func demoReport(t *testing.T, passes ...string) FinalReport {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Passes = passes
	p, err := pass.NewPipeline(cfg.Passes, pass.Options{Bindings: cfg.Bindings})
	require.NoError(t, err)
	input := catalog.Get("demo").Build()
	return New(cfg, input, p.Run(input))
}

func TestDump(t *testing.T) {
	doc := Dump(catalog.Get("partial").Build())
	want := &TreeDoc{
		Kind: "binary",
		Op:   "*",
		Children: []*TreeDoc{
			{Kind: "variable", Name: "x"},
			{Kind: "binary", Op: "+", Children: []*TreeDoc{
				{Kind: "number", Value: "2"},
				{Kind: "number", Value: "3"},
			}},
		},
	}
	assert.Equal(t, want, doc)
}

func TestNew(t *testing.T) {
	r := demoReport(t, "copy", "fold")
	assert.Equal(t, "abs(var*sqrt(32-16))", r.Input.Expr)
	assert.Equal(t, 7, r.Input.NodeCount)
	require.Len(t, r.Steps, 2)
	assert.Equal(t, "copy", r.Steps[0].Pass)
	assert.Equal(t, r.Input.Expr, r.Steps[0].Result.Expr)
	assert.Equal(t, "abs(var*4)", r.Final.Expr)
	assert.Equal(t, "0", r.Final.Value)
	assert.Equal(t, 4, r.Final.NodeCount)
}

func TestNew_NoSteps(t *testing.T) {
	in := expr.NewNumber(1)
	r := New(config.DefaultConfig(), in, nil)
	assert.Empty(t, r.Steps)
	assert.Equal(t, r.Input, r.Final)
}

func TestWriteTextFinal(t *testing.T) {
	var buf bytes.Buffer
	WriteTextFinal(&buf, demoReport(t, "fold"))
	out := buf.String()
	assert.Contains(t, out, "Input:     abs(var*sqrt(32-16))")
	assert.Contains(t, out, "Expr:      abs(var*4)")
	assert.Contains(t, out, "Nodes:     7 -> 4")
	assert.Contains(t, out, "LaTeX:     \\left|{var} \\cdot {4}\\right|")
}

func TestWriteJSONFinal_SpecialValues(t *testing.T) {
	cfg := config.DefaultConfig()
	input := expr.MustBinary(expr.NewNumber(1), expr.OpDiv, expr.NewNumber(0))
	p, err := pass.NewPipeline([]string{"fold"}, pass.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSONFinal(&buf, New(cfg, input, p.Run(input))))

	var decoded FinalReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "+Inf", decoded.Final.Value)
	assert.Equal(t, "number", decoded.Final.Tree.Kind)
	assert.True(t, math.IsInf(input.Eval(), 1))
}

func TestWriteYAMLFinal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAMLFinal(&buf, demoReport(t, "fold")))
	assert.True(t, strings.HasPrefix(buf.String(), "config:\n"))

	var decoded FinalReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "abs(var*4)", decoded.Final.Expr)
	assert.Equal(t, []string{"fold"}, decoded.Config.Passes)
	require.Len(t, decoded.Final.Tree.Children, 1)
	assert.Equal(t, "*", decoded.Final.Tree.Children[0].Op)
}
