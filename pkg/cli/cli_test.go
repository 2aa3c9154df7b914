package cli

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/exprfold/pkg/config"
	"github.com/wildfunctions/exprfold/pkg/report"
)

func TestRun_Text(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.Verbose = true

	require.NoError(t, run(&stdout, &stderr, cfg))
	assert.Contains(t, stdout.String(), "Expr:      abs(var*4)")
	assert.Contains(t, stderr.String(), "Example demo: abs(var*sqrt(32-16)), passes fold")
}

func TestRun_JSONWithBindings(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.Example = "partial"
	cfg.Passes = []string{"substitute", "fold"}
	cfg.Format = "json"
	cfg.Bindings = map[string]float64{"x": 3}

	require.NoError(t, run(&stdout, &stderr, cfg))
	assert.Empty(t, stderr.String())

	var r report.FinalReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &r))
	assert.Equal(t, "15", r.Final.Expr)
	require.Len(t, r.Steps, 2)
	assert.Equal(t, "3*2+3", r.Steps[0].Result.Expr)
}

func TestRun_UnknownExample(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Example = "nope"
	assert.Error(t, run(&bytes.Buffer{}, &bytes.Buffer{}, cfg))
}

func TestRun_NonFiniteBindingRejected(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.Example = "partial"
	cfg.Passes = []string{"substitute", "fold"}
	cfg.Format = "json"
	cfg.Bindings = map[string]float64{"x": math.Inf(1)}

	err := run(&stdout, &stderr, cfg)
	assert.ErrorContains(t, err, "binding x: value must be finite")
	assert.Empty(t, stdout.String())
}

func TestParseBinding(t *testing.T) {
	name, val, err := parseBinding("x=2.5")
	require.NoError(t, err)
	assert.Equal(t, "x", name)
	assert.Equal(t, 2.5, val)

	for _, bad := range []string{"x", "=1", "x=abc", "x=inf", "x=-Inf", "x=nan"} {
		_, _, err := parseBinding(bad)
		assert.Error(t, err, bad)
	}
}

func TestListCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"list"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())
	assert.Contains(t, out.String(), "demo")
	assert.Contains(t, out.String(), "substitute")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())
	assert.Contains(t, out.String(), "exprfold v"+Version)
	assert.Contains(t, out.String(), "Go Version:")
}
