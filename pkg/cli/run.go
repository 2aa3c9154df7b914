package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wildfunctions/exprfold/pkg/catalog"
	"github.com/wildfunctions/exprfold/pkg/config"
	"github.com/wildfunctions/exprfold/pkg/pass"
	"github.com/wildfunctions/exprfold/pkg/report"
)

var (
	runExample string
	runPasses  []string
	runFormat  string
	runBind    []string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the pass pipeline over a catalog example",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
	},
}

func init() {
	runCmd.Flags().StringVar(&runExample, "example", "", "example tree ("+strings.Join(catalog.Names(), ", ")+")")
	runCmd.Flags().StringSliceVar(&runPasses, "passes", nil, "comma-separated passes ("+strings.Join(pass.Names(), ", ")+")")
	runCmd.Flags().StringVar(&runFormat, "format", "", "output format (text, json, yaml)")
	runCmd.Flags().StringArrayVar(&runBind, "bind", nil, "variable binding name=value for the substitute pass (repeatable)")
	rootCmd.AddCommand(runCmd)
}

// loadConfig starts from the defaults or the --config file and applies
// any flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.DefaultConfig()
	if cfgFile != "" {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("example") {
		cfg.Example = runExample
	}
	if flags.Changed("passes") {
		cfg.Passes = runPasses
	}
	if flags.Changed("format") {
		cfg.Format = runFormat
	}
	if verbose {
		cfg.Verbose = true
	}
	if cfg.Bindings == nil {
		cfg.Bindings = map[string]float64{}
	}
	for _, b := range runBind {
		name, val, err := parseBinding(b)
		if err != nil {
			return cfg, err
		}
		cfg.Bindings[name] = val
	}
	return cfg, cfg.Validate()
}

func parseBinding(s string) (string, float64, error) {
	name, raw, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return "", 0, fmt.Errorf("invalid binding %q: want name=value", s)
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid binding %q: %w", s, err)
	}
	if math.IsInf(val, 0) || math.IsNaN(val) {
		return "", 0, fmt.Errorf("invalid binding %q: value must be finite", s)
	}
	return name, val, nil
}

func run(stdout, stderr io.Writer, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ex := catalog.Get(cfg.Example)
	p, err := pass.NewPipeline(cfg.Passes, pass.Options{Bindings: cfg.Bindings})
	if err != nil {
		return err
	}

	input := ex.Build()
	if cfg.Verbose {
		fmt.Fprintf(stderr, "Example %s: %s, passes %s\n", ex.Name, input, strings.Join(p.Names(), ","))
	}
	steps := p.Run(input)
	r := report.New(cfg, input, steps)
	if cfg.Verbose {
		for i, s := range r.Steps {
			report.WriteTextStep(stderr, i, s)
		}
	}

	switch cfg.Format {
	case "json":
		if err := report.WriteJSONFinal(stdout, r); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
	case "yaml":
		if err := report.WriteYAMLFinal(stdout, r); err != nil {
			return fmt.Errorf("writing YAML: %w", err)
		}
	default:
		report.WriteTextFinal(stdout, r)
	}
	return nil
}
