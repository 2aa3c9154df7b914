package config

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/wildfunctions/exprfold/pkg/catalog"
	"github.com/wildfunctions/exprfold/pkg/pass"
)

// Config holds all parameters for one run of the pass pipeline.
type Config struct {
	Example  string             `toml:"example" json:"example" yaml:"example"`
	Passes   []string           `toml:"passes" json:"passes" yaml:"passes"`
	Format   string             `toml:"format" json:"format" yaml:"format"` // "text", "json" or "yaml"
	Verbose  bool               `toml:"verbose" json:"verbose" yaml:"verbose"`
	Bindings map[string]float64 `toml:"bindings" json:"bindings,omitempty" yaml:"bindings,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Example:  "demo",
		Passes:   []string{"fold"},
		Format:   "text",
		Verbose:  false,
		Bindings: map[string]float64{},
	}
}

// Load reads a TOML file on top of DefaultConfig.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, fmt.Errorf("config file not found: %s", path)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Parse decodes TOML text on top of DefaultConfig.
func Parse(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks names against the pass and example registries and
// rejects non-finite bindings.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format: %s (available: text, json, yaml)", c.Format)
	}
	if catalog.Get(c.Example) == nil {
		return fmt.Errorf("unknown example: %s (available: %v)", c.Example, catalog.Names())
	}
	if len(c.Passes) == 0 {
		return fmt.Errorf("no passes configured")
	}
	for _, name := range c.Passes {
		if _, err := pass.Get(name); err != nil {
			return err
		}
	}
	// Bindings end up in JSON reports, which cannot carry Inf or NaN.
	for name, v := range c.Bindings {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return fmt.Errorf("binding %s: value must be finite, got %v", name, v)
		}
	}
	return nil
}
