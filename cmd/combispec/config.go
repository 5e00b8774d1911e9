package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the run configuration of a sampling command. It is read from
// an optional YAML file; command-line flags override individual fields.
type Config struct {
	FeatureModel          string `yaml:"feature_model" validate:"required"`
	T                     *int   `yaml:"t,omitempty" validate:"omitempty,gte=0"`
	Iterations            int    `yaml:"iterations" validate:"gte=1"`
	CardinalityMap        string `yaml:"cardinality_map,omitempty"`
	ClusterInteractionMap string `yaml:"cluster_interaction_map,omitempty"`
	WeightMap             string `yaml:"weight_map,omitempty"`
	PriorityMap           string `yaml:"priority_map,omitempty"`
	ArtificialPrefix      string `yaml:"artificial_prefix,omitempty" validate:"omitempty,varname"`
	Output                string `yaml:"output" validate:"oneof=yaml text"`
	LogLevel              string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// configValidate is shared by every Config.Validate call.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()

	// varname rejects text the value-map format could not round-trip as a
	// variable name.
	_ = configValidate.RegisterValidation("varname", validateVarName)
}

func validateVarName(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}

	return !strings.ContainsAny(s, ",=\n")
}

// DefaultConfig returns a Config with default values. T stays unset; each
// command supplies its own default.
func DefaultConfig() Config {
	return Config{
		Iterations: 1,
		Output:     "yaml",
		LogLevel:   "info",
	}
}

// LoadFromFile reads a YAML config over DefaultConfig.
func LoadFromFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the config against its struct tags.
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// TOr returns the configured t, or def when unset.
func (c *Config) TOr(def int) int {
	if c.T == nil {
		return def
	}

	return *c.T
}
