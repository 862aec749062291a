// Package config loads the scenario runner configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/gad-lang/clsmeth"
	"github.com/gad-lang/clsmeth/scenario"
)

// Config is the runner configuration. Zero fields take the defaults.
type Config struct {
	// Repeat is the number of invocations of each scenario.
	Repeat int `yaml:"repeat"`
	// Policy is the shape policy: strict or structural.
	Policy string `yaml:"policy"`
	// Scenarios selects scenarios by name, all when empty.
	Scenarios []string `yaml:"scenarios"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
	Color    bool   `yaml:"color"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Repeat:   scenario.DefaultRepeat,
		Policy:   clsmeth.ShapeStrict.String(),
		LogLevel: zerolog.WarnLevel.String(),
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Repeat < 1 {
		return fmt.Errorf("config: repeat must be at least 1, got %d", c.Repeat)
	}
	if _, err := c.ShapePolicy(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := scenario.Lookup(c.Scenarios...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ShapePolicy returns the parsed shape policy.
func (c Config) ShapePolicy() (clsmeth.ShapePolicy, error) {
	return clsmeth.ParseShapePolicy(c.Policy)
}

// Level returns the parsed log level.
func (c Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.LogLevel)
}

// SelectedScenarios returns the configured scenarios, all when none is
// named.
func (c Config) SelectedScenarios() ([]scenario.Scenario, error) {
	if len(c.Scenarios) == 0 {
		return scenario.All(), nil
	}
	return scenario.Lookup(c.Scenarios...)
}

// Runner builds a scenario runner from the configuration.
func (c Config) Runner(logger zerolog.Logger) (*scenario.Runner, error) {
	policy, err := c.ShapePolicy()
	if err != nil {
		return nil, err
	}
	scenarios, err := c.SelectedScenarios()
	if err != nil {
		return nil, err
	}
	return &scenario.Runner{
		Scenarios: scenarios,
		Repeat:    c.Repeat,
		Policy:    policy,
		Logger:    logger,
	}, nil
}
