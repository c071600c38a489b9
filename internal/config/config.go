// Package config loads advisor settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Bounds applied by Clamp to interactive input.
const (
	MinOpponents = 1
	MaxOpponents = 8
	MinTrials    = 1000
	MaxTrials    = 20000
)

// Config represents the complete advisor configuration
type Config struct {
	Advisor Settings `hcl:"advisor,block"`
}

// Settings contains the simulation and logging defaults
type Settings struct {
	Opponents int    `hcl:"opponents,optional"`
	Trials    int    `hcl:"trials,optional"`
	Workers   int    `hcl:"workers,optional"`
	Seed      int64  `hcl:"seed,optional"`
	LogLevel  string `hcl:"log_level,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Advisor: Settings{
			Opponents: 2,
			Trials:    3000,
			LogLevel:  "info",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default().Advisor
	if config.Advisor.Opponents == 0 {
		config.Advisor.Opponents = defaults.Opponents
	}
	if config.Advisor.Trials == 0 {
		config.Advisor.Trials = defaults.Trials
	}
	if config.Advisor.LogLevel == "" {
		config.Advisor.LogLevel = defaults.LogLevel
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Advisor.Opponents < 0 {
		return fmt.Errorf("opponents must not be negative: %d", c.Advisor.Opponents)
	}
	if c.Advisor.Trials < 1 {
		return fmt.Errorf("trials must be positive: %d", c.Advisor.Trials)
	}
	if c.Advisor.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", c.Advisor.Workers)
	}
	if _, err := log.ParseLevel(c.Advisor.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Advisor.LogLevel, err)
	}
	return nil
}

// Clamp bounds opponents to [MinOpponents, MaxOpponents] and trials to
// [MinTrials, MaxTrials] for interactive play.
func (s Settings) Clamp() Settings {
	s.Opponents = min(max(s.Opponents, MinOpponents), MaxOpponents)
	s.Trials = min(max(s.Trials, MinTrials), MaxTrials)
	return s
}

// Level returns the parsed log level, falling back to info.
func (s Settings) Level() log.Level {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
