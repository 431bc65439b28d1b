package config

import (
	"fmt"

	"github.com/viant/docgen/analyzer/docstring"
	"github.com/viant/docgen/inspector/repository"
)

// Log represents logging settings
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config represents docgen settings
type Config struct {
	Style          string   `yaml:"style"`
	Format         string   `yaml:"format"`
	Output         string   `yaml:"output"`
	MinQuality     float64  `yaml:"minQuality"`
	ShowMetrics    bool     `yaml:"showMetrics"`
	Suggestions    bool     `yaml:"suggestions"`
	Verbose        bool     `yaml:"verbose"`
	IncludeMethods bool     `yaml:"includeMethods"`
	Workers        int      `yaml:"workers"`
	FailFast       bool     `yaml:"failFast"`
	GitIgnore      bool     `yaml:"gitIgnore"`
	Excludes       []string `yaml:"excludes"`
	Log            Log      `yaml:"log"`
}

// DefaultConfig returns the standard configuration
func DefaultConfig() *Config {
	return &Config{
		Style:       string(docstring.Google),
		Format:      "console",
		ShowMetrics: true,
		Suggestions: true,
		Workers:     4,
		GitIgnore:   true,
		Excludes:    append([]string{}, repository.DefaultExcludes...),
		Log:         Log{Level: "warn", Format: "console"},
	}
}

// Validate checks config values
func (c *Config) Validate() error {
	if _, err := docstring.ParseStyle(c.Style); err != nil {
		return err
	}
	if c.MinQuality < 0 || c.MinQuality > 100 {
		return fmt.Errorf("invalid minQuality: %v, expected value in [0,100]", c.MinQuality)
	}
	if c.Workers < 1 {
		return fmt.Errorf("invalid workers: %v", c.Workers)
	}
	return nil
}
