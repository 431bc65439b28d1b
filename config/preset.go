package config

import (
	"fmt"
	"sort"
)

var presets = map[string]func(c *Config){
	"minimal": func(c *Config) {
		c.ShowMetrics = false
		c.Suggestions = false
		c.Verbose = false
	},
	"standard": func(c *Config) {
		c.ShowMetrics = true
		c.Suggestions = true
		c.Verbose = false
	},
	"comprehensive": func(c *Config) {
		c.ShowMetrics = true
		c.Suggestions = true
		c.Verbose = true
		c.IncludeMethods = true
	},
	"production": func(c *Config) {
		c.Style = "google"
		c.MinQuality = 70
		c.Suggestions = true
		c.FailFast = true
	},
}

// Presets returns sorted preset names
func Presets() []string {
	var ret []string
	for name := range presets {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Preset returns default configuration adjusted by the named preset
func Preset(name string) (*Config, error) {
	apply, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset: %v, supported: %v", name, Presets())
	}
	ret := DefaultConfig()
	apply(ret)
	return ret, nil
}
