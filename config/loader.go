package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Loader handles configuration loading from YAML files
type Loader struct {
	fs       afs.Service
	defaults []string
}

// NewLoader creates a configuration loader
func NewLoader(fs afs.Service) *Loader {
	if fs == nil {
		fs = afs.New()
	}
	return &Loader{
		fs: fs,
		defaults: []string{
			".docgen.yaml",
			"docgen.yaml",
			filepath.Join(os.Getenv("HOME"), ".docgen", "config.yaml"),
		},
	}
}

// Load loads configuration with environment variable substitution;
// defaults are returned when no location is given and no default file exists.
//   - ${VAR_NAME} substitutes the value of VAR_NAME, empty string if not set
//   - ${VAR_NAME:-default} substitutes VAR_NAME or "default" if not set
func (l *Loader) Load(ctx context.Context, location string) (*Config, error) {
	cfg := DefaultConfig()
	if location == "" {
		if location = l.resolve(ctx); location == "" {
			return cfg, nil
		}
	}
	data, err := l.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %v: %w", location, err)
	}
	if err = yaml.Unmarshal([]byte(expandEnvVars(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", location, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", location, err)
	}
	return cfg, nil
}

func (l *Loader) resolve(ctx context.Context) string {
	for _, candidate := range l.defaults {
		if ok, _ := l.fs.Exists(ctx, candidate); ok {
			return candidate
		}
	}
	return ""
}

var envVar = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// expandEnvVars expands ${VAR} and ${VAR:-default} references
func expandEnvVars(input string) string {
	return envVar.ReplaceAllStringFunc(input, func(match string) string {
		submatches := envVar.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}
		if value, ok := os.LookupEnv(submatches[1]); ok {
			return value
		}
		if len(submatches) >= 3 {
			return submatches[2]
		}
		return ""
	})
}
