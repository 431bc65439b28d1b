package report

import (
	"fmt"
	"strings"

	"github.com/viant/docgen"
)

// Format represents report output format
type Format string

const (
	Console  Format = "console"
	JSON     Format = "json"
	YAML     Format = "yaml"
	Markdown Format = "markdown"
	HTML     Format = "html"
)

// Options represents rendering switches
type Options struct {
	ShowMetrics bool
	// Verbose includes suggestions in console output
	Verbose bool
}

// Emitter renders an analysis report
type Emitter interface {
	Emit(report *docgen.Report, options *Options) ([]byte, error)
}

// Formats returns supported format names
func Formats() []string {
	return []string{string(Console), string(JSON), string(YAML), string(Markdown), string(HTML)}
}

// ParseFormat returns format for the name
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	if _, err := EmitterOf(format); err != nil {
		return "", err
	}
	return format, nil
}

// EmitterOf returns emitter of the format
func EmitterOf(format Format) (Emitter, error) {
	switch format {
	case Console:
		return &ConsoleEmitter{}, nil
	case JSON:
		return &JSONEmitter{}, nil
	case YAML:
		return &YAMLEmitter{}, nil
	case Markdown:
		return &MarkdownEmitter{}, nil
	case HTML:
		return &HTMLEmitter{}, nil
	}
	return nil, fmt.Errorf("unsupported format: %q, expected one of: %v", format, strings.Join(Formats(), ", "))
}

// Emit renders report in the format
func Emit(report *docgen.Report, format Format, options *Options) ([]byte, error) {
	emitter, err := EmitterOf(format)
	if err != nil {
		return nil, err
	}
	if options == nil {
		options = &Options{}
	}
	return emitter.Emit(report, options)
}
