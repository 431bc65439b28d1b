package docgen

import (
	"github.com/viant/docgen/analyzer/info"
)

// ElementKind represents analyzed element kind
type ElementKind string

const (
	KindFunction ElementKind = "function"
	KindMethod   ElementKind = "method"
	KindClass    ElementKind = "class"
)

// Result represents the analysis outcome of a single function, method or class
type Result struct {
	Kind         ElementKind   `json:"kind" yaml:"kind"`
	Name         string        `json:"name" yaml:"name"`
	Path         string        `json:"path" yaml:"path"`
	Line         int           `json:"line" yaml:"line"`
	Docstring    string        `json:"docstring" yaml:"docstring"`
	Style        string        `json:"style" yaml:"style"`
	QualityScore float64       `json:"qualityScore" yaml:"qualityScore"`
	Confidence   float64       `json:"confidence" yaml:"confidence"`
	Metrics      *info.Metrics `json:"metrics" yaml:"metrics"`
	Suggestions  []*Suggestion `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	Patterns     []string      `json:"patterns,omitempty" yaml:"patterns,omitempty"`
	HasDocstring bool          `json:"hasDocstring" yaml:"hasDocstring"`
	Example      string        `json:"example,omitempty" yaml:"example,omitempty"`
}

// Map returns result as a plain map of primitives
func (r *Result) Map() map[string]interface{} {
	suggestions := make([]interface{}, 0, len(r.Suggestions))
	for _, suggestion := range r.Suggestions {
		suggestions = append(suggestions, suggestion.Map())
	}
	patterns := make([]interface{}, 0, len(r.Patterns))
	for _, pattern := range r.Patterns {
		patterns = append(patterns, pattern)
	}
	ret := map[string]interface{}{
		"element_type":           string(r.Kind),
		"element_name":           r.Name,
		"file_path":              r.Path,
		"line_number":            r.Line,
		"generated_docstring":    r.Docstring,
		"style":                  r.Style,
		"quality_score":          r.QualityScore,
		"confidence_score":       r.Confidence,
		"suggestions":            suggestions,
		"patterns":               patterns,
		"has_existing_docstring": r.HasDocstring,
	}
	if r.Metrics != nil {
		ret["metrics"] = map[string]interface{}{
			"cyclomatic_complexity": r.Metrics.Complexity,
			"complexity_level":      r.Metrics.ComplexityLevel(),
			"lines_of_code":         r.Metrics.Lines,
			"num_parameters":        r.Metrics.Parameters,
			"num_returns":           r.Metrics.Returns,
			"has_type_hints":        r.Metrics.HasTypeHints,
			"maintainability_index": r.Metrics.Maintainability,
			"quality_score":         r.Metrics.QualityScore,
			"quality_grade":         r.Metrics.QualityGrade(),
		}
	}
	if r.Example != "" {
		ret["example"] = r.Example
	}
	return ret
}
