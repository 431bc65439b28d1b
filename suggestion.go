package docgen

// Severity represents suggestion severity
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Suggestion categories
const (
	CategoryTypeHints     = "type_hints"
	CategoryComplexity    = "complexity"
	CategoryParameters    = "parameters"
	CategoryDocumentation = "documentation"
	CategoryDesign        = "design"
)

// Suggestion represents an improvement suggestion
type Suggestion struct {
	Category string   `json:"category" yaml:"category"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
	Line     int      `json:"line,omitempty" yaml:"line,omitempty"`
}

// Map returns suggestion as a plain map
func (s *Suggestion) Map() map[string]interface{} {
	ret := map[string]interface{}{
		"category": s.Category,
		"severity": string(s.Severity),
		"message":  s.Message,
	}
	if s.Line > 0 {
		ret["line_number"] = s.Line
	}
	return ret
}
