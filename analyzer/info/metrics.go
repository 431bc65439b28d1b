package info

// Complexity thresholds
const (
	LowComplexity      = 5
	ModerateComplexity = 10
	HighComplexity     = 20
)

// Metrics represents complexity and quality measurements of a code element
type Metrics struct {
	Complexity      int     `json:"complexity" yaml:"complexity"`           // Cyclomatic complexity, at least 1
	Lines           int     `json:"lines" yaml:"lines"`                     // Inclusive line span
	Parameters      int     `json:"parameters" yaml:"parameters"`           // Declared parameters, or method count for classes
	Returns         int     `json:"returns" yaml:"returns"`                 // Return statement count
	HasTypeHints    bool    `json:"hasTypeHints" yaml:"hasTypeHints"`       // Any parameter or return annotated
	Maintainability float64 `json:"maintainability" yaml:"maintainability"` // Clamped to [0,100]
	QualityScore    float64 `json:"qualityScore" yaml:"qualityScore"`       // Set once by scoring
}

// ComplexityLevel returns a human-readable complexity band
func (m *Metrics) ComplexityLevel() string {
	switch {
	case m.Complexity <= LowComplexity:
		return "Low"
	case m.Complexity <= ModerateComplexity:
		return "Moderate"
	case m.Complexity <= HighComplexity:
		return "High"
	default:
		return "Very High"
	}
}

// QualityGrade returns a letter grade of the quality score
func (m *Metrics) QualityGrade() string {
	switch {
	case m.QualityScore >= 90:
		return "A"
	case m.QualityScore >= 80:
		return "B"
	case m.QualityScore >= 70:
		return "C"
	case m.QualityScore >= 60:
		return "D"
	default:
		return "F"
	}
}

// Clamp limits value to [0,100]
func Clamp(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
