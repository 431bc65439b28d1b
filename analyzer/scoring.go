package analyzer

import (
	"fmt"

	"github.com/viant/docgen"
	"github.com/viant/docgen/analyzer/info"
	source "github.com/viant/docgen/inspector/info"
)

// FunctionQuality scores a function in [0,100]
func FunctionQuality(fn *source.Function, metrics *info.Metrics) float64 {
	score := 100.0
	if metrics.Complexity > 10 {
		score -= float64(metrics.Complexity-10) * 5
	}
	if metrics.Lines > 50 {
		score -= float64(metrics.Lines-50) * 0.5
	}
	if metrics.Parameters > 5 {
		score -= float64(metrics.Parameters-5) * 10
	}
	if metrics.HasTypeHints {
		score += 15
	} else {
		score -= 10
	}
	if fn.HasDocstring {
		score += 10
	}
	if len(fn.Decorators) > 0 {
		score += 5
	}
	return info.Clamp(score)
}

// ClassQuality scores a class in [0,100]
func ClassQuality(class *source.Class) float64 {
	score := 100.0
	methods := len(class.Methods)
	if methods == 0 {
		score -= 20
	}
	if methods > 20 {
		score -= float64(methods-20) * 2
	}
	if class.HasDocstring {
		score += 15
	}
	switch bases := len(class.Bases); {
	case bases == 1 || bases == 2:
		score += 10
	case bases > 2:
		score -= 10
	}
	if len(class.Attributes) > 0 {
		score += 5
	}
	return info.Clamp(score)
}

// Confidence scores how reliable the synthesized docstring is, in [0,100]
func Confidence(hasDocstring bool, metrics *info.Metrics, patterns info.Patterns) float64 {
	confidence := 70.0
	if metrics.HasTypeHints {
		confidence += 15
	}
	if len(patterns) > 0 {
		confidence += min(10, 3*float64(len(patterns)))
	}
	if metrics.Complexity > 15 {
		confidence -= 10
	}
	if hasDocstring {
		confidence += 10
	}
	return info.Clamp(confidence)
}

// FunctionSuggestions returns improvement suggestions for a function
func FunctionSuggestions(fn *source.Function, metrics *info.Metrics) []*docgen.Suggestion {
	line := fn.Location.Line
	var ret []*docgen.Suggestion
	if !metrics.HasTypeHints {
		ret = append(ret, &docgen.Suggestion{
			Category: docgen.CategoryTypeHints,
			Severity: docgen.SeverityWarning,
			Message:  "Consider adding type hints to improve code clarity and enable static type checking",
			Line:     line,
		})
	}
	if metrics.Complexity > 10 {
		ret = append(ret, &docgen.Suggestion{
			Category: docgen.CategoryComplexity,
			Severity: docgen.SeverityWarning,
			Message:  fmt.Sprintf("High cyclomatic complexity (%d). Consider refactoring into smaller functions", metrics.Complexity),
			Line:     line,
		})
	}
	if metrics.Parameters > 5 {
		ret = append(ret, &docgen.Suggestion{
			Category: docgen.CategoryParameters,
			Severity: docgen.SeverityInfo,
			Message:  fmt.Sprintf("Function has %d parameters. Consider using a configuration object or dataclass", metrics.Parameters),
			Line:     line,
		})
	}
	if !fn.HasDocstring {
		ret = append(ret, &docgen.Suggestion{
			Category: docgen.CategoryDocumentation,
			Severity: docgen.SeverityError,
			Message:  "Missing docstring. Add documentation to improve code maintainability",
			Line:     line,
		})
	}
	return ret
}

// ClassSuggestions returns improvement suggestions for a class
func ClassSuggestions(class *source.Class) []*docgen.Suggestion {
	line := class.Location.Line
	var ret []*docgen.Suggestion
	if !class.HasDocstring {
		ret = append(ret, &docgen.Suggestion{
			Category: docgen.CategoryDocumentation,
			Severity: docgen.SeverityError,
			Message:  "Missing class docstring. Add documentation to describe the class purpose",
			Line:     line,
		})
	}
	if len(class.Methods) == 0 {
		ret = append(ret, &docgen.Suggestion{
			Category: docgen.CategoryDesign,
			Severity: docgen.SeverityWarning,
			Message:  "Class has no methods. Consider if a dataclass or named tuple would be more appropriate",
			Line:     line,
		})
	}
	if len(class.Bases) > 3 {
		ret = append(ret, &docgen.Suggestion{
			Category: docgen.CategoryDesign,
			Severity: docgen.SeverityWarning,
			Message:  "Multiple inheritance detected. Consider composition over inheritance",
			Line:     line,
		})
	}
	return ret
}
