package report

import (
	"fmt"
	"strings"

	"github.com/viant/docgen"
)

var (
	rule    = strings.Repeat("=", 70)
	divider = strings.Repeat("-", 70)
)

// ConsoleEmitter renders human readable text
type ConsoleEmitter struct{}

func (e *ConsoleEmitter) Emit(report *docgen.Report, options *Options) ([]byte, error) {
	var sb strings.Builder
	if len(report.Results) == 0 {
		sb.WriteString("No results to display.\n")
	}
	total := len(report.Results)
	for i, result := range report.Results {
		sb.WriteString(fmt.Sprintf("\n%s\n[%d/%d] %s (%s)\n%s\n", rule, i+1, total, result.Name, result.Kind, rule))
		sb.WriteString(fmt.Sprintf("File: %s:%d\n", result.Path, result.Line))
		grade := ""
		if result.Metrics != nil {
			grade = fmt.Sprintf(" (Grade: %s)", result.Metrics.QualityGrade())
		}
		sb.WriteString(fmt.Sprintf("Quality: %.1f/100%s\n", result.QualityScore, grade))
		if options.ShowMetrics && result.Metrics != nil {
			metrics := result.Metrics
			sb.WriteString("\nMetrics:\n")
			sb.WriteString(fmt.Sprintf("   Complexity: %d (%s)\n", metrics.Complexity, metrics.ComplexityLevel()))
			sb.WriteString(fmt.Sprintf("   Lines of Code: %d\n", metrics.Lines))
			sb.WriteString(fmt.Sprintf("   Parameters: %d\n", metrics.Parameters))
			sb.WriteString(fmt.Sprintf("   Type Hints: %s\n", yesNo(metrics.HasTypeHints)))
			sb.WriteString(fmt.Sprintf("   Maintainability: %.1f/100\n", metrics.Maintainability))
		}
		sb.WriteString(fmt.Sprintf("\nGenerated Docstring (%s):\n%s\n%s\n%s\n", result.Style, divider, result.Docstring, divider))
		if options.Verbose && len(result.Suggestions) > 0 {
			sb.WriteString(fmt.Sprintf("\nSuggestions (%d):\n", len(result.Suggestions)))
			for _, suggestion := range result.Suggestions {
				sb.WriteString(fmt.Sprintf("   %s [%s] %s\n", strings.ToUpper(string(suggestion.Severity)), suggestion.Category, suggestion.Message))
			}
		}
		if result.HasDocstring {
			sb.WriteString("\nAlready has docstring\n")
		}
	}
	for _, failure := range report.Failures {
		sb.WriteString(fmt.Sprintf("\nFailed: %s: %s\n", failure.Path, failure.Error))
	}
	if summary := report.Summary; summary != nil && summary.TotalElements > 0 {
		sb.WriteString(fmt.Sprintf("\n%s\nSummary Statistics\n%s\n", rule, rule))
		sb.WriteString(fmt.Sprintf("Total items analyzed: %d\n", summary.TotalElements))
		sb.WriteString(fmt.Sprintf("Average quality score: %.1f/100\n", summary.AverageQualityScore))
		sb.WriteString(fmt.Sprintf("High quality (>=80): %d\n", summary.HighQuality))
		sb.WriteString(fmt.Sprintf("Needs improvement (<60): %d\n", summary.NeedsImprovement))
	}
	return []byte(sb.String()), nil
}

func yesNo(flag bool) string {
	if flag {
		return "yes"
	}
	return "no"
}
