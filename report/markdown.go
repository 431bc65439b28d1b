package report

import (
	"fmt"
	"strings"

	"github.com/viant/docgen"
)

const timeLayout = "2006-01-02 15:04:05"

// MarkdownEmitter renders a markdown document with one section per element
type MarkdownEmitter struct{}

func (e *MarkdownEmitter) Emit(report *docgen.Report, options *Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("# Docstring Analysis Report\n\n")
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n", report.Timestamp.Format(timeLayout)))
	sb.WriteString(fmt.Sprintf("**Style:** %s\n", report.Style))
	sb.WriteString(fmt.Sprintf("**Total Items:** %d\n\n", len(report.Results)))
	if summary := report.Summary; summary != nil && summary.TotalElements > 0 {
		sb.WriteString("| Metric | Value |\n|---|---|\n")
		sb.WriteString(fmt.Sprintf("| Average quality | %.1f |\n", summary.AverageQualityScore))
		sb.WriteString(fmt.Sprintf("| Average complexity | %.1f |\n", summary.AverageComplexity))
		sb.WriteString(fmt.Sprintf("| High quality (>=80) | %d |\n", summary.HighQuality))
		sb.WriteString(fmt.Sprintf("| Needs improvement (<60) | %d |\n", summary.NeedsImprovement))
		sb.WriteString("\n")
	}
	sb.WriteString("---\n\n")
	for _, result := range report.Results {
		sb.WriteString(fmt.Sprintf("## %s (%s)\n\n", result.Name, result.Kind))
		sb.WriteString(fmt.Sprintf("**File:** `%s:%d`\n", result.Path, result.Line))
		sb.WriteString(fmt.Sprintf("**Quality Score:** %.1f/100\n", result.QualityScore))
		if result.Metrics != nil {
			sb.WriteString(fmt.Sprintf("**Complexity:** %d (%s)\n", result.Metrics.Complexity, result.Metrics.ComplexityLevel()))
		}
		sb.WriteString("\n### Generated Docstring\n\n```python\n")
		sb.WriteString(result.Docstring)
		sb.WriteString("\n```\n\n")
		if len(result.Suggestions) > 0 {
			sb.WriteString("### Suggestions\n\n")
			for _, suggestion := range result.Suggestions {
				sb.WriteString(fmt.Sprintf("- **%s:** %s\n", strings.ToUpper(string(suggestion.Severity)), suggestion.Message))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("---\n\n")
	}
	for _, failure := range report.Failures {
		sb.WriteString(fmt.Sprintf("> failed: `%s` %s\n", failure.Path, failure.Error))
	}
	return []byte(sb.String()), nil
}
