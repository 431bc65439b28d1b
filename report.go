package docgen

import (
	"math"
	"time"

	"github.com/google/uuid"
	source "github.com/viant/docgen/inspector/info"
)

// Summary represents aggregated statistics of an analysis run
type Summary struct {
	TotalElements          int     `json:"total_elements" yaml:"total_elements"`
	AverageQualityScore    float64 `json:"average_quality_score" yaml:"average_quality_score"`
	AverageComplexity      float64 `json:"average_complexity" yaml:"average_complexity"`
	Functions              int     `json:"functions" yaml:"functions"`
	Methods                int     `json:"methods" yaml:"methods"`
	Classes                int     `json:"classes" yaml:"classes"`
	WithTypeHints          int     `json:"with_type_hints" yaml:"with_type_hints"`
	WithExistingDocstrings int     `json:"with_existing_docstrings" yaml:"with_existing_docstrings"`
	HighQuality            int     `json:"high_quality" yaml:"high_quality"`
	NeedsImprovement       int     `json:"needs_improvement" yaml:"needs_improvement"`
	TotalSuggestions       int     `json:"total_suggestions" yaml:"total_suggestions"`
}

// Report represents the outcome of an analysis run
type Report struct {
	ID        string          `json:"id" yaml:"id"`
	Timestamp time.Time       `json:"timestamp" yaml:"timestamp"`
	Style     string          `json:"style" yaml:"style"`
	Project   *source.Project `json:"project,omitempty" yaml:"project,omitempty"`
	Files     []*source.File  `json:"files,omitempty" yaml:"files,omitempty"`
	Results   []*Result       `json:"results" yaml:"results"`
	Summary   *Summary        `json:"summary" yaml:"summary"`
	Stats     map[string]int  `json:"stats,omitempty" yaml:"stats,omitempty"`
	Failures  []*FileFailure  `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// FileFailure represents a file that could not be analyzed
type FileFailure struct {
	Path  string `json:"path" yaml:"path"`
	Error string `json:"error" yaml:"error"`
}

// NewReport creates a report for the supplied results
func NewReport(style string, results []*Result) *Report {
	return &Report{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Style:     style,
		Results:   results,
		Summary:   Summarize(results),
	}
}

// Filter returns results with quality score at least minQuality
func Filter(results []*Result, minQuality float64) []*Result {
	if minQuality <= 0 {
		return results
	}
	var ret []*Result
	for _, result := range results {
		if result.QualityScore >= minQuality {
			ret = append(ret, result)
		}
	}
	return ret
}

// Summarize computes aggregated statistics
func Summarize(results []*Result) *Summary {
	ret := &Summary{TotalElements: len(results)}
	if len(results) == 0 {
		return ret
	}
	totalQuality, totalComplexity := 0.0, 0.0
	for _, result := range results {
		totalQuality += result.QualityScore
		switch result.Kind {
		case KindFunction:
			ret.Functions++
		case KindMethod:
			ret.Methods++
		case KindClass:
			ret.Classes++
		}
		if result.Metrics != nil {
			totalComplexity += float64(result.Metrics.Complexity)
			if result.Metrics.HasTypeHints {
				ret.WithTypeHints++
			}
		}
		if result.HasDocstring {
			ret.WithExistingDocstrings++
		}
		if result.QualityScore >= 80 {
			ret.HighQuality++
		}
		if result.QualityScore < 60 {
			ret.NeedsImprovement++
		}
		ret.TotalSuggestions += len(result.Suggestions)
	}
	count := float64(len(results))
	ret.AverageQualityScore = round2(totalQuality / count)
	ret.AverageComplexity = round2(totalComplexity / count)
	return ret
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
