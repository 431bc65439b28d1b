package docgen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/docgen/analyzer/info"
)

func TestSummarize(t *testing.T) {
	results := []*Result{
		{Kind: KindFunction, QualityScore: 100, HasDocstring: true, Metrics: &info.Metrics{Complexity: 1, HasTypeHints: true}},
		{Kind: KindClass, QualityScore: 55, Metrics: &info.Metrics{Complexity: 2}, Suggestions: []*Suggestion{{Category: CategoryDocumentation}}},
		{Kind: KindMethod, QualityScore: 70, Metrics: &info.Metrics{Complexity: 4}},
	}
	summary := Summarize(results)
	assert.EqualValues(t, &Summary{
		TotalElements:          3,
		AverageQualityScore:    75,
		AverageComplexity:      2.33,
		Functions:              1,
		Methods:                1,
		Classes:                1,
		WithTypeHints:          1,
		WithExistingDocstrings: 1,
		HighQuality:            1,
		NeedsImprovement:       1,
		TotalSuggestions:       1,
	}, summary)

	empty := Summarize(nil)
	assert.Equal(t, 0, empty.TotalElements)
	assert.Equal(t, 0.0, empty.AverageQualityScore)
}

func TestNewReport(t *testing.T) {
	report := NewReport("google", []*Result{{Kind: KindFunction, QualityScore: 90}})
	require.NotEmpty(t, report.ID)
	assert.Equal(t, "google", report.Style)
	assert.Equal(t, 1, report.Summary.Functions)
	other := NewReport("google", nil)
	assert.NotEqual(t, report.ID, other.ID)
}

func TestFilter(t *testing.T) {
	results := []*Result{{Name: "a", QualityScore: 40}, {Name: "b", QualityScore: 80}}
	assert.Len(t, Filter(results, 0), 2)
	filtered := Filter(results, 50)
	require.Len(t, filtered, 1)
	assert.Equal(t, "b", filtered[0].Name)
}

func TestCounters_Snapshot(t *testing.T) {
	counters := NewCounters()
	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counters.AddAnalyzed(2)
			counters.AddFunction()
			counters.AddClass()
			counters.AddPatterns(3)
			counters.AddExample()
		}()
	}
	wg.Wait()
	assert.Equal(t, map[string]int{
		"total_analyzed":     100,
		"functions_analyzed": 50,
		"classes_analyzed":   50,
		"patterns_detected":  150,
		"examples_generated": 50,
	}, counters.Snapshot())
}

func TestResult_Map(t *testing.T) {
	result := &Result{
		Kind:         KindFunction,
		Name:         "load",
		Path:         "app.py",
		Line:         3,
		Docstring:    "Load.",
		Style:        "google",
		QualityScore: 85,
		Confidence:   80,
		Metrics:      &info.Metrics{Complexity: 12, QualityScore: 85},
		Suggestions:  []*Suggestion{{Category: CategoryComplexity, Severity: SeverityWarning, Message: "High", Line: 3}},
		Patterns:     []string{"factory"},
	}
	aMap := result.Map()
	assert.Equal(t, "function", aMap["element_type"])
	assert.Equal(t, 3, aMap["line_number"])
	metrics, ok := aMap["metrics"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "High", metrics["complexity_level"])
	assert.Equal(t, "B", metrics["quality_grade"])
	suggestions, ok := aMap["suggestions"].([]interface{})
	require.True(t, ok)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "warning", suggestions[0].(map[string]interface{})["severity"])
	_, hasExample := aMap["example"]
	assert.False(t, hasExample)
}
