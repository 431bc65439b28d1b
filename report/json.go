package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/viant/docgen"
)

// JSONEmitter renders results as plain maps with snake_case keys
type JSONEmitter struct{}

func (e *JSONEmitter) Emit(report *docgen.Report, options *Options) ([]byte, error) {
	results := make([]interface{}, 0, len(report.Results))
	for _, result := range report.Results {
		results = append(results, result.Map())
	}
	document := map[string]interface{}{
		"id":            report.ID,
		"timestamp":     report.Timestamp.Format(time.RFC3339),
		"style":         report.Style,
		"total_results": len(report.Results),
		"results":       results,
		"summary":       report.Summary,
	}
	if report.Project != nil {
		document["project"] = report.Project
	}
	if len(report.Stats) > 0 {
		document["statistics"] = report.Stats
	}
	if len(report.Failures) > 0 {
		document["failures"] = report.Failures
	}
	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return append(data, '\n'), nil
}
