package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/viant/docgen"
)

//go:embed template.html
var htmlTemplate string

var htmlReport = template.Must(template.New("report").Funcs(template.FuncMap{
	"qualityClass": func(score float64) string {
		if score >= 70 {
			return "high-quality"
		}
		return "low-quality"
	},
}).Parse(htmlTemplate))

// HTMLEmitter renders a standalone HTML page
type HTMLEmitter struct{}

type htmlData struct {
	Report      *docgen.Report
	Generated   string
	ShowMetrics bool
}

func (e *HTMLEmitter) Emit(report *docgen.Report, options *Options) ([]byte, error) {
	data := &htmlData{Report: report, Generated: report.Timestamp.Format(timeLayout), ShowMetrics: options.ShowMetrics}
	buffer := new(bytes.Buffer)
	if err := htmlReport.Execute(buffer, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buffer.Bytes(), nil
}
