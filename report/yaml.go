package report

import (
	"fmt"

	"github.com/viant/docgen"
	"gopkg.in/yaml.v3"
)

// YAMLEmitter renders the report structure
type YAMLEmitter struct{}

func (e *YAMLEmitter) Emit(report *docgen.Report, options *Options) ([]byte, error) {
	data, err := yaml.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return data, nil
}
