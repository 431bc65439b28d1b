package analyzer

import (
	"strings"

	"github.com/viant/docgen/analyzer/info"
	source "github.com/viant/docgen/inspector/info"
)

const (
	exampleComplexity = 5
	exampleParameters = 3
)

// NeedsExample reports whether a usage example is synthesized for the function
func NeedsExample(fn *source.Function, metrics *info.Metrics) bool {
	return metrics.Complexity > exampleComplexity || len(fn.Parameters) > exampleParameters
}

// Example renders a doctest style usage example, parameters with defaults are skipped
func Example(fn *source.Function) string {
	if len(fn.Parameters) == 0 {
		return "    >>> " + fn.Name + "()\n    # Returns result"
	}
	var args []string
	for _, param := range fn.Parameters {
		if param.HasDefault() {
			continue
		}
		args = append(args, param.Name+"="+exampleValue(param))
	}
	call := fn.Name + "(" + strings.Join(args, ", ") + ")"
	if fn.IsAsync {
		return "    >>> await " + call + "\n    # Returns result"
	}
	return "    >>> result = " + call + "\n    >>> print(result)"
}

type valueRule struct {
	keywords []string
	value    string
}

var typeValues = []valueRule{
	{keywords: []string{"int"}, value: "42"},
	{keywords: []string{"float"}, value: "3.14"},
	{keywords: []string{"str"}, value: `"example"`},
	{keywords: []string{"bool"}, value: "True"},
	{keywords: []string{"list"}, value: "[]"},
	{keywords: []string{"dict"}, value: "{}"},
}

// nameValues are matched in order, an empty value quotes the parameter name
var nameValues = []valueRule{
	{keywords: []string{"count", "num", "id"}, value: "1"},
	{keywords: []string{"name", "text", "message", "title"}},
	{keywords: []string{"flag", "is_", "has_"}, value: "True"},
	{keywords: []string{"list", "items"}, value: "[]"},
	{keywords: []string{"dict", "map"}, value: "{}"},
}

func exampleValue(param *source.Parameter) string {
	if param.Type != "" {
		typeName := strings.ToLower(param.Type)
		for _, rule := range typeValues {
			if containsAny(typeName, rule.keywords) {
				return rule.value
			}
		}
	}
	name := strings.ToLower(param.Name)
	for _, rule := range nameValues {
		if !containsAny(name, rule.keywords) {
			continue
		}
		if rule.value == "" {
			return `"` + param.Name + `"`
		}
		return rule.value
	}
	return `"value"`
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
