package docstring

import (
	"fmt"
	"strings"

	ainfo "github.com/viant/docgen/analyzer/info"
)

type prefixRule struct {
	prefixes []string
	template string
}

var summaryRules = []prefixRule{
	{prefixes: []string{"get_"}, template: "Get %s."},
	{prefixes: []string{"set_"}, template: "Set %s."},
	{prefixes: []string{"is_", "has_"}, template: "Check if %s."},
	{prefixes: []string{"create_", "make_"}, template: "Create %s."},
	{prefixes: []string{"calculate_", "compute_"}, template: "Calculate %s."},
	{prefixes: []string{"process_"}, template: "Process %s."},
	{prefixes: []string{"validate_"}, template: "Validate %s."},
}

// Summary returns one-line summary of an element; kind is "function" or "class"
func Summary(name, kind string, patterns ainfo.Patterns) string {
	readable := Readable(name)
	for _, rule := range summaryRules {
		for _, prefix := range rule.prefixes {
			if strings.HasPrefix(name, prefix) {
				word := strings.TrimSuffix(prefix, "_") + " "
				return fmt.Sprintf(rule.template, strings.TrimPrefix(readable, word))
			}
		}
	}
	if strings.HasPrefix(name, "_") {
		return "Internal helper for " + readable + "."
	}
	switch {
	case patterns.Has(ainfo.Factory):
		return "Factory " + kind + " for creating " + readable + " instances."
	case patterns.Has(ainfo.Singleton):
		return "Singleton " + kind + " ensuring single instance of " + readable + "."
	case patterns.Has(ainfo.Builder):
		return "Builder " + kind + " for constructing " + readable + " objects."
	}
	if kind == "class" {
		return name + " class implementation."
	}
	return Capitalize(strings.ReplaceAll(name, "_", " ")) + "."
}

// ParameterDescription returns a description derived from parameter name
func ParameterDescription(name string) string {
	readable := strings.ReplaceAll(name, "_", " ")
	switch {
	case strings.Contains(name, "file") || strings.Contains(name, "path"):
		return "Path to " + readable
	case strings.Contains(name, "count") || strings.Contains(name, "num"):
		return "Number of " + readable
	case strings.Contains(name, "name"):
		return "Name of " + readable
	case strings.Contains(name, "id"):
		return "Unique identifier for " + readable
	case strings.Contains(name, "flag") || strings.HasPrefix(name, "is_") || strings.HasPrefix(name, "has_"):
		return "Whether to " + readable
	case strings.Contains(name, "data"):
		return "Data for " + readable
	case strings.Contains(name, "config"):
		return "Configuration for " + readable
	}
	return Capitalize(readable)
}

// ReturnDescription returns a description of a function result
func ReturnDescription(name string) string {
	switch {
	case strings.HasPrefix(name, "get_"):
		return "The requested data or object"
	case strings.HasPrefix(name, "is_") || strings.HasPrefix(name, "has_"):
		return "True if condition is met, False otherwise"
	case strings.HasPrefix(name, "create_") || strings.HasPrefix(name, "make_"):
		return "The newly created object"
	case strings.HasPrefix(name, "calculate_") || strings.HasPrefix(name, "compute_"):
		return "The calculated result"
	case strings.HasPrefix(name, "process_"):
		return "The processed result"
	}
	return "Result of the operation"
}

var errorDescriptions = map[string]string{
	"ValueError":        "If the provided value is invalid",
	"TypeError":         "If the provided type is incorrect",
	"FileNotFoundError": "If the specified file does not exist",
	"KeyError":          "If the specified key is not found",
	"IndexError":        "If the index is out of range",
}

// ErrorDescription returns a description of a raised error
func ErrorDescription(name string) string {
	if description, ok := errorDescriptions[name]; ok {
		return description
	}
	return "If an error occurs during " + strings.ToLower(strings.ReplaceAll(name, "Error", ""))
}

// AttributeDescription returns a description of a class attribute
func AttributeDescription(name string) string {
	return Capitalize(strings.ReplaceAll(name, "_", " "))
}
