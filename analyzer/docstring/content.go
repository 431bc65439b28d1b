package docstring

import (
	"fmt"
	"strings"

	ainfo "github.com/viant/docgen/analyzer/info"
	"github.com/viant/docgen/inspector/info"
)

const (
	maxAttributes = 5
	asyncNote     = "This is an asynchronous function. Use with await."
)

// Field represents a single documented entry
type Field struct {
	Name        string
	Type        string
	Description string
}

// Content represents dialect independent documentation content
type Content struct {
	Summary    string
	Class      bool
	Patterns   []string
	Warning    string
	Parameters []*Field
	Returns    *Field
	Raises     []*Field
	Note       string
	Bases      []string
	Attributes []*Field
	Example    string
}

// FunctionContent decides what documents a function
func FunctionContent(fn *info.Function, metrics *ainfo.Metrics, patterns ainfo.Patterns) *Content {
	ret := &Content{
		Summary:  Summary(fn.Name, "function", patterns),
		Patterns: patterns.Titles(),
	}
	if metrics != nil && metrics.Complexity > ainfo.ModerateComplexity {
		ret.Warning = fmt.Sprintf("High complexity (CC=%d). Consider refactoring.", metrics.Complexity)
	}
	for _, param := range fn.Parameters {
		description := param.Description
		if description == "" {
			description = ParameterDescription(param.Name)
		}
		if param.Default != "" {
			description += " Defaults to " + param.Default + "."
		}
		ret.Parameters = append(ret.Parameters, &Field{Name: param.Name, Type: param.Type, Description: description})
	}
	if fn.ReturnType != "" || (metrics != nil && metrics.Returns > 0) {
		returnType := fn.ReturnType
		if returnType == "" {
			returnType = "Any"
		}
		ret.Returns = &Field{Type: returnType, Description: ReturnDescription(fn.Name)}
	}
	for _, name := range fn.Raises {
		ret.Raises = append(ret.Raises, &Field{Name: name, Description: ErrorDescription(name)})
	}
	if fn.IsAsync {
		ret.Note = asyncNote
	}
	return ret
}

// ClassContent decides what documents a class
func ClassContent(class *info.Class, patterns ainfo.Patterns) *Content {
	ret := &Content{
		Summary:  Summary(class.Name, "class", patterns),
		Class:    true,
		Patterns: patterns.Titles(),
		Bases:    class.Bases,
	}
	attributes := class.Attributes
	if len(attributes) > maxAttributes {
		attributes = attributes[:maxAttributes]
	}
	for _, attribute := range attributes {
		ret.Attributes = append(ret.Attributes, &Field{Name: attribute, Description: AttributeDescription(attribute)})
	}
	return ret
}

// Render renders content in the supplied dialect
func (c *Content) Render(dialect *Dialect) string {
	lines := []string{c.Summary, ""}
	section := func(sectionLines []string) {
		if len(sectionLines) == 0 {
			return
		}
		lines = append(lines, sectionLines...)
		lines = append(lines, "")
	}
	if len(c.Patterns) > 0 {
		title := SectionPatterns
		if c.Class {
			title = SectionClassPatterns
		}
		section(dialect.inline(title, strings.Join(c.Patterns, ", ")))
	}
	if c.Warning != "" {
		section(dialect.inline(SectionWarning, c.Warning))
	}
	section(dialect.fields(SectionParameters, c.Parameters))
	if c.Returns != nil {
		section(dialect.fields(SectionReturns, []*Field{c.Returns}))
	}
	section(dialect.fields(SectionRaises, c.Raises))
	if c.Note != "" {
		section(dialect.block(SectionNote, c.Note))
	}
	if len(c.Bases) > 0 {
		section(dialect.inline(SectionBases, strings.Join(c.Bases, ", ")))
	}
	section(dialect.fields(SectionAttributes, c.Attributes))
	text := strings.TrimRight(strings.Join(lines, "\n"), " \t\n")
	if c.Example != "" {
		text += "\n\nExample:\n" + c.Example
	}
	return text
}
