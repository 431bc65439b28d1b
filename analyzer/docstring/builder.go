package docstring

import (
	ainfo "github.com/viant/docgen/analyzer/info"
	"github.com/viant/docgen/inspector/info"
)

// Builder renders docstrings in a selected dialect
type Builder struct {
	dialect *Dialect
}

// NewBuilder creates a builder for the style
func NewBuilder(style Style) *Builder {
	return &Builder{dialect: DialectOf(style)}
}

// Style returns builder style
func (b *Builder) Style() Style {
	return b.dialect.Style
}

// Function renders function docstring, example is appended when not empty
func (b *Builder) Function(fn *info.Function, metrics *ainfo.Metrics, patterns ainfo.Patterns, example string) string {
	content := FunctionContent(fn, metrics, patterns)
	content.Example = example
	return content.Render(b.dialect)
}

// Class renders class docstring
func (b *Builder) Class(class *info.Class, patterns ainfo.Patterns) string {
	return ClassContent(class, patterns).Render(b.dialect)
}
