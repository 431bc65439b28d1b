package docstring

import "strings"

// Section represents a documentation section
type Section int

const (
	SectionPatterns Section = iota
	SectionClassPatterns
	SectionWarning
	SectionParameters
	SectionReturns
	SectionRaises
	SectionNote
	SectionBases
	SectionAttributes
)

// Layout represents how entries of field sections are laid out
type Layout int

const (
	// LayoutIndented renders "name (type): description" under a section header
	LayoutIndented Layout = iota
	// LayoutStacked renders "name : type" followed by an indented description
	LayoutStacked
	// LayoutTagged renders reStructuredText field lists
	LayoutTagged
)

// Dialect describes layout tokens of a docstring style
type Dialect struct {
	Style  Style
	Titles map[Section]string
	// Underline draws a dash line under section titles instead of a trailing colon
	Underline bool
	Layout    Layout
	Indent    string
	// Tags holds field list tags of a tagged layout
	Tags map[Section]string
}

var dialects = map[Style]*Dialect{
	Google: {
		Style: Google,
		Titles: map[Section]string{
			SectionPatterns:      "Pattern",
			SectionClassPatterns: "Design Pattern",
			SectionWarning:       "Warning",
			SectionParameters:    "Args",
			SectionReturns:       "Returns",
			SectionRaises:        "Raises",
			SectionNote:          "Note",
			SectionBases:         "Inherits from",
			SectionAttributes:    "Attributes",
		},
		Layout: LayoutIndented,
		Indent: "    ",
	},
	Numpy: {
		Style: Numpy,
		Titles: map[Section]string{
			SectionPatterns:      "Patterns",
			SectionClassPatterns: "Design Patterns",
			SectionWarning:       "Warnings",
			SectionParameters:    "Parameters",
			SectionReturns:       "Returns",
			SectionRaises:        "Raises",
			SectionNote:          "Notes",
			SectionBases:         "Bases",
			SectionAttributes:    "Attributes",
		},
		Underline: true,
		Layout:    LayoutStacked,
		Indent:    "    ",
	},
	Sphinx: {
		Style: Sphinx,
		Titles: map[Section]string{
			SectionPatterns:      "Pattern",
			SectionClassPatterns: "Design Pattern",
			SectionWarning:       ".. warning::",
			SectionNote:          ".. note::",
			SectionBases:         "Inherits from",
		},
		Layout: LayoutTagged,
		Indent: "   ",
		Tags: map[Section]string{
			SectionParameters: "param",
			SectionReturns:    "return",
			SectionRaises:     "raises",
			SectionAttributes: "ivar",
		},
	},
}

// DialectOf returns dialect descriptor for the style, google is used for unknown styles
func DialectOf(style Style) *Dialect {
	if dialect, ok := dialects[style]; ok {
		return dialect
	}
	return dialects[Google]
}

func (d *Dialect) header(section Section) []string {
	title := d.Titles[section]
	if d.Underline {
		return []string{title, strings.Repeat("-", len(title))}
	}
	return []string{title + ":"}
}

func (d *Dialect) inline(section Section, text string) []string {
	title := d.Titles[section]
	switch {
	case d.Underline:
		return append(d.header(section), text)
	case strings.HasPrefix(title, ".."):
		return []string{title + " " + text}
	case d.Layout == LayoutTagged:
		return []string{":" + title + ": " + text}
	}
	return []string{title + ": " + text}
}

func (d *Dialect) block(section Section, text string) []string {
	switch {
	case d.Underline:
		return append(d.header(section), text)
	case d.Layout == LayoutTagged:
		return d.inline(section, text)
	}
	return append(d.header(section), d.Indent+text)
}

func (d *Dialect) fields(section Section, fields []*Field) []string {
	if len(fields) == 0 {
		return nil
	}
	var lines []string
	if d.Layout != LayoutTagged {
		lines = d.header(section)
	}
	for _, field := range fields {
		lines = append(lines, d.field(section, field)...)
	}
	return lines
}

func (d *Dialect) field(section Section, field *Field) []string {
	switch d.Layout {
	case LayoutStacked:
		head := field.Name
		if section == SectionReturns {
			head = field.Type
		} else if field.Type != "" {
			head += " : " + field.Type
		}
		return []string{head, d.Indent + field.Description}
	case LayoutTagged:
		tag := d.Tags[section]
		switch section {
		case SectionReturns:
			return []string{":" + tag + ": " + field.Description, ":rtype: " + field.Type}
		case SectionParameters:
			lines := []string{":" + tag + " " + field.Name + ": " + field.Description}
			if field.Type != "" {
				lines = append(lines, ":type "+field.Name+": "+field.Type)
			}
			return lines
		default:
			return []string{":" + tag + " " + field.Name + ": " + field.Description}
		}
	default:
		head := field.Name
		if section == SectionReturns {
			head = field.Type
		} else if field.Type != "" {
			head += " (" + field.Type + ")"
		}
		return []string{d.Indent + head + ": " + field.Description}
	}
}
