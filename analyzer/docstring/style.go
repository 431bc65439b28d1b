package docstring

import (
	"fmt"
	"strings"
)

// Style represents a docstring dialect name
type Style string

const (
	Google Style = "google"
	Numpy  Style = "numpy"
	Sphinx Style = "sphinx"
)

// Styles returns supported styles
func Styles() []Style {
	return []Style{Google, Numpy, Sphinx}
}

// ParseStyle returns style for the supplied name
func ParseStyle(name string) (Style, error) {
	style := Style(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := dialects[style]; ok {
		return style, nil
	}
	return "", fmt.Errorf("unsupported docstring style: %q, expected one of: google, numpy, sphinx", name)
}
