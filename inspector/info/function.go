package info

// Parameter represents a declared function parameter, empty strings mean absent
type Parameter struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Default     string `json:"default,omitempty" yaml:"default,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// KeywordOnly is set for parameters declared after * or *args
	KeywordOnly bool `json:"keywordOnly,omitempty" yaml:"keywordOnly,omitempty"`
}

// HasDefault returns true if parameter declares default value
func (p *Parameter) HasDefault() bool {
	return p.Default != ""
}

// Function represents a function or method description
type Function struct {
	Name         string       `json:"name" yaml:"name"`
	IsAsync      bool         `json:"isAsync,omitempty" yaml:"isAsync,omitempty"`
	IsMethod     bool         `json:"isMethod,omitempty" yaml:"isMethod,omitempty"`
	IsProperty   bool         `json:"isProperty,omitempty" yaml:"isProperty,omitempty"`
	Parameters   []*Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	ReturnType   string       `json:"returnType,omitempty" yaml:"returnType,omitempty"`
	Raises       []string     `json:"raises,omitempty" yaml:"raises,omitempty"`
	Decorators   []string     `json:"decorators,omitempty" yaml:"decorators,omitempty"`
	Docstring    string       `json:"docstring,omitempty" yaml:"docstring,omitempty"`
	HasDocstring bool         `json:"hasDocstring,omitempty" yaml:"hasDocstring,omitempty"`
	Location     Location     `json:"location" yaml:"location"`
}

// HasDecorator returns true if function carries decorator with the exact text
func (f *Function) HasDecorator(text string) bool {
	for _, decorator := range f.Decorators {
		if decorator == text {
			return true
		}
	}
	return false
}
