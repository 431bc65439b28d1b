package info

// Class represents a class description
type Class struct {
	Name         string   `json:"name" yaml:"name"`
	Bases        []string `json:"bases,omitempty" yaml:"bases,omitempty"`
	Methods      []string `json:"methods,omitempty" yaml:"methods,omitempty"`
	Attributes   []string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Decorators   []string `json:"decorators,omitempty" yaml:"decorators,omitempty"`
	Docstring    string   `json:"docstring,omitempty" yaml:"docstring,omitempty"`
	HasDocstring bool     `json:"hasDocstring,omitempty" yaml:"hasDocstring,omitempty"`
	Location     Location `json:"location" yaml:"location"`
}

// HasMethod returns true if class declares method
func (c *Class) HasMethod(name string) bool {
	for _, method := range c.Methods {
		if method == name {
			return true
		}
	}
	return false
}
