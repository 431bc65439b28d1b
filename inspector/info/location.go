package info

// Location represents element span in the source, lines are 1-based and inclusive
type Location struct {
	Line    int `json:"line" yaml:"line"`
	EndLine int `json:"endLine" yaml:"endLine"`
	Column  int `json:"column,omitempty" yaml:"column,omitempty"`
}

// Lines returns inclusive line span
func (l Location) Lines() int {
	if l.EndLine < l.Line {
		return 1
	}
	return l.EndLine - l.Line + 1
}
