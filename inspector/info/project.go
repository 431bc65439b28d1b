package info

// Project represents a detected project containing Python sources
type Project struct {
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
	Type         string `json:"type,omitempty" yaml:"type,omitempty"`
	RootPath     string `json:"rootPath,omitempty" yaml:"rootPath,omitempty"`
	RelativePath string `json:"relativePath,omitempty" yaml:"relativePath,omitempty"`
	Origin       string `json:"origin,omitempty" yaml:"origin,omitempty"`
}
