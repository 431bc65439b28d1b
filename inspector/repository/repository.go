package repository

import "github.com/viant/docgen/inspector/info"

// Repository represents a source repository containing the analyzed path
type Repository struct {
	Kind   string
	Root   string
	Origin string
	Info   *info.Project
}
