package info

import (
	"sort"
	"strings"
)

// Pattern labels
const (
	Factory           = "factory"
	Singleton         = "singleton"
	Decorator         = "decorator"
	Observer          = "observer"
	Strategy          = "strategy"
	Builder           = "builder"
	Adapter           = "adapter"
	PropertyGetter    = "property_getter"
	PropertySetter    = "property_setter"
	ContextManager    = "context_manager"
	Generator         = "generator"
	AsyncFunction     = "async_function"
	Recursive         = "recursive"
	Dataclass         = "dataclass"
	AbstractBaseClass = "abstract_base_class"
	Mixin             = "mixin"
)

// Patterns represents a deduplicated set of pattern labels
type Patterns map[string]bool

// NewPatterns creates a pattern set
func NewPatterns(labels ...string) Patterns {
	ret := Patterns{}
	for _, label := range labels {
		ret.Add(label)
	}
	return ret
}

// Add adds label to the set
func (p Patterns) Add(label string) {
	p[label] = true
}

// Has returns true if label is present
func (p Patterns) Has(label string) bool {
	return p[label]
}

// Sorted returns labels in display order
func (p Patterns) Sorted() []string {
	if len(p) == 0 {
		return nil
	}
	ret := make([]string, 0, len(p))
	for label := range p {
		ret = append(ret, label)
	}
	sort.Strings(ret)
	return ret
}

// Titles returns display labels, underscores replaced and words capitalized
func (p Patterns) Titles() []string {
	labels := p.Sorted()
	for i, label := range labels {
		words := strings.Split(label, "_")
		for j, word := range words {
			if word != "" {
				words[j] = strings.ToUpper(word[:1]) + word[1:]
			}
		}
		labels[i] = strings.Join(words, " ")
	}
	return labels
}
