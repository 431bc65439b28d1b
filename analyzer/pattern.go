package analyzer

import (
	"strings"

	"github.com/viant/docgen/analyzer/info"
	source "github.com/viant/docgen/inspector/info"
	"github.com/viant/docgen/inspector/python"
)

type keywordRule struct {
	pattern  string
	keywords []string
}

var nameKeywords = []keywordRule{
	{pattern: info.Factory, keywords: []string{"create", "build", "make", "get_instance"}},
	{pattern: info.Singleton, keywords: []string{"__new__", "_instance", "get_instance"}},
	{pattern: info.Decorator, keywords: []string{"wrapper", "wrapped", "decorator"}},
	{pattern: info.Observer, keywords: []string{"notify", "subscribe", "update", "observer"}},
	{pattern: info.Strategy, keywords: []string{"strategy", "algorithm", "execute"}},
	{pattern: info.Builder, keywords: []string{"builder", "build", "construct"}},
	{pattern: info.Adapter, keywords: []string{"adapt", "adapter", "wrapper"}},
}

// FunctionPatterns classifies a function by name keywords and shape; src is reserved for textual rules
func FunctionPatterns(fn *source.Function, node *python.Node, src []byte) info.Patterns {
	ret := info.NewPatterns()
	name := strings.ToLower(fn.Name)
	for _, rule := range nameKeywords {
		for _, keyword := range rule.keywords {
			if strings.Contains(name, keyword) {
				ret.Add(rule.pattern)
				break
			}
		}
	}
	for _, decorator := range fn.Decorators {
		if decorator == "property" {
			ret.Add(info.PropertyGetter)
		}
		if strings.HasSuffix(decorator, ".setter") {
			ret.Add(info.PropertySetter)
		}
	}
	if fn.Name == "__enter__" || fn.Name == "__exit__" {
		ret.Add(info.ContextManager)
	}
	if node.Any(func(n *python.Node) bool { return n.Kind == python.KindYield }) {
		ret.Add(info.Generator)
	}
	if fn.IsAsync {
		ret.Add(info.AsyncFunction)
	}
	if isRecursive(fn.Name, node) {
		ret.Add(info.Recursive)
	}
	return ret
}

// isRecursive reports a direct call to a plain identifier equal to the function name
func isRecursive(name string, node *python.Node) bool {
	return node.Any(func(n *python.Node) bool {
		if n.Kind != python.KindCall {
			return false
		}
		callee := n.Field("function")
		return callee != nil && callee.Kind == python.KindIdentifier && callee.Text() == name
	})
}

// ClassPatterns classifies a class by name and declared members; src is reserved for textual rules
func ClassPatterns(class *source.Class, node *python.Node, src []byte) info.Patterns {
	ret := info.NewPatterns()
	if class.HasMethod("__new__") || anyContains(class.Attributes, "instance") {
		ret.Add(info.Singleton)
	}
	if strings.HasSuffix(class.Name, "Factory") || anyContains(class.Methods, "create") {
		ret.Add(info.Factory)
	}
	if strings.HasSuffix(class.Name, "Builder") || class.HasMethod("build") {
		ret.Add(info.Builder)
	}
	for _, decorator := range class.Decorators {
		if isDataclass(decorator) {
			ret.Add(info.Dataclass)
		}
	}
	if isAbstract(class, node) {
		ret.Add(info.AbstractBaseClass)
	}
	if strings.HasSuffix(class.Name, "Mixin") {
		ret.Add(info.Mixin)
	}
	return ret
}

func isAbstract(class *source.Class, node *python.Node) bool {
	for _, base := range class.Bases {
		if strings.Contains(base, "ABC") {
			return true
		}
	}
	for _, statement := range node.Body() {
		definition, decorators := statement.Definition()
		if definition == nil || definition.Kind != python.KindFunction {
			continue
		}
		for _, decorator := range decoratorTexts(decorators) {
			if strings.Contains(decorator, "abstractmethod") {
				return true
			}
		}
	}
	return false
}

// isDataclass matches dataclass and dataclasses.dataclass, with or without call arguments
func isDataclass(decorator string) bool {
	if idx := strings.Index(decorator, "("); idx != -1 {
		decorator = decorator[:idx]
	}
	decorator = strings.TrimSpace(decorator)
	return decorator == "dataclass" || strings.HasSuffix(decorator, ".dataclass")
}

func anyContains(names []string, keyword string) bool {
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), keyword) {
			return true
		}
	}
	return false
}
