package analyzer

import (
	"strings"

	"github.com/viant/docgen/analyzer/docstring"
	"github.com/viant/docgen/inspector/info"
	"github.com/viant/docgen/inspector/python"
)

// arguments represents a declared parameter list, positional defaults are kept apart
// and matched from the end of the positional list
type arguments struct {
	positional  []*info.Parameter
	defaults    []string
	keywordOnly []*info.Parameter
}

// declared returns raw number of named parameters including self or cls
func (a *arguments) declared() int {
	return len(a.positional) + len(a.keywordOnly)
}

func (a *arguments) hasTypeHints() bool {
	for _, param := range a.positional {
		if param.Type != "" {
			return true
		}
	}
	for _, param := range a.keywordOnly {
		if param.Type != "" {
			return true
		}
	}
	return false
}

func parseArguments(params *python.Node) *arguments {
	ret := &arguments{}
	if params == nil {
		return ret
	}
	keywordOnly := false
	for _, child := range params.Children {
		var param *info.Parameter
		defaultValue := ""
		switch child.Kind {
		case python.KindIdentifier:
			param = &info.Parameter{Name: child.Text()}
		case python.KindTypedParameter:
			inner := firstNonType(child)
			if inner == nil {
				continue
			}
			switch inner.Kind {
			case python.KindListSplat:
				keywordOnly = true
				continue
			case python.KindDictSplat:
				continue
			}
			param = &info.Parameter{Name: inner.Text(), Type: child.Field("type").Text()}
		case python.KindDefaultParameter:
			param = &info.Parameter{Name: child.Name()}
			defaultValue = child.Field("value").Text()
		case python.KindTypedDefaultParameter:
			param = &info.Parameter{Name: child.Name(), Type: child.Field("type").Text()}
			defaultValue = child.Field("value").Text()
		case python.KindListSplat, python.KindKeywordSeparator:
			keywordOnly = true
			continue
		default:
			continue
		}
		if keywordOnly {
			param.Default = defaultValue
			param.KeywordOnly = true
			ret.keywordOnly = append(ret.keywordOnly, param)
			continue
		}
		ret.positional = append(ret.positional, param)
		if defaultValue != "" {
			ret.defaults = append(ret.defaults, defaultValue)
		}
	}
	assignDefaults(ret.positional, ret.defaults)
	return ret
}

// assignDefaults matches defaults positionally from the end: N parameters with K defaults
// assign defaults to positions N-K..N-1
func assignDefaults(params []*info.Parameter, defaults []string) {
	offset := len(params) - len(defaults)
	for i, value := range defaults {
		if idx := offset + i; idx >= 0 {
			params[idx].Default = value
		}
	}
}

func firstNonType(node *python.Node) *python.Node {
	for _, child := range node.Children {
		if child.FieldName() != "type" {
			return child
		}
	}
	return nil
}

func isBinding(name string) bool {
	return name == "self" || name == "cls"
}

// ExtractFunction builds function description from a function definition node
func ExtractFunction(node *python.Node, decorators []*python.Node) *info.Function {
	ret := &info.Function{
		Name:       node.Name(),
		IsAsync:    node.Async,
		ReturnType: node.Field("return_type").Text(),
		Decorators: decoratorTexts(decorators),
		Location:   location(node),
	}
	args := parseArguments(node.Field("parameters"))
	positional := args.positional
	if len(positional) > 0 && isBinding(positional[0].Name) {
		ret.IsMethod = true
		positional = positional[1:]
	}
	for _, param := range append(positional, args.keywordOnly...) {
		param.Description = docstring.ParameterDescription(param.Name)
		ret.Parameters = append(ret.Parameters, param)
	}
	ret.IsProperty = ret.HasDecorator("property")
	ret.Raises = raisedErrors(node)
	ret.Docstring, ret.HasDocstring = existingDocstring(node)
	return ret
}

// ExtractClass builds class description from a class definition node
func ExtractClass(node *python.Node, decorators []*python.Node) *info.Class {
	ret := &info.Class{
		Name:       node.Name(),
		Decorators: decoratorTexts(decorators),
		Location:   location(node),
	}
	if superclasses := node.Field("superclasses"); superclasses != nil {
		for _, base := range superclasses.Children {
			if base.Kind == python.KindKeywordArgument || base.Type == "dictionary_splat" {
				continue
			}
			ret.Bases = append(ret.Bases, base.Text())
		}
	}
	seen := map[string]bool{}
	for _, statement := range node.Body() {
		definition, _ := statement.Definition()
		if definition != nil && definition.Kind == python.KindFunction {
			ret.Methods = append(ret.Methods, definition.Name())
			continue
		}
		if statement.Kind != python.KindExpressionStatement {
			continue
		}
		for _, expr := range statement.Children {
			for _, name := range assignedNames(expr) {
				if !seen[name] {
					seen[name] = true
					ret.Attributes = append(ret.Attributes, name)
				}
			}
		}
	}
	ret.Docstring, ret.HasDocstring = existingDocstring(node)
	return ret
}

// assignedNames returns simple names assigned by plain, annotated or chained assignment
func assignedNames(node *python.Node) []string {
	var ret []string
	for node != nil && node.Kind == python.KindAssignment {
		if left := node.Field("left"); left != nil && left.Kind == python.KindIdentifier {
			ret = append(ret, left.Text())
		}
		node = node.Field("right")
	}
	return ret
}

func decoratorTexts(decorators []*python.Node) []string {
	var ret []string
	for _, decorator := range decorators {
		if len(decorator.Children) > 0 {
			ret = append(ret, decorator.Children[0].Text())
			continue
		}
		ret = append(ret, strings.TrimSpace(strings.TrimPrefix(decorator.Text(), "@")))
	}
	return ret
}

// raisedErrors collects distinct raised names across the whole subtree, bare raise is ignored
func raisedErrors(node *python.Node) []string {
	var ret []string
	seen := map[string]bool{}
	node.Walk(func(n *python.Node) bool {
		if n.Kind != python.KindRaise {
			return true
		}
		for _, child := range n.Children {
			if child.FieldName() == "cause" {
				continue
			}
			name := child.Text()
			if idx := strings.Index(name, "("); idx != -1 {
				name = name[:idx]
			}
			name = strings.TrimSpace(name)
			if name != "" && !seen[name] {
				seen[name] = true
				ret = append(ret, name)
			}
			break
		}
		return true
	})
	return ret
}

func existingDocstring(node *python.Node) (string, bool) {
	body := node.Body()
	if len(body) == 0 {
		return "", false
	}
	first := body[0]
	if first.Kind != python.KindExpressionStatement || len(first.Children) != 1 {
		return "", false
	}
	if expr := first.Children[0]; expr.IsLiteralString() {
		return expr.StringValue(), true
	}
	return "", false
}

func location(node *python.Node) info.Location {
	return info.Location{Line: node.Start.Line, EndLine: node.End.Line, Column: node.Start.Column}
}
