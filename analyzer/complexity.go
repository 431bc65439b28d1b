package analyzer

import (
	"github.com/viant/docgen/analyzer/info"
	"github.com/viant/docgen/inspector/python"
)

// FunctionMetrics computes complexity metrics of a function definition, quality score is left unset
func FunctionMetrics(node *python.Node) *info.Metrics {
	complexity, returns := controlFlow(node)
	args := parseArguments(node.Field("parameters"))
	lines := location(node).Lines()
	return &info.Metrics{
		Complexity:      complexity,
		Lines:           lines,
		Parameters:      args.declared(),
		Returns:         returns,
		HasTypeHints:    args.hasTypeHints() || node.Field("return_type") != nil,
		Maintainability: info.Clamp(100 - 3*float64(complexity) - 0.5*float64(lines)),
	}
}

// ClassMetrics computes complexity metrics of a class definition, complexity is the
// truncated average of its methods' complexity
func ClassMetrics(node *python.Node) *info.Metrics {
	methods := methodNodes(node)
	average := 1
	if len(methods) > 0 {
		total := 0
		for _, method := range methods {
			complexity, _ := controlFlow(method)
			total += complexity
		}
		average = total / len(methods)
	}
	lines := location(node).Lines()
	return &info.Metrics{
		Complexity:      average,
		Lines:           lines,
		Parameters:      len(methods),
		Maintainability: info.Clamp(100 - 2*float64(average) - 0.3*float64(lines)),
	}
}

// controlFlow returns cyclomatic complexity and return statement count of the whole subtree;
// nested boolean expressions accumulate additively
func controlFlow(node *python.Node) (complexity int, returns int) {
	complexity = 1
	node.Walk(func(n *python.Node) bool {
		switch {
		case n.Kind.IsBranch():
			complexity++
		case n.Kind == python.KindBoolean:
			if operands := len(n.Operands()); operands > 1 {
				complexity += operands - 1
			}
		case n.Kind == python.KindReturn:
			returns++
		}
		return true
	})
	return complexity, returns
}

// methodNodes returns function definitions declared directly in a class body
func methodNodes(class *python.Node) []*python.Node {
	var ret []*python.Node
	for _, statement := range class.Body() {
		if definition, _ := statement.Definition(); definition != nil && definition.Kind == python.KindFunction {
			ret = append(ret, definition)
		}
	}
	return ret
}
