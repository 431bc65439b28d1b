package analyzer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/docgen"
	"github.com/viant/docgen/analyzer/docstring"
	"github.com/viant/docgen/inspector/python"
	"github.com/viant/docgen/inspector/repository"
)

// DefaultPath is used when source does not come from a file
const DefaultPath = "string_input.py"

// Analyzer synthesizes docstrings, metrics and suggestions for Python sources
type Analyzer struct {
	builder        *docstring.Builder
	inspector      *python.Inspector
	counters       *docgen.Counters
	logger         zerolog.Logger
	includeMethods bool
	fs             afs.Service
	finder         *repository.Finder
	workers        int
	failFast       bool
}

// New creates an analyzer
func New(options ...Option) *Analyzer {
	ret := &Analyzer{
		builder:   docstring.NewBuilder(docstring.Google),
		inspector: python.NewInspector(),
		counters:  docgen.NewCounters(),
		logger:    zerolog.Nop(),
		fs:        afs.New(),
		workers:   4,
	}
	for _, option := range options {
		option(ret)
	}
	if ret.finder == nil {
		ret.finder = repository.NewFinder(ret.fs)
	}
	return ret
}

// Counters returns session counters
func (a *Analyzer) Counters() *docgen.Counters {
	return a.counters
}

// Style returns docstring style
func (a *Analyzer) Style() docstring.Style {
	return a.builder.Style()
}

// element represents a definition selected for analysis
type element struct {
	node       *python.Node
	decorators []*python.Node
	inClass    bool
}

// Analyze analyzes a single unit of Python source, elements are returned in source order
func (a *Analyzer) Analyze(ctx context.Context, path string, src []byte) ([]*docgen.Result, error) {
	if path == "" {
		path = DefaultPath
	}
	module, err := a.inspector.Parse(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	var results []*docgen.Result
	for _, elem := range a.elements(module.Root) {
		switch elem.node.Kind {
		case python.KindClass:
			results = append(results, a.analyzeClass(elem, path, src))
		case python.KindFunction:
			results = append(results, a.analyzeFunction(elem, path, src))
		}
	}
	a.counters.AddAnalyzed(len(results))
	a.logger.Debug().Str("path", path).Int("elements", len(results)).Msg("analyzed source")
	return results, nil
}

// elements returns classes at any depth and functions not enclosed by a class in pre-order;
// direct methods are included when configured
func (a *Analyzer) elements(root *python.Node) []*element {
	var ret []*element
	var walk func(node *python.Node, inClass, classBody bool)
	walk = func(node *python.Node, inClass, classBody bool) {
		for _, child := range node.Children {
			definition, decorators := child.Definition()
			if definition == nil {
				continue
			}
			switch definition.Kind {
			case python.KindClass:
				ret = append(ret, &element{node: definition, decorators: decorators})
				walk(definition.Field("body"), true, true)
			case python.KindFunction:
				if !inClass || (a.includeMethods && classBody) {
					ret = append(ret, &element{node: definition, decorators: decorators, inClass: inClass})
				}
				walk(definition.Field("body"), inClass, false)
			default:
				walk(child, inClass, false)
			}
		}
	}
	walk(root, false, false)
	return ret
}

func (a *Analyzer) analyzeFunction(elem *element, path string, src []byte) *docgen.Result {
	fn := ExtractFunction(elem.node, elem.decorators)
	metrics := FunctionMetrics(elem.node)
	patterns := FunctionPatterns(fn, elem.node, src)
	example := ""
	if NeedsExample(fn, metrics) {
		example = Example(fn)
		a.counters.AddExample()
	}
	metrics.QualityScore = FunctionQuality(fn, metrics)
	kind := docgen.KindFunction
	if fn.IsMethod || elem.inClass {
		kind = docgen.KindMethod
	}
	a.counters.AddFunction()
	a.counters.AddPatterns(len(patterns))
	return &docgen.Result{
		Kind:         kind,
		Name:         fn.Name,
		Path:         path,
		Line:         fn.Location.Line,
		Docstring:    a.builder.Function(fn, metrics, patterns, example),
		Style:        string(a.builder.Style()),
		QualityScore: metrics.QualityScore,
		Confidence:   Confidence(fn.HasDocstring, metrics, patterns),
		Metrics:      metrics,
		Suggestions:  FunctionSuggestions(fn, metrics),
		Patterns:     patterns.Sorted(),
		HasDocstring: fn.HasDocstring,
		Example:      example,
	}
}

func (a *Analyzer) analyzeClass(elem *element, path string, src []byte) *docgen.Result {
	class := ExtractClass(elem.node, elem.decorators)
	metrics := ClassMetrics(elem.node)
	patterns := ClassPatterns(class, elem.node, src)
	metrics.QualityScore = ClassQuality(class)
	a.counters.AddClass()
	a.counters.AddPatterns(len(patterns))
	return &docgen.Result{
		Kind:         docgen.KindClass,
		Name:         class.Name,
		Path:         path,
		Line:         class.Location.Line,
		Docstring:    a.builder.Class(class, patterns),
		Style:        string(a.builder.Style()),
		QualityScore: metrics.QualityScore,
		Confidence:   Confidence(class.HasDocstring, metrics, patterns),
		Metrics:      metrics,
		Suggestions:  ClassSuggestions(class),
		Patterns:     patterns.Sorted(),
		HasDocstring: class.HasDocstring,
	}
}
