package python

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Module represents parsed Python source
type Module struct {
	Root   *Node
	Source []byte
}

// Inspector parses Python source into the closed syntax model
type Inspector struct{}

// NewInspector creates a Python inspector
func NewInspector() *Inspector {
	return &Inspector{}
}

// Parse parses Python source, returning *SyntaxError when source is malformed
func (i *Inspector) Parse(ctx context.Context, src []byte) (*Module, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxErrorOf(root, src)
	}
	return &Module{Root: convert(root, src, ""), Source: src}, nil
}

func convert(node *sitter.Node, src []byte, field string) *Node {
	start := node.StartPoint()
	result := &Node{
		Kind:  KindOf(node.Type()),
		Type:  node.Type(),
		Start: Position{Line: int(start.Row) + 1, Column: int(start.Column)},
		End:   endOf(node),
		text:  node.Content(src),
		field: field,
	}
	var last *Position
	trailing := false
	count := int(node.ChildCount())
	for idx := 0; idx < count; idx++ {
		child := node.Child(idx)
		if child == nil {
			continue
		}
		fieldName := node.FieldNameForChild(idx)
		if !child.IsNamed() {
			switch child.Type() {
			case "async":
				result.Async = true
			case "and", "or":
				result.Operator = child.Type()
			}
			end := endOf(child)
			last, trailing = &end, false
			continue
		}
		if child.Type() == "comment" {
			trailing = true
			continue
		}
		converted := convert(child, src, fieldName)
		last, trailing = &converted.End, converted.End != endOf(child)
		if fieldName != "" {
			if result.fields == nil {
				result.fields = map[string]*Node{}
			}
			if _, ok := result.fields[fieldName]; !ok {
				result.fields[fieldName] = converted
			}
		}
		result.Children = append(result.Children, converted)
	}
	// comments closing a block belong to the block in the grammar but not to its span
	if trailing && last != nil {
		result.End = *last
	}
	if result.Kind == KindBoolean {
		flattenBoolean(result)
	}
	return result
}

func endOf(node *sitter.Node) Position {
	start, end := node.StartPoint(), node.EndPoint()
	if end.Column == 0 && end.Row > start.Row {
		return Position{Line: int(end.Row), Column: 0}
	}
	return Position{Line: int(end.Row) + 1, Column: int(end.Column)}
}

// flattenBoolean merges same-operator chains (a and b and c) into a single operand list,
// parenthesized or mixed-operator operands remain nested expressions
func flattenBoolean(node *Node) {
	var operands []*Node
	for _, child := range node.Children {
		if child.Kind == KindBoolean && child.Operator == node.Operator {
			operands = append(operands, child.Children...)
			continue
		}
		operands = append(operands, child)
	}
	node.Children = operands
}
