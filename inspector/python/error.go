package python

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// SyntaxError represents malformed Python source
type SyntaxError struct {
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Line, e.Column)
}

func syntaxErrorOf(root *sitter.Node, src []byte) *SyntaxError {
	node := firstError(root)
	if node == nil {
		return &SyntaxError{Line: 1, Column: 0, Message: "invalid syntax"}
	}
	point := node.StartPoint()
	ret := &SyntaxError{Line: int(point.Row) + 1, Column: int(point.Column) + 1}
	if node.IsMissing() {
		ret.Message = fmt.Sprintf("invalid syntax: missing %q", node.Type())
		return ret
	}
	ret.Message = fmt.Sprintf("invalid syntax near %q", truncate(node.Content(src), 20))
	return ret
}

func firstError(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	if !node.HasError() {
		return nil
	}
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		if found := firstError(node.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
