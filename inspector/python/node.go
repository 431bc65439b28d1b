package python

import "strings"

// Position represents a 1-based line and 0-based column
type Position struct {
	Line   int
	Column int
}

// Node represents a named syntax node of a parsed Python source
type Node struct {
	Kind     Kind
	Type     string
	Start    Position
	End      Position
	Children []*Node
	// Operator holds the boolean operator ("and", "or") of a KindBoolean node
	Operator string
	// Async is set for async def, async for and async with
	Async  bool
	fields map[string]*Node
	text   string
	field  string
}

// Text returns the verbatim source text of the node
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.text
}

// Field returns the child stored under grammar field name, or nil
func (n *Node) Field(name string) *Node {
	if n == nil || n.fields == nil {
		return nil
	}
	return n.fields[name]
}

// FieldName returns the grammar field name the node occupies within its parent
func (n *Node) FieldName() string {
	return n.field
}

// Walk visits the node and its descendants in pre-order, descending only when fn returns true
func (n *Node) Walk(fn func(node *Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Any reports whether any node of the subtree, including n, satisfies fn
func (n *Node) Any(fn func(node *Node) bool) bool {
	found := false
	n.Walk(func(node *Node) bool {
		if found {
			return false
		}
		if fn(node) {
			found = true
			return false
		}
		return true
	})
	return found
}

// ChildrenOf returns direct children of the given kind
func (n *Node) ChildrenOf(kind Kind) []*Node {
	if n == nil {
		return nil
	}
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// Operands returns operands of a flattened boolean expression
func (n *Node) Operands() []*Node {
	if n == nil || n.Kind != KindBoolean {
		return nil
	}
	return n.Children
}

// Definition unwraps decorated definition returning the function or class node and its decorators
func (n *Node) Definition() (*Node, []*Node) {
	if n == nil {
		return nil, nil
	}
	if n.Kind != KindDecorated {
		return n, nil
	}
	return n.Field("definition"), n.ChildrenOf(KindDecorator)
}

// Name returns the text of the name field
func (n *Node) Name() string {
	return n.Field("name").Text()
}

// Body returns statements of the body block
func (n *Node) Body() []*Node {
	body := n.Field("body")
	if body == nil {
		return nil
	}
	return body.Children
}

// IsLiteralString reports whether the node is a plain (non-interpolated, non-bytes) string literal,
// or implicit concatenation of such literals
func (n *Node) IsLiteralString() bool {
	switch n.Kind {
	case KindString:
		if stringPrefix(n.text, 'f') || stringPrefix(n.text, 'b') {
			return false
		}
		return len(n.ChildrenOf(KindInterpolation)) == 0
	case KindConcatenatedString:
		for _, part := range n.Children {
			if !part.IsLiteralString() {
				return false
			}
		}
		return len(n.Children) > 0
	default:
		return false
	}
}

// StringValue returns literal content of a string node without prefix and quotes
func (n *Node) StringValue() string {
	switch n.Kind {
	case KindString:
		return unquote(n.text)
	case KindConcatenatedString:
		builder := strings.Builder{}
		for _, part := range n.Children {
			builder.WriteString(part.StringValue())
		}
		return builder.String()
	default:
		return ""
	}
}

func stringPrefix(text string, flag byte) bool {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '"' || c == '\'' {
			return false
		}
		if c|0x20 == flag {
			return true
		}
	}
	return false
}

func unquote(text string) string {
	start := strings.IndexAny(text, `"'`)
	if start == -1 {
		return text
	}
	body := text[start:]
	for _, quote := range []string{`"""`, `'''`, `"`, `'`} {
		if len(body) >= 2*len(quote) && strings.HasPrefix(body, quote) && strings.HasSuffix(body, quote) {
			return body[len(quote) : len(body)-len(quote)]
		}
	}
	return body
}
