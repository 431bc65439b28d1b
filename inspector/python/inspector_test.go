package python

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspector_Parse(t *testing.T) {
	src := `@cache
async def fetch(url: str, retries=3) -> bytes:
    """Fetch url."""
    return url and retries and url
`
	module, err := NewInspector().Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	require.NotNil(t, module.Root)
	assert.Equal(t, KindModule, module.Root.Kind)
	require.Len(t, module.Root.Children, 1)

	decorated := module.Root.Children[0]
	assert.Equal(t, KindDecorated, decorated.Kind)
	fn, decorators := decorated.Definition()
	require.NotNil(t, fn)
	assert.Equal(t, KindFunction, fn.Kind)
	assert.True(t, fn.Async)
	assert.Equal(t, "fetch", fn.Name())
	assert.Equal(t, 2, fn.Start.Line)
	assert.Equal(t, 4, fn.End.Line)
	require.Len(t, decorators, 1)
	require.Len(t, decorators[0].Children, 1)
	assert.Equal(t, "cache", decorators[0].Children[0].Text())
	assert.Equal(t, "bytes", fn.Field("return_type").Text())

	body := fn.Body()
	require.Len(t, body, 2)
	assert.Equal(t, KindExpressionStatement, body[0].Kind)
	require.Len(t, body[0].Children, 1)
	assert.True(t, body[0].Children[0].IsLiteralString())
	assert.Equal(t, "Fetch url.", body[0].Children[0].StringValue())

	var booleans []*Node
	fn.Walk(func(node *Node) bool {
		if node.Kind == KindBoolean {
			booleans = append(booleans, node)
		}
		return true
	})
	require.NotEmpty(t, booleans)
	assert.Equal(t, "and", booleans[0].Operator)
	assert.Len(t, booleans[0].Operands(), 3)
}

func TestInspector_ParseSyntaxError(t *testing.T) {
	var testCases = []struct {
		description string
		src         string
		line        int
	}{
		{description: "unclosed parameters", src: "def broken(:\n    pass\n", line: 1},
		{description: "missing colon", src: "if True\n    pass\n", line: 1},
	}
	for _, testCase := range testCases {
		_, err := NewInspector().Parse(context.Background(), []byte(testCase.src))
		require.Error(t, err, testCase.description)
		var syntaxErr *SyntaxError
		require.True(t, errors.As(err, &syntaxErr), testCase.description)
		assert.Equal(t, testCase.line, syntaxErr.Line, testCase.description)
		assert.NotEmpty(t, syntaxErr.Message, testCase.description)
		assert.True(t, utf8.ValidString(syntaxErr.Message), testCase.description)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	actual := truncate(strings.Repeat("é", 25), 20)
	assert.True(t, utf8.ValidString(actual))
	assert.Equal(t, strings.Repeat("é", 20)+"...", actual)
}

func TestInspector_ParseTrailingComments(t *testing.T) {
	var testCases = []struct {
		description string
		src         string
		endLine     int
	}{
		{description: "function", src: "def f(x):\n    y = x\n    return y\n    # first\n    # second\n", endLine: 3},
		{description: "class", src: "class A:\n    a = 1\n    # trailing\n", endLine: 2},
		{description: "nested block", src: "def f(x):\n    if x:\n        return 1\n        # inner\n    # outer\n", endLine: 3},
		{description: "inner comment kept", src: "def f(x):\n    # lead\n    return x\n", endLine: 3},
	}
	for _, testCase := range testCases {
		module, err := NewInspector().Parse(context.Background(), []byte(testCase.src))
		require.NoError(t, err, testCase.description)
		require.NotEmpty(t, module.Root.Children, testCase.description)
		assert.Equal(t, testCase.endLine, module.Root.Children[0].End.Line, testCase.description)
	}
}

func TestNode_IsLiteralString(t *testing.T) {
	var testCases = []struct {
		description string
		src         string
		literal     bool
		value       string
	}{
		{description: "plain", src: `"abc"`, literal: true, value: "abc"},
		{description: "triple", src: `'''multi'''`, literal: true, value: "multi"},
		{description: "raw", src: `r"raw"`, literal: true, value: "raw"},
		{description: "interpolated", src: `f"x{y}"`, literal: false},
		{description: "bytes", src: `b"raw"`, literal: false},
		{description: "raw bytes", src: `Rb"raw"`, literal: false},
		{description: "concatenated", src: `"a" "b"`, literal: true, value: "ab"},
	}
	for _, testCase := range testCases {
		module, err := NewInspector().Parse(context.Background(), []byte(testCase.src+"\n"))
		require.NoError(t, err, testCase.description)
		require.Len(t, module.Root.Children, 1, testCase.description)
		statement := module.Root.Children[0]
		require.Len(t, statement.Children, 1, testCase.description)
		expr := statement.Children[0]
		assert.Equal(t, testCase.literal, expr.IsLiteralString(), testCase.description)
		if testCase.literal {
			assert.Equal(t, testCase.value, expr.StringValue(), testCase.description)
		}
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "function", KindOf("function_definition").String())
	assert.Equal(t, KindExcept, KindOf("except_group_clause"))
	assert.Equal(t, KindOther, KindOf("list_comprehension"))
	assert.True(t, KindWith.IsBranch())
	assert.False(t, KindElse.IsBranch())
}
