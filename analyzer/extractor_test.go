package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/docgen/inspector/info"
	"github.com/viant/docgen/inspector/python"
)

func parseDefinition(t *testing.T, src string) (*python.Node, []*python.Node) {
	t.Helper()
	module, err := python.NewInspector().Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	require.NotEmpty(t, module.Root.Children)
	definition, decorators := module.Root.Children[0].Definition()
	require.NotNil(t, definition)
	return definition, decorators
}

func TestExtractFunction(t *testing.T) {
	var testCases = []struct {
		description string
		src         string
		expect      *info.Function
	}{
		{
			description: "defaults matched from the end",
			src:         "def f(a, b, c=10, d=20):\n    pass\n",
			expect: &info.Function{
				Name: "f",
				Parameters: []*info.Parameter{
					{Name: "a", Description: "A"},
					{Name: "b", Description: "B"},
					{Name: "c", Default: "10", Description: "C"},
					{Name: "d", Default: "20", Description: "D"},
				},
				Location: info.Location{Line: 1, EndLine: 2},
			},
		},
		{
			description: "method with keyword only parameters",
			src: `def save(self, path: str, *args, force: bool = False, **kwargs) -> None:
    """Save state."""
    pass
`,
			expect: &info.Function{
				Name: "save",
				Parameters: []*info.Parameter{
					{Name: "path", Type: "str", Description: "Path to path"},
					{Name: "force", Type: "bool", Default: "False", Description: "Force", KeywordOnly: true},
				},
				ReturnType:   "None",
				Docstring:    "Save state.",
				HasDocstring: true,
				IsMethod:     true,
				Location:     info.Location{Line: 1, EndLine: 3},
			},
		},
		{
			description: "decorated async property",
			src: `@property
@app.route("/users")
async def current_user(cls, user_id: int = 0):
    raise ValueError("missing")
`,
			expect: &info.Function{
				Name: "current_user",
				Parameters: []*info.Parameter{
					{Name: "user_id", Type: "int", Default: "0", Description: "Unique identifier for user id"},
				},
				Decorators: []string{"property", `app.route("/users")`},
				Raises:     []string{"ValueError"},
				IsAsync:    true,
				IsMethod:   true,
				IsProperty: true,
				Location:   info.Location{Line: 3, EndLine: 4},
			},
		},
	}
	for _, testCase := range testCases {
		node, decorators := parseDefinition(t, testCase.src)
		actual := ExtractFunction(node, decorators)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestAssignDefaults(t *testing.T) {
	params := []*info.Parameter{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}}
	assignDefaults(params, []string{"10", "20"})
	var defaults []string
	for _, param := range params {
		defaults = append(defaults, param.Default)
	}
	assert.Equal(t, []string{"", "", "10", "20"}, defaults)
}

func TestRaisedErrors(t *testing.T) {
	var testCases = []struct {
		description string
		src         string
		expect      []string
	}{
		{
			description: "bare raise ignored",
			src: `def f(x):
    if not x:
        raise ValueError("empty")
    try:
        pass
    except KeyError:
        raise
`,
			expect: []string{"ValueError"},
		},
		{
			description: "distinct names with cause",
			src: `def f(x):
    try:
        pass
    except OSError as exc:
        raise ParseError("bad") from exc
    raise ParseError
    raise errors.Timeout()
`,
			expect: []string{"ParseError", "errors.Timeout"},
		},
		{
			description: "no raise",
			src:         "def f():\n    return 1\n",
		},
	}
	for _, testCase := range testCases {
		node, _ := parseDefinition(t, testCase.src)
		assert.EqualValues(t, testCase.expect, raisedErrors(node), testCase.description)
	}
}

func TestExistingDocstring(t *testing.T) {
	var testCases = []struct {
		description string
		src         string
		has         bool
		expect      string
	}{
		{description: "triple quoted", src: "def f():\n    \"\"\"Do it.\"\"\"\n", has: true, expect: "Do it."},
		{description: "empty literal", src: "def f():\n    ''\n", has: true},
		{description: "after comment", src: "def f():\n    # note\n    'Doc.'\n", has: true, expect: "Doc."},
		{description: "interpolated", src: "def f(x):\n    f\"doc {x}\"\n"},
		{description: "bytes literal", src: "def f():\n    b\"Doc.\"\n"},
		{description: "not first", src: "def f():\n    x = 1\n    'late'\n"},
		{description: "assignment", src: "def f():\n    doc = 'x'\n"},
	}
	for _, testCase := range testCases {
		node, _ := parseDefinition(t, testCase.src)
		actual, has := existingDocstring(node)
		assert.Equal(t, testCase.has, has, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestExtractClass(t *testing.T) {
	src := `@dataclass(frozen=True)
class Point(Base, Mixin, metaclass=ABCMeta):
    """Point on a plane."""
    x: int = 0
    a = b = 1
    x = 2
    self_ref: "Point"

    def norm(self):
        total = 0
        return total

    @staticmethod
    def origin():
        return Point()
`
	node, decorators := parseDefinition(t, src)
	actual := ExtractClass(node, decorators)
	assert.EqualValues(t, &info.Class{
		Name:         "Point",
		Bases:        []string{"Base", "Mixin"},
		Methods:      []string{"norm", "origin"},
		Attributes:   []string{"x", "a", "b", "self_ref"},
		Decorators:   []string{"dataclass(frozen=True)"},
		Docstring:    "Point on a plane.",
		HasDocstring: true,
		Location:     info.Location{Line: 2, EndLine: 15},
	}, actual)
}
