package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunctionMetrics(t *testing.T) {
	var testCases = []struct {
		description string
		src         string
		complexity  int
		returns     int
		parameters  int
		lines       int
		typeHints   bool
	}{
		{
			description: "straight line",
			src:         "def f():\n    pass\n",
			complexity:  1,
			lines:       2,
		},
		{
			description: "two ifs and a while",
			src: `def f(x, y):
    if x:
        return 1
    if y:
        return 2
    while x:
        x -= 1
    return 0
`,
			complexity: 4,
			returns:    3,
			parameters: 2,
			lines:      8,
		},
		{
			description: "elif for except with",
			src: `def f(items):
    for item in items:
        if item:
            pass
        elif not item:
            pass
        else:
            pass
    try:
        with open("x") as fh:
            pass
    except OSError:
        pass
    finally:
        pass
`,
			complexity: 6,
			parameters: 1,
			lines:      15,
		},
		{
			description: "flattened boolean chain",
			src:         "def f(a, b, c):\n    return a and b and c\n",
			complexity:  3,
			returns:     1,
			parameters:  3,
			lines:       2,
		},
		{
			description: "nested booleans accumulate",
			src:         "def f(a, b, c, d):\n    return (a or b) and (c or d)\n",
			complexity:  4,
			returns:     1,
			parameters:  4,
			lines:       2,
		},
		{
			description: "mixed operators",
			src:         "def f(a, b, c):\n    return a and b or c\n",
			complexity:  3,
			returns:     1,
			parameters:  3,
			lines:       2,
		},
		{
			description: "comprehension and lambda not counted",
			src:         "def f(xs):\n    key = lambda x: x\n    return [x for x in xs if x]\n",
			complexity:  1,
			returns:     1,
			parameters:  1,
			lines:       3,
		},
		{
			description: "raw parameter count includes self",
			src:         "def f(self, a: int, *args, b=1, **kwargs):\n    pass\n",
			complexity:  1,
			parameters:  3,
			lines:       2,
			typeHints:   true,
		},
		{
			description: "trailing comments excluded",
			src:         "def f(x):\n    y = x\n    return y\n    # first\n    # second\n",
			complexity:  1,
			returns:     1,
			parameters:  1,
			lines:       3,
		},
		{
			description: "return annotation only",
			src:         "def f() -> int:\n    return 1\n",
			complexity:  1,
			returns:     1,
			lines:       2,
			typeHints:   true,
		},
	}
	for _, testCase := range testCases {
		node, _ := parseDefinition(t, testCase.src)
		metrics := FunctionMetrics(node)
		assert.Equal(t, testCase.complexity, metrics.Complexity, testCase.description)
		assert.GreaterOrEqual(t, metrics.Complexity, 1, testCase.description)
		assert.Equal(t, testCase.returns, metrics.Returns, testCase.description)
		assert.Equal(t, testCase.parameters, metrics.Parameters, testCase.description)
		assert.Equal(t, testCase.lines, metrics.Lines, testCase.description)
		assert.Equal(t, testCase.typeHints, metrics.HasTypeHints, testCase.description)
		assert.GreaterOrEqual(t, metrics.Maintainability, 0.0, testCase.description)
		assert.LessOrEqual(t, metrics.Maintainability, 100.0, testCase.description)
		assert.Zero(t, metrics.QualityScore, testCase.description)
	}
}

func TestFunctionMetrics_Maintainability(t *testing.T) {
	node, _ := parseDefinition(t, "def f(a, b, c):\n    return a and b and c\n")
	metrics := FunctionMetrics(node)
	assert.EqualValues(t, 90, metrics.Maintainability)
}

func TestClassMetrics(t *testing.T) {
	var testCases = []struct {
		description string
		src         string
		complexity  int
		methods     int
		lines       int
	}{
		{
			description: "no methods",
			src:         "class Empty:\n    pass\n",
			complexity:  1,
			lines:       2,
		},
		{
			description: "truncated average",
			src: `class Service:
    def a(self):
        pass

    def b(self, x):
        if x:
            return 1
        return 2

    def c(self, x):
        if x:
            pass
        elif x is None:
            pass
`,
			complexity: 2,
			methods:    3,
			lines:      14,
		},
		{
			description: "trailing comment excluded",
			src:         "class A:\n    a = 1\n    # trailing\n",
			complexity:  1,
			lines:       2,
		},
	}
	for _, testCase := range testCases {
		node, _ := parseDefinition(t, testCase.src)
		metrics := ClassMetrics(node)
		assert.Equal(t, testCase.complexity, metrics.Complexity, testCase.description)
		assert.Equal(t, testCase.methods, metrics.Parameters, testCase.description)
		assert.Equal(t, testCase.lines, metrics.Lines, testCase.description)
		assert.False(t, metrics.HasTypeHints, testCase.description)
	}
}
