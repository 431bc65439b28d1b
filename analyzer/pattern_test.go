package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/docgen/analyzer/info"
)

func TestFunctionPatterns(t *testing.T) {
	var testCases = []struct {
		description string
		src         string
		expect      []string
	}{
		{description: "plain", src: "def add(a, b):\n    return a + b\n"},
		{description: "factory keyword", src: "def make_user():\n    pass\n", expect: []string{info.Factory}},
		{description: "builder and factory", src: "def build_query():\n    pass\n", expect: []string{info.Builder, info.Factory}},
		{description: "wrapper", src: "def wrapper(fn):\n    return fn\n", expect: []string{info.Adapter, info.Decorator}},
		{description: "observer", src: "def notify_all(self):\n    pass\n", expect: []string{info.Observer}},
		{description: "property getter", src: "@property\ndef size(self):\n    return 1\n", expect: []string{info.PropertyGetter}},
		{description: "property setter", src: "@size.setter\ndef size(self, value):\n    pass\n", expect: []string{info.PropertySetter}},
		{description: "context manager", src: "def __exit__(self, *exc):\n    pass\n", expect: []string{info.ContextManager}},
		{description: "generator", src: "def items(self):\n    yield 1\n", expect: []string{info.Generator}},
		{description: "async", src: "async def load():\n    pass\n", expect: []string{info.AsyncFunction}},
		{
			description: "recursive",
			src:         "def fact(n):\n    if n <= 1:\n        return 1\n    return n * fact(n - 1)\n",
			expect:      []string{info.Recursive},
		},
		{description: "method call with same name is not recursion", src: "def fact(self):\n    return self.fact()\n"},
	}
	for _, testCase := range testCases {
		node, decorators := parseDefinition(t, testCase.src)
		fn := ExtractFunction(node, decorators)
		actual := FunctionPatterns(fn, node, []byte(testCase.src))
		assert.EqualValues(t, testCase.expect, actual.Sorted(), testCase.description)
	}
}

func TestClassPatterns(t *testing.T) {
	var testCases = []struct {
		description string
		src         string
		expect      []string
	}{
		{description: "plain", src: "class Point:\n    pass\n"},
		{description: "factory suffix", src: "class UserFactory:\n    pass\n", expect: []string{info.Factory}},
		{
			description: "singleton",
			src:         "class Base:\n    def __new__(cls):\n        return super().__new__(cls)\n",
			expect:      []string{info.Singleton},
		},
		{description: "singleton attribute", src: "class Config:\n    _instance = None\n", expect: []string{info.Singleton}},
		{
			description: "builder",
			src:         "class Query:\n    def build(self):\n        return self\n",
			expect:      []string{info.Builder},
		},
		{
			description: "dataclass",
			src:         "@dataclasses.dataclass(frozen=True)\nclass Point:\n    x: int = 0\n",
			expect:      []string{info.Dataclass},
		},
		{
			description: "abstract",
			src:         "class Shape(ABC):\n    @abstractmethod\n    def area(self):\n        pass\n",
			expect:      []string{info.AbstractBaseClass},
		},
		{
			description: "abstract method only",
			src:         "class Shape:\n    @abc.abstractmethod\n    def area(self):\n        pass\n",
			expect:      []string{info.AbstractBaseClass},
		},
		{description: "mixin", src: "class JSONMixin:\n    pass\n", expect: []string{info.Mixin}},
	}
	for _, testCase := range testCases {
		node, decorators := parseDefinition(t, testCase.src)
		class := ExtractClass(node, decorators)
		actual := ClassPatterns(class, node, []byte(testCase.src))
		assert.EqualValues(t, testCase.expect, actual.Sorted(), testCase.description)
	}
}
