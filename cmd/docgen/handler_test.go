package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `def add(a: int, b: int) -> int:
    """Add two numbers."""
    return a + b


def fetch(url, retries=3):
    while retries:
        retries -= 1
    return url
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	handler := New()
	out := new(bytes.Buffer)
	handler.rootCmd.SetOut(out)
	handler.rootCmd.SetErr(new(bytes.Buffer))
	err := handler.Execute(args...)
	return out.String(), err
}

func writeSample(t *testing.T) string {
	t.Helper()
	location := filepath.Join(t.TempDir(), "sample.py")
	require.NoError(t, os.WriteFile(location, []byte(sample), 0o644))
	return location
}

func TestHandler_Analyze(t *testing.T) {
	location := writeSample(t)
	var testCases = []struct {
		description string
		args        []string
		expect      int
	}{
		{description: "all results", args: []string{"analyze", location, "--format", "json"}, expect: 2},
		{description: "min quality filter", args: []string{"analyze", location, "-f", "json", "--min-quality", "95"}, expect: 1},
		{description: "minimal preset", args: []string{"analyze", location, "-f", "json", "--preset", "minimal"}, expect: 2},
	}
	for _, testCase := range testCases {
		output, err := execute(t, testCase.args...)
		require.NoError(t, err, testCase.description)
		var document map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(output), &document), testCase.description)
		assert.EqualValues(t, testCase.expect, document["total_results"], testCase.description)
	}
}

func TestHandler_AnalyzeOutput(t *testing.T) {
	location := writeSample(t)
	target := filepath.Join(t.TempDir(), "report.md")
	output, err := execute(t, "analyze", location, "--format", "markdown", "--output", target, "--style", "sphinx")
	require.NoError(t, err)
	assert.Empty(t, output)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## fetch (function)")
	assert.Contains(t, string(data), ":param url: Url")
}

func TestHandler_AnalyzeErrors(t *testing.T) {
	location := writeSample(t)
	var testCases = []struct {
		description string
		args        []string
	}{
		{description: "invalid style", args: []string{"analyze", location, "--style", "javadoc"}},
		{description: "invalid format", args: []string{"analyze", location, "--format", "pdf"}},
		{description: "missing path", args: []string{"analyze"}},
		{description: "unknown preset", args: []string{"analyze", location, "--preset", "strict"}},
	}
	for _, testCase := range testCases {
		_, err := execute(t, testCase.args...)
		assert.Error(t, err, testCase.description)
	}
}

func TestHandler_Info(t *testing.T) {
	output, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "docgen "+Version+"\n", output)

	output, err = execute(t, "styles")
	require.NoError(t, err)
	assert.Contains(t, output, "google\n------\nCalculate total.")
	assert.Contains(t, output, ":raises ValueError: If the provided value is invalid")
	assert.Contains(t, output, "Parameters\n----------\nitems : list")

	output, err = execute(t, "presets")
	require.NoError(t, err)
	for _, name := range []string{"minimal", "standard", "comprehensive", "production"} {
		assert.Contains(t, output, name)
	}
}

func TestHandler_AnalyzeRepository(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	gitConfig := "[remote \"origin\"]\n\turl = git@github.com:acme/tools.git\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git", "config"), []byte(gitConfig), 0o644))
	location := filepath.Join(root, "sample.py")
	require.NoError(t, os.WriteFile(location, []byte(sample), 0o644))

	output, err := execute(t, "analyze", location, "--format", "json")
	require.NoError(t, err)
	var document map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &document))
	project, ok := document["project"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "git@github.com:acme/tools.git", project["origin"])
	assert.Equal(t, "tools", project["name"])
	assert.Equal(t, "git", project["type"])
}
