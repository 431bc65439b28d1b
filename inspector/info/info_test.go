package info

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	first, err := Fingerprint([]byte("def f():\n    pass\n"))
	require.NoError(t, err)
	second, err := Fingerprint([]byte("def f():\n    pass\n"))
	require.NoError(t, err)
	other, err := Fingerprint([]byte("def g():\n    pass\n"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestLocation_Lines(t *testing.T) {
	assert.Equal(t, 3, Location{Line: 2, EndLine: 4}.Lines())
	assert.Equal(t, 1, Location{Line: 5, EndLine: 5}.Lines())
	assert.Equal(t, 1, Location{Line: 5}.Lines())
}
