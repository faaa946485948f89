package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineDiff(t *testing.T) {
	got := LineDiff("a\nb\nc\n", "a\nB\nc\nd\n")
	assert.Equal(t, "-b\n+B\n+d\n", got)
	assert.Empty(t, LineDiff("same\n", "same\n"))
}

func TestAssertGoldenWritesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "golden", "out.h")
	AssertGolden(t, path, []byte("#define X 1\n"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#define X 1\n", string(content))

	AssertGolden(t, path, []byte("#define X 1\n"))
}
