package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"
)

// AssertGolden compares actual with the file at goldenPath. A missing
// golden file is written instead, so it can be committed.
func AssertGolden(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	if _, err := os.Stat(goldenPath); os.IsNotExist(err) {
		require.NoError(t, os.MkdirAll(filepath.Dir(goldenPath), 0o755))
		require.NoError(t, os.WriteFile(goldenPath, actual, 0o644))
		t.Logf("golden file written: %s (commit it)", goldenPath)
		return
	}
	expected, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	if string(expected) == string(actual) {
		return
	}
	t.Errorf("golden mismatch for %s (delete it and re-run to regenerate):\n%s",
		goldenPath, LineDiff(string(expected), string(actual)))
}

// LineDiff renders a line-level diff of want and got, prefixing removed
// lines with "-" and added lines with "+". Unchanged lines are omitted.
func LineDiff(want string, got string) string {
	dmp := diffmatchpatch.New()
	wantChars, gotChars, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(wantChars, gotChars, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		prefix := ""
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix + strings.TrimSuffix(line, "\n") + "\n")
		}
	}
	return out.String()
}
