// Package shared provides small helpers used by the cli and app packages.
package shared

import (
	"sort"
	"strings"
)

// SplitList splits a comma-separated value, trimming entries and dropping
// empty ones. Order is preserved.
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// FlattenList applies SplitList to every entry, so both repeated flags and
// comma-separated values are accepted.
func FlattenList(values []string) []string {
	var out []string
	for _, value := range values {
		out = append(out, SplitList(value)...)
	}
	return out
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// BaseName joins parts with underscores and replaces dots, so "gl", "4.5",
// "core" becomes "gl_4_5_core".
func BaseName(parts ...string) string {
	return strings.ReplaceAll(strings.Join(parts, "_"), ".", "_")
}
