package render

import (
	"fmt"

	"github.com/aymanbagabas/go-udiff"
)

// Diff returns a unified diff between two artifacts, or "" when they match.
func Diff(labelA, labelB, a, b string) string {
	if a == b {
		return ""
	}
	a, b = withNewline(a), withNewline(b)
	edits := udiff.Strings(a, b)
	unified, err := udiff.ToUnified(labelA, labelB, a, edits, 3)
	if err != nil {
		return fmt.Sprintf("--- %s\n+++ %s\n(diff generation failed)\n", labelA, labelB)
	}
	return unified
}

func withNewline(s string) string {
	if s == "" || s[len(s)-1] == '\n' {
		return s
	}
	return s + "\n"
}
