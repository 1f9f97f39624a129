package diff_test

import (
	"strings"
	"testing"

	"github.com/jpl-au/sift/internal/diff"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	t.Run("changed line shows delete and insert", func(t *testing.T) {
		r := diff.Compute("const x = 1;\n", "let x = 1;\n", "a.js (old)", "a.js (new)")
		assert.Contains(t, r.Diff, "- const")
		assert.Contains(t, r.Diff, "+ let")
	})

	t.Run("identical content has no change markers", func(t *testing.T) {
		r := diff.Compute("same\n", "same\n", "old", "new")
		assert.NotContains(t, r.Diff, "- ")
		assert.NotContains(t, r.Diff, "+ ")
	})

	t.Run("long equal sections are collapsed", func(t *testing.T) {
		equal := strings.Repeat("line\n", 20)
		r := diff.Compute(equal+"old\n", equal+"new\n", "old", "new")
		assert.Contains(t, r.Diff, "  ...")
	})
}

func TestFormat(t *testing.T) {
	r := diff.Compute("a\n", "b\n", "before", "after")

	plain := r.Format(false)
	assert.True(t, strings.HasPrefix(plain, "--- before\n+++ after\n"))
	assert.NotContains(t, plain, "\033[")

	coloured := r.Format(true)
	assert.Contains(t, coloured, "\033[31m")
	assert.Contains(t, coloured, "\033[32m")
}
