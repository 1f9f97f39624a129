package cmd

import (
	"strings"
	"testing"
)

func TestRefactor(t *testing.T) {
	t.Run("replaces with capture group template", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.js", "const oldVariable = 1;\nconst other = 2;\n")

		out := env.run("refactor", `const (\w+) = `, "let $1 = ")
		env.contains(out, "a.js: 2 replacements")
		env.contains(out, "Total: 2 replacements across 1 file")

		got := env.read("a.js")
		env.contains(got, "let oldVariable = 1;")
		env.contains(got, "let other = 2;")
	})

	t.Run("dry run reports without writing", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.txt", "foo\n")

		out := env.run("refactor", "foo", "bar", "--dry-run")
		env.contains(out, "a.txt: 1 replacement (dry run)")
		env.contains(out, "Total: 1 replacement across 1 file (dry run)")
		env.equals(env.read("a.txt"), "foo")
	})

	t.Run("no matches prints sentinel", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.txt", "foo\n")

		out := env.run("refactor", "missing", "x")
		env.equals(out, "No matches found for the given pattern")
	})

	t.Run("context scopes the replacement", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("main.go", "import (\n \"legacy_sdk\"\n)\n\n\n\n\n\n\nconst legacy_sdk = 1\n")

		out := env.run("refactor", "legacy_sdk", "modern_sdk", "--context", "import")
		env.contains(out, "main.go: 1 replacement")

		got := env.read("main.go")
		env.contains(got, "\"modern_sdk\"")
		env.contains(got, "const legacy_sdk = 1")
	})

	t.Run("diff flag prints a unified diff", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.txt", "foo\n")

		out := env.run("refactor", "foo", "bar", "--dry-run", "--diff")
		env.contains(out, "--- a.txt (old)")
		env.contains(out, "+++ a.txt (new)")
	})

	t.Run("matches flag shows before and after", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.js", "const x = 1;\n")

		out := env.run("refactor", "const", "let", "--matches")
		env.contains(out, `"const" -> "let"`)
	})

	t.Run("json output", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.txt", "foo\n")

		out := env.run("refactor", "foo", "bar", "--output", "json")
		env.contains(out, `"path":"a.txt"`)
		env.contains(out, `"replacements":1`)
	})

	t.Run("invalid pattern leaves files untouched", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.txt", "foo\n")

		out, err := env.runErr("refactor", "[bad", "x")
		if err == nil {
			t.Fatalf("expected failure, got: %s", out)
		}
		env.contains(out, "invalid pattern")
		env.equals(env.read("a.txt"), "foo")
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.js", "const x = 1;\n")

		env.run("refactor", `const (\w+) = `, "let $1 = ")
		out := env.run("refactor", `const (\w+) = `, "let $1 = ")
		if !strings.Contains(out, "No matches found") {
			t.Errorf("second run should find nothing, got: %s", out)
		}
	})
}
