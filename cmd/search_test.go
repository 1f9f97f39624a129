package cmd

import (
	"strings"
	"testing"
)

const appJS = `function handleLogin(user) {
  return auth.login(user);
}

// helper
function handleLogout(user) {
  return auth.logout(user);
}
`

// Two occurrences of legacy_sdk, the second more than five lines away
// from the import block.
const mainGo = "import (\n \"legacy_sdk\"\n)\n\n\n\n\n\n\nconst legacy_sdk = 1\n"

func TestSearch(t *testing.T) {
	t.Run("reports collapsed line tokens per file", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("app.js", appJS)

		out := env.run("search", `function.*\(`)
		env.equals(out, "app.js: line: 1, line: 6")
	})

	t.Run("consecutive lines collapse into a range", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("list.txt", "item\nitem\nitem\nother\nitem\n")

		out := env.run("search", "item")
		env.equals(out, "list.txt: lines: 1-3, line: 5")
	})

	t.Run("no matches prints sentinel", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.txt", "nothing here\n")

		out := env.run("search", "ZZZ_NOT_PRESENT")
		env.equals(out, "No matches found for the given pattern")
	})

	t.Run("matches flag shows line content", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("app.js", appJS)

		out := env.run("search", `function (\w+)\(`, "--matches", "--groups")
		env.contains(out, "line 1:")
		env.contains(out, `groups: "handleLogin"`)
	})

	t.Run("context restricts matches to nearby pattern", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("main.go", mainGo)

		out := env.run("search", "legacy_sdk", "--context", "import")
		env.contains(out, "main.go: line: 2")
		if strings.Contains(out, "line: 10") {
			t.Errorf("context filter accepted the far occurrence: %s", out)
		}
	})

	t.Run("files flag restricts the scan", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("src/a.go", "// TODO fix\n")
		env.write("docs/b.md", "TODO write docs\n")

		out := env.run("search", "TODO", "--files", "**/*.go")
		env.contains(out, "src/a.go")
		if strings.Contains(out, "docs/b.md") {
			t.Errorf("glob restriction leaked: %s", out)
		}
	})

	t.Run("json output", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.txt", "hit\n")

		out := env.run("search", "hit", "--output", "json")
		env.contains(out, `"path":"a.txt"`)
		env.contains(out, `"lines":[1]`)
	})

	t.Run("invalid pattern fails", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.txt", "x\n")

		out, err := env.runErr("search", "[bad")
		if err == nil {
			t.Fatalf("expected failure, got: %s", out)
		}
		env.contains(out, "invalid pattern")
	})
}

func TestSearch_RootFlag(t *testing.T) {
	env := newTestEnv(t)
	env.write("nested/deep.txt", "needle\n")

	out := env.run("search", "needle", "--root", env.dir)
	env.contains(out, "nested/deep.txt")
}
