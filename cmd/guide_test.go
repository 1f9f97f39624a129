package cmd

import "testing"

func TestGuide(t *testing.T) {
	t.Run("default page", func(t *testing.T) {
		env := newTestEnv(t)

		// Not a TTY, so the raw markdown is emitted
		out := env.run("guide")
		env.contains(out, "# sift")
		env.contains(out, "refactor")
	})

	t.Run("named topic", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("guide", "patterns")
		env.contains(out, "RE2")
	})

	t.Run("unknown topic lists available", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("guide", "nope")
		if err == nil {
			t.Fatalf("expected failure, got: %s", out)
		}
		env.contains(out, "not found")
		env.contains(out, "search")
	})
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version")
	env.contains(out, "Build Tag:")
	env.contains(out, "Platform:")

	out = env.run("version", "--output", "json")
	env.contains(out, `"build_tag"`)
}
