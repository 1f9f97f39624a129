package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("shows defaults", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config")
		env.contains(out, "log.enabled: true")
		env.contains(out, "limits.max_file_size: 104857600")
	})

	t.Run("get single value", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config", "log.enabled")
		env.equals(out, "true")
	})

	t.Run("set and get round trip", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config", "log.enabled", "false")
		env.contains(out, "log.enabled = false (global)")

		out = env.run("config", "log.enabled")
		env.equals(out, "false")
	})

	t.Run("local scope", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config", "--local", "limits.max_file_size", "1024")
		env.contains(out, "(local)")

		// Local config takes precedence on read
		out = env.run("config", "limits.max_file_size")
		env.equals(out, "1024")
	})

	t.Run("unknown key fails", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("config", "nope")
		if err == nil {
			t.Fatalf("expected failure, got: %s", out)
		}
		env.contains(out, "unknown config key")
	})

	t.Run("invalid value fails", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("config", "log.enabled", "maybe")
		if err == nil {
			t.Fatalf("expected failure, got: %s", out)
		}
		env.contains(out, "invalid config value")
	})

	t.Run("out-of-range value is rejected before saving", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("config", "limits.max_file_size", "99999999999999")
		if err == nil {
			t.Fatalf("expected failure, got: %s", out)
		}
		env.contains(out, "invalid config value")

		// The rejected value must not wedge subsequent commands.
		out = env.run("config", "limits.max_file_size")
		env.equals(out, "104857600")
	})
}

func TestConfig_LogEnabled(t *testing.T) {
	logDB := func(env *testEnv) string {
		return filepath.Join(env.home, ".sift", "log", "sift-log.db")
	}

	t.Run("audit log written by default", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.txt", "needle\n")

		env.run("search", "needle")

		_, err := os.Stat(logDB(env))
		assert.NoError(t, err)
	})

	t.Run("log.enabled false suppresses the audit log", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.txt", "needle\n")

		confDir := filepath.Join(env.home, ".sift")
		require.NoError(t, os.MkdirAll(confDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(confDir, "config.yaml"),
			[]byte("log:\n  enabled: false\n"), 0644))

		env.run("search", "needle")
		env.run("refactor", "needle", "thread")

		_, err := os.Stat(logDB(env))
		assert.True(t, os.IsNotExist(err), "no database should exist when logging is disabled")
	})
}
