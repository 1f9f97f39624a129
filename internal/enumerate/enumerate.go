// Package enumerate resolves file-selection patterns into concrete file lists.
//
// Three forms are accepted: no pattern (everything under the root), a plain
// directory name (everything under that directory), or a glob. Globbing uses
// doublestar, which extends filepath.Match with ** for any path segments and
// {a,b} brace alternation for multiple extensions.
package enumerate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultIgnores are directory names always skipped when enumerating the
// whole tree: version-control metadata, dependency cache, build output.
// Treated as fixed data; never mutated at runtime.
var DefaultIgnores = []string{".git", "node_modules", "dist"}

// Files resolves pattern into an ordered list of file paths relative to root.
// Directories are never returned. A pattern that matches nothing yields an
// empty list, not an error; a malformed glob is an error.
func Files(root, pattern string) ([]string, error) {
	if pattern == "" {
		return walkAll(root)
	}

	// A bare directory name means "everything under it, recursively".
	if !strings.ContainsAny(pattern, "*?[{") {
		dir := strings.TrimSuffix(filepath.ToSlash(pattern), "/")
		if info, err := os.Stat(filepath.Join(root, dir)); err == nil && info.IsDir() {
			if dir == "." {
				pattern = "**"
			} else {
				pattern = dir + "/**"
			}
		}
	}

	var files []string
	err := doublestar.GlobWalk(os.DirFS(root), filepath.ToSlash(pattern),
		func(path string, d fs.DirEntry) error {
			if d.Type().IsRegular() {
				files = append(files, path)
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	return files, nil
}

// walkAll enumerates every regular file under root in lexical order,
// skipping the DefaultIgnores directories.
func walkAll(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && slices.Contains(DefaultIgnores, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}
