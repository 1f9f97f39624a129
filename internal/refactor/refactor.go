// Package refactor implements regex substitution across a file corpus.
//
// It runs the same scan and context-acceptance test as search, then
// rewrites each accepted occurrence by splicing the expanded replacement
// into the file content at the occurrence's byte span. Splicing by offset
// rather than substring replacement guarantees that context-rejected
// occurrences of identical text elsewhere in the file are never touched.
package refactor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jpl-au/sift/internal/diff"
	"github.com/jpl-au/sift/internal/enumerate"
	"github.com/jpl-au/sift/internal/match"
)

// Options configures a refactor operation.
type Options struct {
	Pattern     string // regex to locate (required)
	Replace     string // replacement template; $1, $2 reference capture groups
	Context     string // secondary pattern tested against each match's context window
	Files       string // file-selection expression (empty = whole tree)
	DryRun      bool   // compute and report without writing
	ComputeDiff bool   // populate Result.Diff with an old/new diff
	ColourDiff  bool   // render Result.Diff with ANSI colour (terminal output)
	MaxFileSize int64  // fatal read error above this size (0 = unlimited)

	// OnFile, when set, is invoked once per scanned file with the count
	// of files processed so far and the total. Used for CLI progress.
	OnFile func(done, total int)
}

// Match is one accepted occurrence together with its substitution.
type Match struct {
	match.Record
	Original string `json:"original"`
	Replaced string `json:"replaced"`
}

// Result describes the replacements made in one file. Only files with at
// least one accepted occurrence produce a Result.
type Result struct {
	Path         string  `json:"path"`
	Replacements int     `json:"replacements"`
	Matches      []Match `json:"matches"`
	Modified     bool    `json:"modified"`
	Diff         string  `json:"diff,omitempty"` // only when Options.ComputeDiff
}

// Run applies opts.Replace to every accepted occurrence of opts.Pattern
// under root and returns one Result per modified file, in enumeration
// order. Unless DryRun is set, modified files are rewritten in place via
// a temp file and rename. A write failure aborts remaining processing;
// earlier writes stay.
func Run(root string, opts Options) ([]Result, error) {
	re, ctxRe, err := match.CompilePair(opts.Pattern, opts.Context)
	if err != nil {
		return nil, err
	}

	files, err := enumerate.Files(root, opts.Files)
	if err != nil {
		return nil, err
	}

	var results []Result
	for i, path := range files {
		if opts.OnFile != nil {
			opts.OnFile(i+1, len(files))
		}

		content, recs, err := match.ScanFile(root, path, opts.MaxFileSize, re, ctxRe)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if len(recs) == 0 {
			continue
		}

		newContent, matches := substitute(re, content, opts.Replace, recs)

		if !opts.DryRun {
			if err := overwrite(filepath.Join(root, filepath.FromSlash(path)), newContent); err != nil {
				return results, fmt.Errorf("writing %s: %w", path, err)
			}
		}

		result := Result{
			Path:         path,
			Replacements: len(matches),
			Matches:      matches,
			Modified:     true,
		}
		if opts.ComputeDiff {
			result.Diff = diff.Compute(content, newContent, path+" (old)", path+" (new)").Format(opts.ColourDiff)
		}
		results = append(results, result)
	}
	return results, nil
}

// substitute rebuilds content with each accepted occurrence replaced by
// the expanded template. Records arrive in ascending span order, so the
// output is assembled in a single pass: copy up to the span, emit the
// replacement, continue after the span. Rejected occurrences fall inside
// the copied stretches untouched.
func substitute(re *regexp.Regexp, content, template string, recs []match.Record) (string, []Match) {
	var b strings.Builder
	matches := make([]Match, 0, len(recs))
	last := 0

	for _, r := range recs {
		start, end := r.Span()
		replaced := r.Expand(re, content, template)

		b.WriteString(content[last:start])
		b.WriteString(replaced)
		last = end

		matches = append(matches, Match{
			Record:   r,
			Original: r.Matched,
			Replaced: replaced,
		})
	}
	b.WriteString(content[last:])
	return b.String(), matches
}

// overwrite replaces the file at path with content, going through a temp
// file in the same directory and a rename so a failed write cannot leave
// a truncated file behind. The original mode is preserved.
func overwrite(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, info.Mode()); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
