// Package match implements the occurrence scanning shared by search and
// refactor: pattern compilation, per-file scanning, context-window
// filtering, and capture-group extraction.
//
// Patterns are compiled eagerly at call entry so a malformed expression
// fails the whole operation before any file is touched.
package match

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrBadPattern is returned when a search or context expression cannot be
// compiled.
var ErrBadPattern = errors.New("invalid pattern")

// ContextLines is how many lines before and after a matched line are
// included in the context window a context pattern is tested against.
const ContextLines = 5

// Record describes one accepted occurrence within a file.
type Record struct {
	Line    int       `json:"line"`             // 1-indexed line of the match start
	Text    string    `json:"text"`             // full source line containing the match start
	Matched string    `json:"matched"`          // exact matched text
	Groups  []*string `json:"groups,omitempty"` // capture groups in index order; nil entry = did not participate

	start    int // byte offset of the match within the content
	end      int
	submatch []int // raw submatch index pairs, kept for template expansion
}

// Span returns the byte offsets of the occurrence within the file content.
func (r Record) Span() (start, end int) { return r.start, r.end }

// Expand applies a positional replacement template ($1, $2, ...) to this
// occurrence, returning the substituted text for the matched span only.
func (r Record) Expand(re *regexp.Regexp, content, template string) string {
	return string(re.ExpandString(nil, template, content, r.submatch))
}

// Compile builds the regexp for a user-supplied pattern under multiline
// semantics: ^ and $ bind to line boundaries, and . does not cross
// newlines unless the pattern opts in (e.g. with (?s)). The role names
// the offending pattern in errors ("search", "context").
func Compile(role, pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?m)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s pattern %q: %v", ErrBadPattern, role, pattern, err)
	}
	return re, nil
}

// CompilePair compiles the search pattern and the optional context
// pattern (empty = no context filtering).
func CompilePair(search, context string) (re, contextRe *regexp.Regexp, err error) {
	re, err = Compile("search", search)
	if err != nil {
		return nil, nil, err
	}
	if context != "" {
		contextRe, err = Compile("context", context)
		if err != nil {
			return nil, nil, err
		}
	}
	return re, contextRe, nil
}

// ScanFile reads a file and scans it for accepted occurrences.
//
// A file that vanished between enumeration and read returns fs.ErrNotExist
// unwrapped, which callers skip silently. Any other read failure, including
// exceeding limit (0 = unlimited), is fatal and names the path.
func ScanFile(root, path string, limit int64, re, contextRe *regexp.Regexp) (string, []Record, error) {
	full := filepath.Join(root, filepath.FromSlash(path))

	if limit > 0 {
		info, err := os.Stat(full)
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, fs.ErrNotExist
		}
		if err == nil && info.Size() > limit {
			return "", nil, fmt.Errorf("reading %s: size %d exceeds limit of %d bytes", path, info.Size(), limit)
		}
	}

	data, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil, fs.ErrNotExist
	}
	if err != nil {
		return "", nil, fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(data)
	return content, Scan(re, contextRe, content), nil
}

// Scan finds all non-overlapping occurrences of re in content, in document
// order, keeping only those whose context window matches contextRe.
// A nil contextRe accepts every occurrence.
func Scan(re, contextRe *regexp.Regexp, content string) []Record {
	idxs := re.FindAllStringSubmatchIndex(content, -1)
	if len(idxs) == 0 {
		return nil
	}

	srcLines := strings.Split(content, "\n")
	records := make([]Record, 0, len(idxs))

	for _, idx := range idxs {
		start, end := idx[0], idx[1]
		line := strings.Count(content[:start], "\n") + 1
		matched := content[start:end]

		if contextRe != nil && !contextRe.MatchString(window(srcLines, line-1, matched)) {
			continue
		}

		records = append(records, Record{
			Line:     line,
			Text:     sourceLine(content, start),
			Matched:  matched,
			Groups:   captureGroups(content, idx),
			start:    start,
			end:      end,
			submatch: idx,
		})
	}
	return records
}

// window builds the context window for a match: up to ContextLines lines
// before the matched line, the matched text itself, and up to ContextLines
// lines after, joined by newlines.
func window(srcLines []string, lineIdx int, matched string) string {
	before := lineIdx - ContextLines
	if before < 0 {
		before = 0
	}
	after := lineIdx + 1 + ContextLines
	if after > len(srcLines) {
		after = len(srcLines)
	}

	parts := make([]string, 0, after-before+1)
	parts = append(parts, srcLines[before:lineIdx]...)
	parts = append(parts, matched)
	if lineIdx+1 < after {
		parts = append(parts, srcLines[lineIdx+1:after]...)
	}
	return strings.Join(parts, "\n")
}

// sourceLine returns the full line containing the byte offset start.
func sourceLine(content string, start int) string {
	ls := strings.LastIndexByte(content[:start], '\n') + 1
	le := strings.IndexByte(content[start:], '\n')
	if le < 0 {
		return content[ls:]
	}
	return content[ls : start+le]
}

// captureGroups extracts capture group values in index order. Groups that
// did not participate in the match are nil, preserving their position.
func captureGroups(content string, idx []int) []*string {
	n := len(idx)/2 - 1
	if n == 0 {
		return nil
	}
	gs := make([]*string, n)
	for i := 1; i <= n; i++ {
		s, e := idx[2*i], idx[2*i+1]
		if s < 0 {
			continue
		}
		v := content[s:e]
		gs[i-1] = &v
	}
	return gs
}
