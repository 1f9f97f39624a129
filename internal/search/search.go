// Package search implements regex content search across a file corpus.
//
// Each file is read whole and scanned under multiline semantics; an
// optional context pattern restricts results to occurrences whose
// surrounding lines also match. Read-only: search never writes.
package search

import (
	"errors"
	"io/fs"

	"github.com/jpl-au/sift/internal/enumerate"
	"github.com/jpl-au/sift/internal/lines"
	"github.com/jpl-au/sift/internal/match"
)

// Options configures a search operation.
type Options struct {
	Pattern     string // regex to locate (required)
	Context     string // secondary pattern tested against each match's context window
	Files       string // file-selection expression (empty = whole tree)
	MaxFileSize int64  // fatal read error above this size (0 = unlimited)
}

// Result holds all accepted matches within one file.
type Result struct {
	Path    string         `json:"path"`
	Matches []match.Record `json:"matches"`
	Lines   []int          `json:"lines"`
	Grouped []string       `json:"grouped_lines"`
}

// Run searches every enumerated file under root for opts.Pattern and
// returns one Result per file with at least one accepted occurrence,
// in enumeration order. Files that vanished between enumeration and
// read are skipped silently; any other read failure aborts the call.
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
	for _, path := range files {
		_, recs, err := match.ScanFile(root, path, opts.MaxFileSize, re, ctxRe)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if len(recs) == 0 {
			continue
		}

		nums := lineNumbers(recs)
		results = append(results, Result{
			Path:    path,
			Matches: recs,
			Lines:   nums,
			Grouped: lines.Collapse(nums),
		})
	}
	return results, nil
}

// lineNumbers returns the unique line numbers of records in ascending
// order. Records are already in document order, so dedupe suffices.
func lineNumbers(recs []match.Record) []int {
	nums := make([]int, 0, len(recs))
	for _, r := range recs {
		if len(nums) > 0 && nums[len(nums)-1] == r.Line {
			continue
		}
		nums = append(nums, r.Line)
	}
	return nums
}
