// Package report renders search and refactor results as human-readable
// text. Brief mode gives one line per file; detailed mode (opted into via
// the Options flags) adds per-match lines beneath each file.
package report

import (
	"fmt"
	"strings"

	"github.com/jpl-au/sift/internal/refactor"
	"github.com/jpl-au/sift/internal/search"
)

// NoMatches is rendered whenever there is nothing to report.
const NoMatches = "No matches found for the given pattern"

// Options selects the level of detail. Either detail flag switches the
// renderer from brief to detailed output. Earlier revisions accepted a
// bare boolean here as well; that overload is gone, Options is the only
// signature.
type Options struct {
	IncludeCaptureGroups bool // annotate matches with their capture group values
	IncludeMatchedText   bool // print the matched snippet instead of the source line
	DryRun               bool // refactor only: qualify counts with "(dry run)"
}

func (o Options) detailed() bool {
	return o.IncludeCaptureGroups || o.IncludeMatchedText
}

// FormatSearch renders search results. Brief mode prints each file path
// with its collapsed line ranges; detailed mode lists every match.
func FormatSearch(results []search.Result, opts Options) string {
	if len(results) == 0 {
		return NoMatches
	}

	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "%s: %s\n", r.Path, strings.Join(r.Grouped, ", "))
		if !opts.detailed() {
			continue
		}
		for _, m := range r.Matches {
			text := m.Text
			if opts.IncludeMatchedText {
				text = m.Matched
			}
			fmt.Fprintf(&b, "  line %d: %s\n", m.Line, text)
			writeGroups(&b, m.Groups, opts)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// FormatRefactor renders refactor results: per-file replacement counts,
// optional per-match before/after pairs, and an aggregate footer.
func FormatRefactor(results []refactor.Result, opts Options) string {
	if len(results) == 0 {
		return NoMatches
	}

	qualifier := ""
	if opts.DryRun {
		qualifier = " (dry run)"
	}

	var b strings.Builder
	total := 0
	for _, r := range results {
		total += r.Replacements
		fmt.Fprintf(&b, "%s: %s%s\n", r.Path, plural(r.Replacements, "replacement"), qualifier)
		if !opts.detailed() {
			continue
		}
		for _, m := range r.Matches {
			fmt.Fprintf(&b, "  line %d: %q -> %q\n", m.Line, m.Original, m.Replaced)
			writeGroups(&b, m.Groups, opts)
		}
	}
	fmt.Fprintf(&b, "\nTotal: %s across %s%s",
		plural(total, "replacement"), plural(len(results), "file"), qualifier)
	return b.String()
}

// writeGroups prints a nested capture-group annotation. Skipped unless
// requested and at least one group participated in the match.
func writeGroups(b *strings.Builder, groups []*string, opts Options) {
	if !opts.IncludeCaptureGroups {
		return
	}
	participated := false
	for _, g := range groups {
		if g != nil {
			participated = true
			break
		}
	}
	if !participated {
		return
	}

	vals := make([]string, len(groups))
	for i, g := range groups {
		if g == nil {
			vals[i] = "<none>"
		} else {
			vals[i] = fmt.Sprintf("%q", *g)
		}
	}
	fmt.Fprintf(b, "    groups: %s\n", strings.Join(vals, ", "))
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
