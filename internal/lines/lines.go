// Package lines provides line-number range collapsing for search reports.
//
// A sequence like 1,2,3,7 collapses to "lines: 1-3" and "line: 7", which
// keeps per-file summaries short when a pattern matches many adjacent lines.
package lines

import "fmt"

// Collapse turns a sequence of line numbers into human-readable range
// tokens: "line: N" for an isolated line, "lines: A-B" for a maximal run
// of consecutive numbers. Empty input yields an empty slice.
//
// Input is consumed literally in the order given: it is not sorted or
// deduplicated here. Callers that want ascending unique ranges must
// pre-sort and dedupe; unsorted or duplicate input produces literal,
// unsorted tokens.
func Collapse(nums []int) []string {
	if len(nums) == 0 {
		return []string{}
	}

	tokens := make([]string, 0, len(nums))
	start, end := nums[0], nums[0]

	for _, n := range nums[1:] {
		if n == end+1 {
			end = n
			continue
		}
		tokens = append(tokens, token(start, end))
		start, end = n, n
	}
	return append(tokens, token(start, end))
}

func token(start, end int) string {
	if start == end {
		return fmt.Sprintf("line: %d", start)
	}
	return fmt.Sprintf("lines: %d-%d", start, end)
}
