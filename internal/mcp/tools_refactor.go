// tools_refactor.go implements the MCP tool that rewrites files.
//
// Design: dry_run defaults to false to match the CLI, but the tool
// description steers LLMs towards previewing first. The diff flag gives
// the client a unified diff per file so a human can review the change
// before the LLM commits it.

package mcp

import (
	"context"

	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/refactor"
	"github.com/jpl-au/sift/internal/report"
	"github.com/mark3labs/mcp-go/mcp"
)

// refactorFiles handles sift_refactor tool calls.
func (h *handlers) refactorFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required"), nil //nolint:nilerr
	}

	replace, err := req.RequireString("replace")
	if err != nil {
		return mcp.NewToolResultError("replace is required"), nil //nolint:nilerr
	}

	opts := refactor.Options{
		Pattern:     pattern,
		Replace:     replace,
		Context:     getString(req, "context", ""),
		Files:       getString(req, "files", ""),
		DryRun:      getBool(req, "dry_run", false),
		ComputeDiff: getBool(req, "diff", false),
		MaxFileSize: h.cfg.MaxFileSize(),
	}

	results, err := refactor.Run(h.root, opts)

	total := 0
	for _, r := range results {
		total += r.Replacements
	}
	log.Event("mcp:sift_refactor", "refactor").
		Pattern(pattern).
		Files(opts.Files).
		Detail("replacements", total).
		Detail("dry_run", opts.DryRun).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(results) == 0 {
		return mcp.NewToolResultText(report.NoMatches), nil
	}

	return jsonResult(results)
}
