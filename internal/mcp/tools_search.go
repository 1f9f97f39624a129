// tools_search.go implements the MCP tools that read but never write:
// content search and file enumeration.
//
// Design: Results are returned as JSON arrays for easy LLM parsing. Search
// results include matched text and capture groups so LLMs can reason about
// hits without fetching whole files.

package mcp

import (
	"context"

	"github.com/jpl-au/sift/internal/enumerate"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/report"
	"github.com/jpl-au/sift/internal/search"
	"github.com/mark3labs/mcp-go/mcp"
)

// searchFiles handles sift_search tool calls.
func (h *handlers) searchFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required"), nil //nolint:nilerr
	}

	opts := search.Options{
		Pattern:     pattern,
		Context:     getString(req, "context", ""),
		Files:       getString(req, "files", ""),
		MaxFileSize: h.cfg.MaxFileSize(),
	}

	results, err := search.Run(h.root, opts)

	log.Event("mcp:sift_search", "search").
		Pattern(pattern).
		Files(opts.Files).
		Detail("files", len(results)).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(results) == 0 {
		return mcp.NewToolResultText(report.NoMatches), nil
	}

	return jsonResult(results)
}

// listFiles handles sift_files tool calls.
func (h *handlers) listFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	expr := getString(req, "files", "")

	paths, err := enumerate.Files(h.root, expr)

	log.Event("mcp:sift_files", "files").
		Files(expr).
		Detail("count", len(paths)).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(paths)
}
