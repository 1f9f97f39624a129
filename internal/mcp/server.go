// Package mcp implements the Model Context Protocol server, exposing sift
// operations to LLMs. This enables AI assistants to search and refactor a
// codebase through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/sift/internal/config"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP
// clients. All operations run against the tree rooted at root.
func Serve(root string) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return err
	}

	h := &handlers{root: root, cfg: cfg}

	s := server.NewMCPServer(
		"sift",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)

	slog.Info("sift MCP server ready", "version", Version, "transport", "stdio", "root", root)

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers bound to a scan root.
type handlers struct {
	root string
	cfg  *config.Config
}

// registerResources adds URI-based resource access for guide pages.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"sift://guide/{topic}",
			"Guide",
			mcp.WithTemplateDescription("Read a sift guide page by topic"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readGuidePage,
	)
}

// registerTools exposes sift operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	// Search
	s.AddTool(
		mcp.NewTool("sift_search",
			mcp.WithDescription("Search file contents with a regular expression. Returns per-file matches with line numbers, matched text, and capture groups."),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Regex pattern (Go RE2 syntax, multi-line mode: ^ and $ anchor to lines)")),
			mcp.WithString("context", mcp.Description("Secondary pattern; a match counts only if this also matches within 5 lines of it")),
			mcp.WithString("files", mcp.Description("File selection glob (e.g., 'src/**/*.go'); empty scans the whole tree")),
		),
		h.searchFiles,
	)

	// Refactor
	s.AddTool(
		mcp.NewTool("sift_refactor",
			mcp.WithDescription("Replace regex matches across files. The replacement template supports $1, $2 and ${name} capture references."),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Regex pattern to locate")),
			mcp.WithString("replace", mcp.Required(), mcp.Description("Replacement template ($1, ${name} insert capture groups)")),
			mcp.WithString("context", mcp.Description("Secondary pattern; a match is replaced only if this also matches within 5 lines of it")),
			mcp.WithString("files", mcp.Description("File selection glob; empty scans the whole tree")),
			mcp.WithBoolean("dry_run", mcp.Description("Report what would change without writing any file")),
			mcp.WithBoolean("diff", mcp.Description("Include a unified diff per modified file")),
		),
		h.refactorFiles,
	)

	// Files
	s.AddTool(
		mcp.NewTool("sift_files",
			mcp.WithDescription("List the files a selection expression would touch, without scanning their contents"),
			mcp.WithString("files", mcp.Description("File selection glob (supports *, **, ?, [abc], {a,b}); empty lists the whole tree")),
		),
		h.listFiles,
	)

	// Guide
	s.AddTool(
		mcp.NewTool("sift_guide",
			mcp.WithDescription("Get help/guide content for sift commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g., 'search', 'refactor', 'patterns') or empty for index")),
		),
		h.getGuide,
	)
}
