/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// serve.go implements the "sift serve" command for MCP server operation.
//
// Separated because serve has unique lifecycle requirements. Unlike other
// commands that run and exit, serve blocks indefinitely handling MCP
// requests over stdio.

package cmd

import (
	"github.com/jpl-au/sift/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Use --root to serve a specific directory:
  sift serve --root /path/to/project`,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	return mcp.Serve(Root())
}

func init() {
	rootCmd.AddCommand(newServeCmd())
}
