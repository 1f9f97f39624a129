/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// files.go implements the "sift files" command for previewing file selection.
//
// Design: A refactor over the wrong file set is expensive to undo, so files
// exists purely to answer "what would --files touch?" before running one.

package cmd

import (
	"fmt"

	"github.com/jpl-au/sift/internal/enumerate"
	"github.com/jpl-au/sift/internal/log"
	"github.com/spf13/cobra"
)

func newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files [expression]",
		Short: "List files a selection expression would touch",
		Long: `List the files a selection expression matches, without scanning contents.

  sift files                     # whole tree (skips .git, node_modules, dist)
  sift files "src"               # everything under src/
  sift files "**/*.{go,md}"      # glob with alternatives`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFiles,
	}
}

func runFiles(_ *cobra.Command, args []string) error {
	expr := ""
	if len(args) > 0 {
		expr = args[0]
	}

	paths, err := enumerate.Files(Root(), expr)

	log.Event("cli:files", "files").Files(expr).Detail("count", len(paths)).Write(err)

	if err != nil {
		return PrintJSONError(fmt.Errorf("files %q: %w", expr, err))
	}

	if JSON() {
		return PrintJSON(paths)
	}

	for _, p := range paths {
		fmt.Fprintln(Out(), p)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newFilesCmd())
}
