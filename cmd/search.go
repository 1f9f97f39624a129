/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// search.go implements the "sift search" command for regex content searching.
//
// Design: Search is read-only and reports per-file line hits with collapsed
// ranges. Detail flags (--matches, --groups) opt into per-match output; the
// default stays terse so large result sets remain scannable.

package cmd

import (
	"fmt"

	"github.com/jpl-au/sift/internal/config"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/report"
	"github.com/jpl-au/sift/internal/search"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "search <pattern>",
		Short: "Search file contents using regex",
		Long: `Search file contents using regular expressions.

  sift search "TODO"                          # search the whole tree
  sift search "func (\w+)\(" --groups         # show capture groups
  sift search "legacy_sdk" --context "import" # only near an import
  sift search "error" --files "src/**/*.go"   # restrict to a glob`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}
	c.Flags().StringP("context", "C", "", "Only accept matches with this pattern within 5 lines")
	c.Flags().StringP("files", "f", "", "File selection glob (default: whole tree)")
	c.Flags().Bool("matches", false, "Show matched text for each hit")
	c.Flags().Bool("groups", false, "Show capture group values for each hit")
	return c
}

func runSearch(c *cobra.Command, args []string) error {
	pattern := args[0]
	context, _ := c.Flags().GetString("context")
	files, _ := c.Flags().GetString("files")
	matches, _ := c.Flags().GetBool("matches")
	groups, _ := c.Flags().GetBool("groups")

	cfg, err := config.Load()
	if err != nil {
		return PrintJSONError(err)
	}

	results, err := search.Run(Root(), search.Options{
		Pattern:     pattern,
		Context:     context,
		Files:       files,
		MaxFileSize: cfg.MaxFileSize(),
	})

	log.Event("cli:search", "search").
		Pattern(pattern).
		Files(files).
		Detail("files", len(results)).
		Write(err)

	if err != nil {
		return PrintJSONError(fmt.Errorf("search %q: %w", pattern, err))
	}

	if JSON() {
		return PrintJSON(results)
	}

	fmt.Fprintln(Out(), report.FormatSearch(results, report.Options{
		IncludeMatchedText:   matches,
		IncludeCaptureGroups: groups,
	}))
	return nil
}

func init() {
	rootCmd.AddCommand(newSearchCmd())
}
