/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// refactor.go implements the "sift refactor" command for regex substitution.
//
// Design: Refactor shares search's pattern, context, and file-selection
// semantics, then rewrites accepted matches in place. --dry-run produces the
// identical report without writing, so a preview run followed by a real run
// always agree on what changes.

package cmd

import (
	"fmt"
	"os"

	"github.com/jpl-au/sift/internal/config"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/progress"
	"github.com/jpl-au/sift/internal/refactor"
	"github.com/jpl-au/sift/internal/report"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newRefactorCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "refactor <pattern> <replacement>",
		Short: "Replace regex matches across files",
		Long: `Replace regex matches across files. The replacement is a template:
$1, $2 and ${name} insert capture group values.

  sift refactor "const (\w+) = " "let $1 = " --dry-run  # preview
  sift refactor "const (\w+) = " "let $1 = "            # apply
  sift refactor "v1" "v2" --context "import"            # scoped by context
  sift refactor "foo" "bar" --files "docs/**" --diff    # with diffs`,
		Args: cobra.ExactArgs(2),
		RunE: runRefactor,
	}
	c.Flags().StringP("context", "C", "", "Only replace matches with this pattern within 5 lines")
	c.Flags().StringP("files", "f", "", "File selection glob (default: whole tree)")
	c.Flags().BoolP("dry-run", "n", false, "Report changes without writing any file")
	c.Flags().Bool("diff", false, "Show a unified diff per modified file")
	c.Flags().Bool("matches", false, "Show before/after text for each replacement")
	c.Flags().Bool("groups", false, "Show capture group values for each replacement")
	return c
}

func runRefactor(c *cobra.Command, args []string) error {
	pattern, replace := args[0], args[1]
	context, _ := c.Flags().GetString("context")
	files, _ := c.Flags().GetString("files")
	dryRun, _ := c.Flags().GetBool("dry-run")
	showDiff, _ := c.Flags().GetBool("diff")
	matches, _ := c.Flags().GetBool("matches")
	groups, _ := c.Flags().GetBool("groups")

	cfg, err := config.Load()
	if err != nil {
		return PrintJSONError(err)
	}

	var prog *progress.Progress
	results, err := refactor.Run(Root(), refactor.Options{
		Pattern:     pattern,
		Replace:     replace,
		Context:     context,
		Files:       files,
		DryRun:      dryRun,
		ComputeDiff: showDiff,
		ColourDiff:  showDiff && !JSON() && term.IsTerminal(int(os.Stdout.Fd())),
		MaxFileSize: cfg.MaxFileSize(),
		OnFile: func(done, total int) {
			if prog == nil {
				prog = progress.New("refactoring", total)
			}
			prog.Increment()
			prog.Print()
		},
	})
	if prog != nil {
		prog.Done()
	}

	total := 0
	for _, r := range results {
		total += r.Replacements
	}
	log.Event("cli:refactor", "refactor").
		Pattern(pattern).
		Files(files).
		Detail("replacements", total).
		Detail("dry_run", dryRun).
		Write(err)

	if err != nil {
		return PrintJSONError(fmt.Errorf("refactor %q: %w", pattern, err))
	}

	if JSON() {
		return PrintJSON(results)
	}

	fmt.Fprintln(Out(), report.FormatRefactor(results, report.Options{
		IncludeMatchedText:   matches,
		IncludeCaptureGroups: groups,
		DryRun:               dryRun,
	}))
	if showDiff {
		for _, r := range results {
			fmt.Fprintln(Out(), r.Diff)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newRefactorCmd())
}
