package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// indexCommand creates the index command group.
func (c *CLI) indexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Inspect the generated class indices",
	}

	cmd.AddCommand(c.indexStatsCommand())
	cmd.AddCommand(c.indexExportCommand())

	return cmd
}

// indexStatsCommand creates the "index stats" subcommand.
func (c *CLI) indexStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show index sizes and cache status",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			w := cmd.OutOrStdout()
			ix := s.ix
			fmt.Fprintln(w, StyleTitle.Render("Indices"))
			printKeyValue(w, "theme", s.source)
			printKeyValue(w, "hash", ix.ThemeHash[:12])
			printKeyValue(w, "plugins", fmt.Sprint(len(ix.Index.Order)))
			printKeyValue(w, "screens", fmt.Sprint(ix.Breakpoints()))
			if !ix.CacheInfo.IndexHit {
				printKeyValue(w, "index time", ix.Stats.IndexTime.String())
			}
			if !ix.CacheInfo.RankHit {
				printKeyValue(w, "rank time", ix.Stats.RankTime.String())
			}
			printStats(w, ix.Stats.ClassCount, ix.Stats.ReverseCount, ix.CacheInfo.IndexHit)
			return nil
		},
	}
}

// indexExportCommand creates the "index export" subcommand.
func (c *CLI) indexExportCommand() *cobra.Command {
	var (
		reverse bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the forward or reverse index as JSON",
		Long: `Write the forward index (classname to canonical declarations) or, with
--reverse, the reverse index (canonical declarations to classname) as JSON.`,
		Example: `  figwind index export -o forward.json
  figwind index export --reverse | jq 'length'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			var v any = s.ix.Index.Forward
			if reverse {
				v = s.ix.Index.Reverse
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			if err := writeJSON(w, v); err != nil {
				return fmt.Errorf("encode index: %w", err)
			}
			if output != "" {
				printSuccess(cmd.ErrOrStderr(), "Wrote %s", output)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reverse, "reverse", false, "export the reverse index")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
