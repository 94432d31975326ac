package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/figwind/pkg/translate"
)

// responsiveCommand creates the responsive command.
func (c *CLI) responsiveCommand() *cobra.Command {
	var (
		breakpoints  []string
		declarations bool
	)

	cmd := &cobra.Command{
		Use:   "responsive <base> <variant>...",
		Short: "Merge per-breakpoint class lists into responsive overrides",
		Long: `Merge a base class list and one list per breakpoint into a single list
in which each breakpoint only overrides what changed. The first argument is
the base list and each further argument applies from the matching
--breakpoints entry on.

With --declarations every argument is a block of CSS declarations that is
translated first.`,
		Example: `  figwind responsive --breakpoints md "text-sm p-2" "text-lg p-2"
  figwind responsive -b sm,lg --declarations "width: 100%" "width: 50%" "width: 25%"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			inputs := args
			if declarations {
				inputs = make([]string, len(args))
				for i, text := range args {
					tr, err := s.runner.Translate(cmd.Context(), s.ix, text, translate.DefaultOptions())
					if err != nil {
						return fmt.Errorf("input %d: %w", i, err)
					}
					inputs[i] = tr.Classes
					c.Logger.Debug("translated input", "index", i, "classes", tr.Classes)
				}
			}

			out, err := s.runner.Diff(s.ix, inputs, breakpoints)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&breakpoints, "breakpoints", "b", nil, "breakpoint of each input after the base (comma-separated)")
	cmd.Flags().BoolVar(&declarations, "declarations", false, "treat inputs as CSS declarations")
	_ = cmd.MarkFlagRequired("breakpoints")

	return cmd
}
