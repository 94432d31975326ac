package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// sortCommand creates the sort command.
func (c *CLI) sortCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sort [classes]",
		Short: "Sort utility classes into authoring order",
		Long: `Sort a whitespace-separated class list by plugin: layout first, then
spacing, typography, colors and effects. Breakpoint variants follow their
base class in breakpoint order. Unknown classes keep their relative order
at the end. Classes are read from the arguments or from stdin.`,
		Example: `  figwind sort "text-sm p-4 md:flex flex absolute"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			s, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			sorted, err := s.runner.Sort(s.ix, tokens)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sorted)
			return nil
		},
	}
}
