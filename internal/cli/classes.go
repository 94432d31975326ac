package cli

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/matzehuels/figwind/pkg/pipeline"
)

// classesCommand creates the classes command.
func (c *CLI) classesCommand() *cobra.Command {
	var (
		plain   bool
		natSort bool
	)

	cmd := &cobra.Command{
		Use:   "classes [plugin]",
		Short: "List plugins or the classes a plugin generates",
		Long: `Without arguments, list every enabled plugin with its class count in
authoring order. With a plugin name, list the classes that plugin generates
for the current theme together with their canonical declarations.`,
		Example: `  figwind classes
  figwind classes backgroundColor --plain
  figwind classes padding --natural`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			w := cmd.OutOrStdout()
			if len(args) == 0 {
				renderPlugins(w, s.ix, plain)
				return nil
			}

			classes, err := s.runner.Classes(s.ix, args[0])
			if err != nil {
				return err
			}
			if natSort {
				classes = slices.Clone(classes)
				slices.SortStableFunc(classes, compareNatural)
			}
			if len(classes) == 0 {
				printInfo(cmd.ErrOrStderr(), "plugin %s generates no classes with this theme", args[0])
				return nil
			}
			renderClasses(w, s.ix, classes, plain)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print one entry per line without a table")
	cmd.Flags().BoolVar(&natSort, "natural", false, "sort classes in natural order (p-2 before p-10)")

	return cmd
}

func compareNatural(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	default:
		return 0
	}
}

func renderPlugins(w io.Writer, ix *pipeline.Indexes, plain bool) {
	if plain {
		for _, name := range ix.Index.Order {
			fmt.Fprintln(w, name)
		}
		return
	}
	rows := make([][]string, 0, len(ix.Index.Order))
	for _, name := range ix.Index.Order {
		rows = append(rows, []string{name, strconv.Itoa(len(ix.Index.Plugins[name]))})
	}
	fmt.Fprintln(w, newTable("Plugin", "Classes").Rows(rows...).Render())
}

func renderClasses(w io.Writer, ix *pipeline.Indexes, classes []string, plain bool) {
	if plain {
		for _, class := range classes {
			fmt.Fprintln(w, class)
		}
		return
	}
	rows := make([][]string, 0, len(classes))
	for _, class := range classes {
		rows = append(rows, []string{class, string(ix.Index.Forward[class])})
	}
	t := newTable("Class", "Declarations").Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return cellStyle(styleHeader)
			case col == 0:
				return cellStyle(StyleHighlight)
			default:
				return cellStyle(StyleDim)
			}
		})
	fmt.Fprintln(w, t.Render())
}

// newTable returns a bordered table with styled headers.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cellStyle(styleHeader)
			}
			return cellStyle(lipgloss.NewStyle())
		})
}

func cellStyle(s lipgloss.Style) lipgloss.Style {
	return s.Padding(0, 1)
}
