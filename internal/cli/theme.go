package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/matzehuels/figwind/pkg/errors"
	"github.com/matzehuels/figwind/pkg/theme"
)

// themeCommand creates the theme command.
func (c *CLI) themeCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "theme [scale]",
		Short: "Show the resolved theme",
		Long: `Without arguments, list the scales of the resolved theme. With a scale
name, list its keys and values in enumeration order. Color values are shown
with a swatch.`,
		Example: `  figwind theme
  figwind theme spacing
  figwind --config figwind.toml theme colors`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			th, source, err := c.loadTheme()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if len(args) == 0 {
				if asJSON {
					return writeJSON(w, th)
				}
				printInfo(cmd.ErrOrStderr(), "theme: %s", source)
				renderScales(w, th)
				return nil
			}

			name := args[0]
			s := th.Scale(name)
			if name == "screens" {
				s = th.Screens.Clone()
			}
			if s == nil {
				return errors.New(errors.ErrCodeInvalidInput, "unknown scale %q", name)
			}
			if asJSON {
				return writeJSON(w, s)
			}
			renderScale(w, s)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}

func renderScales(w io.Writer, th *theme.Theme) {
	names := make([]string, 0, len(th.Scales))
	for name := range th.Scales {
		names = append(names, name)
	}
	slices.SortFunc(names, compareNatural)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, strconv.Itoa(len(th.Scales[name]))})
	}
	fmt.Fprintln(w, newTable("Scale", "Keys").Rows(rows...).Render())
}

func renderScale(w io.Writer, s theme.Scale) {
	rows := make([][]string, 0, len(s))
	for _, e := range s {
		value := e.Value
		if len(e.Extra) > 0 {
			value += " " + StyleDim.Render("("+strings.Join(e.Extra, "; ")+")")
		}
		rows = append(rows, []string{e.Key, value, swatch(e.Value)})
	}
	fmt.Fprintln(w, newTable("Key", "Value", "").Rows(rows...).Render())
}

// swatch renders a color sample for hex values and nothing otherwise.
func swatch(value string) string {
	c, err := colorful.Hex(value)
	if err != nil {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("    ")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
