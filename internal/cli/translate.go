package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/figwind/pkg/translate"
)

// translateOpts holds the translate command's flags.
type translateOpts struct {
	keepDefaults bool
	noShorthand  bool
	noSnap       bool
	sort         bool
	json         bool
}

func (o translateOpts) options() translate.Options {
	return translate.Options{
		OmitDefaults:     !o.keepDefaults,
		OpacityShorthand: !o.noShorthand,
		SnapToNearest:    !o.noSnap,
	}
}

// translateCommand creates the translate command.
func (c *CLI) translateCommand() *cobra.Command {
	var opts translateOpts

	cmd := &cobra.Command{
		Use:   "translate [declarations]",
		Short: "Translate CSS declarations into utility classes",
		Long: `Translate a block of CSS declarations into the utility classes that
produce it. Declarations are read from the arguments, or from stdin when
none are given. Declarations without an equivalent class are dropped.`,
		Example: `  figwind translate "display: flex; margin-top: 8px"
  figwind translate --sort "padding: 1rem; position: absolute"
  pbpaste | figwind translate --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			s, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			tr, err := s.runner.Translate(cmd.Context(), s.ix, text, opts.options())
			if err != nil {
				return err
			}
			if opts.sort && tr.Classes != "" {
				if tr.Classes, err = s.runner.Sort(s.ix, tr.Classes); err != nil {
					return err
				}
			}
			c.Logger.Debug("translated", "matched", tr.Matched, "cached", tr.Cached)

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), tr)
			}
			if !tr.Matched {
				printWarning(cmd.ErrOrStderr(), "no utility classes matched")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), tr.Classes)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.keepDefaults, "keep-defaults", false, "keep classes that restate a property's initial value")
	cmd.Flags().BoolVar(&opts.noShorthand, "no-shorthand", false, "emit color opacity as a separate class instead of color/alpha")
	cmd.Flags().BoolVar(&opts.noSnap, "no-snap", false, "require exact opacity matches")
	cmd.Flags().BoolVar(&opts.sort, "sort", false, "sort the result into authoring order")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")

	return cmd
}

// readInput joins args, or reads r when there are none.
func readInput(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}
