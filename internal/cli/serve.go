package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/figwind/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	cfg := server.DefaultConfig()
	var opts translateOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the translator over HTTP",
		Long: `Load the theme once and serve translate, sort and responsive requests
over a JSON API until interrupted. Translation flags set the defaults for
requests that send no options.`,
		Example: `  figwind serve --addr :8787
  curl -s localhost:8787/v1/translate -d '{"declarations": "display: flex"}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			cfg.Options = opts.options()
			logger := loggerFromContext(ctx)
			logger.Info("serving", "theme", s.source, "classes", s.ix.Stats.ClassCount)
			return server.New(cfg, s.runner, s.ix, logger).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	cmd.Flags().DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "per-request timeout")
	cmd.Flags().BoolVar(&opts.keepDefaults, "keep-defaults", false, "keep classes that restate a property's initial value")
	cmd.Flags().BoolVar(&opts.noShorthand, "no-shorthand", false, "emit color opacity as a separate class")
	cmd.Flags().BoolVar(&opts.noSnap, "no-snap", false, "require exact opacity matches")

	return cmd
}
