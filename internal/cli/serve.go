package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/plannerkit/pkg/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		outDir  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web front end and JSON API",
		Long: `Serve starts an HTTP server with a prompt form at /, a JSON API at
/api/generate and /api/history, and the generated files under /generated/.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			comp, err := c.wire(ctx, wireOpts{noCache: noCache, outDir: outDir})
			if err != nil {
				return err
			}
			defer comp.Close()

			if addr == "" {
				addr = comp.cfg.Server.Addr
			}
			srv, err := server.New(comp.runner,
				server.WithLogger(c.Logger),
				server.WithRequestTimeout(comp.cfg.Server.RequestTimeout),
				server.WithSizes(comp.cfg.Output.PageSizes),
			)
			if err != nil {
				return err
			}

			printInfo("Serving planners from %s", StyleValue.Render(comp.writer.Dir()))
			printNextStep("Open", "http://"+displayAddr(addr))
			p := newProgress(c.Logger)
			if err := srv.ListenAndServe(ctx, addr); err != nil {
				return err
			}
			p.done("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :5000)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "artifact directory (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "do not read or write the style cache")
	return cmd
}

// displayAddr turns a listen address like ":5000" into a browsable host.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
