// Package cli implements the plannerkit command-line interface.
//
// Commands:
//   - generate: design a planner from a prompt, preset or style file and
//     write the PDFs and previews
//   - render: draw a single page kind to a PNG
//   - presets: list the built-in styles
//   - history: browse past generations
//   - serve: run the web front end and JSON API
//   - config: show or initialise the configuration file
//   - cache: manage the style cache
//
// Every command accepts --config and --verbose (-v). Verbose mode lowers the
// log level to debug and logs pipeline, cache and HTTP events.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plannerkit/pkg/buildinfo"
	"github.com/matzehuels/plannerkit/pkg/config"
	"github.com/matzehuels/plannerkit/pkg/observability"
)

const appName = "plannerkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	cfg        *config.Config
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "plannerkit designs printable planner bundles",
		Long: `plannerkit turns a short style prompt into a printable planner bundle:
cover, daily, weekly, monthly, yearly and notes pages in A4 and US Letter,
written as a multi-page PDF plus a PNG preview.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
				observability.NewLogHooks(c.Logger).Register()
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	// The flag default keeps a path chosen before the command tree is built.
	root.PersistentFlags().StringVar(&c.configPath, "config", c.configPath, "config file (default "+config.Path()+")")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the configuration once per process.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}
