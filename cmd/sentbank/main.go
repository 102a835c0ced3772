package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentbank/config"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "sentbank: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:            "sentbank",
		Usage:           "corpus workbench for pre-tokenized documents",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "TOML configuration file",
				EnvVars: []string{"SENTBANK_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			newLoadCommand(ui),
			newStatCommand(ui),
			newSearchCommand(ui),
			newQueryCommand(ui),
			newTopicCommand(ui),
			newDocCommand(ui),
			newSentenceCommand(ui),
			newSummarizeCommand(ui),
			newDetokCommand(ui),
			newExportCommand(ui),
			newMigrateCommand(ui),
			newWatchCommand(ui),
			newConfigCommand(ui),
			newVersionCommand(ui),
		},
	}
}

// loadConfig resolves the configuration for a command: defaults, then the
// optional config file of the global --config flag. Command flags override
// single values afterwards.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, _, _, err := config.Load(c.String("config"))
	return cfg, err
}
