package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentbank/config"
)

func newConfigCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:            "config",
		Usage:           "manage the configuration file",
		HideHelpCommand: true,
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "write a commented sample configuration file",
				Action: func(c *cli.Context) error {
					path := c.String("config")
					if path == "" {
						var err error
						path, err = config.DefaultConfigPath()
						if err != nil {
							return err
						}
					}

					if err := config.CreateSample(path); err != nil {
						return err
					}

					fmt.Fprintf(ui.Out, "📖 wrote %s\n", path)
					return nil
				},
			},
			{
				Name:  "path",
				Usage: "print the configuration file in use",
				Action: func(c *cli.Context) error {
					_, path, exists, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					if !exists {
						fmt.Fprintf(ui.Out, "%s (not present, defaults active)\n", path)
						return nil
					}

					fmt.Fprintln(ui.Out, path)
					return nil
				},
			},
		},
	}
}
