package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// Set at build time with -ldflags.
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func newVersionCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the build version",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprintf(ui.Out, "sentbank version %s (commit: %s)\n", BuildTag, BuildCommit)
			return err
		},
	}
}
