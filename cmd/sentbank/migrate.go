package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentbank/storage/sqlite/zombiezen"
)

func newMigrateCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "migrate",
		Usage:     "create or refresh the sqlite schema of a store",
		ArgsUsage: "<db>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("need a database file. Usage: migrate <db>")
			}
			return migrateCommand(c, c.Args().First(), ui)
		},
	}
}

func migrateCommand(c *cli.Context, path string, ui UI) error {
	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return err
	}
	defer pool.Close()

	for _, schema := range []string{"corpus.sql", "topics.sql"} {
		if err := zombiezen.CreateSchemas(c.Context, pool, schema); err != nil {
			return err
		}
	}

	fmt.Fprintf(ui.Out, "📖 schema ready: %s\n", path)
	return nil
}
