package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

func newSentenceCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "sentence",
		Usage:     "print the detail of one sentence",
		ArgsUsage: "<docID> <position>",
		Flags: []cli.Flag{
			storeFlag(),
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("need a doc id and a position. Usage: sentence <docID> <position>")
			}

			position, err := strconv.Atoi(c.Args().Get(1))
			if err != nil {
				return fmt.Errorf("not a position: %s", c.Args().Get(1))
			}

			return sentenceCommand(c, c.Args().First(), position, ui)
		},
	}
}

func sentenceCommand(c *cli.Context, docID string, position int, ui UI) error {
	path, err := storePath(c)
	if err != nil {
		return err
	}

	pool := &Pool{}
	defer pool.Close()

	repo, err := NewCorpusRepository(pool, path)
	if err != nil {
		return err
	}

	doc, err := repo.Doc(c.Context, docID)
	if err != nil {
		return err
	}

	for _, s := range doc.Sentences {
		if s.Position != position {
			continue
		}

		fmt.Fprintf(ui.Out, "✍  %s:%d\n\n", docID, position)
		fmt.Fprintf(ui.Out, "%-12s %s\n", "tokens", strings.Join(s.Tokens, " "))
		fmt.Fprintf(ui.Out, "%-12s %s\n", "untokenized", s.Untokenized)
		fmt.Fprintf(ui.Out, "%-12s %d\n", "length", s.Length)
		fmt.Fprintf(ui.Out, "%-12s %s\n", "concepts", strings.Join(s.Concepts, ", "))
		return nil
	}

	return fmt.Errorf("doc %s has no sentence at position %d", docID, position)
}
