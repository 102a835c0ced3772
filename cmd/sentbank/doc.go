package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentbank/render"
)

func newDocCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "doc",
		Usage:     "list documents, or print the sentences of one",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			storeFlag(),
			&cli.GenericFlag{Name: "start", Usage: "first sentence position to print", Value: &optionalInt{}},
			&cli.GenericFlag{Name: "end", Usage: "last sentence position to print", Value: &optionalInt{}},
		},
		Action: func(c *cli.Context) error {
			return docCommand(c, ui)
		},
	}
}

func docCommand(c *cli.Context, ui UI) error {
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

	if c.NArg() == 0 {
		ids, err := repo.List(c.Context)
		if err != nil {
			return err
		}

		for i, id := range ids {
			fmt.Fprintf(ui.Out, "📖 %d %s \n", i, id)
		}

		return nil
	}

	doc, err := repo.Doc(c.Context, c.Args().First())
	if err != nil {
		return err
	}

	start := c.Generic("start").(*optionalInt).value
	end := c.Generic("end").(*optionalInt).value

	r := render.NewRenderer(ui.Out)
	for _, s := range doc.Sentences {
		if start != nil && s.Position < *start {
			continue
		}
		if end != nil && s.Position > *end {
			continue
		}

		prefix := fmt.Sprintf("✍  %s:%d ", doc.ID, s.Position)
		r.Sentence(s, prefix)
	}

	return nil
}
