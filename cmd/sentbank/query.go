package main

import (
	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentbank/query"
	"github.com/revelaction/sentbank/render"
	"github.com/revelaction/sentbank/storage"
)

func newQueryCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "interactive search prompt",
		Flags: []cli.Flag{
			storeFlag(),
			topicsFlag(),
			&cli.GenericFlag{Name: "f", Usage: "output format", Value: newFormatValue()},
			&cli.IntFlag{Name: "n", Usage: "show only sentences matching this many topic expressions"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable colored output"},
			&cli.BoolFlag{Name: "no-prefix", Usage: "disable the doc:position prefix"},
		},
		Action: func(c *cli.Context) error {
			return queryCommand(c, ui)
		},
	}
}

func queryCommand(c *cli.Context, ui UI) error {
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

	// Preload the corpus into memory where the store supports it, so the
	// prompt answers without file reads.
	if pl, ok := repo.(storage.Preloader); ok {
		uiprogress.Start()
		var bar *uiprogress.Bar
		err := pl.Preload(func(current, total int, name string) {
			if bar == nil {
				bar = uiprogress.AddBar(total)
				bar.AppendCompleted()
				bar.PrependElapsed()
			}
			bar.Incr()
		})
		uiprogress.Stop()
		if err != nil {
			return err
		}
	}

	tpath, err := topicsPath(c)
	if err != nil {
		return err
	}

	tr, err := NewTopicRepository(pool, tpath)
	if err != nil {
		return err
	}

	topicLib, err := topicLibrary(tr)
	if err != nil {
		return err
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = !c.Bool("no-color")
	r.HasPrefix = !c.Bool("no-prefix")
	r.PrefixTopicFunc = render.PrefixFuncEmpty
	r.Format = c.Generic("f").(*formatValue).value
	r.NumMatches = c.Int("n")

	h := query.NewHandler(repo, topicLib, r)
	return h.Run(c.Context)
}
