package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentbank/concept"
	"github.com/revelaction/sentbank/corpus"
	"github.com/revelaction/sentbank/watch"
)

func newWatchCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "watch a corpus directory and keep a store in sync",
		ArgsUsage: "<dir>",
		Flags: []cli.Flag{
			storeFlag(),
			&cli.StringFlag{Name: "ext", Usage: "file extension of corpus documents"},
			&cli.IntFlag{Name: "ngram", Usage: "n-gram size of extracted concepts"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("need a corpus directory. Usage: watch <dir>")
			}
			return watchCommand(c, c.Args().First(), ui)
		},
	}
}

func watchCommand(c *cli.Context, dir string, ui UI) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	ext := cfg.Corpus.Extension
	if c.IsSet("ext") {
		ext = c.String("ext")
	}

	ngram := cfg.Concepts.NgramSize
	if c.IsSet("ngram") {
		ngram = c.Int("ngram")
	}

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

	logger := slog.New(slog.NewTextHandler(ui.Err, nil))

	w, err := watch.New(dir, ext, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	extractor := concept.NewExtractor(ngram)

	return w.Run(ctx, func(changed string, op watch.Op) error {
		if op == watch.Removed {
			// Document files are the source of truth; the stored copy of
			// a removed file stays until the next full load.
			return nil
		}

		crp := corpus.New(dir)
		if err := crp.ReadDocument(changed); err != nil {
			return err
		}

		extractor.Extract(crp.Sentences)

		for _, doc := range crp.Docs() {
			if err := repo.SaveDoc(ctx, doc); err != nil {
				return err
			}

			logger.Info("reloaded doc", "id", doc.ID, "sentences", len(doc.Sentences))
		}

		return nil
	})
}
