package main

import (
	"errors"
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentbank/concept"
	"github.com/revelaction/sentbank/config"
	"github.com/revelaction/sentbank/corpus"
)

func newLoadCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "load",
		Usage:     "read a directory of tokenized documents into a store",
		ArgsUsage: "<dir>",
		Flags: []cli.Flag{
			storeFlag(),
			&cli.StringFlag{Name: "ext", Usage: "file extension of corpus documents"},
			&cli.IntFlag{Name: "min-length", Usage: "drop sentences with fewer words"},
			&cli.IntFlag{Name: "max-length", Usage: "drop sentences with more words, 0 keeps all"},
			&cli.BoolFlag{Name: "keep-citations", Usage: "keep sentences wrapped in quotation markers"},
			&cli.BoolFlag{Name: "keep-redundant", Usage: "keep repeated sentences"},
			&cli.BoolFlag{Name: "no-prune", Usage: "skip sentence pruning entirely"},
			&cli.IntFlag{Name: "ngram", Usage: "n-gram size of extracted concepts"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("need a corpus directory. Usage: load <dir>")
			}
			return loadCommand(c, c.Args().First(), ui)
		},
	}
}

func loadCommand(c *cli.Context, dir string, ui UI) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	ext := cfg.Corpus.Extension
	if c.IsSet("ext") {
		ext = c.String("ext")
	}

	crp := corpus.New(dir)
	if err := crp.ReadDocuments(ext); err != nil {
		return err
	}

	total := len(crp.Sentences)

	if !c.Bool("no-prune") {
		opts := pruneOptions(c, cfg)
		crp.Prune(opts)
		fmt.Fprintf(ui.Out, "✂️  pruned %d of %d sentences\n", total-len(crp.Sentences), total)
	}

	ngram := cfg.Concepts.NgramSize
	if c.IsSet("ngram") {
		ngram = c.Int("ngram")
	}
	concept.NewExtractor(ngram).Extract(crp.Sentences)

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

	docs := crp.Docs()

	uiprogress.Start()
	bar := uiprogress.AddBar(len(docs))
	bar.AppendCompleted()
	bar.PrependElapsed()

	for _, doc := range docs {
		if err := repo.SaveDoc(c.Context, doc); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("doc %s: %w", doc.ID, err)
		}
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "📖 loaded %d docs, %d sentences into %s\n", len(docs), len(crp.Sentences), path)
	return nil
}

// pruneOptions merges the config pruning policy with the command flags.
func pruneOptions(c *cli.Context, cfg *config.Config) corpus.PruneOptions {
	opts := corpus.PruneOptions{
		MinLength:        cfg.Prune.MinLength,
		MaxLength:        cfg.Prune.MaxLength,
		RemoveCitations:  cfg.Prune.RemoveCitations,
		RemoveRedundancy: cfg.Prune.RemoveRedundancy,
	}

	if c.IsSet("min-length") {
		opts.MinLength = c.Int("min-length")
	}
	if c.IsSet("max-length") {
		opts.MaxLength = c.Int("max-length")
	}
	if c.Bool("keep-citations") {
		opts.RemoveCitations = false
	}
	if c.Bool("keep-redundant") {
		opts.RemoveRedundancy = false
	}

	return opts
}
