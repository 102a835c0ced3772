package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentbank/concept"
	"github.com/revelaction/sentbank/corpus"
	"github.com/revelaction/sentbank/summary"
)

func newSummarizeCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "summarize",
		Usage:     "extract a word-budget summary from a directory of tokenized documents",
		ArgsUsage: "<dir>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ext", Usage: "file extension of corpus documents"},
			&cli.IntFlag{Name: "budget", Usage: "summary length in words"},
			&cli.IntFlag{Name: "ngram", Usage: "n-gram size of extracted concepts"},
			&cli.IntFlag{Name: "threshold", Usage: "drop concepts below this document frequency"},
			&cli.IntFlag{Name: "min-length", Usage: "drop sentences with fewer words"},
			&cli.IntFlag{Name: "max-length", Usage: "drop sentences with more words, 0 keeps all"},
			&cli.BoolFlag{Name: "keep-citations", Usage: "keep sentences wrapped in quotation markers"},
			&cli.BoolFlag{Name: "keep-redundant", Usage: "keep repeated sentences"},
			&cli.BoolFlag{Name: "no-prefix", Usage: "print the summary without doc:position prefixes"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("need a corpus directory. Usage: summarize <dir>")
			}
			return summarizeCommand(c, c.Args().First(), ui)
		},
	}
}

func summarizeCommand(c *cli.Context, dir string, ui UI) error {
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

	crp.Prune(pruneOptions(c, cfg))

	ngram := cfg.Concepts.NgramSize
	if c.IsSet("ngram") {
		ngram = c.Int("ngram")
	}
	concept.NewExtractor(ngram).Extract(crp.Sentences)

	weights := concept.Weights(crp.Sentences)

	threshold := cfg.Concepts.WeightThreshold
	if c.IsSet("threshold") {
		threshold = c.Int("threshold")
	}
	concept.Prune(weights, crp.Sentences, threshold)

	budget := cfg.Summary.Budget
	if c.IsSet("budget") {
		budget = c.Int("budget")
	}

	for _, i := range summary.Greedy(crp.Sentences, weights, budget) {
		s := crp.Sentences[i]
		if c.Bool("no-prefix") {
			fmt.Fprintln(ui.Out, s.Untokenized)
			continue
		}

		fmt.Fprintf(ui.Out, "✍  %s:%d %s\n", s.DocID, s.Position, s.Untokenized)
	}

	return nil
}
