package main

import (
	"context"
	"errors"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentbank/match"
	"github.com/revelaction/sentbank/render"
	"github.com/revelaction/sentbank/search"
	"github.com/revelaction/sentbank/storage"
	"github.com/revelaction/sentbank/topic"
)

const (
	// candidatePageSize is the number of candidates fetched per storage
	// round trip.
	candidatePageSize = 500

	// candidateLimit caps the fetched candidates of one query.
	candidateLimit = 2000
)

func newSearchCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "search sentences by term expression",
		ArgsUsage: "<term> [!term ...]",
		Flags: []cli.Flag{
			storeFlag(),
			topicsFlag(),
			&cli.StringFlag{Name: "t", Usage: "search a saved topic in addition to the terms"},
			&cli.StringFlag{Name: "doc", Usage: "restrict the search to one document id"},
			&cli.GenericFlag{Name: "f", Usage: "output format", Value: newFormatValue()},
			&cli.IntFlag{Name: "n", Usage: "show only sentences matching this many topic expressions"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable colored output"},
			&cli.BoolFlag{Name: "no-prefix", Usage: "disable the doc:position prefix"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 && c.String("t") == "" {
				return errors.New("need terms or a topic. Usage: search [-t topic] <term> [!term ...]")
			}
			return searchCommand(c, ui)
		},
	}
}

func searchCommand(c *cli.Context, ui UI) error {
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

	tp := topic.Topic{}
	if name := c.String("t"); name != "" {
		tpath, err := topicsPath(c)
		if err != nil {
			return err
		}

		tr, err := NewTopicRepository(pool, tpath)
		if err != nil {
			return err
		}

		tp, err = tr.Topic(name)
		if err != nil {
			return err
		}
	}

	srch := search.New(tp, repo)

	if c.NArg() > 0 {
		expr, err := topic.Parse(c.Args().Slice())
		if err != nil {
			return err
		}
		srch = srch.WithTermExpr(expr)
	}

	if docID := c.String("doc"); docID != "" {
		srch = srch.WithDocID(docID)
	}

	results, err := collectMatches(c.Context, srch)
	if err != nil {
		return err
	}

	format := c.Generic("f").(*formatValue).value
	if format == "json" {
		return render.NewJSONRenderer(ui.Out).Render(results)
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = !c.Bool("no-color") && render.ShouldColorize(ui.Out)
	r.HasPrefix = !c.Bool("no-prefix")
	r.Format = format
	r.NumMatches = c.Int("n")
	r.Matches(results)

	return nil
}

// collectMatches pages through the candidate superset and returns the
// verified matches sorted by relevance, then by doc id and position.
func collectMatches(ctx context.Context, srch *search.Search) ([]*match.SentenceMatch, error) {
	var results []*match.SentenceMatch

	cursor := storage.Cursor(0)
	fetched := 0
	for {
		newCursor, err := srch.Sentences(ctx, cursor, candidatePageSize, func(sm *match.SentenceMatch) error {
			results = append(results, sm)
			return nil
		})
		if err != nil {
			return nil, err
		}

		if cursor == newCursor {
			break
		}

		fetched += candidatePageSize
		if fetched >= candidateLimit {
			break
		}
		cursor = newCursor
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].NumExprs != results[j].NumExprs {
			return results[i].NumExprs > results[j].NumExprs
		}
		if results[i].Sentence.DocID != results[j].Sentence.DocID {
			return results[i].Sentence.DocID < results[j].Sentence.DocID
		}
		return results[i].Sentence.Position < results[j].Sentence.Position
	})

	return results, nil
}
