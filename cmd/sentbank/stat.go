package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentbank/stat"
)

func newStatCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "stat",
		Usage: "corpus statistics",
		Flags: []cli.Flag{
			storeFlag(),
			&cli.BoolFlag{Name: "docs", Usage: "show one row per document"},
		},
		Action: func(c *cli.Context) error {
			return statCommand(c, ui)
		},
	}
}

func statCommand(c *cli.Context, ui UI) error {
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

	docs, err := repo.Docs(c.Context)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	for _, doc := range docs {
		hdl.Aggregate(doc)
	}
	stats := hdl.Get()

	headers := []string{"Docs", "Sentences", "Tokens", "Words", "Concepts", "Words/Sentence"}
	rows := [][]string{{
		strconv.Itoa(stats.NumDocs),
		strconv.Itoa(stats.NumSentences),
		strconv.Itoa(stats.NumTokens),
		strconv.Itoa(stats.NumWords),
		strconv.Itoa(stats.NumConcepts),
		strconv.Itoa(stats.WordsPerSentenceMean),
	}}
	fmt.Fprintln(ui.Out, renderTable(headers, rows))

	if !c.Bool("docs") {
		return nil
	}

	docHeaders := []string{"Doc", "Sentences", "Tokens", "Words"}
	docRows := [][]string{}
	for _, row := range stat.PerDoc(docs) {
		docRows = append(docRows, []string{
			row.ID,
			strconv.Itoa(row.NumSentences),
			strconv.Itoa(row.NumTokens),
			strconv.Itoa(row.NumWords),
		})
	}
	fmt.Fprintln(ui.Out, renderTable(docHeaders, docRows))

	return nil
}
