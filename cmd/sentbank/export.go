package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentbank/storage/filesystem"
)

func newExportCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write the stored corpus as JSON documents",
		Flags: []cli.Flag{
			storeFlag(),
			&cli.StringFlag{Name: "to", Usage: "target directory, one JSON file per doc; stdout when empty"},
		},
		Action: func(c *cli.Context) error {
			return exportCommand(c, ui)
		},
	}
}

func exportCommand(c *cli.Context, ui UI) error {
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

	to := c.String("to")
	if to == "" {
		enc := json.NewEncoder(ui.Out)
		enc.SetIndent("", "\t")
		return enc.Encode(docs)
	}

	if err := os.MkdirAll(to, 0755); err != nil {
		return fmt.Errorf("target directory: %w", err)
	}

	dst := filesystem.NewStore(to)

	uiprogress.Start()
	bar := uiprogress.AddBar(len(docs))
	bar.AppendCompleted()
	bar.PrependElapsed()

	for _, doc := range docs {
		if err := dst.SaveDoc(c.Context, doc); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("doc %s: %w", doc.ID, err)
		}
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "📖 exported %d docs from %s to %s\n", len(docs), path, to)
	return nil
}
