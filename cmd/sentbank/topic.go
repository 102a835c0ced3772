package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentbank/edit"
	"github.com/revelaction/sentbank/render"
	"github.com/revelaction/sentbank/storage"
	"github.com/revelaction/sentbank/topic"
)

func newTopicCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:            "topic",
		Usage:           "manage saved term expressions",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			topicsFlag(),
		},
		Subcommands: []*cli.Command{
			{
				Name:  "ls",
				Usage: "list topic names",
				Action: func(c *cli.Context) error {
					return topicLsCommand(c, ui)
				},
			},
			{
				Name:      "show",
				Usage:     "print the expressions of a topic",
				ArgsUsage: "<name>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("need a topic name. Usage: topic show <name>")
					}
					return topicShowCommand(c, c.Args().First(), ui)
				},
			},
			{
				Name:      "add",
				Usage:     "add an expression to a topic, creating it if needed",
				ArgsUsage: "<name> <term> [!term ...]",
				Action: func(c *cli.Context) error {
					if c.NArg() < 2 {
						return errors.New("need a topic name and terms. Usage: topic add <name> <term> [!term ...]")
					}
					return topicAddCommand(c, c.Args().First(), c.Args().Tail(), ui)
				},
			},
			{
				Name:      "rm",
				Usage:     "delete a topic",
				ArgsUsage: "<name>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("need a topic name. Usage: topic rm <name>")
					}
					return topicRmCommand(c, c.Args().First(), ui)
				},
			},
			{
				Name:  "edit",
				Usage: "edit topic expressions in an interactive prompt",
				Action: func(c *cli.Context) error {
					return topicEditCommand(c, ui)
				},
			},
		},
	}
}

func topicRepository(c *cli.Context, pool *Pool) (topic.TopicRepository, error) {
	path, err := topicsPath(c)
	if err != nil {
		return nil, err
	}

	return NewTopicRepository(pool, path)
}

func topicLsCommand(c *cli.Context, ui UI) error {
	pool := &Pool{}
	defer pool.Close()

	tr, err := topicRepository(c, pool)
	if err != nil {
		return err
	}

	names, err := tr.Names()
	if err != nil {
		return err
	}

	for i, name := range names {
		fmt.Fprintf(ui.Out, "🔖 %d %s \n", i, name)
	}

	return nil
}

func topicShowCommand(c *cli.Context, name string, ui UI) error {
	pool := &Pool{}
	defer pool.Close()

	tr, err := topicRepository(c, pool)
	if err != nil {
		return err
	}

	tp, err := tr.Topic(name)
	if err != nil {
		return err
	}

	render.NewRenderer(ui.Out).Topic(tp.Exprs)
	return nil
}

func topicAddCommand(c *cli.Context, name string, args []string, ui UI) error {
	expr, err := topic.Parse(args)
	if err != nil {
		return err
	}

	pool := &Pool{}
	defer pool.Close()

	tr, err := topicRepository(c, pool)
	if err != nil {
		return err
	}

	tp, err := tr.Topic(name)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		// A missing topic is created.
		tp = topic.Topic{Name: name}
	}

	for _, e := range tp.Exprs {
		if topic.EqualExpr(e, expr) {
			return fmt.Errorf("topic %s already has expression %q", name, expr.String())
		}
	}

	tp.Exprs = append(tp.Exprs, expr)
	return tr.Write(tp)
}

func topicRmCommand(c *cli.Context, name string, ui UI) error {
	pool := &Pool{}
	defer pool.Close()

	tr, err := topicRepository(c, pool)
	if err != nil {
		return err
	}

	return tr.Delete(name)
}

func topicEditCommand(c *cli.Context, ui UI) error {
	pool := &Pool{}
	defer pool.Close()

	tr, err := topicRepository(c, pool)
	if err != nil {
		return err
	}

	topicLib, err := topicLibrary(tr)
	if err != nil {
		return err
	}

	h := edit.NewHandler(topicLib, tr, tr)
	return h.Run()
}
