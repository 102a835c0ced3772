package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentbank/detok"
)

func newDetokCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "detok",
		Usage: "read tokenized lines on stdin, write untokenized lines",
		Action: func(c *cli.Context) error {
			return detokCommand(os.Stdin, ui)
		},
	}
}

func detokCommand(in io.Reader, ui UI) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fmt.Fprintln(ui.Out, detok.Untokenize(strings.Split(line, " ")))
	}

	return scanner.Err()
}
