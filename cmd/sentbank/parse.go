package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentbank/render"
)

// formatValue restricts the -f flag to the render formats plus json.
type formatValue struct {
	value string
}

var _ cli.Generic = (*formatValue)(nil)

func newFormatValue() *formatValue {
	return &formatValue{value: render.Defaultformat}
}

func formats() []string {
	return append(render.SupportedFormats(), "json")
}

func (f *formatValue) Set(value string) error {
	for _, a := range formats() {
		if a == value {
			f.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(formats(), ", "))
}

func (f *formatValue) String() string {
	return f.value
}

// optionalInt distinguishes an absent integer flag from a zero one.
type optionalInt struct {
	value *int
}

var _ cli.Generic = (*optionalInt)(nil)

func (o *optionalInt) Set(value string) error {
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("not an integer: %s", value)
	}
	o.value = &i
	return nil
}

func (o *optionalInt) String() string {
	if o.value == nil {
		return ""
	}
	return strconv.Itoa(*o.value)
}

// Shared repository flags. The paths default through the environment so a
// configured shell needs no flags at all.
func storeFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "store",
		Usage:   "corpus store: a directory of JSON docs or a sqlite file",
		EnvVars: []string{"SENTBANK_DOC_PATH"},
	}
}

func topicsFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "topics",
		Usage:   "topic store: a directory of JSON topics or a sqlite file",
		EnvVars: []string{"SENTBANK_TOPIC_PATH"},
	}
}

// storePath resolves the corpus store path from the flag or the config
// file.
func storePath(c *cli.Context) (string, error) {
	if path := c.String("store"); path != "" {
		return path, nil
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return "", err
	}

	if cfg.Paths.DocPath == "" {
		return "", fmt.Errorf("no corpus store: set --store, SENTBANK_DOC_PATH or paths.doc_path")
	}

	return cfg.Paths.DocPath, nil
}

func topicsPath(c *cli.Context) (string, error) {
	if path := c.String("topics"); path != "" {
		return path, nil
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return "", err
	}

	if cfg.Paths.TopicPath == "" {
		return "", fmt.Errorf("no topic store: set --topics, SENTBANK_TOPIC_PATH or paths.topic_path")
	}

	return cfg.Paths.TopicPath, nil
}
