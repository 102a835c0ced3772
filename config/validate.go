package config

import (
	"errors"
	"fmt"
	"strings"
)

var supportedFormats = []string{"all", "untok", "part", "concepts", "aggr", "json"}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCorpus(); err != nil {
		return err
	}
	if err := c.validatePrune(); err != nil {
		return err
	}
	if err := c.validateConcepts(); err != nil {
		return err
	}
	if err := c.validateSummary(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCorpus() error {
	if !strings.HasPrefix(c.Corpus.Extension, ".") {
		return fmt.Errorf("corpus.extension must start with a dot, got %q", c.Corpus.Extension)
	}
	return nil
}

func (c *Config) validatePrune() error {
	if c.Prune.MinLength < 0 {
		return errors.New("prune.min_length must be >= 0")
	}
	if c.Prune.MaxLength < 0 {
		return errors.New("prune.max_length must be >= 0")
	}
	if c.Prune.MaxLength > 0 && c.Prune.MaxLength < c.Prune.MinLength {
		return errors.New("prune.max_length must be >= prune.min_length")
	}
	return nil
}

func (c *Config) validateConcepts() error {
	if c.Concepts.NgramSize < 1 {
		return errors.New("concepts.ngram_size must be >= 1")
	}
	if c.Concepts.WeightThreshold < 0 {
		return errors.New("concepts.weight_threshold must be >= 0")
	}
	return nil
}

func (c *Config) validateSummary() error {
	if c.Summary.Budget <= 0 {
		return errors.New("summary.budget must be positive")
	}
	return nil
}

func (c *Config) validateRender() error {
	for _, f := range supportedFormats {
		if c.Render.Format == f {
			return nil
		}
	}
	return fmt.Errorf("render.format must be one of %s, got %q", strings.Join(supportedFormats, ", "), c.Render.Format)
}
