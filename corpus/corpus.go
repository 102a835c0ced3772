// Package corpus loads directories of pre-tokenized documents into
// Sentence records and filters them for downstream scoring.
package corpus

import (
	"path/filepath"
	"strings"

	"github.com/revelaction/sentbank/file"
	sent "github.com/revelaction/sentbank/sentence"
)

// Corpus is the ordered collection of sentences read from a document
// directory. Sentences are appended in file name then line order.
type Corpus struct {
	Dir string

	Sentences []sent.Sentence
}

func New(dir string) *Corpus {
	return &Corpus{Dir: dir}
}

// ReadDocuments reads every file of the corpus directory whose name
// ends in ext. A missing directory, an unreadable file or a non UTF-8
// file aborts the whole load; there is no partial success.
func (c *Corpus) ReadDocuments(ext string) error {
	paths, err := file.List(c.Dir, ext)
	if err != nil {
		return err
	}

	for _, path := range paths {
		if err := c.ReadDocument(path); err != nil {
			return err
		}
	}

	return nil
}

// ReadDocument appends the sentences of one document file. The doc id
// of the sentences is the file name.
//
// Lines are split on single spaces, so a run of spaces inside a line
// yields empty tokens; that is the tokenizer output format, not a
// defect to repair here. Lines that are empty after stripping are
// skipped but still advance the position index.
func (c *Corpus) ReadDocument(path string) error {
	lines, err := file.Read(path)
	if err != nil {
		return err
	}

	docID := filepath.Base(path)
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		tokens := strings.Split(line, " ")
		c.Sentences = append(c.Sentences, sent.New(tokens, docID, i))
	}

	return nil
}

// Docs groups the corpus sentences by document, in first seen order.
func (c *Corpus) Docs() sent.Library {
	index := map[string]int{}
	lib := sent.Library{}

	for _, s := range c.Sentences {
		i, ok := index[s.DocID]
		if !ok {
			lib = append(lib, sent.Doc{ID: s.DocID})
			i = len(lib) - 1
			index[s.DocID] = i
		}

		lib[i].Sentences = append(lib[i].Sentences, s)
	}

	return lib
}
