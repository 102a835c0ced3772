// Package concept extracts word n-gram concepts from corpus sentences
// and weights them by document frequency.
package concept

import (
	_ "embed"
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
	sent "github.com/revelaction/sentbank/sentence"
)

//go:embed stoplist/en.txt
var stoplistEN string

var alnum = regexp.MustCompile(`[a-zA-Z0-9]`)

// Extractor computes the stemmed n-gram concepts of sentences.
type Extractor struct {
	// N is the n-gram size in words.
	N int

	stoplist map[string]struct{}
}

func NewExtractor(n int) *Extractor {
	stoplist := map[string]struct{}{}
	for _, w := range strings.Fields(stoplistEN) {
		stoplist[w] = struct{}{}
	}

	return &Extractor{N: n, stoplist: stoplist}
}

// Extract fills the Concepts of every sentence in place.
func (e *Extractor) Extract(sentences []sent.Sentence) {
	for i := range sentences {
		sentences[i].Concepts = e.Concepts(sentences[i])
	}
}

// Concepts returns the n-gram concepts of one sentence: every window
// of N tokens, lowercased and stemmed, joined with single spaces.
// Windows with a punctuation only token and windows made entirely of
// stopwords are discarded.
func (e *Extractor) Concepts(s sent.Sentence) []string {
	concepts := []string{}

WINDOW:
	for j := 0; j+e.N <= len(s.Tokens); j++ {
		ngram := make([]string, e.N)
		for k := 0; k < e.N; k++ {
			ngram[k] = strings.ToLower(s.Tokens[j+k])
		}

		stops := 0
		for _, t := range ngram {
			if !alnum.MatchString(t) {
				continue WINDOW
			}

			if _, ok := e.stoplist[t]; ok {
				stops++
			}
		}

		if stops == len(ngram) {
			continue
		}

		for k, t := range ngram {
			ngram[k] = english.Stem(t, true)
		}

		concepts = append(concepts, strings.Join(ngram, " "))
	}

	return concepts
}

// Weights returns the document frequency of every concept: the number
// of distinct documents whose sentences carry it.
func Weights(sentences []sent.Sentence) map[string]int {
	docs := map[string]map[string]struct{}{}

	for _, s := range sentences {
		for _, c := range s.Concepts {
			if docs[c] == nil {
				docs[c] = map[string]struct{}{}
			}

			docs[c][s.DocID] = struct{}{}
		}
	}

	weights := make(map[string]int, len(docs))
	for c, ids := range docs {
		weights[c] = len(ids)
	}

	return weights
}

// Prune drops concepts with a weight below threshold, both from the
// weights map and from the concept list of every sentence.
func Prune(weights map[string]int, sentences []sent.Sentence, threshold int) {
	for c, w := range weights {
		if w < threshold {
			delete(weights, c)
		}
	}

	for i := range sentences {
		kept := []string{}
		for _, c := range sentences[i].Concepts {
			if _, ok := weights[c]; ok {
				kept = append(kept, c)
			}
		}

		sentences[i].Concepts = kept
	}
}
