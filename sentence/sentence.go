package sentence

import (
	"strings"

	"github.com/revelaction/sentbank/detok"
)

// Sentence is one tokenized line of a source document.
type Sentence struct {
	// Tokens as split from the source line. Never mutated after
	// construction.
	Tokens []string `json:"tokens"`

	// The identifier of the source document. The loader uses the file
	// name.
	DocID string `json:"doc_id"`

	// Position is the zero based line index inside the source document.
	// Unique per document, not globally.
	Position int `json:"position"`

	// The untokenized form of the sentence, derived once at
	// construction.
	Untokenized string `json:"untokenized"`

	// Length is the number of words of the untokenized form. Not
	// necessarily the number of tokens: detokenization merges tokens
	// like `$` and `5` into `$5`.
	Length int `json:"length"`

	// Concepts of the sentence, filled by the concept extractor after
	// construction.
	Concepts []string `json:"concepts"`
}

// Doc is the ordered list of sentences of one source document.
type Doc struct {
	ID        string     `json:"id"`
	Sentences []Sentence `json:"sentences"`
}

// Library is a collection of Doc
type Library []Doc

// New builds a Sentence for the given tokens. The untokenized form and
// its word count are computed here, exactly once.
func New(tokens []string, docID string, position int) Sentence {
	untok := detok.Untokenize(tokens)

	return Sentence{
		Tokens:      tokens,
		DocID:       docID,
		Position:    position,
		Untokenized: untok,
		Length:      len(strings.Split(untok, " ")),
	}
}

// SameTokens reports whether both sentences carry identical token
// sequences. The comparison is over the raw tokens, not the untokenized
// form.
func (s Sentence) SameTokens(other Sentence) bool {
	if len(s.Tokens) != len(other.Tokens) {
		return false
	}

	for i, t := range s.Tokens {
		if t != other.Tokens[i] {
			return false
		}
	}

	return true
}

// Sentences returns the sentences of all docs of the library, in
// library order.
func (l Library) Sentences() []Sentence {
	all := []Sentence{}
	for _, doc := range l {
		all = append(all, doc.Sentences...)
	}

	return all
}
