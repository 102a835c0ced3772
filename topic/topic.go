package topic

import (
	"errors"
	"fmt"
	"strings"
)

// Topic is a named, persisted search expression over the corpus.
type Topic struct {

	// the topic name
	Name string `json:"name"`

	// the expressions of the topic. A sentence matches the topic when
	// one or more of the expressions match.
	Exprs []TermExpr `json:"exprs"`
}

// TermExpr is a conjunction of terms: all of them must hold for a
// sentence.
type TermExpr []Term

// Term is one condition of an expression.
type Term struct {

	// Text is compared case insensitively against the sentence tokens
	// and as a substring against its concepts.
	Text string `json:"text"`

	// Negate inverts the condition: the sentence must not contain
	// Text.
	Negate bool `json:"negate,omitempty"`
}

func (e TermExpr) String() string {
	sl := []string{}
	for _, term := range e {
		if term.Negate {
			sl = append(sl, "!"+term.Text)
			continue
		}

		sl = append(sl, term.Text)
	}

	return strings.Join(sl, " ")
}

// Texts returns the unique positive term texts of the expression.
// Negated terms are excluded because they cannot be used for indexed
// candidate retrieval in storage; they are handled later by the
// matcher.
func (e TermExpr) Texts() []string {
	seen := map[string]bool{}
	texts := []string{}

	for _, term := range e {
		if term.Negate || term.Text == "" {
			continue
		}

		if !seen[term.Text] {
			seen[term.Text] = true
			texts = append(texts, term.Text)
		}
	}

	return texts
}

// TextSets returns one positive text set per expression of the topic,
// for indexed searching.
func (t Topic) TextSets() [][]string {
	sets := [][]string{}
	for _, e := range t.Exprs {
		texts := e.Texts()
		if len(texts) > 0 {
			sets = append(sets, texts)
		}
	}

	return sets
}

// Library is a collection of topics
type Library []Topic

// Names returns a list of all topic names in the library
func (l Library) Names() []string {
	names := []string{}
	for _, t := range l {
		names = append(names, t.Name)
	}

	return names
}

// Parse converts user input arguments to a TermExpr. A leading `!`
// negates the term.
func Parse(args []string) (TermExpr, error) {
	if len(args) == 0 {
		return nil, errors.New("empty expression")
	}

	var expr TermExpr
	for _, arg := range args {
		negate := strings.HasPrefix(arg, "!")
		text := strings.TrimPrefix(arg, "!")

		if text == "" {
			return nil, fmt.Errorf("term %q has no text", arg)
		}

		expr = append(expr, Term{Text: text, Negate: negate})
	}

	return expr, nil
}

// EqualExpr determines if two expressions are the same.
// the Equality requires slice order. It does not support conmutativity:
//
//	termA, termB != termB, termA
func EqualExpr(a, b TermExpr) bool {
	if len(a) != len(b) {
		return false
	}

	for i, v := range a {
		if !EqualTerm(v, b[i]) {
			return false
		}
	}

	return true
}

// EqualTerm determines if two terms are the same: same Text and same
// Negate flag.
func EqualTerm(a, b Term) bool {
	if a.Text != b.Text {
		return false
	}

	if a.Negate != b.Negate {
		return false
	}

	return true
}
