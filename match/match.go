package match

import (
	"sort"
	"strings"

	sent "github.com/revelaction/sentbank/sentence"
	"github.com/revelaction/sentbank/topic"
)

// Matcher matchs sentences against a Topic (+ ArgExpr)
// A set of sentences can be matched by repeated Match calls to the
// Matcher.
type Matcher struct {
	Topic topic.Topic

	// ArgExpr is an additional term expression passed as argument to
	// the command line.
	// ArgExpr has an AND semantic, it must match the sentence in
	// addition to one or more exprs of the Topic.
	//
	// So if this is not empty, the match is: sentences that match one
	// of the Topic exprs AND this expr.
	ArgExpr topic.TermExpr

	matches []*SentenceMatch
}

// SentenceMatch represents a sentence matched by the topic or the
// argument expression, along with the token positions responsible for
// the match.
type SentenceMatch struct {
	Sentence sent.Sentence

	// topicName is the topic that has some expr which match this
	// sentence
	topicName string

	// NumExprs is the number of exprs that were matched. Used to sort
	// and filter the matched sentences.
	NumExprs int

	posSet map[int]struct{}
}

// Positions returns the sorted token indexes matched by positive
// terms. A term that only matched a concept contributes no position.
func (sm *SentenceMatch) Positions() []int {
	positions := make([]int, 0, len(sm.posSet))
	for i := range sm.posSet {
		positions = append(positions, i)
	}

	sort.Ints(positions)

	return positions
}

// TopicName return the topic name of the sentence match
// used by the render to prefix the topic in the `topics` command.
func (sm *SentenceMatch) TopicName() string {
	return sm.topicName
}

func (sm *SentenceMatch) add(positions []int) {
	for _, i := range positions {
		sm.posSet[i] = struct{}{}
	}
}

func NewMatcher(tp topic.Topic) *Matcher {
	return &Matcher{Topic: tp}
}

func (m *Matcher) AddTermExpr(expr topic.TermExpr) {
	m.ArgExpr = expr
}

// Match matches all sentences of the doc and accumulates the results.
func (m *Matcher) Match(doc sent.Doc) {
	for _, s := range doc.Sentences {
		if sm := m.MatchSentence(s); sm != nil {
			m.matches = append(m.matches, sm)
		}
	}
}

// Sentences returns the matches accumulated by Match calls.
func (m *Matcher) Sentences() []*SentenceMatch {
	return m.matches
}

// Texts returns the positive texts every match is guaranteed to contain,
// for indexed candidate retrieval. The ArgExpr texts are required in all
// matches. Topic expressions are alternatives: their texts only qualify when
// the topic has a single expression.
func (m *Matcher) Texts() []string {
	texts := m.ArgExpr.Texts()
	if len(m.Topic.Exprs) == 1 {
		texts = append(texts, m.Topic.Exprs[0].Texts()...)
	}

	return texts
}

// MatchSentence matches a posible Topic AND a possible TermExpr for a
// given sentence.
//
// The semantic is as follows:
//
//   - If there are both a Topic and a TermExpr, a sentence match only
//     happens if the TermExpr matchs AND 'one or more' of the Topic
//     expressions also match.
//
//   - If there is only a Topic, a sentence match only happens if 'one
//     or more' of the Topic expressions match.
//
//   - If there is only a TermExpr, a sentence match only happens if
//     the TermExpr matches.
func (m *Matcher) MatchSentence(s sent.Sentence) *SentenceMatch {
	hasTopic := len(m.Topic.Exprs) > 0
	hasExpr := len(m.ArgExpr) > 0

	match := &SentenceMatch{Sentence: s, posSet: map[int]struct{}{}}

	if hasExpr {
		positions, ok := exprMatch(s, m.ArgExpr)
		if !ok {
			return nil
		}

		match.add(positions)
	}

	for _, expr := range m.Topic.Exprs {
		positions, ok := exprMatch(s, expr)
		if !ok {
			continue
		}

		match.NumExprs++
		match.add(positions)
	}

	if hasTopic && match.NumExprs == 0 {
		return nil
	}

	match.topicName = m.Topic.Name

	return match
}

// exprMatch reports whether every term of the expression holds for the
// sentence, along with the token positions matched by the positive
// terms.
func exprMatch(s sent.Sentence, expr topic.TermExpr) ([]int, bool) {
	positions := []int{}

	for _, term := range expr {
		found := tokenPositions(s, term.Text)
		matched := len(found) > 0 || conceptMatch(s, term.Text)

		if term.Negate {
			if matched {
				return nil, false
			}

			continue
		}

		if !matched {
			return nil, false
		}

		positions = append(positions, found...)
	}

	return positions, true
}

// tokenPositions returns the indexes of the sentence tokens equal to
// text, ignoring case.
func tokenPositions(s sent.Sentence, text string) []int {
	positions := []int{}
	for i, t := range s.Tokens {
		if strings.EqualFold(t, text) {
			positions = append(positions, i)
		}
	}

	return positions
}

// conceptMatch reports whether any concept of the sentence contains
// the term text. Concepts are lowercased and stemmed, so a plain
// substring check over the lowercased text is stem tolerant.
func conceptMatch(s sent.Sentence, text string) bool {
	text = strings.ToLower(text)
	for _, c := range s.Concepts {
		if strings.Contains(c, text) {
			return true
		}
	}

	return false
}
