package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/revelaction/sentbank/match"
	sent "github.com/revelaction/sentbank/sentence"
	"github.com/revelaction/sentbank/topic"
)

const (
	partialOffset = 6
	Defaultformat = "all"
)

var (
	Black   = "\033[1;30m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	White   = "\033[1;37m"
	Off     = "\033[0m"
	//Yellow256  = "\033[1;38;5;202m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	ClearLine = "\033[K"
)

func SupportedFormats() []string {
	return []string{"all", "untok", "part", "concepts", "aggr"}
}

type Renderer struct {
	W io.Writer

	HasColor bool

	HasPrefix bool

	PrefixDocFunc   func(*match.SentenceMatch) string
	PrefixTopicFunc func(*match.SentenceMatch) string

	// Format determines the format of the sentence
	//
	// all: print all tokens of the sentence
	// untok: print the untokenized text
	// part: print the sorrounding of the matches in the sentence, cut the rest.
	// concepts: print only the concepts of the sentence
	// aggr: aggregate the concepts of all matched sentences
	Format string

	// Show only sentences with this amount of matches
	NumMatches int
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{W: w, Format: Defaultformat}
}

// Matches renders the given sentence matches. The slice must be sorted by
// NumExprs descending for the NumMatches cut to work.
func (r *Renderer) Matches(matchesSorted []*match.SentenceMatch) {

	// if aggr format, we collect the aggregated concepts here
	aggregated := map[string]int{}

	for _, sm := range matchesSorted {
		if r.NumMatches > 0 && sm.NumExprs < r.NumMatches {
			break
		}

		if r.Format == "aggr" {
			r.aggregateConcepts(sm.Sentence, aggregated)
			continue
		}

		prefixDoc := r.buildPrefixDoc(sm)
		prefixTopic := r.buildPrefixTopic(sm)

		fmt.Fprintf(r.W, "%s%s%s\n", prefixDoc, prefixTopic, r.text(sm.Sentence, sm.Positions()))
	}

	if r.Format == "aggr" {
		r.aggrConcepts(aggregated)
	}
}

// Sentence renders a single sentence with the given prefix.
func (r *Renderer) Sentence(s sent.Sentence, prefix string) {
	fmt.Fprintf(r.W, "%s%s\n", prefix, r.text(s, nil))
}

// Topic renders topic expressions in a mode compatible with the topic
// parser: one expression per line, negated terms prefixed with !.
func (r *Renderer) Topic(exprs []topic.TermExpr) {
	for _, expr := range exprs {
		fmt.Fprintln(r.W, expr.String())
	}
}

// text formats the sentence according to the Format option.
func (r *Renderer) text(s sent.Sentence, positions []int) string {
	switch r.Format {
	case "untok":
		return s.Untokenized
	case "part":
		return r.syntagma(s, positions)
	case "concepts":
		return strings.Join(s.Concepts, ", ")
	}

	return r.tokens(s.Tokens, positions)
}

// tokens renders the token texts, coloring the matched positions.
func (r *Renderer) tokens(tokens []string, positions []int) string {
	matched := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		matched[p] = struct{}{}
	}

	parts := make([]string, 0, len(tokens))
	for i, t := range tokens {
		if _, ok := matched[i]; ok && r.HasColor {
			t = Green256 + t + Off
		}

		parts = append(parts, t)
	}

	return strings.Join(parts, " ")
}

// syntagma renders the sorroundings of the matched positions, cutting the
// rest of the sentence.
func (r *Renderer) syntagma(s sent.Sentence, positions []int) string {
	// if not matches, we print the whole sentence
	if len(positions) == 0 {
		return r.tokens(s.Tokens, positions)
	}

	// positions is sorted ascending
	firstMatch := positions[0]
	lastMatch := positions[len(positions)-1]

	first := 0
	if firstMatch > partialOffset {
		first = firstMatch - partialOffset
	}

	last := len(s.Tokens) - 1
	if last-lastMatch > partialOffset {
		last = lastMatch + partialOffset
	}

	shifted := make([]int, 0, len(positions))
	for _, p := range positions {
		shifted = append(shifted, p-first)
	}

	return r.tokens(s.Tokens[first:last+1], shifted)
}

func (r *Renderer) aggregateConcepts(s sent.Sentence, aggregated map[string]int) {
	for _, c := range s.Concepts {
		aggregated[c]++
	}
}

func (r *Renderer) aggrConcepts(aggregated map[string]int) {
	// flatten map to use sortSlice
	sl := []struct {
		NumSent int
		Concept string
	}{}

	for concept, num := range aggregated {
		sl = append(sl, struct {
			NumSent int
			Concept string
		}{num, concept})
	}

	// Sort
	sort.SliceStable(sl, func(i, j int) bool {

		// first by num sentences
		if sl[i].NumSent != sl[j].NumSent {
			return sl[i].NumSent > sl[j].NumSent
		}

		// then by len of the concept string
		if len(sl[i].Concept) != len(sl[j].Concept) {
			return len(sl[i].Concept) < len(sl[j].Concept)
		}

		return sl[i].Concept < sl[j].Concept
	})

	var prefix string
	for _, s := range sl {
		if r.HasPrefix {
			prefix = fmt.Sprintf("[%5d] ✍  ", s.NumSent)
		}

		fmt.Fprintf(r.W, "%s%s\n", prefix, s.Concept)
	}
}

func (r *Renderer) buildPrefixDoc(sm *match.SentenceMatch) string {

	if !r.HasPrefix {
		return PrefixFuncEmpty(sm)
	}

	if r.PrefixDocFunc != nil {
		return r.PrefixDocFunc(sm)
	}

	// Default
	return fmt.Sprintf("[%s %4d:%2d] ✍  ", r.title(sm.Sentence.DocID), sm.Sentence.Position, sm.NumExprs)
}

func PrefixFuncEmpty(sm *match.SentenceMatch) string {
	return ""
}

func PrefixFuncIconHand(sm *match.SentenceMatch) string {
	return fmt.Sprintf("%2d ✍  ", sm.Sentence.Position)
}

func (r *Renderer) buildPrefixTopic(sm *match.SentenceMatch) string {

	if !r.HasPrefix {
		return PrefixFuncEmpty(sm)
	}

	if r.PrefixTopicFunc != nil {
		return r.PrefixTopicFunc(sm)
	}

	topicName := sm.TopicName()
	if topicName == "" {
		return ""
	}

	if r.HasColor {
		topicName = Yellow256 + topicName + Off
	}

	return fmt.Sprintf("[%-50s] ✍  ", "🏷  "+topicName)
}

func (r *Renderer) title(docID string) string {
	var part string
	if len(docID) <= 20 {
		part = fmt.Sprintf("%-20s", docID)
	} else {
		part = docID[:20]
	}

	if !r.HasColor {
		return part
	}

	return Grey256 + part + Off
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {

	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			break
		}
	}
}

func (r *Renderer) NextPrefix() {

	// toggle
	r.HasPrefix = !r.HasPrefix
}
