// Package detok reconstructs natural text from a pre-tokenized sentence.
//
// The reconstruction is a fixed, ordered sequence of rewrite passes over
// the whole joined string, not a token local transformation: several
// patterns match across token boundaries, and later passes depend on
// spacing removed or kept by earlier ones.
package detok

import (
	"regexp"
	"strings"
)

// pass is one global rewrite over the whole string.
type pass struct {
	re   *regexp.Regexp
	repl string
}

var spaceRun = regexp.MustCompile(`\s+`)

// The rewrite table. The order is part of the contract: reordering
// changes the output wherever two trigger contexts overlap.
var passes = []pass{
	// contraction tokens fuse to the previous word: it 's -> it's.
	// Only lowercase contractions fuse.
	{regexp.MustCompile(` ('[a-z]+) `), "$1 "},

	// clitic punctuation inside the sentence: word . -> word.
	{regexp.MustCompile(` ([.;,-]) `), "$1 "},

	// sentence final punctuation
	{regexp.MustCompile(` ([.;,?!-])$`), "$1"},

	// underscore emphasis span: _ word word _ -> _word word_
	{regexp.MustCompile(` _ (.+) _ `), " _${1}_ "},

	// currency amounts: $ 12.50 -> $12.50
	{regexp.MustCompile(`(^| )\$ ([0-9.]+) `), "${1}$$${2} "},

	// trailing possessive apostrophe: dogs ' bone -> dogs' bone
	{regexp.MustCompile(` ' `), "' "},

	// parentheses attach to the enclosed text
	{regexp.MustCompile(`([\W\s])\( `), "$1("},
	{regexp.MustCompile(` \)([\W\s])`), ")$1"},

	// quote open and close markers
	{regexp.MustCompile("`` "), "``"},
	{regexp.MustCompile(` ''`), "''"},

	// negation clitic: does n't -> doesn't
	{regexp.MustCompile(` n't`), "n't"},

	// a straight double quote pair hugs the quoted span
	{regexp.MustCompile(`(^| )" ([^"]+) "( |$)`), `${1}"${2}"${3}`},

	// clock times: 3 : 15 p.m. -> 3:15 p.m.
	{regexp.MustCompile(`([0-9]+) : ([0-9]+ [ap]\.m\.)`), "$1:$2"},

	// quotes at the string edges
	{regexp.MustCompile(`^" `), `"`},
	{regexp.MustCompile(` "$`), `"`},
}

// Untokenize joins the tokens into a single string that approximates
// the original sentence before tokenization.
//
// The result is deterministic, contains no whitespace runs and no
// leading or trailing whitespace. An empty token list yields the empty
// string. Tokens that no pass matches pass through unchanged.
func Untokenize(tokens []string) string {
	text := collapse(strings.Join(tokens, " "))

	for _, p := range passes {
		text = p.re.ReplaceAllString(text, p.repl)
	}

	return collapse(text)
}

// collapse trims the string and reduces every whitespace run to a
// single space.
func collapse(text string) string {
	return spaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
}
