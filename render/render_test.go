package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/revelaction/sentbank/match"
	sent "github.com/revelaction/sentbank/sentence"
	"github.com/revelaction/sentbank/topic"
)

var weather = topic.Topic{Name: "weather", Exprs: []topic.TermExpr{
	{{Text: "storm"}},
	{{Text: "rain"}},
}}

func newMatch(t *testing.T, line string, tp topic.Topic) *match.SentenceMatch {
	t.Helper()

	s := sent.New(strings.Split(line, " "), "a.txt", 0)
	sm := match.NewMatcher(tp).MatchSentence(s)
	if sm == nil {
		t.Fatalf("no match for %q", line)
	}

	return sm
}

func TestRendererFormatAll(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.Matches([]*match.SentenceMatch{newMatch(t, "the storm hit .", weather)})

	if got := buf.String(); got != "the storm hit .\n" {
		t.Errorf("got %q, want \"the storm hit .\\n\"", got)
	}
}

func TestRendererFormatUntok(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.Format = "untok"

	r.Matches([]*match.SentenceMatch{newMatch(t, "the storm hit .", weather)})

	if got := buf.String(); got != "the storm hit.\n" {
		t.Errorf("got %q, want \"the storm hit.\\n\"", got)
	}
}

func TestRendererFormatPart(t *testing.T) {
	line := "w0 w1 w2 w3 w4 w5 w6 w7 w8 w9 storm w11 w12 w13 w14"

	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.Format = "part"

	r.Matches([]*match.SentenceMatch{newMatch(t, line, weather)})

	want := "w4 w5 w6 w7 w8 w9 storm w11 w12 w13 w14\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRendererFormatConcepts(t *testing.T) {
	s := sent.New(strings.Split("the storm hit .", " "), "a.txt", 0)
	s.Concepts = []string{"the storm", "storm hit"}

	sm := match.NewMatcher(weather).MatchSentence(s)
	if sm == nil {
		t.Fatal("expected a match")
	}

	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.Format = "concepts"

	r.Matches([]*match.SentenceMatch{sm})

	if got := buf.String(); got != "the storm, storm hit\n" {
		t.Errorf("got %q, want \"the storm, storm hit\\n\"", got)
	}
}

func TestRendererFormatAggr(t *testing.T) {
	first := sent.New(strings.Split("the storm hit .", " "), "a.txt", 0)
	first.Concepts = []string{"the storm", "storm hit"}

	second := sent.New(strings.Split("another storm .", " "), "a.txt", 1)
	second.Concepts = []string{"the storm"}

	matcher := match.NewMatcher(weather)
	matches := []*match.SentenceMatch{
		matcher.MatchSentence(first),
		matcher.MatchSentence(second),
	}

	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.Format = "aggr"

	r.Matches(matches)

	want := "the storm\nstorm hit\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRendererNumMatchesCut(t *testing.T) {
	matches := []*match.SentenceMatch{
		newMatch(t, "storm and rain .", weather),
		newMatch(t, "only storm .", weather),
	}

	if matches[0].NumExprs != 2 || matches[1].NumExprs != 1 {
		t.Fatalf("got NumExprs %d,%d, want 2,1", matches[0].NumExprs, matches[1].NumExprs)
	}

	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.NumMatches = 2

	r.Matches(matches)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}

	if lines[0] != "storm and rain ." {
		t.Errorf("got %q, want \"storm and rain .\"", lines[0])
	}
}

func TestRendererPrefix(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.HasPrefix = true

	r.Matches([]*match.SentenceMatch{newMatch(t, "the storm hit .", weather)})

	got := buf.String()
	if !strings.Contains(got, "a.txt") {
		t.Errorf("got %q, want doc id in prefix", got)
	}

	if !strings.Contains(got, "🏷") {
		t.Errorf("got %q, want topic prefix", got)
	}

	if strings.Contains(got, "\033") {
		t.Errorf("got %q, want no escape codes without color", got)
	}
}

func TestRendererColor(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.HasColor = true

	r.Matches([]*match.SentenceMatch{newMatch(t, "the storm hit .", weather)})

	if !strings.Contains(buf.String(), Green256+"storm"+Off) {
		t.Errorf("got %q, want colored match", buf.String())
	}
}

func TestRendererSentence(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.Format = "untok"

	r.Sentence(sent.New(strings.Split("it 's ok .", " "), "a.txt", 2), " 2 ✍  ")

	if got := buf.String(); got != " 2 ✍  it's ok.\n" {
		t.Errorf("got %q, want \" 2 ✍  it's ok.\\n\"", got)
	}
}

func TestRendererTopic(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.Topic([]topic.TermExpr{
		{{Text: "storm"}},
		{{Text: "rain"}, {Text: "wind", Negate: true}},
	})

	if got := buf.String(); got != "storm\nrain !wind\n" {
		t.Errorf("got %q, want \"storm\\nrain !wind\\n\"", got)
	}
}

func TestNextFormat(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})

	want := []string{"untok", "part", "concepts", "aggr", "all"}
	for _, w := range want {
		r.NextFormat()
		if r.Format != w {
			t.Fatalf("got format %q, want %q", r.Format, w)
		}
	}
}
