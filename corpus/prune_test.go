package corpus

import (
	"fmt"
	"testing"

	sent "github.com/revelaction/sentbank/sentence"
)

// words builds n distinct plain tokens, so the untokenized length of
// the sentence equals n.
func words(n int) []string {
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("w%d", i)
	}

	return tokens
}

func TestPruneMinMaxLength(t *testing.T) {
	sentences := []sent.Sentence{
		sent.New(words(2), "a.txt", 0),
		sent.New(words(10), "a.txt", 1),
		sent.New(words(40), "a.txt", 2),
	}

	kept := Prune(sentences, PruneOptions{MinLength: 5, MaxLength: 30})

	if len(kept) != 1 {
		t.Fatalf("len(kept) = %d, want 1", len(kept))
	}

	if kept[0].Length != 10 {
		t.Errorf("kept[0].Length = %d, want 10", kept[0].Length)
	}
}

func TestPruneMaxLengthZeroDisabled(t *testing.T) {
	sentences := []sent.Sentence{sent.New(words(40), "a.txt", 0)}

	kept := Prune(sentences, PruneOptions{MinLength: 5})

	if len(kept) != 1 {
		t.Fatalf("len(kept) = %d, want 1", len(kept))
	}
}

func TestPruneNoChecksKeepsEverything(t *testing.T) {
	sentences := []sent.Sentence{
		sent.New(words(1), "a.txt", 0),
		sent.New(words(50), "a.txt", 1),
	}

	kept := Prune(sentences, PruneOptions{})

	if len(kept) != 2 {
		t.Fatalf("len(kept) = %d, want 2", len(kept))
	}
}

func TestPruneCitations(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   bool // dropped when RemoveCitations is on
	}{
		{"backtick quoted", []string{"``", "alpha", "beta", "''"}, true},
		{"straight quoted", []string{`"`, "alpha", "beta", `"`}, true},
		{"mixed markers", []string{"``", "alpha", "beta", `"`}, true},
		{"open only", []string{"``", "alpha", "beta"}, false},
		{"close only", []string{"alpha", "beta", "''"}, false},
		{"unquoted", []string{"alpha", "beta", "gamma"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentences := []sent.Sentence{sent.New(tt.tokens, "a.txt", 0)}

			kept := Prune(sentences, PruneOptions{RemoveCitations: true})
			dropped := len(kept) == 0

			if dropped != tt.want {
				t.Errorf("dropped = %v, want %v", dropped, tt.want)
			}

			// with the check off the sentence always survives
			kept = Prune(sentences, PruneOptions{})
			if len(kept) != 1 {
				t.Errorf("citation check off: len(kept) = %d, want 1", len(kept))
			}
		})
	}
}

func TestPruneRedundancy(t *testing.T) {
	dup := []string{"the", "same", "old", "story"}

	sentences := []sent.Sentence{
		sent.New(dup, "a.txt", 0),
		sent.New(words(4), "a.txt", 1),
		sent.New(dup, "b.txt", 0),
		sent.New(dup, "c.txt", 5),
	}

	kept := Prune(sentences, PruneOptions{RemoveRedundancy: true})

	if len(kept) != 2 {
		t.Fatalf("len(kept) = %d, want 2", len(kept))
	}

	// the first encountered duplicate survives
	if kept[0].DocID != "a.txt" || kept[0].Position != 0 {
		t.Errorf("kept[0] = %s:%d, want a.txt:0", kept[0].DocID, kept[0].Position)
	}

	// with the check off all of them survive
	kept = Prune(sentences, PruneOptions{})
	if len(kept) != 4 {
		t.Errorf("redundancy check off: len(kept) = %d, want 4", len(kept))
	}
}

func TestPrunePreservesOrder(t *testing.T) {
	sentences := []sent.Sentence{
		sent.New(words(8), "a.txt", 0),
		sent.New(words(2), "a.txt", 1), // dropped by min
		sent.New(words(6), "a.txt", 2),
		sent.New(words(9), "b.txt", 0),
	}

	kept := Prune(sentences, PruneOptions{MinLength: 5})

	want := []int{0, 2, 0}
	wantDoc := []string{"a.txt", "a.txt", "b.txt"}

	if len(kept) != 3 {
		t.Fatalf("len(kept) = %d, want 3", len(kept))
	}

	for i := range kept {
		if kept[i].DocID != wantDoc[i] || kept[i].Position != want[i] {
			t.Errorf("kept[%d] = %s:%d, want %s:%d",
				i, kept[i].DocID, kept[i].Position, wantDoc[i], want[i])
		}
	}
}

func TestCorpusPruneInPlace(t *testing.T) {
	c := New("unused")
	c.Sentences = []sent.Sentence{
		sent.New(words(2), "a.txt", 0),
		sent.New(words(10), "a.txt", 1),
	}

	c.Prune(PruneOptions{MinLength: 5})

	if len(c.Sentences) != 1 {
		t.Fatalf("len(Sentences) = %d, want 1", len(c.Sentences))
	}

	if c.Sentences[0].Length != 10 {
		t.Errorf("survivor length = %d, want 10", c.Sentences[0].Length)
	}
}
