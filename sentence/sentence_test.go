package sentence

import (
	"testing"
)

func TestNewDerivesUntokenizedForm(t *testing.T) {
	s := New([]string{"it", "'s", "ok", "."}, "doc-a.txt", 3)

	if s.Untokenized != "it's ok." {
		t.Errorf("Untokenized = %q, want %q", s.Untokenized, "it's ok.")
	}

	if s.DocID != "doc-a.txt" {
		t.Errorf("DocID = %q, want %q", s.DocID, "doc-a.txt")
	}

	if s.Position != 3 {
		t.Errorf("Position = %d, want 3", s.Position)
	}

	if len(s.Concepts) != 0 {
		t.Errorf("Concepts = %v, want empty", s.Concepts)
	}
}

// Length counts the words of the untokenized form, not the tokens:
// detokenization merges `$` and `12.50` into one word.
func TestNewLengthFromUntokenizedForm(t *testing.T) {
	s := New([]string{"$", "12.50", "was", "paid"}, "doc-a.txt", 0)

	if s.Untokenized != "$12.50 was paid" {
		t.Fatalf("Untokenized = %q, want %q", s.Untokenized, "$12.50 was paid")
	}

	if len(s.Tokens) != 4 {
		t.Fatalf("len(Tokens) = %d, want 4", len(s.Tokens))
	}

	if s.Length != 3 {
		t.Errorf("Length = %d, want 3", s.Length)
	}
}

func TestSameTokens(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want bool
	}{
		{"identical", []string{"a", "b"}, []string{"a", "b"}, true},
		{"different token", []string{"a", "b"}, []string{"a", "c"}, false},
		{"different length", []string{"a", "b"}, []string{"a", "b", "c"}, false},
		{"case sensitive", []string{"a"}, []string{"A"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.a, "x.txt", 0)
			b := New(tt.b, "y.txt", 9)

			if got := a.SameTokens(b); got != tt.want {
				t.Errorf("SameTokens = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLibrarySentences(t *testing.T) {
	lib := Library{
		{ID: "a.txt", Sentences: []Sentence{New([]string{"one"}, "a.txt", 0)}},
		{ID: "b.txt", Sentences: []Sentence{
			New([]string{"two"}, "b.txt", 0),
			New([]string{"three"}, "b.txt", 1),
		}},
	}

	all := lib.Sentences()
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}

	if all[0].DocID != "a.txt" || all[2].Untokenized != "three" {
		t.Errorf("unexpected order: %v", all)
	}
}
