package stat

import (
	"testing"

	sent "github.com/revelaction/sentbank/sentence"
)

func testLibrary() sent.Library {
	return sent.Library{
		{
			ID: "a.txt",
			Sentences: []sent.Sentence{
				{DocID: "a.txt", Tokens: []string{"w", "w", "w", "w"}, Length: 3, Concepts: []string{"x y", "y z"}},
				{DocID: "a.txt", Tokens: []string{"w", "w"}, Length: 2, Concepts: []string{"x y"}},
			},
		},
		{
			ID: "b.txt",
			Sentences: []sent.Sentence{
				{DocID: "b.txt", Tokens: []string{"w", "w", "w", "w", "w"}, Length: 5, Concepts: []string{"z q"}},
			},
		},
	}
}

func TestAggregate(t *testing.T) {
	h := NewHandler()
	for _, doc := range testLibrary() {
		h.Aggregate(doc)
	}

	stats := h.Get()

	if stats.NumDocs != 2 {
		t.Errorf("NumDocs = %d, want 2", stats.NumDocs)
	}

	if stats.NumSentences != 3 {
		t.Errorf("NumSentences = %d, want 3", stats.NumSentences)
	}

	if stats.NumTokens != 11 {
		t.Errorf("NumTokens = %d, want 11", stats.NumTokens)
	}

	if stats.NumWords != 10 {
		t.Errorf("NumWords = %d, want 10", stats.NumWords)
	}

	if stats.NumConcepts != 3 {
		t.Errorf("NumConcepts = %d, want 3", stats.NumConcepts)
	}

	if stats.WordsPerSentenceMean != 3 {
		t.Errorf("WordsPerSentenceMean = %d, want 3", stats.WordsPerSentenceMean)
	}

	if stats.LengthDis[3] != 1 || stats.LengthDis[2] != 1 || stats.LengthDis[5] != 1 {
		t.Errorf("LengthDis = %v", stats.LengthDis)
	}
}

func TestGetOnEmptyHandler(t *testing.T) {
	stats := NewHandler().Get()

	if stats.NumSentences != 0 || stats.WordsPerSentenceMean != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
}

func TestPerDoc(t *testing.T) {
	rows := PerDoc(testLibrary())

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	if rows[0].ID != "a.txt" || rows[0].NumSentences != 2 || rows[0].NumTokens != 6 || rows[0].NumWords != 5 {
		t.Errorf("rows[0] = %+v", rows[0])
	}

	if rows[1].ID != "b.txt" || rows[1].NumSentences != 1 || rows[1].NumTokens != 5 || rows[1].NumWords != 5 {
		t.Errorf("rows[1] = %+v", rows[1])
	}
}
