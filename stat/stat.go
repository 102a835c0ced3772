package stat

import (
	sent "github.com/revelaction/sentbank/sentence"
)

type Handler struct {
	stats    Stats
	concepts map[string]struct{}
}

type Stats struct {
	NumDocs      int
	NumSentences int
	NumTokens    int

	// NumWords counts the words of the untokenized forms, the sentence
	// Length field. Differs from NumTokens wherever detokenization
	// merged tokens.
	NumWords int

	// Distinct concepts over all aggregated docs.
	NumConcepts int

	WordsPerSentenceMean int
	LengthDis            map[int]int
}

func NewHandler() *Handler {
	stats := Stats{LengthDis: map[int]int{}}
	return &Handler{
		stats:    stats,
		concepts: map[string]struct{}{},
	}
}

// Aggregate folds one doc into the running stats.
func (h *Handler) Aggregate(doc sent.Doc) {
	h.stats.NumDocs++
	h.stats.NumSentences += len(doc.Sentences)

	for _, s := range doc.Sentences {
		h.stats.NumTokens += len(s.Tokens)
		h.stats.NumWords += s.Length
		h.stats.LengthDis[s.Length]++

		for _, c := range s.Concepts {
			h.concepts[c] = struct{}{}
		}
	}
}

func (h *Handler) Get() Stats {
	h.stats.NumConcepts = len(h.concepts)

	if h.stats.NumSentences > 0 {
		h.stats.WordsPerSentenceMean = h.stats.NumWords / h.stats.NumSentences
	}

	return h.stats
}

// DocStat is the per document row of the stat table.
type DocStat struct {
	ID           string
	NumSentences int
	NumTokens    int
	NumWords     int
}

// PerDoc returns one row per doc, in library order.
func PerDoc(lib sent.Library) []DocStat {
	rows := make([]DocStat, 0, len(lib))

	for _, doc := range lib {
		row := DocStat{ID: doc.ID, NumSentences: len(doc.Sentences)}
		for _, s := range doc.Sentences {
			row.NumTokens += len(s.Tokens)
			row.NumWords += s.Length
		}

		rows = append(rows, row)
	}

	return rows
}
