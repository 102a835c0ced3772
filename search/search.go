package search

import (
	"context"

	"github.com/revelaction/sentbank/match"
	sent "github.com/revelaction/sentbank/sentence"
	"github.com/revelaction/sentbank/storage"
	"github.com/revelaction/sentbank/topic"
)

// Search orchestrates the strategy selection for finding sentences that
// match a topic and/or a term expression against a document repository.
type Search struct {
	matcher *match.Matcher
	repo    storage.CorpusReader
	docID   *string
}

// New creates a new Search instance with the given topic and repository.
// The topic is used to construct the internal Matcher for evaluating
// expressions.
func New(t topic.Topic, cr storage.CorpusReader) *Search {
	return &Search{
		matcher: match.NewMatcher(t),
		repo:    cr,
	}
}

// WithTermExpr adds a term expression that matched sentences must satisfy
// in addition to the topic.
func (s *Search) WithTermExpr(expr topic.TermExpr) *Search {
	s.matcher.AddTermExpr(expr)
	return s
}

// WithDocID restricts the search to a single document id.
// If set, the single-document strategy (Doc) will be favored over the
// indexed strategy (Candidates).
func (s *Search) WithDocID(id string) *Search {
	s.docID = &id
	return s
}

// Sentences calls onMatch for matched sentences, handling pagination.
// Iteration is done when the returned cursor equals the given cursor.
func (s *Search) Sentences(ctx context.Context, cursor storage.Cursor, limit int, onMatch func(*match.SentenceMatch) error) (storage.Cursor, error) {
	// Strategy 1: Single Document (No Index)
	if s.docID != nil {
		doc, err := s.repo.Doc(ctx, *s.docID)
		if err != nil {
			return cursor, err
		}

		for _, sentence := range doc.Sentences {
			if m := s.matcher.MatchSentence(sentence); m != nil {
				if err := onMatch(m); err != nil {
					return cursor, err
				}
			}
		}
		return cursor, nil
	}

	// Strategy 2: Candidates (indexed search). The repository returns a
	// superset filtered on the positive texts; each candidate is re-verified
	// here on the full tokens. With no positive texts (negated-only or
	// multi-expression topics) the superset is the whole corpus.
	return s.repo.Candidates(ctx, s.matcher.Texts(), cursor, limit, func(sentence sent.Sentence) error {
		if m := s.matcher.MatchSentence(sentence); m != nil {
			return onMatch(m)
		}
		return nil
	})
}
