package corpus

import (
	sent "github.com/revelaction/sentbank/sentence"
)

// PruneOptions selects the checks applied by Prune. The zero value of
// a field disables its check; a MaxLength of 0 means no upper bound.
type PruneOptions struct {
	// MinLength drops sentences with fewer words.
	MinLength int

	// MaxLength drops sentences with more words. 0 disables the check.
	MaxLength int

	// RemoveCitations drops sentences fully wrapped in quotation
	// markers.
	RemoveCitations bool

	// RemoveRedundancy drops sentences whose token sequence already
	// occurs among the kept ones.
	RemoveRedundancy bool
}

// Prune returns the sentences that pass all enabled checks, preserving
// their relative order. Per sentence the checks run in a fixed order
// and short circuit on the first failure: minimum length, maximum
// length, citation, redundancy.
//
// The redundancy check compares raw token sequences against the
// sentences already kept in this call, not against the full input. Of
// several identical sentences the first eligible one survives.
// Surviving sentences are never mutated.
func Prune(sentences []sent.Sentence, opts PruneOptions) []sent.Sentence {
	kept := []sent.Sentence{}

	for _, s := range sentences {
		if s.Length < opts.MinLength {
			continue
		}

		if opts.MaxLength > 0 && s.Length > opts.MaxLength {
			continue
		}

		if opts.RemoveCitations && isCitation(s) {
			continue
		}

		if opts.RemoveRedundancy && isRedundant(s, kept) {
			continue
		}

		kept = append(kept, s)
	}

	return kept
}

// Prune replaces the corpus sentences with the filtered subsequence.
func (c *Corpus) Prune(opts PruneOptions) {
	c.Sentences = Prune(c.Sentences, opts)
}

// isCitation reports whether the whole sentence is wrapped in
// quotation markers: an opening marker as first token and a closing
// marker as last token.
func isCitation(s sent.Sentence) bool {
	first := s.Tokens[0]
	last := s.Tokens[len(s.Tokens)-1]

	open := first == "``" || first == `"`
	closed := last == "''" || last == `"`

	return open && closed
}

func isRedundant(s sent.Sentence, kept []sent.Sentence) bool {
	for _, k := range kept {
		if s.SameTokens(k) {
			return true
		}
	}

	return false
}
