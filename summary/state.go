// Package summary selects a subset of corpus sentences that covers the
// highest weighted concepts within a word budget.
package summary

import (
	sent "github.com/revelaction/sentbank/sentence"
)

// State tracks a candidate subset of sentences: the selected indexes,
// the concepts the subset covers with occurrence counts, the total
// word length and the coverage score.
type State struct {
	Subset   map[int]struct{}
	Concepts map[string]int
	Length   int
	Score    int
}

func NewState() *State {
	return &State{
		Subset:   map[int]struct{}{},
		Concepts: map[string]int{},
	}
}

// Add puts sentence i into the subset. The score grows by the weight
// of every concept the subset did not cover before.
func (st *State) Add(i int, s sent.Sentence, weights map[string]int) {
	if _, ok := st.Subset[i]; ok {
		return
	}

	st.Subset[i] = struct{}{}
	st.Length += s.Length

	for _, c := range s.Concepts {
		st.Concepts[c]++
		if st.Concepts[c] == 1 {
			st.Score += weights[c]
		}
	}
}

// Remove takes sentence i out of the subset, reversing Add. A concept
// only stops counting when no selected sentence carries it anymore.
func (st *State) Remove(i int, s sent.Sentence, weights map[string]int) {
	if _, ok := st.Subset[i]; !ok {
		return
	}

	delete(st.Subset, i)
	st.Length -= s.Length

	for _, c := range s.Concepts {
		st.Concepts[c]--
		if st.Concepts[c] == 0 {
			st.Score -= weights[c]
			delete(st.Concepts, c)
		}
	}
}

// Gain returns the score increase that adding sentence s would cause:
// the summed weight of its concepts not yet covered by the subset.
// Duplicate concepts inside the sentence count once.
func (st *State) Gain(s sent.Sentence, weights map[string]int) int {
	gain := 0
	seen := map[string]struct{}{}

	for _, c := range s.Concepts {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}

		if st.Concepts[c] == 0 {
			gain += weights[c]
		}
	}

	return gain
}
