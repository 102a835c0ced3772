package summary

import (
	"sort"

	sent "github.com/revelaction/sentbank/sentence"
)

// Greedy selects sentences until no remaining one both fits the word
// budget and covers an uncovered concept. Each round picks the
// sentence with the best uncovered concept weight per word; ties keep
// the earlier sentence. The returned indexes are in corpus order.
func Greedy(sentences []sent.Sentence, weights map[string]int, budget int) []int {
	st := NewState()

	for {
		best := -1
		bestRatio := 0.0

		for i, s := range sentences {
			if _, ok := st.Subset[i]; ok {
				continue
			}

			if st.Length+s.Length > budget {
				continue
			}

			gain := st.Gain(s, weights)
			if gain == 0 {
				continue
			}

			ratio := float64(gain) / float64(s.Length)
			if ratio > bestRatio {
				bestRatio = ratio
				best = i
			}
		}

		if best < 0 {
			break
		}

		st.Add(best, sentences[best], weights)
	}

	selected := make([]int, 0, len(st.Subset))
	for i := range st.Subset {
		selected = append(selected, i)
	}

	sort.Ints(selected)

	return selected
}
