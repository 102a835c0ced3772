package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/sentbank/match"
	sent "github.com/revelaction/sentbank/sentence"
)

// JSONRenderer writes SentenceMatch results as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// jsonMatch is the serialized form of a sentence match.
type jsonMatch struct {
	Topic     string        `json:"topic,omitempty"`
	NumExprs  int           `json:"num_exprs"`
	Positions []int         `json:"positions"`
	Sentence  sent.Sentence `json:"sentence"`
}

// Render serializes sentence match results as a JSON array.
func (r *JSONRenderer) Render(results []*match.SentenceMatch) error {
	out := make([]jsonMatch, 0, len(results))
	for _, sm := range results {
		out = append(out, jsonMatch{
			Topic:     sm.TopicName(),
			NumExprs:  sm.NumExprs,
			Positions: sm.Positions(),
			Sentence:  sm.Sentence,
		})
	}

	return json.NewEncoder(r.W).Encode(out)
}
