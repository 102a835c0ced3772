package query

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/revelaction/sentbank/match"
	"github.com/revelaction/sentbank/render"
	"github.com/revelaction/sentbank/search"
	"github.com/revelaction/sentbank/storage"
	"github.com/revelaction/sentbank/topic"

	"github.com/c-bata/go-prompt"
)

const (
	// completionThreshold is the minimum typed length before term
	// suggestions are offered.
	completionThreshold = 2

	// topicPrefix is the character in the prompt that prefixes the topic
	topicPrefix = "@"
)

type Handler struct {
	Repo         storage.CorpusReader
	TopicLibrary topic.Library
	Renderer     *render.Renderer
}

func NewHandler(cr storage.CorpusReader, tl topic.Library, r *render.Renderer) *Handler {
	return &Handler{
		Repo:         cr,
		TopicLibrary: tl,
		Renderer:     r,
	}
}

func (h *Handler) Run(ctx context.Context) error {

	fmt.Println("🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, 🔧 quit")
	// Get all topics from the library directly
	topicNames := h.TopicLibrary.Names()

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔖 ", h.completer(topicNames),
			prompt.OptionTitle("sentbank query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Println("Format set to: " + h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Println("Prefix set to " + fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)
		// return the topic
		tp, expr, err := h.parse(in)
		if err != nil {
			continue
		}

		srch := search.New(tp, h.Repo)
		if len(expr) > 0 {
			srch = srch.WithTermExpr(expr)
		}

		limit := 2000 // Limit candidates per query to avoid hang

		var results []*match.SentenceMatch

		cursor := storage.Cursor(0)
		fetched := 0
		for {
			newCursor, err := srch.Sentences(ctx, cursor, 500, func(sm *match.SentenceMatch) error {
				results = append(results, sm)
				return nil
			})
			if err != nil {
				fmt.Printf("Error fetching candidates: %v\n", err)
				break
			}
			if cursor == newCursor {
				break // No more progress
			}

			fetched += 500
			if fetched >= limit {
				break
			}
			cursor = newCursor
		}

		// Sort results by relevance (NumExprs > DocID > Position)
		sort.Slice(results, func(i, j int) bool {
			if results[i].NumExprs != results[j].NumExprs {
				return results[i].NumExprs > results[j].NumExprs
			}
			if results[i].Sentence.DocID != results[j].Sentence.DocID {
				return results[i].Sentence.DocID < results[j].Sentence.DocID
			}
			return results[i].Sentence.Position < results[j].Sentence.Position
		})

		h.Renderer.Matches(results)
	}
}

func (h *Handler) completer(topicNames []string) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		// Only one character in line
		if "" == befCursor {
			return s
		}

		tokens := strings.Split(befCursor, " ")
		firstToken := tokens[0]

		if len(tokens) == 1 {
			s = append(s, h.completeTopic(firstToken)...)
			s = append(s, h.completeExpressionItem(firstToken)...)
			return s
		}

		// len > 1
		isFirstTopic := false
		for _, t := range h.TopicLibrary {
			if t.Name == strings.TrimPrefix(firstToken, topicPrefix) {
				isFirstTopic = true
				break
			}
		}

		// len = 2 and first is topic
		if len(tokens) == 2 {
			if isFirstTopic {
				s = append(s, h.completeExpressionItem(tokens[1])...)
			}

			return s
		}

		// len > 2, complete as expr string
		rest := befCursor

		if isFirstTopic {
			rest = befCursor[len(firstToken)+1:]
		}

		for _, topic := range h.TopicLibrary {
			for _, expr := range topic.Exprs {
				if len(rest) > len(expr.String()) {
					continue
				}

				//
				if strings.HasPrefix(expr.String(), rest) {
					wordBeforeLen := len(in.GetWordBeforeCursor())

					start := len(rest) - wordBeforeLen
					restExpr := expr.String()[start:]
					s = append(s, prompt.Suggest{Text: restExpr, Description: topic.Name})
					continue
				}
			}
		}

		return s
	}
}

func (h *Handler) completeTopic(token string) (s []prompt.Suggest) {
	name := strings.TrimPrefix(token, topicPrefix)

	for _, tp := range h.TopicLibrary {
		if strings.HasPrefix(tp.Name, name) {
			text := tp.Name
			if strings.HasPrefix(token, topicPrefix) {
				text = topicPrefix + tp.Name
			}

			s = append(s, prompt.Suggest{Text: text, Description: "🔖 " + tp.Name})
		}
	}

	return s
}

func (h *Handler) completeExpressionItem(token string) (s []prompt.Suggest) {
	if len(token) < completionThreshold {
		return s
	}

	for _, tp := range h.TopicLibrary {
		for _, expr := range tp.Exprs {
			for _, term := range expr {
				if strings.HasPrefix(term.Text, token) {
					s = append(s, prompt.Suggest{Text: expr.String(), Description: tp.Name})
					break
				}
			}
		}
	}

	return s
}

func (h *Handler) parse(in string) (topic.Topic, topic.TermExpr, error) {

	tp := topic.Topic{}

	tokens := strings.Fields(in)

	if len(tokens) == 0 {
		return tp, nil, errors.New("No topic given to refine")
	}

	isFirstTopic := false

	// First token must be a valid topic, with or without the prefix
	first := strings.TrimPrefix(tokens[0], topicPrefix)
	for _, t := range h.TopicLibrary {
		if t.Name == first {
			isFirstTopic = true
			tp = t
			break
		}
	}

	expr := tokens
	if isFirstTopic {
		expr = tokens[1:]
	}

	if len(expr) == 0 {
		if !isFirstTopic {
			return tp, nil, errors.New("There are no topic and no expr")
		}

		return tp, nil, nil
	}

	exp, parseErr := topic.Parse(expr)
	if parseErr != nil {
		return tp, nil, parseErr
	}

	return tp, exp, nil
}
