// Package edit is an interactive prompt for refining saved topics: a
// line adds a term expression to a topic, a trailing slash removes it.
package edit

import (
	"errors"
	"fmt"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/revelaction/sentbank/topic"
)

const (
	actionAdd = iota
	actionDelete
)

// deleteSuffix on the last term marks the line as a removal:
// `weather storm/` deletes the expression `storm` from topic weather.
const deleteSuffix = "/"

type Handler struct {
	Library topic.Library

	TopicReader topic.TopicReader
	TopicWriter topic.TopicWriter
}

func NewHandler(l topic.Library, r topic.TopicReader, w topic.TopicWriter) *Handler {
	return &Handler{
		Library:     l,
		TopicReader: r,
		TopicWriter: w,
	}
}

// Run loops on the prompt until the user types quit. Bad input is
// reported and the loop continues; a failing topic write aborts.
func (h *Handler) Run() error {
	fmt.Println("🔑 Ctrl+L: clear, 🔧 quit")

	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer(),
			prompt.OptionTitle("sentbank edit"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(history),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)

		tp, expr, action, err := h.parse(in)
		if err != nil {
			fmt.Printf("❌ %s\n", err)
			continue
		}

		changed, err := change(tp, expr, action)
		if err != nil {
			fmt.Printf("❌ %s\n", err)
			continue
		}

		if err := h.TopicWriter.Write(changed); err != nil {
			return err
		}

		if err := h.reload(changed.Name); err != nil {
			return err
		}
	}
}

// change applies the action to a copy of the topic.
func change(tp topic.Topic, expr topic.TermExpr, action int) (topic.Topic, error) {
	exists := exprExistInTopic(tp, expr)

	if action == actionDelete {
		if !exists {
			return tp, fmt.Errorf("topic %s has no expression %q", tp.Name, expr.String())
		}

		return removeExprFromTopic(tp, expr), nil
	}

	if exists {
		return tp, fmt.Errorf("topic %s already has expression %q", tp.Name, expr.String())
	}

	tp.Exprs = append(tp.Exprs, expr)
	return tp, nil
}

// reload replaces the library copy of a written topic with the stored
// one, so the completer sees the change.
func (h *Handler) reload(name string) error {
	for i, t := range h.Library {
		if t.Name != name {
			continue
		}

		fresh, err := h.TopicReader.Topic(name)
		if err != nil {
			return err
		}

		h.Library[i] = fresh
		return nil
	}

	return nil
}

// completer suggests topic names for the first token, then the existing
// expressions of that topic (removal targets) for the rest of the line.
func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		s := []prompt.Suggest{}

		befCursor := in.TextBeforeCursor()
		if befCursor == "" {
			return s
		}

		tokens := strings.Split(befCursor, " ")
		if len(tokens) == 1 {
			for _, tp := range h.Library {
				if strings.HasPrefix(tp.Name, tokens[0]) {
					s = append(s, prompt.Suggest{Text: tp.Name})
				}
			}

			return s
		}

		tp, ok := h.topicFor(tokens[0])
		if !ok {
			return s
		}

		rest := strings.Join(tokens[1:], " ")
		if rest == "" {
			return s
		}

		for _, expr := range tp.Exprs {
			// No suggestion once the expression is fully typed.
			if len(rest) >= len(expr.String()) {
				continue
			}

			if strings.HasPrefix(expr.String(), rest) {
				s = append(s, prompt.Suggest{Text: expr.String()})
			}
		}

		return s
	}
}

func (h *Handler) topicFor(name string) (topic.Topic, bool) {
	for _, t := range h.Library {
		if t.Name == name {
			return t, true
		}
	}

	return topic.Topic{}, false
}

// parse splits an input line into its topic, its term expression and
// the action. The first token must name a library topic; a deleteSuffix
// on the last token selects removal.
func (h *Handler) parse(in string) (topic.Topic, topic.TermExpr, int, error) {
	tp := topic.Topic{}

	tokens := strings.Fields(in)
	if len(tokens) == 0 {
		return tp, nil, actionAdd, errors.New("no topic given")
	}

	action := actionAdd
	last := tokens[len(tokens)-1]
	if strings.HasSuffix(last, deleteSuffix) {
		action = actionDelete
		tokens[len(tokens)-1] = strings.TrimSuffix(last, deleteSuffix)
	}

	found := false
	for _, t := range h.Library {
		if strings.HasPrefix(t.Name, tokens[0]) {
			tp = t
			found = true
			break
		}
	}

	if !found {
		return tp, nil, action, fmt.Errorf("no such topic: %s", tokens[0])
	}

	args := tokens[1:]
	if len(args) == 0 {
		return tp, nil, action, errors.New("no expression given")
	}

	expr, err := topic.Parse(args)
	if err != nil {
		return tp, nil, action, err
	}

	return tp, expr, action, nil
}

func exprExistInTopic(tp topic.Topic, expr topic.TermExpr) bool {
	for _, e := range tp.Exprs {
		if topic.EqualExpr(e, expr) {
			return true
		}
	}

	return false
}

// removeExprFromTopic returns a copy of the topic without the first
// expression equal to expr.
func removeExprFromTopic(tp topic.Topic, expr topic.TermExpr) topic.Topic {
	kept := make([]topic.TermExpr, 0, len(tp.Exprs))

	removed := false
	for _, e := range tp.Exprs {
		if !removed && topic.EqualExpr(e, expr) {
			removed = true
			continue
		}

		kept = append(kept, e)
	}

	return topic.Topic{Name: tp.Name, Exprs: kept}
}
