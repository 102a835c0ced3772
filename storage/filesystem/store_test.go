package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sent "github.com/revelaction/sentbank/sentence"
	"github.com/revelaction/sentbank/storage"
	tpc "github.com/revelaction/sentbank/topic"
)

func testDoc(id string, lines ...string) sent.Doc {
	doc := sent.Doc{ID: id}
	for i, line := range lines {
		doc.Sentences = append(doc.Sentences, sent.New(strings.Split(line, " "), id, i))
	}
	return doc
}

func TestStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(t.TempDir())

	doc := testDoc("a.txt", "the storm hit .", "it 's ok .")
	if err := s.SaveDoc(ctx, doc); err != nil {
		t.Fatalf("SaveDoc: %v", err)
	}

	got, err := s.Doc(ctx, "a.txt")
	if err != nil {
		t.Fatalf("Doc: %v", err)
	}

	if got.ID != "a.txt" {
		t.Errorf("got id %q, want a.txt", got.ID)
	}

	if len(got.Sentences) != 2 {
		t.Fatalf("got %d sentences, want 2", len(got.Sentences))
	}

	if got.Sentences[1].Untokenized != "it's ok." {
		t.Errorf("got untokenized %q, want \"it's ok.\"", got.Sentences[1].Untokenized)
	}

	if got.Sentences[1].Position != 1 {
		t.Errorf("got position %d, want 1", got.Sentences[1].Position)
	}
}

func TestStoreList(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := NewStore(root)

	for _, id := range []string{"b.txt", "a.txt"} {
		if err := s.SaveDoc(ctx, testDoc(id, "one line .")); err != nil {
			t.Fatalf("SaveDoc: %v", err)
		}
	}

	// A non-document file is ignored.
	if err := os.WriteFile(filepath.Join(root, "notes.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	ids, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"a.txt", "b.txt"}
	if len(ids) != len(want) {
		t.Fatalf("got %d ids, want %d", len(ids), len(want))
	}

	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestStoreDocNotFound(t *testing.T) {
	s := NewStore(t.TempDir())

	_, err := s.Doc(context.Background(), "missing.txt")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestStoreSentencesOrder(t *testing.T) {
	ctx := context.Background()
	s := NewStore(t.TempDir())

	if err := s.SaveDoc(ctx, testDoc("b.txt", "third .")); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveDoc(ctx, testDoc("a.txt", "first .", "second .")); err != nil {
		t.Fatal(err)
	}

	sentences, err := s.Sentences(ctx)
	if err != nil {
		t.Fatalf("Sentences: %v", err)
	}

	want := []string{"first.", "second.", "third."}
	if len(sentences) != len(want) {
		t.Fatalf("got %d sentences, want %d", len(sentences), len(want))
	}

	for i := range want {
		if sentences[i].Untokenized != want[i] {
			t.Errorf("sentences[%d] = %q, want %q", i, sentences[i].Untokenized, want[i])
		}
	}
}

func TestStoreCandidatesReturnsAll(t *testing.T) {
	ctx := context.Background()
	s := NewStore(t.TempDir())

	if err := s.SaveDoc(ctx, testDoc("a.txt", "the storm hit .", "calm sea .")); err != nil {
		t.Fatal(err)
	}

	var got []sent.Sentence
	cursor, err := s.Candidates(ctx, []string{"storm"}, 0, 100, func(s sent.Sentence) error {
		got = append(got, s)
		return nil
	})
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}

	if len(got) != 2 {
		t.Errorf("got %d candidates, want 2", len(got))
	}

	// The next page is empty.
	count := 0
	cursor, err = s.Candidates(ctx, []string{"storm"}, cursor, 100, func(s sent.Sentence) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}

	if count != 0 {
		t.Errorf("got %d candidates after EOF cursor, want 0", count)
	}
}

func TestStorePreload(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := NewStore(root)

	if err := s.SaveDoc(ctx, testDoc("a.txt", "the storm hit .")); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveDoc(ctx, testDoc("b.txt", "calm sea .")); err != nil {
		t.Fatal(err)
	}

	var names []string
	err := s.Preload(func(current, total int, name string) {
		names = append(names, name)
		if total != 2 {
			t.Errorf("got total %d, want 2", total)
		}
	})
	if err != nil {
		t.Fatalf("Preload: %v", err)
	}

	if len(names) != 2 || names[0] != "a.txt" || names[1] != "b.txt" {
		t.Errorf("got callback names %v, want [a.txt b.txt]", names)
	}

	// Served from cache even after the files are gone.
	if err := os.Remove(filepath.Join(root, "a.txt"+Extension)); err != nil {
		t.Fatal(err)
	}

	doc, err := s.Doc(ctx, "a.txt")
	if err != nil {
		t.Fatalf("Doc after Preload: %v", err)
	}

	if len(doc.Sentences) != 1 {
		t.Errorf("got %d sentences from cache, want 1", len(doc.Sentences))
	}
}

func TestTopicStoreRoundtrip(t *testing.T) {
	th := NewTopicStore(t.TempDir())

	tp := tpc.Topic{
		Name: "weather",
		Exprs: []tpc.TermExpr{
			{{Text: "storm"}},
			{{Text: "rain"}, {Text: "wind", Negate: true}},
		},
	}

	if err := th.Write(tp); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := th.Topic("weather")
	if err != nil {
		t.Fatalf("Topic: %v", err)
	}

	if got.Name != "weather" {
		t.Errorf("got name %q, want weather", got.Name)
	}

	if len(got.Exprs) != 2 {
		t.Fatalf("got %d exprs, want 2", len(got.Exprs))
	}

	if got.Exprs[1].String() != "rain !wind" {
		t.Errorf("got expr %q, want \"rain !wind\"", got.Exprs[1].String())
	}

	names, err := th.Names()
	if err != nil {
		t.Fatalf("Names: %v", err)
	}

	if len(names) != 1 || names[0] != "weather" {
		t.Errorf("got names %v, want [weather]", names)
	}
}

func TestTopicStoreWriteFormat(t *testing.T) {
	root := t.TempDir()
	th := NewTopicStore(root)

	tp := tpc.Topic{
		Name: "weather",
		Exprs: []tpc.TermExpr{
			{{Text: "storm"}},
			{{Text: "rain"}},
		},
	}

	if err := th.Write(tp); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "weather.json"))
	if err != nil {
		t.Fatal(err)
	}

	// One expression per line.
	want := "[\n\t[{\"text\":\"storm\"}],\n\t[{\"text\":\"rain\"}]\n]"
	if string(data) != want {
		t.Errorf("got file content %q, want %q", string(data), want)
	}
}

func TestTopicStoreDelete(t *testing.T) {
	th := NewTopicStore(t.TempDir())

	tp := tpc.Topic{Name: "weather", Exprs: []tpc.TermExpr{{{Text: "storm"}}}}
	if err := th.Write(tp); err != nil {
		t.Fatal(err)
	}

	if err := th.Delete("weather"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := th.Topic("weather"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("got %v after delete, want ErrNotFound", err)
	}

	if err := th.Delete("weather"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("got %v deleting twice, want ErrNotFound", err)
	}
}
