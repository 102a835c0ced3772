package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sent "github.com/revelaction/sentbank/sentence"
	"github.com/revelaction/sentbank/storage"
)

// Extension of document files in the store directory.
const Extension = ".json"

// Store persists documents as one JSON file per document under a root
// directory. The file name is the document id plus Extension.
type Store struct {
	root string

	// In-memory cache
	docs sent.Library
}

var _ storage.CorpusRepository = (*Store)(nil)
var _ storage.Preloader = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: root}
}

// Preload reads all documents into memory. The callback is called for each
// file loaded. Read operations are served from the cache afterwards.
func (s *Store) Preload(cb func(current, total int, name string)) error {
	if s.docs != nil {
		return nil
	}

	ids, err := s.list()
	if err != nil {
		return err
	}

	docs := make(sent.Library, 0, len(ids))
	for i, id := range ids {
		if cb != nil {
			cb(i+1, len(ids), id)
		}

		doc, err := s.readDoc(id)
		if err != nil {
			return err
		}

		docs = append(docs, doc)
	}

	s.docs = docs
	return nil
}

func (s *Store) List(ctx context.Context) ([]string, error) {
	if s.docs != nil {
		ids := make([]string, 0, len(s.docs))
		for _, doc := range s.docs {
			ids = append(ids, doc.ID)
		}
		return ids, nil
	}

	return s.list()
}

// list returns the ids of the document files under root. os.ReadDir returns
// entries sorted by file name, so the ids are sorted alphabetically.
func (s *Store) list() ([]string, error) {
	files, err := os.ReadDir(s.root)
	if err != nil {
		return nil, err
	}

	ids := []string{}
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		if filepath.Ext(file.Name()) != Extension {
			continue
		}

		ids = append(ids, strings.TrimSuffix(file.Name(), Extension))
	}

	return ids, nil
}

func (s *Store) Doc(ctx context.Context, id string) (sent.Doc, error) {
	if s.docs != nil {
		for _, doc := range s.docs {
			if doc.ID == id {
				return doc, nil
			}
		}
		return sent.Doc{}, fmt.Errorf("doc %s: %w", id, storage.ErrNotFound)
	}

	return s.readDoc(id)
}

func (s *Store) readDoc(id string) (sent.Doc, error) {
	f, err := os.ReadFile(filepath.Join(s.root, id+Extension))
	if err != nil {
		if os.IsNotExist(err) {
			return sent.Doc{}, fmt.Errorf("doc %s: %w", id, storage.ErrNotFound)
		}
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}
	doc.ID = id

	return doc, nil
}

func (s *Store) Docs(ctx context.Context) (sent.Library, error) {
	if s.docs != nil {
		return s.docs, nil
	}

	ids, err := s.list()
	if err != nil {
		return nil, err
	}

	docs := make(sent.Library, 0, len(ids))
	for _, id := range ids {
		doc, err := s.readDoc(id)
		if err != nil {
			return nil, err
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

func (s *Store) Sentences(ctx context.Context) ([]sent.Sentence, error) {
	docs, err := s.Docs(ctx)
	if err != nil {
		return nil, err
	}

	return docs.Sentences(), nil
}

// Candidates returns ALL sentences: the filesystem store keeps no term index,
// so the whole corpus is the candidate superset.
func (s *Store) Candidates(ctx context.Context, texts []string, after storage.Cursor, limit int, onCandidate func(sent.Sentence) error) (storage.Cursor, error) {
	// If cursor > 0, we already returned everything (EOF).
	if after > 0 {
		return after, nil
	}

	sentences, err := s.Sentences(ctx)
	if err != nil {
		return after, err
	}

	for _, sentence := range sentences {
		if err := onCandidate(sentence); err != nil {
			return after, err
		}
	}

	return 1, nil
}

func (s *Store) SaveDoc(ctx context.Context, doc sent.Doc) error {
	data, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		return err
	}

	err = os.WriteFile(filepath.Join(s.root, doc.ID+Extension), data, 0644)
	if err != nil {
		return err
	}

	// Drop the cache so the next read sees the new document.
	s.docs = nil
	return nil
}
