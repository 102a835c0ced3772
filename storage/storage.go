package storage

import (
	"context"
	"errors"

	sent "github.com/revelaction/sentbank/sentence"
)

// ErrNotFound is returned when a document or topic does not exist in storage.
var ErrNotFound = errors.New("not found")

// Cursor for paginated term-based queries
type Cursor int64

// CorpusReader defines read operations for document storage
type CorpusReader interface {
	// List returns the ids of all stored documents, sorted alphabetically.
	// Content (Sentences) is not loaded.
	List(ctx context.Context) ([]string, error)

	// Doc returns a document by id
	Doc(ctx context.Context, id string) (sent.Doc, error)

	// Docs returns all documents with their sentences, sorted by id.
	Docs(ctx context.Context) (sent.Library, error)

	// Sentences returns all stored sentences, ordered by document id and
	// position.
	Sentences(ctx context.Context) ([]sent.Sentence, error)

	// Candidates calls onCandidate for each stored sentence that may contain
	// ALL given texts, resuming after the given cursor. The result is a
	// superset: callers re-verify the candidates against the full tokens.
	// Returns the new cursor and any error.
	Candidates(ctx context.Context, texts []string, after Cursor, limit int, onCandidate func(sent.Sentence) error) (Cursor, error)
}

// CorpusWriter defines write operations for document storage
type CorpusWriter interface {
	// SaveDoc persists a document and its sentences/terms to storage.
	// Saving a document with an existing id replaces its sentences.
	SaveDoc(ctx context.Context, doc sent.Doc) error
}

// CorpusRepository combines read and write operations
type CorpusRepository interface {
	CorpusReader
	CorpusWriter
}

// Preloader defines an optional capability for repositories that require
// or support eager loading of data into memory.
type Preloader interface {
	Preload(cb func(current, total int, name string)) error
}
