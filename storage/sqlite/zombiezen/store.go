package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	sent "github.com/revelaction/sentbank/sentence"
	"github.com/revelaction/sentbank/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type Store struct {
	pool *sqlitex.Pool
}

var _ storage.CorpusRepository = (*Store)(nil)

func NewStore(pool *sqlitex.Pool) *Store {
	return &Store{pool: pool}
}

func (h *Store) List(ctx context.Context) ([]string, error) {
	conn, err := h.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var ids []string
	err = sqlitex.Execute(conn, "SELECT id FROM docs ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			ids = append(ids, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (h *Store) Doc(ctx context.Context, id string) (sent.Doc, error) {
	conn, err := h.pool.Take(ctx)
	if err != nil {
		return sent.Doc{}, err
	}
	defer h.pool.Put(conn)

	doc := sent.Doc{ID: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT data FROM sentences WHERE doc_id = ? ORDER BY position", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			data := stmt.ColumnText(0)
			var sentence sent.Sentence
			if err := json.Unmarshal([]byte(data), &sentence); err != nil {
				return err
			}
			doc.Sentences = append(doc.Sentences, sentence)
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}
	if !found {
		return sent.Doc{}, fmt.Errorf("doc %s: %w", id, storage.ErrNotFound)
	}

	return doc, nil
}

func (h *Store) Docs(ctx context.Context) (sent.Library, error) {
	conn, err := h.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var docs sent.Library
	err = sqlitex.Execute(conn, "SELECT doc_id, data FROM sentences ORDER BY doc_id, position", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			id := stmt.ColumnText(0)
			var sentence sent.Sentence
			if err := json.Unmarshal([]byte(stmt.ColumnText(1)), &sentence); err != nil {
				return err
			}

			if len(docs) == 0 || docs[len(docs)-1].ID != id {
				docs = append(docs, sent.Doc{ID: id})
			}
			docs[len(docs)-1].Sentences = append(docs[len(docs)-1].Sentences, sentence)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (h *Store) Sentences(ctx context.Context) ([]sent.Sentence, error) {
	conn, err := h.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var sentences []sent.Sentence
	err = sqlitex.Execute(conn, "SELECT data FROM sentences ORDER BY doc_id, position", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var sentence sent.Sentence
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &sentence); err != nil {
				return err
			}
			sentences = append(sentences, sentence)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return sentences, nil
}

func (h *Store) Candidates(ctx context.Context, texts []string, after storage.Cursor, limit int, onCandidate func(sent.Sentence) error) (storage.Cursor, error) {
	conn, err := h.pool.Take(ctx)
	if err != nil {
		return after, err
	}
	defer h.pool.Put(conn)

	// Build query dynamically based on number of texts.
	// We use INTERSECT to ensure that we only get sentence rowids that
	// contain ALL texts. INTERSECT also guarantees that the resulting set of
	// rowids is unique. LIKE keeps the superset wide enough for the
	// stem-tolerant concept match done later on the candidates.
	var queryBuilder strings.Builder
	var args []interface{}

	if len(texts) == 0 {
		// No positive texts to filter on: every sentence is a candidate.
		queryBuilder.WriteString("SELECT rowid FROM sentences WHERE rowid > ?")
		args = append(args, after)
	}

	for i, text := range texts {
		if i > 0 {
			queryBuilder.WriteString(" INTERSECT ")
		}
		queryBuilder.WriteString("SELECT sentence_rowid FROM terms WHERE text LIKE '%' || ? || '%' AND sentence_rowid > ?")
		args = append(args, strings.ToLower(text), after)
	}
	queryBuilder.WriteString(" ORDER BY 1 LIMIT ?")
	args = append(args, limit)

	// We need to fetch the rowids first
	var rowIDs []int64
	err = sqlitex.Execute(conn, queryBuilder.String(), &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rowIDs = append(rowIDs, stmt.ColumnInt64(0))
			return nil
		},
	})
	if err != nil {
		return after, err
	}

	if len(rowIDs) == 0 {
		return after, nil
	}

	idStrings := make([]string, len(rowIDs))
	for i, id := range rowIDs {
		idStrings[i] = strconv.FormatInt(id, 10)
	}
	idList := strings.Join(idStrings, ",")

	query := fmt.Sprintf("SELECT rowid, data FROM sentences WHERE rowid IN (%s) ORDER BY rowid", idList)

	newCursor := after
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rowID := stmt.ColumnInt64(0)
			if storage.Cursor(rowID) > newCursor {
				newCursor = storage.Cursor(rowID)
			}

			var sentence sent.Sentence
			if err := json.Unmarshal([]byte(stmt.ColumnText(1)), &sentence); err != nil {
				return err
			}
			return onCandidate(sentence)
		},
	})
	if err != nil {
		return after, err
	}

	return newCursor, nil
}

func (h *Store) SaveDoc(ctx context.Context, doc sent.Doc) error {
	conn, err := h.pool.Take(ctx)
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	// Replace a previously loaded version of the document.
	err = sqlitex.Execute(conn, "DELETE FROM terms WHERE sentence_rowid IN (SELECT rowid FROM sentences WHERE doc_id = ?)", &sqlitex.ExecOptions{
		Args: []interface{}{doc.ID},
	})
	if err != nil {
		return fmt.Errorf("failed to delete terms: %w", err)
	}

	err = sqlitex.Execute(conn, "DELETE FROM sentences WHERE doc_id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{doc.ID},
	})
	if err != nil {
		return fmt.Errorf("failed to delete sentences: %w", err)
	}

	err = sqlitex.Execute(conn, `
		INSERT INTO docs (id, loaded)
		VALUES (?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		ON CONFLICT(id) DO UPDATE SET loaded = excluded.loaded
	`, &sqlitex.ExecOptions{
		Args: []interface{}{doc.ID},
	})
	if err != nil {
		return fmt.Errorf("failed to insert doc: %w", err)
	}

	for _, sentence := range doc.Sentences {
		data, marshalErr := json.Marshal(sentence)
		if marshalErr != nil {
			return marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, position, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{doc.ID, sentence.Position, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence: %w", err)
		}
		sentRowID := conn.LastInsertRowID()

		for _, term := range indexTerms(sentence) {
			err = sqlitex.Execute(conn, "INSERT INTO terms (text, sentence_rowid) VALUES (?, ?)", &sqlitex.ExecOptions{
				Args: []interface{}{term, sentRowID},
			})
			if err != nil {
				return fmt.Errorf("failed to insert term: %w", err)
			}
		}
	}

	return nil
}

// indexTerms returns the unique lowercased tokens and the concepts of a
// sentence. Both are indexed so candidate retrieval covers token matches as
// well as concept matches.
func indexTerms(s sent.Sentence) []string {
	unique := make(map[string]bool)
	terms := []string{}

	for _, token := range s.Tokens {
		text := strings.ToLower(token)
		if text == "" || unique[text] {
			continue
		}
		unique[text] = true
		terms = append(terms, text)
	}

	for _, concept := range s.Concepts {
		if concept == "" || unique[concept] {
			continue
		}
		unique[concept] = true
		terms = append(terms, concept)
	}

	return terms
}
