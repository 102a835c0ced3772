package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/revelaction/sentbank/storage"
	"github.com/revelaction/sentbank/topic"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// TopicStore persists topics in the topics table, one row per topic with the
// term expressions as JSON. Connection acquisition uses context.TODO(): the
// topic interfaces carry no context.
type TopicStore struct {
	pool *sqlitex.Pool
}

var _ topic.TopicRepository = (*TopicStore)(nil)

func NewTopicStore(pool *sqlitex.Pool) *TopicStore {
	return &TopicStore{pool: pool}
}

func (h *TopicStore) All() ([]topic.Topic, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var topics []topic.Topic
	err = sqlitex.Execute(conn, "SELECT name, exprs FROM topics ORDER BY name", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			name := stmt.ColumnText(0)
			exprsJSON := stmt.ColumnText(1)

			var exprs []topic.TermExpr
			if err := json.Unmarshal([]byte(exprsJSON), &exprs); err != nil {
				return err
			}

			topics = append(topics, topic.Topic{Name: name, Exprs: exprs})
			return nil
		},
	})

	if err != nil {
		return nil, err
	}

	return topics, nil
}

func (h *TopicStore) Names() ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var names []string
	err = sqlitex.Execute(conn, "SELECT name FROM topics ORDER BY name", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			names = append(names, stmt.ColumnText(0))
			return nil
		},
	})

	if err != nil {
		return nil, err
	}

	return names, nil
}

func (h *TopicStore) Topic(name string) (topic.Topic, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return topic.Topic{}, err
	}
	defer h.pool.Put(conn)

	var t topic.Topic
	found := false
	err = sqlitex.Execute(conn, "SELECT name, exprs FROM topics WHERE name = ? LIMIT 1", &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			name := stmt.ColumnText(0)
			exprsJSON := stmt.ColumnText(1)

			var exprs []topic.TermExpr
			if err := json.Unmarshal([]byte(exprsJSON), &exprs); err != nil {
				return err
			}

			t = topic.Topic{Name: name, Exprs: exprs}
			found = true
			return nil
		},
	})

	if err != nil {
		return topic.Topic{}, err
	}

	if !found {
		return topic.Topic{}, fmt.Errorf("topic %s: %w", name, storage.ErrNotFound)
	}

	return t, nil
}

func (h *TopicStore) Write(tp topic.Topic) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	exprsJSON, err := json.Marshal(tp.Exprs)
	if err != nil {
		return err
	}

	err = sqlitex.Execute(conn, `
		INSERT INTO topics (name, exprs, updated)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		ON CONFLICT(name) DO UPDATE SET
			exprs = excluded.exprs,
			updated = excluded.updated
	`, &sqlitex.ExecOptions{
		Args: []interface{}{tp.Name, string(exprsJSON)},
	})

	return err
}

func (h *TopicStore) Delete(name string) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	err = sqlitex.Execute(conn, "DELETE FROM topics WHERE name = ?", &sqlitex.ExecOptions{
		Args: []interface{}{name},
	})
	if err != nil {
		return err
	}

	if conn.Changes() == 0 {
		return fmt.Errorf("topic %s: %w", name, storage.ErrNotFound)
	}

	return nil
}
