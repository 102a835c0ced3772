package filesystem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/sentbank/storage"
	tpc "github.com/revelaction/sentbank/topic"
)

// TopicStore persists topics as one JSON file per topic under a root
// directory. The file holds the term expressions; the topic name is the
// file name.
type TopicStore struct {
	root string
}

var _ tpc.TopicRepository = (*TopicStore)(nil)

func NewTopicStore(root string) *TopicStore {
	return &TopicStore{root: root}
}

func (th *TopicStore) All() ([]tpc.Topic, error) {
	names, err := th.Names()
	if err != nil {
		return nil, err
	}

	topics := []tpc.Topic{}
	for _, n := range names {
		t, err := th.Topic(n)
		if err != nil {
			return nil, err
		}

		topics = append(topics, t)
	}

	return topics, nil
}

func (th *TopicStore) Names() ([]string, error) {
	files, err := os.ReadDir(th.root)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, file := range files {
		if filepath.Ext(file.Name()) != ".json" {
			continue
		}

		names = append(names, strings.TrimSuffix(file.Name(), filepath.Ext(file.Name())))
	}

	return names, nil
}

func (th *TopicStore) Topic(name string) (tpc.Topic, error) {
	tf, err := os.ReadFile(filepath.Join(th.root, name+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return tpc.Topic{}, fmt.Errorf("topic %s: %w", name, storage.ErrNotFound)
		}
		return tpc.Topic{}, err
	}

	var t tpc.Topic
	t.Name = name

	exprs := []tpc.TermExpr{}
	err = json.Unmarshal(tf, &exprs)
	if err != nil {
		return tpc.Topic{}, err
	}

	t.Exprs = exprs
	return t, nil
}

func (th *TopicStore) Write(tp tpc.Topic) error {
	jsonData, err := json.Marshal(tp.Exprs)
	if err != nil {
		return err
	}

	// Format the json with each line containing a topic expresion
	// Remove the first [
	jsonFmt := bytes.TrimPrefix(jsonData, []byte("["))
	// replace the rest with indent
	jsonFmt = bytes.ReplaceAll(jsonFmt, []byte("],"), []byte("],\n\t"))
	// remove the last
	jsonFmt = bytes.TrimSuffix(jsonFmt, []byte("]"))
	jsonFmt = append([]byte("[\n\t"), jsonFmt...)
	jsonFmt = append(jsonFmt, []byte("\n]")...)

	err = os.WriteFile(filepath.Join(th.root, tp.Name+".json"), jsonFmt, 0644)
	if err != nil {
		return err
	}

	return nil
}

func (th *TopicStore) Delete(name string) error {
	err := os.Remove(filepath.Join(th.root, name+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("topic %s: %w", name, storage.ErrNotFound)
		}
		return err
	}

	return nil
}
