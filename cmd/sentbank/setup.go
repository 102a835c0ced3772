package main

import (
	"fmt"
	"os"

	"github.com/revelaction/sentbank/storage"
	"github.com/revelaction/sentbank/storage/filesystem"
	"github.com/revelaction/sentbank/storage/sqlite/zombiezen"
	"github.com/revelaction/sentbank/topic"
)

// NewCorpusRepository builds a repository for the given path. A directory
// selects the filesystem store, anything else is opened as a sqlite
// database file.
func NewCorpusRepository(p *Pool, path string) (storage.CorpusRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewStore(path), nil
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewStore(pool), nil
}

func NewTopicRepository(p *Pool, path string) (topic.TopicRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewTopicStore(path), nil
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewTopicStore(pool), nil
}

func topicLibrary(tr topic.TopicReader) (topic.Library, error) {
	topics, err := tr.All()
	if err != nil {
		return nil, err
	}

	return topic.Library(topics), nil
}
