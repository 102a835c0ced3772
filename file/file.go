package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const (
	// Extension is the default file name extension of corpus documents.
	Extension = ".txt"
)

// Read returns the raw lines of the text document at path.
//
// The content must be valid UTF-8; a decoding failure aborts the read.
// Lines are returned unfiltered, so callers keep the original line
// indexes.
func Read(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(b) {
		return nil, fmt.Errorf("file %s: invalid UTF-8", path)
	}

	return strings.Split(string(b), "\n"), nil
}

// List returns the paths of the files of dir whose name ends in ext,
// sorted by file name. os.ReadDir sorts by file name, so corpus order
// is stable across hosts.
func List(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	paths := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), ext) {
			continue
		}

		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	return paths, nil
}
