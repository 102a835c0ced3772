package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Corpus.Extension != ".txt" {
		t.Errorf("got extension %q, want .txt", cfg.Corpus.Extension)
	}

	if cfg.Prune.MinLength != 5 {
		t.Errorf("got min_length %d, want 5", cfg.Prune.MinLength)
	}

	if cfg.Prune.MaxLength != 0 {
		t.Errorf("got max_length %d, want 0", cfg.Prune.MaxLength)
	}

	if !cfg.Prune.RemoveCitations || !cfg.Prune.RemoveRedundancy {
		t.Error("citation and redundancy pruning must be enabled by default")
	}

	if cfg.Concepts.NgramSize != 2 {
		t.Errorf("got ngram_size %d, want 2", cfg.Concepts.NgramSize)
	}

	if cfg.Summary.Budget != 100 {
		t.Errorf("got budget %d, want 100", cfg.Summary.Budget)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[prune]
min_length = 3
remove_citations = false

[render]
format = "untok"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !exists {
		t.Error("got exists false, want true")
	}

	if resolved != path {
		t.Errorf("got resolved %q, want %q", resolved, path)
	}

	if cfg.Prune.MinLength != 3 {
		t.Errorf("got min_length %d, want 3", cfg.Prune.MinLength)
	}

	if cfg.Prune.RemoveCitations {
		t.Error("got remove_citations true, want false")
	}

	// Untouched sections keep their defaults.
	if cfg.Prune.RemoveRedundancy != true {
		t.Error("got remove_redundancy false, want default true")
	}

	if cfg.Concepts.NgramSize != 2 {
		t.Errorf("got ngram_size %d, want default 2", cfg.Concepts.NgramSize)
	}

	if cfg.Render.Format != "untok" {
		t.Errorf("got format %q, want untok", cfg.Render.Format)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if exists {
		t.Error("got exists true, want false")
	}

	if cfg.Prune.MinLength != 5 {
		t.Errorf("got min_length %d, want default 5", cfg.Prune.MinLength)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad extension", "[corpus]\nextension = \"txt\"\n"},
		{"negative min", "[prune]\nmin_length = -1\n"},
		{"max below min", "[prune]\nmin_length = 10\nmax_length = 5\n"},
		{"zero ngram", "[concepts]\nngram_size = 0\n"},
		{"zero budget", "[summary]\nbudget = 0\n"},
		{"unknown format", "[render]\nformat = \"fancy\"\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(c.content), 0o644); err != nil {
				t.Fatal(err)
			}

			if _, _, _, err := Load(path); err == nil {
				t.Errorf("got nil error for %s", c.name)
			}
		})
	}
}

func TestExpandPaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[paths]\ndoc_path = \"~/docs\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if cfg.Paths.DocPath != filepath.Join(home, "docs") {
		t.Errorf("got doc_path %q, want it expanded under %q", cfg.Paths.DocPath, home)
	}

	if strings.HasPrefix(cfg.Paths.TopicPath, "~") {
		t.Errorf("got topic_path %q, want it expanded", cfg.Paths.TopicPath)
	}
}
