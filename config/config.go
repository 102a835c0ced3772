package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the corpus and topic locations.
type Paths struct {
	DocPath   string `toml:"doc_path"`
	TopicPath string `toml:"topic_path"`
}

// Corpus contains configuration for reading corpus files.
type Corpus struct {
	Extension string `toml:"extension"`
}

// Prune contains the sentence pruning policy.
type Prune struct {
	MinLength        int  `toml:"min_length"`
	MaxLength        int  `toml:"max_length"`
	RemoveCitations  bool `toml:"remove_citations"`
	RemoveRedundancy bool `toml:"remove_redundancy"`
}

// Concepts contains configuration for concept extraction.
type Concepts struct {
	NgramSize       int `toml:"ngram_size"`
	WeightThreshold int `toml:"weight_threshold"`
}

// Summary contains configuration for summary generation.
type Summary struct {
	Budget int `toml:"budget"`
}

// Render contains configuration for terminal output.
type Render struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
}

// Config encapsulates all configuration values for sentbank.
//
// Configuration sections by subsystem:
//   - Paths: corpus and topic locations
//   - Corpus: raw corpus file reading
//   - Prune: sentence pruning policy
//   - Concepts: n-gram concept extraction
//   - Summary: summary generation budget
//   - Render: terminal output format and color
type Config struct {
	Paths    Paths    `toml:"paths"`
	Corpus   Corpus   `toml:"corpus"`
	Prune    Prune    `toml:"prune"`
	Concepts Concepts `toml:"concepts"`
	Summary  Summary  `toml:"summary"`
	Render   Render   `toml:"render"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/sentbank/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("sentbank.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error

	c.Paths.DocPath, err = expandPath(c.Paths.DocPath)
	if err != nil {
		return err
	}

	c.Paths.TopicPath, err = expandPath(c.Paths.TopicPath)
	if err != nil {
		return err
	}

	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && pathValue[1] == '/' {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
