package config

const (
	defaultDocPath         = "~/.local/share/sentbank/docs"
	defaultTopicPath       = "~/.config/sentbank/topics"
	defaultExtension       = ".txt"
	defaultMinLength       = 5
	defaultMaxLength       = 0
	defaultNgramSize       = 2
	defaultWeightThreshold = 3
	defaultBudget          = 100
	defaultFormat          = "all"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DocPath:   defaultDocPath,
			TopicPath: defaultTopicPath,
		},
		Corpus: Corpus{
			Extension: defaultExtension,
		},
		Prune: Prune{
			MinLength:        defaultMinLength,
			MaxLength:        defaultMaxLength,
			RemoveCitations:  true,
			RemoveRedundancy: true,
		},
		Concepts: Concepts{
			NgramSize:       defaultNgramSize,
			WeightThreshold: defaultWeightThreshold,
		},
		Summary: Summary{
			Budget: defaultBudget,
		},
		Render: Render{
			Format: defaultFormat,
			Color:  true,
		},
	}
}
