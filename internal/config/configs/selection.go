package configs

import "time"

// Selection tunes collaborator calls made while selecting an ad.
type Selection struct {
	// MaxConcurrency caps in-flight targeting match calls per request.
	MaxConcurrency int `env:"MAX_CONCURRENCY" envDefault:"16"`
	// MatchTimeout bounds a single campaign's targeting match.
	MatchTimeout time.Duration `env:"MATCH_TIMEOUT" envDefault:"200ms"`
	// DirectoryTimeout bounds listing active campaigns.
	DirectoryTimeout time.Duration `env:"DIRECTORY_TIMEOUT" envDefault:"500ms"`
	// FailOpen degrades collaborator failures to "no candidates" instead of
	// failing the request.
	FailOpen bool `env:"FAIL_OPEN" envDefault:"true"`
}
