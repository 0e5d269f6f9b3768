package usecase

import "time"

// Options tunes how the selection use case talks to its collaborators.
type Options struct {
	// MaxConcurrency caps in-flight match calls per request. Zero or a
	// negative value removes the cap.
	MaxConcurrency int
	// MatchTimeout bounds each targeting match call. Zero disables it.
	MatchTimeout time.Duration
	// DirectoryTimeout bounds the active campaign listing. Zero disables it.
	DirectoryTimeout time.Duration
	// FailOpen degrades collaborator failures instead of failing the
	// request: a directory failure becomes an empty listing and a match
	// failure excludes only that campaign.
	FailOpen bool
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		MaxConcurrency:   16,
		MatchTimeout:     200 * time.Millisecond,
		DirectoryTimeout: 500 * time.Millisecond,
		FailOpen:         true,
	}
}
