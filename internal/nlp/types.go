package nlp

import (
	"time"

	"smart-day-planner/internal/model"
)

// Config holds parser defaults that are not worth a config file entry of
// their own but may be tuned by the caller.
type Config struct {
	// DefaultDuration is used when a fragment carries no duration phrase
	// and no task-type keyword applies. Minutes.
	DefaultDuration int
	// DefaultPriority is used when no priority keyword or explicit number
	// is present.
	DefaultPriority int
}

// DefaultConfig mirrors the documented extraction defaults.
func DefaultConfig() Config {
	return Config{
		DefaultDuration: 45,
		DefaultPriority: model.PriorityDefault,
	}
}

// span marks a region of the fragment consumed by a matcher, removed later
// when deriving the task name.
type span struct {
	start, end int
}

// extraction accumulates per-category results while the matcher table runs.
// Matchers for independent categories never overwrite each other.
type extraction struct {
	duration    int
	hasDuration bool

	priority    int
	hasPriority bool

	deadline *time.Time

	pref *model.TimePreference

	removed []span
}

// matcherFunc extracts one category of information from the lowercased
// fragment. It records consumed spans on ex so the name pass can strip them.
type matcherFunc func(p *Parser, fragment string, targetDate time.Time, ex *extraction)

type matcher struct {
	category string
	match    matcherFunc
}
