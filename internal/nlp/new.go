package nlp

import (
	"smart-day-planner/pkg/datemath"
)

// Parser extracts structured tasks from free-text fragments. It is a pure
// function of its inputs plus the target date: no I/O, no hidden state.
type Parser struct {
	cfg      Config
	dm       *datemath.Parser
	matchers []matcher
}

// New creates a task parser. The matcher table is ordered; each entry owns
// one extraction category and first match wins within it.
func New(cfg Config, dm *datemath.Parser) *Parser {
	if cfg.DefaultDuration <= 0 {
		cfg.DefaultDuration = DefaultConfig().DefaultDuration
	}
	if cfg.DefaultPriority <= 0 {
		cfg.DefaultPriority = DefaultConfig().DefaultPriority
	}

	p := &Parser{cfg: cfg, dm: dm}
	p.matchers = []matcher{
		{category: "duration", match: matchDuration},
		{category: "priority", match: matchPriority},
		{category: "deadline", match: matchDeadline},
		{category: "preference", match: matchPreference},
	}
	return p
}
