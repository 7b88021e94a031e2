package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Duration patterns, most specific first. First match wins.
var durationPatterns = []struct {
	re      *regexp.Regexp
	minutes func(groups []string) int
}{
	{
		// "2 hours and 30 minutes", "1h 15m"
		re: regexp.MustCompile(`(?i)(\d+)\s*h(?:ours?|rs?)?\s*(?:and\s+)?(\d+)\s*m(?:in(?:ute)?s?)?\b`),
		minutes: func(g []string) int {
			h, _ := strconv.Atoi(g[1])
			m, _ := strconv.Atoi(g[2])
			return h*60 + m
		},
	},
	{
		// "for 2 hours", "3 hrs", "1 hour"
		re: regexp.MustCompile(`(?i)(?:for\s+)?(\d+)\s*(?:hours?|hrs?)\b`),
		minutes: func(g []string) int {
			h, _ := strconv.Atoi(g[1])
			return h * 60
		},
	},
	{
		// "for 15 minutes", "30 mins", "10 min"
		re: regexp.MustCompile(`(?i)(?:for\s+)?(\d+)\s*(?:minutes?|mins?)\b`),
		minutes: func(g []string) int {
			m, _ := strconv.Atoi(g[1])
			return m
		},
	},
}

// Fallback durations keyed by task-type keyword, applied when no explicit
// duration phrase is present.
var durationDefaults = []struct {
	keywords []string
	minutes  int
}{
	{keywords: []string{"meeting", "call"}, minutes: 60},
	{keywords: []string{"review", "read"}, minutes: 30},
	{keywords: []string{"quick", "brief"}, minutes: 15},
}

func matchDuration(p *Parser, fragment string, _ time.Time, ex *extraction) {
	for _, pat := range durationPatterns {
		loc := pat.re.FindStringSubmatchIndex(fragment)
		if loc == nil {
			continue
		}
		groups := make([]string, 0, len(loc)/2)
		for i := 0; i < len(loc); i += 2 {
			if loc[i] < 0 {
				groups = append(groups, "")
				continue
			}
			groups = append(groups, fragment[loc[i]:loc[i+1]])
		}
		if m := pat.minutes(groups); m > 0 {
			ex.duration = m
			ex.hasDuration = true
			ex.removed = append(ex.removed, span{start: loc[0], end: loc[1]})
			return
		}
	}

	lower := strings.ToLower(fragment)
	for _, d := range durationDefaults {
		for _, kw := range d.keywords {
			if strings.Contains(lower, kw) {
				ex.duration = d.minutes
				ex.hasDuration = true
				return
			}
		}
	}

	ex.duration = p.cfg.DefaultDuration
}
