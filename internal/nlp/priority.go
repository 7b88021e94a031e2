package nlp

import (
	"regexp"
	"strconv"
	"time"

	"smart-day-planner/internal/model"
)

// priorityLexicon maps keywords to numeric bands, checked highest first so
// "high priority" wins over the bare "priority" in explicit matches.
var priorityLexicon = []struct {
	level    int
	keywords []string
}{
	{model.PriorityMax, []string{"urgent", "critical", "asap", "immediately", "emergency"}},
	{model.PriorityHigh, []string{"important", "high priority", "soon"}},
	{model.PriorityDefault, []string{"medium", "normal priority"}},
	{model.PriorityLow, []string{"low priority", "when possible", "eventually", "whenever"}},
	{model.PriorityMin, []string{"someday", "maybe", "optional"}},
}

// "priority 4", "priority: 2", "p5"
var explicitPriorityRe = regexp.MustCompile(`(?i)\b(?:priority\s*:?\s*|p)([1-5])\b`)

func matchPriority(p *Parser, fragment string, _ time.Time, ex *extraction) {
	// An explicit numeric priority overrides any keyword.
	if loc := explicitPriorityRe.FindStringSubmatchIndex(fragment); loc != nil {
		n, _ := strconv.Atoi(fragment[loc[2]:loc[3]])
		ex.priority = n
		ex.hasPriority = true
		ex.removed = append(ex.removed, span{start: loc[0], end: loc[1]})
		return
	}

	for _, band := range priorityLexicon {
		for _, kw := range band.keywords {
			idx := indexFold(fragment, kw)
			if idx < 0 {
				continue
			}
			ex.priority = band.level
			ex.hasPriority = true
			ex.removed = append(ex.removed, span{start: idx, end: idx + len(kw)})
			return
		}
	}

	ex.priority = p.cfg.DefaultPriority
}

// indexFold returns the byte offset of the first ASCII-case-insensitive
// occurrence of kw in s, or -1. kw must be lowercase ASCII. Searching the
// original bytes keeps the offset valid as a span on s; lowering s first
// can change its byte length for some characters (Turkish dotted I).
func indexFold(s, kw string) int {
	for i := 0; i+len(kw) <= len(s); i++ {
		j := 0
		for j < len(kw) {
			c := s[i+j]
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			if c != kw[j] {
				break
			}
			j++
		}
		if j == len(kw) {
			return i
		}
	}
	return -1
}
