package nlp

import (
	"regexp"
	"strings"
	"time"
)

var (
	// "by 5pm", "before 3:30pm", "until 17:00"
	byClockRe = regexp.MustCompile(`(?i)\b(?:by|before|until)\s+(\d{1,2}(?::\d{2})?\s*(?:am|pm)?)\b`)
	// "today", "by tomorrow", "tonight", "next week"
	relativeDayRe = regexp.MustCompile(`(?i)\b(?:by\s+|on\s+)?(today|tonight|tomorrow|next week)\b`)
	// "by friday", "on monday", bare weekday names
	weekdayRe = regexp.MustCompile(`(?i)\b(?:by\s+|on\s+|next\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
)

// matchDeadline resolves deadline phrases against the task's target date.
// Deadlines already in the past are retained so the scheduler can report
// infeasibility instead of hiding it.
func matchDeadline(p *Parser, fragment string, targetDate time.Time, ex *extraction) {
	if loc := byClockRe.FindStringSubmatchIndex(fragment); loc != nil {
		phrase := fragment[loc[2]:loc[3]]
		if hour, minute, err := p.dm.ParseClock(phrase); err == nil {
			deadline := p.dm.At(targetDate, hour, minute)
			ex.deadline = &deadline
			ex.removed = append(ex.removed, span{start: loc[0], end: loc[1]})
			return
		}
	}

	if loc := relativeDayRe.FindStringSubmatchIndex(fragment); loc != nil {
		word := strings.ToLower(fragment[loc[2]:loc[3]])
		day, err := p.dm.Parse(word, targetDate)
		if err == nil {
			deadline := p.dm.EndOfDay(day)
			ex.deadline = &deadline
			ex.removed = append(ex.removed, span{start: loc[0], end: loc[1]})
			return
		}
	}

	if loc := weekdayRe.FindStringSubmatchIndex(fragment); loc != nil {
		word := strings.ToLower(fragment[loc[2]:loc[3]])
		if wd, ok := weekdayNames[word]; ok {
			deadline := p.dm.EndOfDay(p.dm.NextWeekday(wd, targetDate))
			ex.deadline = &deadline
			ex.removed = append(ex.removed, span{start: loc[0], end: loc[1]})
			return
		}
	}
}

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}
