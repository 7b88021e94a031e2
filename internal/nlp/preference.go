package nlp

import (
	"regexp"
	"time"

	"smart-day-planner/internal/model"
)

// "at 3pm", "at 14:30"
var atClockRe = regexp.MustCompile(`(?i)\bat\s+(\d{1,2}(?::\d{2})?\s*(?:am|pm)?)\b`)

var bandLexicon = []struct {
	band     model.TimeBand
	keywords []string
}{
	{model.BandMorning, []string{"morning", "early", "before noon"}},
	{model.BandAfternoon, []string{"afternoon", "after lunch", "midday"}},
	{model.BandEvening, []string{"evening", "night", "after work", "late"}},
}

// matchPreference records at most one time-of-day preference. An explicit
// clock time takes precedence over vague bands.
func matchPreference(p *Parser, fragment string, _ time.Time, ex *extraction) {
	if loc := atClockRe.FindStringSubmatchIndex(fragment); loc != nil {
		phrase := fragment[loc[2]:loc[3]]
		if hour, minute, err := p.dm.ParseClock(phrase); err == nil {
			ex.pref = &model.TimePreference{
				HasClock:    true,
				ClockHour:   hour,
				ClockMinute: minute,
			}
			ex.removed = append(ex.removed, span{start: loc[0], end: loc[1]})
			return
		}
	}

	for _, b := range bandLexicon {
		for _, kw := range b.keywords {
			idx := indexFold(fragment, kw)
			if idx < 0 {
				continue
			}
			ex.pref = &model.TimePreference{Band: b.band}
			ex.removed = append(ex.removed, span{start: idx, end: idx + len(kw)})
			return
		}
	}
}
