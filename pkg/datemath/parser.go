package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var (
	inDurationRe = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	clockRe      = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)
)

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today", "tonight":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "next week":
		return p.StartOfDay(baseTime.AddDate(0, 0, 7)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if day, ok := weekdays[strings.TrimPrefix(relative, "next ")]; ok {
		return p.NextWeekday(day, baseTime), nil
	}

	// Fallback: treat unknown as today
	return p.StartOfDay(baseTime), nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])

	switch {
	case strings.HasPrefix(matches[2], "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(matches[2], "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// NextWeekday returns the start of the next occurrence of the given weekday
// strictly after baseTime's day. A weekday equal to baseTime's lands one
// week out.
func (p *Parser) NextWeekday(target time.Weekday, baseTime time.Time) time.Time {
	daysUntil := int(target-baseTime.In(p.location).Weekday()+7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil))
}

// ParseClock parses a clock phrase like "5pm", "3:30pm", "15:00" and returns
// hour and minute in 24h form.
func (p *Parser) ParseClock(phrase string) (hour, minute int, err error) {
	matches := clockRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(phrase)))
	if matches == nil {
		return 0, 0, fmt.Errorf("invalid clock phrase: %q", phrase)
	}

	hour, _ = strconv.Atoi(matches[1])
	if matches[2] != "" {
		minute, _ = strconv.Atoi(matches[2])
	}
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("clock phrase out of range: %q", phrase)
	}

	switch matches[3] {
	case "pm":
		if hour == 0 || hour > 12 {
			return 0, 0, fmt.Errorf("invalid 12h hour in %q", phrase)
		}
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 0 || hour > 12 {
			return 0, 0, fmt.Errorf("invalid 12h hour in %q", phrase)
		}
		if hour == 12 {
			hour = 0
		}
	}

	return hour, minute, nil
}

// At combines a day (any time within it) with a clock time in the parser's
// timezone.
func (p *Parser) At(day time.Time, hour, minute int) time.Time {
	day = day.In(p.location)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location)
}

// StartOfDay returns midnight at the start of the given day in the parser's
// timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 on the same day as t.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	return p.StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}
