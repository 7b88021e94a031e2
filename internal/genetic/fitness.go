package genetic

import (
	"time"

	"smart-day-planner/internal/model"
)

// Evaluator scores chromosomes. Higher is better. Scoring is a pure
// function of its inputs: the same chromosome, task set, preferences and
// day always produce the same score.
type Evaluator struct {
	weights Weights
}

// NewEvaluator creates an evaluator with the given weights.
func NewEvaluator(w Weights) *Evaluator {
	return &Evaluator{weights: w}
}

// Evaluate decodes the chromosome with the builder's placement rule and
// sums the scoring terms. Ties between equal scores are broken by the
// decoder's deterministic placement, never here.
func (e *Evaluator) Evaluate(chrom Chromosome, tasks []model.Task, prefs model.Preferences, day time.Time) float64 {
	d := decode(chrom, tasks, prefs, day)

	score := 0.0
	n := len(chrom)

	// Priority-order reward: earlier positions earn priority times the
	// number of remaining slots, favoring high-priority-first orderings.
	for pos, idx := range chrom {
		score += e.weights.PriorityReward * float64(tasks[idx].Priority) * float64(n-1-pos)
	}

	for _, dt := range d.tasks {
		t := tasks[dt.idx]

		switch {
		case dt.scheduled:
			// Inclusive boundary: finishing exactly at the deadline meets it.
			if t.Deadline != nil && dt.finish.After(*t.Deadline) {
				score -= e.weights.DeadlinePenalty
			}
			if e.preferenceMet(t, dt.start) {
				score += e.weights.PreferenceBonus
			}
		case dt.reason == model.ReasonDeadlinePassed:
			score -= e.weights.DeadlinePenalty
		case dt.reason == model.ReasonOverflow:
			score -= e.weights.OverflowPenalty * float64(t.Priority)
		}
	}

	score -= e.weights.FragmentationPenalty * d.idleMinutes()

	return score
}

// Time-of-day bands used for vague preferences.
const (
	morningStartHour   = 6
	afternoonStartHour = 12
	eveningStartHour   = 17
	eveningEndHour     = 22
)

func (e *Evaluator) preferenceMet(t model.Task, start time.Time) bool {
	p := t.PreferredTime
	if p == nil {
		return false
	}

	if p.HasClock {
		want := time.Date(start.Year(), start.Month(), start.Day(), p.ClockHour, p.ClockMinute, 0, 0, start.Location())
		diff := start.Sub(want)
		if diff < 0 {
			diff = -diff
		}
		return diff <= time.Duration(e.weights.ClockToleranceMinutes)*time.Minute
	}

	hour := start.Hour()
	switch p.Band {
	case model.BandMorning:
		return hour >= morningStartHour && hour < afternoonStartHour
	case model.BandAfternoon:
		return hour >= afternoonStartHour && hour < eveningStartHour
	case model.BandEvening:
		return hour >= eveningStartHour && hour < eveningEndHour
	}
	return false
}
