package nlp

import (
	"time"

	"smart-day-planner/internal/model"
)

// Parse extracts a Task from one fragment. It never fails: on total
// ambiguity the fragment itself becomes the name and every category falls
// back to its documented default. targetDate anchors relative deadline
// phrases ("tomorrow", "by friday").
func (p *Parser) Parse(fragment string, targetDate time.Time) model.Task {
	ex := &extraction{}
	for _, m := range p.matchers {
		m.match(p, fragment, targetDate, ex)
	}

	return model.Task{
		Name:          p.taskName(fragment, ex),
		Duration:      ex.duration,
		Priority:      clampPriority(ex.priority),
		Deadline:      ex.deadline,
		PreferredTime: ex.pref,
		Date:          targetDate.Format("2006-01-02"),
		RawInput:      fragment,
	}
}

// ParseAll segments the input and parses every fragment, preserving input
// order.
func (p *Parser) ParseAll(text string, targetDate time.Time) []model.Task {
	var tasks []model.Task
	for fragment := range Fragments(text) {
		tasks = append(tasks, p.Parse(fragment, targetDate))
	}
	return tasks
}

func clampPriority(n int) int {
	if n < model.PriorityMin {
		return model.PriorityMin
	}
	if n > model.PriorityMax {
		return model.PriorityMax
	}
	return n
}
