package nlp

import (
	"iter"
	"strings"
	"unicode"
)

// Fragments lazily yields independent task-description fragments from one
// input string, in input order. Non-blank input always yields at least one
// fragment: if no separator produces a usable piece, the whole trimmed
// input is yielded. The sequence is finite and restartable.
func Fragments(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return
		}

		yielded := false
		start := 0
		i := 0
		for i < len(text) {
			if cut, width := separatorAt(text, i); cut {
				if piece := strings.TrimSpace(text[start:i]); piece != "" {
					yielded = true
					if !yield(piece) {
						return
					}
				}
				i += width
				start = i
				continue
			}
			i++
		}
		if piece := strings.TrimSpace(text[start:]); piece != "" {
			yielded = true
			if !yield(piece) {
				return
			}
		}

		if !yielded {
			yield(trimmed)
		}
	}
}

// Segment collects Fragments into a slice.
func Segment(text string) []string {
	var out []string
	for f := range Fragments(text) {
		out = append(out, f)
	}
	return out
}

// separatorAt reports whether a top-level task separator starts at i and
// how many bytes it spans. Separators are commas, semicolons, and the
// coordinating conjunctions "and"/"then". A comma between two digits is
// part of a time phrase (e.g. "2, 30" inside a duration) and never splits.
func separatorAt(text string, i int) (bool, int) {
	switch text[i] {
	case ';':
		return true, 1
	case ',':
		if digitBefore(text, i) && digitAfter(text, i+1) {
			return false, 0
		}
		return true, 1
	}

	for _, conj := range [...]string{"and", "then"} {
		n := len(conj)
		if i+n <= len(text) && strings.EqualFold(text[i:i+n], conj) &&
			wordBoundary(text, i-1) && wordBoundary(text, i+n) {
			// "2 hours and 30 minutes" is one duration phrase, not two tasks.
			if digitAfter(text, i+n) && durationUnitBefore(text, i) {
				return false, 0
			}
			return true, n
		}
	}

	return false, 0
}

var durationUnits = map[string]bool{
	"hour": true, "hours": true, "hr": true, "hrs": true, "h": true,
	"minute": true, "minutes": true, "min": true, "mins": true, "m": true,
}

func durationUnitBefore(text string, i int) bool {
	end := i
	for end > 0 && unicode.IsSpace(rune(text[end-1])) {
		end--
	}
	start := end
	for start > 0 && unicode.IsLetter(rune(text[start-1])) {
		start--
	}
	return durationUnits[strings.ToLower(text[start:end])]
}

func digitBefore(text string, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if unicode.IsSpace(rune(text[j])) {
			continue
		}
		return text[j] >= '0' && text[j] <= '9'
	}
	return false
}

func digitAfter(text string, i int) bool {
	for j := i; j < len(text); j++ {
		if unicode.IsSpace(rune(text[j])) {
			continue
		}
		return text[j] >= '0' && text[j] <= '9'
	}
	return false
}

func wordBoundary(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	c := rune(text[i])
	return !unicode.IsLetter(c) && !unicode.IsDigit(c)
}
