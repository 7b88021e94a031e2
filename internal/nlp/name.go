package nlp

import (
	"strings"
)

// Connective words dropped from the edges of a cleaned name, left over from
// removed phrases ("buy milk by" after "tomorrow" is stripped).
var edgeConnectives = map[string]bool{
	"for": true, "by": true, "at": true, "on": true, "in": true,
	"and": true, "then": true, "the": true, "a": true, "an": true,
	"until": true, "before": true, "due": true,
}

// Filler words dropped anywhere; they carry no task content once the
// categories around them are extracted.
var fillerWords = map[string]bool{
	"sometime": true,
}

// taskName derives the task name by blanking every consumed span and
// trimming the residue. An empty result falls back to the raw fragment.
func (p *Parser) taskName(fragment string, ex *extraction) string {
	buf := []byte(fragment)
	for _, s := range ex.removed {
		for i := s.start; i < s.end && i < len(buf); i++ {
			buf[i] = ' '
		}
	}

	words := strings.Fields(string(buf))

	// Drop fillers anywhere, punctuation-only tokens, then connectives at
	// the edges.
	kept := words[:0]
	for _, w := range words {
		trimmed := strings.Trim(w, ",.;:!?-")
		if trimmed == "" || fillerWords[strings.ToLower(trimmed)] {
			continue
		}
		kept = append(kept, trimmed)
	}
	for len(kept) > 0 && edgeConnectives[strings.ToLower(kept[0])] {
		kept = kept[1:]
	}
	for len(kept) > 0 && edgeConnectives[strings.ToLower(kept[len(kept)-1])] {
		kept = kept[:len(kept)-1]
	}

	name := strings.Join(kept, " ")
	if name == "" {
		return strings.TrimSpace(fragment)
	}
	return name
}
