package parser

import "regexp"

// Priority marker bounds accepted by the parser. Deliberately narrower than
// the persisted task range (1..5); see the model package note.
const (
	priorityMin = 0
	priorityMax = 4
)

// Markers like "p3" or "!2", case-insensitive, anchored at a space or the
// string boundary so "wrap3" never matches.
var priorityRe = regexp.MustCompile(`(?i)(?:^|\s)([p!](-?\d{1,2}))\b`)

// extractPriorities finds every priority marker. Out-of-range numerals stay
// highlighted with Valid=false so the UI can show the rejection in place.
func extractPriorities(input string) []PriorityMatch {
	var matches []PriorityMatch
	for _, m := range priorityRe.FindAllStringSubmatchIndex(input, -1) {
		start, end := m[2], m[3]
		value := atoiAt(input, m[4], m[5])

		pm := PriorityMatch{
			Text:  input[start:end],
			Start: start,
			End:   end,
		}
		if value >= priorityMin && value <= priorityMax {
			v := value
			pm.Priority = &v
			pm.Valid = true
		}
		matches = append(matches, pm)
	}
	return matches
}
