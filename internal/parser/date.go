package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"todome/pkg/datemath"
)

// Recognized date phrase shapes, tried in this order. Offsets always refer
// to the original input string.
var (
	isoDateRe   = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	slashDateRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)
	monthDayRe  = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
	relDayRe    = regexp.MustCompile(`(?i)\b(today|tomorrow|yesterday)\b`)
	weekdayRe   = regexp.MustCompile(`(?i)\b(?:(next|this)\s+)?(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)
	inOffsetRe  = regexp.MustCompile(`(?i)\bin\s+(\d+)\s+(days?|weeks?|months?)\b`)

	// Trailing time phrase attached directly after a date phrase.
	timeAmPmRe = regexp.MustCompile(`(?i)^,?\s+(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	time24hRe  = regexp.MustCompile(`^,?\s+(?:at\s+)?(\d{1,2}):(\d{2})\b`)
)

// dateCandidate is one regex hit before overlap resolution.
type dateCandidate struct {
	start, end int
	date       *time.Time
	valid      bool
}

// extractDates finds every date phrase in the input. The coordinator treats
// the first one as authoritative; later ones only produce duplicate warnings.
func extractDates(input string, now time.Time, cal *datemath.Calendar) []DateMatch {
	today := cal.StartOfDay(now)

	var cands []dateCandidate
	add := func(start, end int, date *time.Time, valid bool) {
		cands = append(cands, dateCandidate{start: start, end: end, date: date, valid: valid})
	}

	for _, m := range isoDateRe.FindAllStringSubmatchIndex(input, -1) {
		year := atoiAt(input, m[2], m[3])
		month := atoiAt(input, m[4], m[5])
		day := atoiAt(input, m[6], m[7])
		if t, ok := cal.Date(year, time.Month(month), day); ok {
			add(m[0], m[1], &t, true)
		} else {
			add(m[0], m[1], nil, false)
		}
	}

	for _, m := range slashDateRe.FindAllStringSubmatchIndex(input, -1) {
		month := atoiAt(input, m[2], m[3])
		day := atoiAt(input, m[4], m[5])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			continue // plain numbers, not a date
		}
		year := today.Year()
		explicitYear := m[6] >= 0
		if explicitYear {
			year = atoiAt(input, m[6], m[7])
			if year < 100 {
				year += 2000
			}
		}
		t, ok := cal.Date(year, time.Month(month), day)
		if !ok {
			add(m[0], m[1], nil, false)
			continue
		}
		if !explicitYear && t.Before(today) {
			t = t.AddDate(1, 0, 0)
		}
		add(m[0], m[1], &t, true)
	}

	for _, m := range monthDayRe.FindAllStringSubmatchIndex(input, -1) {
		month, ok := datemath.ParseMonth(input[m[2]:m[3]])
		if !ok {
			continue
		}
		day := atoiAt(input, m[4], m[5])
		year := today.Year()
		explicitYear := m[6] >= 0
		if explicitYear {
			year = atoiAt(input, m[6], m[7])
		}
		t, ok := cal.Date(year, month, day)
		if !ok {
			add(m[0], m[1], nil, false) // e.g. "Feb 30"
			continue
		}
		if !explicitYear && t.Before(today) {
			t = t.AddDate(1, 0, 0)
		}
		add(m[0], m[1], &t, true)
	}

	for _, m := range relDayRe.FindAllStringSubmatchIndex(input, -1) {
		var t time.Time
		switch strings.ToLower(input[m[2]:m[3]]) {
		case "today":
			t = today
		case "tomorrow":
			t = cal.AddDays(now, 1)
		case "yesterday":
			t = cal.AddDays(now, -1)
		}
		add(m[0], m[1], &t, true)
	}

	for _, m := range weekdayRe.FindAllStringSubmatchIndex(input, -1) {
		wd, ok := datemath.ParseWeekday(input[m[4]:m[5]])
		if !ok {
			continue
		}
		t := cal.NextWeekday(now, wd)
		add(m[0], m[1], &t, true)
	}

	for _, m := range inOffsetRe.FindAllStringSubmatchIndex(input, -1) {
		n := atoiAt(input, m[2], m[3])
		unit := strings.TrimSuffix(strings.ToLower(input[m[4]:m[5]]), "s")
		t := cal.StartOfDay(cal.AddUnits(now, unit, n))
		add(m[0], m[1], &t, true)
	}

	// Earlier start wins; on ties the longer span wins (so "6/1/2026" beats
	// any shorter hit at the same offset).
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].start != cands[j].start {
			return cands[i].start < cands[j].start
		}
		return cands[i].end > cands[j].end
	})

	var matches []DateMatch
	lastEnd := -1
	for _, c := range cands {
		if c.start < lastEnd {
			continue
		}
		dm := DateMatch{
			Date:  c.date,
			Text:  input[c.start:c.end],
			Start: c.start,
			End:   c.end,
			Valid: c.valid,
		}
		attachTime(&dm, input)
		matches = append(matches, dm)
		lastEnd = dm.End
		if dm.HasTime || dm.TimeText != "" {
			lastEnd = dm.TimeEnd
		}
	}
	return matches
}

// attachTime looks for a time phrase immediately following the date span and
// records it as a sub-span. A recognized but out-of-range clock value keeps
// the span with HasTime=false and TimeValid=false.
func attachTime(dm *DateMatch, input string) {
	rest := input[dm.End:]

	if m := timeAmPmRe.FindStringSubmatchIndex(rest); m != nil {
		hour := atoiAt(rest, m[2], m[3])
		minute := 0
		if m[4] >= 0 {
			minute = atoiAt(rest, m[4], m[5])
		}
		clock, ok := clock12(hour, minute, strings.ToLower(rest[m[6]:m[7]]))
		setTimeSpan(dm, input, m[0], m[1], clock, ok)
		return
	}

	if m := time24hRe.FindStringSubmatchIndex(rest); m != nil {
		hour := atoiAt(rest, m[2], m[3])
		minute := atoiAt(rest, m[4], m[5])
		clock, ok := clock24(hour, minute)
		setTimeSpan(dm, input, m[0], m[1], clock, ok)
	}
}

func setTimeSpan(dm *DateMatch, input string, relStart, relEnd int, clock string, ok bool) {
	start := dm.End + relStart
	end := dm.End + relEnd
	// Skip the separator whitespace so the highlight covers "at 3pm", not " at 3pm".
	for start < end && (input[start] == ' ' || input[start] == ',') {
		start++
	}
	dm.TimeText = input[start:end]
	dm.TimeStart = start
	dm.TimeEnd = end
	dm.TimeValid = ok
	if ok {
		dm.TimeOfDay = clock
		dm.HasTime = true
	}
}

// clock12 converts a 12-hour clock reading to "HH:MM".
func clock12(hour, minute int, ampm string) (string, bool) {
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return "", false
	}
	if ampm == "pm" && hour != 12 {
		hour += 12
	}
	if ampm == "am" && hour == 12 {
		hour = 0
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

// clock24 validates a 24-hour clock reading.
func clock24(hour, minute int) (string, bool) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

// atoiAt parses the integer at input[start:end]. The offsets always come
// from a digit-only capture group, so the error can not fire.
func atoiAt(input string, start, end int) int {
	n, _ := strconv.Atoi(input[start:end])
	return n
}
