package parser

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"todome/pkg/datemath"
)

// RecurrenceKind tells how the next occurrence is anchored.
type RecurrenceKind string

const (
	// RecurrenceAbsolute recurs from the fixed schedule regardless of when
	// the task was completed.
	RecurrenceAbsolute RecurrenceKind = "absolute"
	// RecurrenceRelative recurs from the completion timestamp.
	RecurrenceRelative RecurrenceKind = "relative"
)

// RecurrenceRule is the structured form of an "every ..." phrase.
type RecurrenceRule struct {
	Text        string         `json:"text"`
	Kind        RecurrenceKind `json:"kind"`
	Interval    string         `json:"interval"` // day | week | month | year
	Count       int            `json:"count"`
	Weekdays    []int          `json:"weekdays,omitempty"`    // 0=Sunday .. 6=Saturday, sorted
	DayOfMonth  int            `json:"dayOfMonth,omitempty"`  // 1..31, -1 for "last day"
	MonthOfYear int            `json:"monthOfYear,omitempty"` // 1..12
	TimeOfDay   string         `json:"timeOfDay,omitempty"`   // HH:MM
	EndDate     *string        `json:"endDate,omitempty"`     // YYYY-MM-DD

	// Span of the whole phrase in the original input.
	Start int `json:"-"`
	End   int `json:"-"`
}

const weekdayAlt = `sunday|monday|tuesday|wednesday|thursday|friday|saturday|sun|mon|tues?|wed|thur?s?|fri|sat`

var (
	// The "!" of the relative form ("every! 2 weeks") sits outside the word
	// boundary and is consumed separately in parseRecurrenceAt.
	recurAnchorRe = regexp.MustCompile(`(?i)\b(?:(every)|(daily|weekly|monthly|yearly))\b`)

	recCountUnitRe = regexp.MustCompile(`(?i)^\s+(\d+)\s+(days?|weeks?|months?|years?)\b`)
	recOtherUnitRe = regexp.MustCompile(`(?i)^\s+other\s+(day|week|month|year)\b`)
	recUnitRe      = regexp.MustCompile(`(?i)^\s+(day|week|month|year)\b`)
	recWeekdaysRe  = regexp.MustCompile(`(?i)^\s+(?:on\s+)?((?:` + weekdayAlt + `)(?:(?:\s*,\s*|\s+and\s+|\s+or\s+)(?:` + weekdayAlt + `))*)\b`)
	recMonthDayRe  = regexp.MustCompile(`(?i)^\s+(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)(?:\s+(\d{1,2})(?:st|nd|rd|th)?)?\b`)

	recDOMRe     = regexp.MustCompile(`(?i)^\s+on\s+the\s+(?:(\d{1,2})(?:st|nd|rd|th)?|(last)\s+day)\b`)
	recInMonthRe = regexp.MustCompile(`(?i)^\s+in\s+(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\b`)
	recAtTimeRe  = regexp.MustCompile(`(?i)^\s+at\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
	recFromComplRe = regexp.MustCompile(`(?i)^\s+(?:from|after)\s+completion\b`)
	recUntilRe     = regexp.MustCompile(`(?i)^\s+until\s+`)

	weekdaySplitRe = regexp.MustCompile(`(?i)\s*,\s*|\s+and\s+|\s+or\s+`)
)

// extractRecurrences finds "every ..." phrases. A phrase that supplies no
// resolvable interval unit is not matched at all; there are no invalid
// recurrence highlights.
func extractRecurrences(input string, now time.Time, cal *datemath.Calendar) []*RecurrenceRule {
	var rules []*RecurrenceRule
	offset := 0
	for offset < len(input) {
		m := recurAnchorRe.FindStringSubmatchIndex(input[offset:])
		if m == nil {
			break
		}
		start := offset + m[0]
		rule, end := parseRecurrenceAt(input, offset+m[1], m, offset, now, cal)
		if rule == nil {
			offset = offset + m[1]
			continue
		}
		rule.Start = start
		rule.End = end
		rule.Text = input[start:end]
		rules = append(rules, rule)
		offset = end
	}
	return rules
}

// parseRecurrenceAt consumes the grammar after an anchor hit. Returns the
// rule and the byte offset one past the matched phrase, or nil when the
// anchor does not resolve to a unit.
func parseRecurrenceAt(input string, anchorEnd int, m []int, base int, now time.Time, cal *datemath.Calendar) (*RecurrenceRule, int) {
	rule := &RecurrenceRule{Kind: RecurrenceAbsolute, Count: 1}
	end := anchorEnd

	if m[4] >= 0 { // daily | weekly | monthly | yearly
		switch strings.ToLower(input[base+m[4] : base+m[5]]) {
		case "daily":
			rule.Interval = "day"
		case "weekly":
			rule.Interval = "week"
		case "monthly":
			rule.Interval = "month"
		case "yearly":
			rule.Interval = "year"
		}
	} else { // every | every!
		if end < len(input) && input[end] == '!' {
			rule.Kind = RecurrenceRelative
			end++
		}
		var ok bool
		end, ok = consumeUnit(input, end, rule)
		if !ok {
			return nil, 0
		}
	}

	end = consumeQualifiers(input, end, rule, now, cal)
	return rule, end
}

// consumeUnit handles the token(s) directly after "every": a count+unit, an
// "other <unit>", a bare unit, a weekday list, or a month name.
func consumeUnit(input string, end int, rule *RecurrenceRule) (int, bool) {
	rest := input[end:]

	if m := recCountUnitRe.FindStringSubmatchIndex(rest); m != nil {
		rule.Count = atoiAt(rest, m[2], m[3])
		if rule.Count < 1 {
			return 0, false
		}
		rule.Interval = strings.TrimSuffix(strings.ToLower(rest[m[4]:m[5]]), "s")
		return end + m[1], true
	}
	if m := recOtherUnitRe.FindStringSubmatchIndex(rest); m != nil {
		rule.Count = 2
		rule.Interval = strings.ToLower(rest[m[2]:m[3]])
		return end + m[1], true
	}
	if m := recUnitRe.FindStringSubmatchIndex(rest); m != nil {
		rule.Interval = strings.ToLower(rest[m[2]:m[3]])
		return end + m[1], true
	}
	if m := recWeekdaysRe.FindStringSubmatchIndex(rest); m != nil {
		rule.Interval = "week"
		rule.Weekdays = parseWeekdayList(rest[m[2]:m[3]])
		return end + m[1], true
	}
	if m := recMonthDayRe.FindStringSubmatchIndex(rest); m != nil {
		month, ok := datemath.ParseMonth(rest[m[2]:m[3]])
		if !ok {
			return 0, false
		}
		rule.Interval = "year"
		rule.MonthOfYear = int(month)
		if m[4] >= 0 {
			day := atoiAt(rest, m[4], m[5])
			if day < 1 || day > 31 {
				return 0, false
			}
			rule.DayOfMonth = day
		}
		return end + m[1], true
	}
	return 0, false
}

// consumeQualifiers greedily consumes optional clauses after the unit:
// weekday list, day-of-month, month, time, completion anchor, end date.
func consumeQualifiers(input string, end int, rule *RecurrenceRule, now time.Time, cal *datemath.Calendar) int {
	for {
		rest := input[end:]

		if rule.Interval == "week" && len(rule.Weekdays) == 0 {
			if m := recWeekdaysRe.FindStringSubmatchIndex(rest); m != nil {
				rule.Weekdays = parseWeekdayList(rest[m[2]:m[3]])
				end += m[1]
				continue
			}
		}
		if rule.Interval == "month" && rule.DayOfMonth == 0 {
			if m := recDOMRe.FindStringSubmatchIndex(rest); m != nil {
				if m[4] >= 0 { // lettered "last day"
					rule.DayOfMonth = -1
				} else {
					day := atoiAt(rest, m[2], m[3])
					if day >= 1 && day <= 31 {
						rule.DayOfMonth = day
					}
				}
				if rule.DayOfMonth != 0 {
					end += m[1]
					continue
				}
			}
		}
		if rule.Interval == "year" && rule.MonthOfYear == 0 {
			if m := recInMonthRe.FindStringSubmatchIndex(rest); m != nil {
				if month, ok := datemath.ParseMonth(rest[m[2]:m[3]]); ok {
					rule.MonthOfYear = int(month)
					end += m[1]
					continue
				}
			}
		}
		if rule.TimeOfDay == "" {
			if m := recAtTimeRe.FindStringSubmatchIndex(rest); m != nil {
				hour := atoiAt(rest, m[2], m[3])
				minute := 0
				if m[4] >= 0 {
					minute = atoiAt(rest, m[4], m[5])
				}
				var clock string
				var ok bool
				if m[6] >= 0 {
					clock, ok = clock12(hour, minute, strings.ToLower(rest[m[6]:m[7]]))
				} else {
					clock, ok = clock24(hour, minute)
				}
				if ok {
					rule.TimeOfDay = clock
					end += m[1]
					continue
				}
			}
		}
		if rule.Kind == RecurrenceAbsolute {
			if m := recFromComplRe.FindStringIndex(rest); m != nil {
				rule.Kind = RecurrenceRelative
				end += m[1]
				continue
			}
		}
		if rule.EndDate == nil {
			if m := recUntilRe.FindStringIndex(rest); m != nil {
				if date, dateLen, ok := parseExplicitDate(rest[m[1]:], now, cal); ok {
					formatted := date.Format("2006-01-02")
					rule.EndDate = &formatted
					end += m[1] + dateLen
					continue
				}
			}
		}
		return end
	}
}

// parseWeekdayList splits "monday and friday" / "mon, wed, fri" into a
// sorted, deduplicated 0..6 set.
func parseWeekdayList(list string) []int {
	set := make(map[int]bool)
	for _, name := range weekdaySplitRe.Split(list, -1) {
		if wd, ok := datemath.ParseWeekday(name); ok {
			set[int(wd)] = true
		}
	}
	days := make([]int, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

var (
	untilISORe      = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	untilSlashRe    = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)
	untilMonthDayRe = regexp.MustCompile(`(?i)^(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
)

// parseExplicitDate parses an explicit calendar date at the start of s and
// returns the parsed time, the matched length, and whether it matched.
// Year-less forms take their year from now.
func parseExplicitDate(s string, now time.Time, cal *datemath.Calendar) (time.Time, int, bool) {
	if m := untilISORe.FindStringSubmatchIndex(s); m != nil {
		t, ok := cal.Date(atoiAt(s, m[2], m[3]), time.Month(atoiAt(s, m[4], m[5])), atoiAt(s, m[6], m[7]))
		if ok {
			return t, m[1], true
		}
		return time.Time{}, 0, false
	}
	if m := untilSlashRe.FindStringSubmatchIndex(s); m != nil {
		month := atoiAt(s, m[2], m[3])
		day := atoiAt(s, m[4], m[5])
		year := now.In(cal.Location()).Year()
		if m[6] >= 0 {
			year = atoiAt(s, m[6], m[7])
			if year < 100 {
				year += 2000
			}
		}
		if t, ok := cal.Date(year, time.Month(month), day); ok {
			return t, m[1], true
		}
		return time.Time{}, 0, false
	}
	if m := untilMonthDayRe.FindStringSubmatchIndex(s); m != nil {
		month, ok := datemath.ParseMonth(s[m[2]:m[3]])
		if !ok {
			return time.Time{}, 0, false
		}
		day := atoiAt(s, m[4], m[5])
		year := now.In(cal.Location()).Year()
		if m[6] >= 0 {
			year = atoiAt(s, m[6], m[7])
		}
		if t, ok := cal.Date(year, month, day); ok {
			return t, m[1], true
		}
	}
	return time.Time{}, 0, false
}
