package usecase

import (
	"encoding/json"
	"time"

	"todome/internal/parser"
)

// decodeRule deserializes the recurrence rule stored on a task. Empty or
// malformed rules yield nil (the task behaves as one-off).
func decodeRule(serialized string) *parser.RecurrenceRule {
	if serialized == "" {
		return nil
	}
	var rule parser.RecurrenceRule
	if err := json.Unmarshal([]byte(serialized), &rule); err != nil {
		return nil
	}
	if rule.Interval == "" {
		return nil
	}
	return &rule
}

func encodeRule(rule *parser.RecurrenceRule) string {
	if rule == nil {
		return ""
	}
	b, err := json.Marshal(rule)
	if err != nil {
		return ""
	}
	return string(b)
}

// nextDue computes the occurrence strictly after base. For absolute rules
// base is the current due date; for relative rules the completion time.
func (uc *implUseCase) nextDue(rule *parser.RecurrenceRule, base time.Time) time.Time {
	loc := uc.cal.Location()
	base = base.In(loc)

	switch {
	case len(rule.Weekdays) > 0:
		next := time.Time{}
		for _, wd := range rule.Weekdays {
			candidate := uc.cal.NextWeekday(base, time.Weekday(wd))
			if next.IsZero() || candidate.Before(next) {
				next = candidate
			}
		}
		// Multi-week intervals only pad when the schedule wrapped past the
		// current week; "every 2 weeks on monday and friday" still fires the
		// same week's friday.
		if rule.Count > 1 && int(next.Weekday()) <= int(base.Weekday()) {
			next = next.AddDate(0, 0, (rule.Count-1)*7)
		}
		return next

	case rule.MonthOfYear > 0:
		day := rule.DayOfMonth
		if day <= 0 {
			day = 1
		}
		next := monthDay(base.Year(), time.Month(rule.MonthOfYear), day, loc)
		for !next.After(uc.cal.StartOfDay(base)) {
			next = monthDay(next.Year()+rule.Count, time.Month(rule.MonthOfYear), day, loc)
		}
		return next

	case rule.DayOfMonth != 0:
		next := monthDay(base.Year(), base.Month(), rule.DayOfMonth, loc)
		if !next.After(uc.cal.StartOfDay(base)) {
			first := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, rule.Count, 0)
			next = monthDay(first.Year(), first.Month(), rule.DayOfMonth, loc)
		}
		return next

	default:
		return uc.cal.AddUnits(uc.cal.StartOfDay(base), rule.Interval, rule.Count)
	}
}

// monthDay builds the requested day within a month, clamping to the month's
// length. day -1 means the last day of the month.
func monthDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	last := time.Date(year, month, 1, 0, 0, 0, 0, loc).AddDate(0, 1, -1).Day()
	if day == -1 || day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// pastEnd reports whether next falls after the rule's optional end date.
func pastEnd(rule *parser.RecurrenceRule, next time.Time) bool {
	if rule.EndDate == nil {
		return false
	}
	return next.Format("2006-01-02") > *rule.EndDate
}
