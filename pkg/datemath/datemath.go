package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Calendar performs timezone-aware day arithmetic. It backs both the
// natural-language date extractor and the due-window task queries.
type Calendar struct {
	location *time.Location
}

// New creates a Calendar for the given IANA timezone string,
// e.g. "Europe/Berlin".
func New(timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// StartOfDay returns midnight at the start of the given day in the
// calendar's timezone.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// EndOfDay returns 23:59:59 of the same day.
func (c *Calendar) EndOfDay(t time.Time) time.Time {
	return c.StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// AddDays returns the start of the day n days after t.
func (c *Calendar) AddDays(t time.Time, n int) time.Time {
	return c.StartOfDay(t.AddDate(0, 0, n))
}

// AddUnits advances t by n units, where unit is one of
// "day", "week", "month", "year".
func (c *Calendar) AddUnits(t time.Time, unit string, n int) time.Time {
	switch unit {
	case "week":
		return t.AddDate(0, 0, n*7)
	case "month":
		return t.AddDate(0, n, 0)
	case "year":
		return t.AddDate(n, 0, 0)
	default:
		return t.AddDate(0, 0, n)
	}
}

// NextWeekday returns the start of the next occurrence of the given weekday
// strictly after the day of base. If base is already that weekday the result
// is one week later.
func (c *Calendar) NextWeekday(base time.Time, target time.Weekday) time.Time {
	base = base.In(c.location)
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return c.AddDays(base, daysUntil)
}

// Date builds a date in the calendar's timezone and reports whether the
// components form a real calendar day (rejects Feb 30 and friends).
func (c *Calendar) Date(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, c.location)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thur":      time.Thursday,
	"thurs":     time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// ParseWeekday resolves an English weekday name or common abbreviation.
func ParseWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

var monthNames = map[string]time.Month{
	"january":   time.January,
	"jan":       time.January,
	"february":  time.February,
	"feb":       time.February,
	"march":     time.March,
	"mar":       time.March,
	"april":     time.April,
	"apr":       time.April,
	"may":       time.May,
	"june":      time.June,
	"jun":       time.June,
	"july":      time.July,
	"jul":       time.July,
	"august":    time.August,
	"aug":       time.August,
	"september": time.September,
	"sep":       time.September,
	"sept":      time.September,
	"october":   time.October,
	"oct":       time.October,
	"november":  time.November,
	"nov":       time.November,
	"december":  time.December,
	"dec":       time.December,
}

// ParseMonth resolves an English month name or common abbreviation.
func ParseMonth(name string) (time.Month, bool) {
	m, ok := monthNames[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}
