package domain

import (
	"fmt"
	"time"
)

// Date is a civil calendar date: a year/month/day with no time-of-day and no
// time zone. Collection schedules are calendar-date data — "recycling on
// Wednesday" — so carrying a time.Time around invites the classic bug where
// parsing "2024-01-03" as an instant lands on January 2nd for viewers west
// of UTC. Date is always built from explicit components and never from an
// ISO string fed to a zoned parser.
//
// Internally arithmetic is delegated to time.Date at a fixed UTC midnight,
// which is pure Gregorian calendar math with no DST exposure.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from components, normalizing overflow the same way
// time.Date does (e.g. month 13 rolls into the next year, day 0 into the
// previous month). This makes "first of next month" spelled as
// NewDate(y, m+1, 1) safe in December.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current calendar date in the given location.
// Callers capture it once per request/render pass and thread it through;
// the projection functions themselves never read the clock.
func Today(loc *time.Location) Date {
	y, m, d := time.Now().In(loc).Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a strict YYYY-MM-DD string into a Date.
// It validates shape and ranges itself rather than delegating to
// time.Parse, so "2024-1-3", timestamps, and zoned strings are all
// rejected, and no intermediate instant ever exists to be zone-shifted.
func ParseDate(s string) (Date, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	year, ok1 := atoi(s[0:4])
	month, ok2 := atoi(s[5:7])
	day, ok3 := atoi(s[8:10])
	if !ok1 || !ok2 || !ok3 {
		return Date{}, fmt.Errorf("invalid date %q: non-numeric component", s)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("invalid date %q: month out of range", s)
	}
	d := Date{Year: year, Month: time.Month(month), Day: day}
	if day < 1 || day > d.daysInMonth() {
		return Date{}, fmt.Errorf("invalid date %q: day out of range", s)
	}
	return d, nil
}

// atoi converts an all-digit substring to an int. Unlike strconv.Atoi it
// rejects signs and spaces, which are never valid inside a date.
func atoi(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func (d Date) daysInMonth() int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsZero reports whether d is the zero Date (no valid calendar date).
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week, Sunday = 0, matching the
// RecurrenceRule.DayOfWeek encoding.
func (d Date) Weekday() time.Weekday {
	return d.utc().Weekday()
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// DaysUntil returns the signed number of days from d to other
// (positive when other is later).
func (d Date) DaysUntil(other Date) int {
	return int(other.utc().Sub(d.utc()) / (24 * time.Hour))
}

// Compare returns -1 if d is before other, 0 if equal, +1 if after.
func (d Date) Compare(other Date) int {
	return d.utc().Compare(other.utc())
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" JSON string.
func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid date JSON %s", b)
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
