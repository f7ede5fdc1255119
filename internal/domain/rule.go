package domain

import "fmt"

// Frequency is the cadence of a recurrence rule.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Valid reports whether f is one of the three supported cadences.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	}
	return false
}

// RecurrenceRule binds a collection type to a zone with a cadence.
// The absence of a rule for a (zone, type) pair means that stream is not
// collected in that zone.
//
// StartDate anchors parity for biweekly and monthly rules and is required
// for both; weekly rules ignore it. PiggybackOn is valid only for monthly
// rules: when set, the day-of-week and anchor used for projection are
// inherited from the referenced type's rule in the same zone.
//
// Time and EndTime are display-only strings (e.g. "07:00") and never enter
// the date math.
type RecurrenceRule struct {
	DayOfWeek   int       `json:"dayOfWeek"` // 0–6, Sunday = 0
	Frequency   Frequency `json:"frequency"`
	StartDate   *Date     `json:"startDate,omitempty"`
	PiggybackOn string    `json:"piggybackOn,omitempty"`
	Time        string    `json:"time,omitempty"`
	EndTime     string    `json:"endTime,omitempty"`
}

// Validate enforces the field-local rules at the admin-editing boundary:
// day-of-week in range, known frequency, anchor present for non-weekly
// cadences, piggyback restricted to monthly. Projection deliberately does
// NOT call this — bad data that slipped past the boundary degrades to a
// weekly candidate instead of crashing a resident-facing screen.
func (r RecurrenceRule) Validate() error {
	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		return fmt.Errorf("%w: dayOfWeek must be 0-6, got %d", ErrValidation, r.DayOfWeek)
	}
	if !r.Frequency.Valid() {
		return fmt.Errorf("%w: unknown frequency %q", ErrValidation, r.Frequency)
	}
	if r.Frequency != FrequencyWeekly && (r.StartDate == nil || r.StartDate.IsZero()) {
		return fmt.Errorf("%w: startDate is required for %s rules", ErrValidation, r.Frequency)
	}
	if r.PiggybackOn != "" && r.Frequency != FrequencyMonthly {
		return fmt.Errorf("%w: piggybackOn is only valid for monthly rules", ErrValidation)
	}
	return nil
}

// fieldRequired wraps ErrValidation for a missing required field.
func fieldRequired(name string) error {
	return fmt.Errorf("%w: %s is required", ErrValidation, name)
}
