package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayType distinguishes the two demand profiles a restaurant plans against
type DayType string

const (
	DayTypeWeekday DayType = "weekday"
	DayTypeWeekend DayType = "weekend"
)

// DayTypeFor returns the demand profile for a calendar date
func DayTypeFor(date time.Time) DayType {
	if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		return DayTypeWeekend
	}
	return DayTypeWeekday
}

// StaffMember represents one employee on the roster.
// The engine receives an immutable snapshot; it never mutates these records.
type StaffMember struct {
	ID              string
	Name            string
	Position        string // Concrete job title, e.g. "Head Server"
	HourlyRate      decimal.Decimal
	MaxHoursPerWeek float64
	// Efficiency is a capacity x productivity multiplier. Defaults to 1.0
	// when the roster record carries none.
	Efficiency float64
}

// ConstraintKind identifies the two top-level constraint families
type ConstraintKind string

const (
	ConstraintPTO       ConstraintKind = "pto"
	ConstraintRecurring ConstraintKind = "recurring"
)

// RecurringRule is the closed set of recurring constraint variants
type RecurringRule string

const (
	RuleBlockedWeekdays RecurringRule = "blocked_weekdays"
	RuleNoBefore        RecurringRule = "no_before"
	RuleNoAfter         RecurringRule = "no_after"
	RuleNoWeekends      RecurringRule = "no_weekends"
	RuleWeekendsOnly    RecurringRule = "weekends_only"
	RuleNoOpening       RecurringRule = "no_opening"
	RuleNoClosing       RecurringRule = "no_closing"
)

// Constraint belongs to exactly one staff member.
// For PTO constraints only the date range is meaningful; for recurring
// constraints the rule, optional weekday list and optional expiry apply.
type Constraint struct {
	ID      string
	StaffID string
	Kind    ConstraintKind

	// PTO range, inclusive on both ends
	PTOStart time.Time
	PTOEnd   time.Time

	// Recurring rule details
	Rule            RecurringRule
	BlockedWeekdays []time.Weekday
	// ExpiresOn makes the recurrence inert for any date after it. Zero
	// means the rule never expires.
	ExpiresOn time.Time
}

// Expired reports whether a recurring constraint has lapsed for the given date
func (c *Constraint) Expired(date time.Time) bool {
	if c.Kind != ConstraintRecurring || c.ExpiresOn.IsZero() {
		return false
	}
	return date.After(c.ExpiresOn)
}

// DemandCurve maps day type -> hour of day (9-23) -> expected covers per hour
type DemandCurve map[DayType]map[int]float64

// Shift is a single concrete assignment produced by the allocator.
// Immutable once created; the run's output is the ordered sequence of these.
type Shift struct {
	ID         string
	StaffID    string
	Date       time.Time
	Start      time.Time
	End        time.Time
	Role       string
	Template   string
	HourlyRate decimal.Decimal
	// Efficiency at time of assignment, snapshotted so later roster edits
	// don't rewrite history.
	Efficiency float64
}

// Hours returns the shift length in hours
func (s *Shift) Hours() float64 {
	return s.End.Sub(s.Start).Hours()
}

// Cost returns rate x hours for this shift
func (s *Shift) Cost() decimal.Decimal {
	return s.HourlyRate.Mul(decimal.NewFromFloat(s.Hours()))
}
