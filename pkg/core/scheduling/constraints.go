package scheduling

import (
	"time"

	"github.com/rgoodall/brigade/pkg/core/model"
)

// Fixed hour thresholds for the recurring rule variants
const (
	morningCutoffHour = 12 // no_before blocks hours earlier than this
	eveningCutoffHour = 22 // no_after and no_closing block this hour onward
	openingHour       = 10 // no_opening blocks hours earlier than this
)

// Evaluator answers eligibility questions for (staff, date, hour) triples.
// It is pure: construction indexes the constraint snapshot and evaluation
// has no side effects, so a single Evaluator can serve a whole run.
type Evaluator struct {
	byStaff map[string][]model.Constraint
}

// NewEvaluator indexes the constraint snapshot by staff member
func NewEvaluator(constraints []model.Constraint) *Evaluator {
	byStaff := make(map[string][]model.Constraint)
	for _, c := range constraints {
		byStaff[c.StaffID] = append(byStaff[c.StaffID], c)
	}
	return &Evaluator{byStaff: byStaff}
}

// Blocked reports whether any constraint blocks the staff member at the
// given date and hour. Short-circuits on the first match.
func (e *Evaluator) Blocked(staffID string, date time.Time, hour int) bool {
	for _, c := range e.byStaff[staffID] {
		if constraintBlocks(&c, date, hour) {
			return true
		}
	}
	return false
}

// EligibleForSpan reports whether the staff member is unblocked for every
// hour in [startHour, endHour) on the given date. A single blocked hour
// anywhere in the span disqualifies the whole shift.
func (e *Evaluator) EligibleForSpan(staffID string, date time.Time, startHour, endHour int) bool {
	for hour := startHour; hour < endHour; hour++ {
		if e.Blocked(staffID, date, hour) {
			return false
		}
	}
	return true
}

func constraintBlocks(c *model.Constraint, date time.Time, hour int) bool {
	switch c.Kind {
	case model.ConstraintPTO:
		day := dateOnly(date)
		return !day.Before(dateOnly(c.PTOStart)) && !day.After(dateOnly(c.PTOEnd))

	case model.ConstraintRecurring:
		// Lapsed recurrences are inert
		if c.Expired(date) {
			return false
		}
		return recurringBlocks(c, date, hour)
	}

	// Unknown constraint kinds never block
	return false
}

func recurringBlocks(c *model.Constraint, date time.Time, hour int) bool {
	switch c.Rule {
	case model.RuleBlockedWeekdays:
		for _, wd := range c.BlockedWeekdays {
			if date.Weekday() == wd {
				return true
			}
		}
		return false
	case model.RuleNoBefore:
		return hour < morningCutoffHour
	case model.RuleNoAfter:
		return hour >= eveningCutoffHour
	case model.RuleNoWeekends:
		return isWeekend(date)
	case model.RuleWeekendsOnly:
		return !isWeekend(date)
	case model.RuleNoOpening:
		return hour < openingHour
	case model.RuleNoClosing:
		return hour >= eveningCutoffHour
	}

	// Unknown rule variants are treated as never blocking rather than
	// failing the run (see pkg/db for where malformed records are absorbed)
	return false
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
