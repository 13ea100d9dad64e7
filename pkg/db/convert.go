package db

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/teambition/rrule-go"

	"github.com/rgoodall/brigade/pkg/core/model"
)

const dateFormat = "2006-01-02"

// StaffToModel converts a roster record into the engine's staff snapshot.
// A missing efficiency defaults to 1.0; a missing rate is an error because
// cost accounting cannot invent a wage.
func StaffToModel(record *Staff) (model.StaffMember, error) {
	if record.HourlyRate == "" {
		return model.StaffMember{}, fmt.Errorf("staff %s (%s) has no hourly rate", record.ID, record.Name)
	}
	rate, err := decimal.NewFromString(record.HourlyRate)
	if err != nil {
		return model.StaffMember{}, fmt.Errorf("staff %s has malformed hourly rate %q: %w", record.ID, record.HourlyRate, err)
	}

	efficiency := record.Efficiency
	if efficiency <= 0 {
		efficiency = 1.0
	}

	return model.StaffMember{
		ID:              record.ID,
		Name:            record.Name,
		Position:        record.Position,
		HourlyRate:      rate,
		MaxHoursPerWeek: record.MaxHoursPerWeek,
		Efficiency:      efficiency,
	}, nil
}

// StaffListToModel converts a full roster snapshot
func StaffListToModel(records []Staff) ([]model.StaffMember, error) {
	staff := make([]model.StaffMember, 0, len(records))
	for i := range records {
		m, err := StaffToModel(&records[i])
		if err != nil {
			return nil, err
		}
		staff = append(staff, m)
	}
	return staff, nil
}

// ConstraintToModel converts a constraint record.
//
// Malformed records are absorbed rather than raised: an unparseable PTO
// date or RRULE, or an unrecognized kind, yields a constraint that never
// blocks, so one bad row cannot take scheduling down.
func ConstraintToModel(record *Constraint) model.Constraint {
	c := model.Constraint{
		ID:      record.ID,
		StaffID: record.StaffID,
		Kind:    model.ConstraintKind(record.Kind),
		Rule:    model.RecurringRule(record.Rule),
	}

	switch c.Kind {
	case model.ConstraintPTO:
		start, err1 := time.Parse(dateFormat, record.StartDate)
		end, err2 := time.Parse(dateFormat, record.EndDate)
		if err1 != nil || err2 != nil {
			// Unusable range: neutralize the kind so it never blocks
			c.Kind = ""
			return c
		}
		c.PTOStart = start
		c.PTOEnd = end

	case model.ConstraintRecurring:
		if record.ExpiresOn != "" {
			if expires, err := time.Parse(dateFormat, record.ExpiresOn); err == nil {
				c.ExpiresOn = expires
			}
		}
		if c.Rule == model.RuleBlockedWeekdays {
			weekdays, until, err := parseBlockedWeekdays(record.RRule)
			if err != nil {
				c.Rule = ""
				return c
			}
			c.BlockedWeekdays = weekdays
			if c.ExpiresOn.IsZero() && !until.IsZero() {
				c.ExpiresOn = until
			}
		}
	}

	return c
}

// ConstraintListToModel converts a full constraint snapshot
func ConstraintListToModel(records []Constraint) []model.Constraint {
	constraints := make([]model.Constraint, 0, len(records))
	for i := range records {
		constraints = append(constraints, ConstraintToModel(&records[i]))
	}
	return constraints
}

// parseBlockedWeekdays extracts the weekday block list and optional UNTIL
// date from RRULE text like FREQ=WEEKLY;BYDAY=MO,TH;UNTIL=20251231T000000Z
func parseBlockedWeekdays(rruleText string) ([]time.Weekday, time.Time, error) {
	if rruleText == "" {
		return nil, time.Time{}, fmt.Errorf("empty rrule")
	}
	opt, err := rrule.StrToROption(rruleText)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("invalid rrule %q: %w", rruleText, err)
	}

	weekdays := make([]time.Weekday, 0, len(opt.Byweekday))
	for _, wd := range opt.Byweekday {
		// rrule weekdays run MO=0..SU=6; time.Weekday runs SU=0..SA=6
		weekdays = append(weekdays, time.Weekday((wd.Day()+1)%7))
	}
	if len(weekdays) == 0 {
		return nil, time.Time{}, fmt.Errorf("rrule %q has no BYDAY entries", rruleText)
	}

	return weekdays, opt.Until, nil
}

// ShiftFromModel converts an engine shift into its database record
func ShiftFromModel(shift *model.Shift, runID string) Shift {
	return Shift{
		ID:         shift.ID,
		RunID:      runID,
		StaffID:    shift.StaffID,
		ShiftDate:  shift.Date.Format(dateFormat),
		StartTime:  shift.Start.Format(time.RFC3339),
		EndTime:    shift.End.Format(time.RFC3339),
		Role:       shift.Role,
		Template:   shift.Template,
		HourlyRate: shift.HourlyRate.String(),
		Efficiency: shift.Efficiency,
	}
}
