package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgoodall/brigade/pkg/core/model"
)

func TestStaffToModel_Defaults(t *testing.T) {
	record := &Staff{
		ID:              "s1",
		Name:            "Dana",
		Position:        "Line Cook",
		HourlyRate:      "17.25",
		MaxHoursPerWeek: 35,
	}

	m, err := StaffToModel(record)
	require.NoError(t, err)

	assert.Equal(t, "Line Cook", m.Position)
	assert.Equal(t, "17.25", m.HourlyRate.String())
	// Missing efficiency defaults to 1.0
	assert.Equal(t, 1.0, m.Efficiency)
}

func TestStaffToModel_MissingRateIsAnError(t *testing.T) {
	record := &Staff{ID: "s1", Name: "Dana", Position: "Server", MaxHoursPerWeek: 35}

	_, err := StaffToModel(record)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no hourly rate")
}

func TestStaffToModel_MalformedRate(t *testing.T) {
	record := &Staff{ID: "s1", HourlyRate: "seventeen", MaxHoursPerWeek: 35}

	_, err := StaffToModel(record)
	assert.Error(t, err)
}

func TestConstraintToModel_PTO(t *testing.T) {
	record := &Constraint{
		ID:        "c1",
		StaffID:   "s1",
		Kind:      "pto",
		StartDate: "2025-06-10",
		EndDate:   "2025-06-14",
	}

	c := ConstraintToModel(record)

	assert.Equal(t, model.ConstraintPTO, c.Kind)
	assert.Equal(t, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), c.PTOStart)
	assert.Equal(t, time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC), c.PTOEnd)
}

func TestConstraintToModel_MalformedPTOIsInert(t *testing.T) {
	record := &Constraint{ID: "c1", StaffID: "s1", Kind: "pto", StartDate: "next tuesday"}

	c := ConstraintToModel(record)

	// Neutralized: an unknown kind never blocks in the evaluator
	assert.NotEqual(t, model.ConstraintPTO, c.Kind)
}

func TestConstraintToModel_BlockedWeekdaysFromRRule(t *testing.T) {
	record := &Constraint{
		ID:      "c1",
		StaffID: "s1",
		Kind:    "recurring",
		Rule:    "blocked_weekdays",
		RRule:   "FREQ=WEEKLY;BYDAY=MO,TH",
	}

	c := ConstraintToModel(record)

	require.Equal(t, model.RuleBlockedWeekdays, c.Rule)
	assert.ElementsMatch(t, []time.Weekday{time.Monday, time.Thursday}, c.BlockedWeekdays)
	assert.True(t, c.ExpiresOn.IsZero())
}

func TestConstraintToModel_RRuleUntilSetsExpiry(t *testing.T) {
	record := &Constraint{
		ID:      "c1",
		StaffID: "s1",
		Kind:    "recurring",
		Rule:    "blocked_weekdays",
		RRule:   "FREQ=WEEKLY;BYDAY=SU;UNTIL=20251231T000000Z",
	}

	c := ConstraintToModel(record)

	require.Equal(t, model.RuleBlockedWeekdays, c.Rule)
	assert.ElementsMatch(t, []time.Weekday{time.Sunday}, c.BlockedWeekdays)
	assert.Equal(t, 2025, c.ExpiresOn.Year())
	assert.Equal(t, time.December, c.ExpiresOn.Month())
}

func TestConstraintToModel_MalformedRRuleIsInert(t *testing.T) {
	record := &Constraint{
		ID:      "c1",
		StaffID: "s1",
		Kind:    "recurring",
		Rule:    "blocked_weekdays",
		RRule:   "EVERY OTHER TUESDAY",
	}

	c := ConstraintToModel(record)

	// Rule cleared: the evaluator treats it as never-blocking
	assert.NotEqual(t, model.RuleBlockedWeekdays, c.Rule)
	assert.Empty(t, c.BlockedWeekdays)
}

func TestConstraintToModel_SimpleRecurringWithExpiry(t *testing.T) {
	record := &Constraint{
		ID:        "c1",
		StaffID:   "s1",
		Kind:      "recurring",
		Rule:      "no_weekends",
		ExpiresOn: "2025-09-01",
	}

	c := ConstraintToModel(record)

	assert.Equal(t, model.RuleNoWeekends, c.Rule)
	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), c.ExpiresOn)
}

func TestConstraintToModel_UnknownKindPassesThrough(t *testing.T) {
	record := &Constraint{ID: "c1", StaffID: "s1", Kind: "lottery"}

	c := ConstraintToModel(record)

	assert.Equal(t, model.ConstraintKind("lottery"), c.Kind)
}

func TestShiftFromModel_RoundTripFields(t *testing.T) {
	staff := Staff{ID: "s1", HourlyRate: "16.00", MaxHoursPerWeek: 40}
	m, err := StaffToModel(&staff)
	require.NoError(t, err)

	shift := model.Shift{
		ID:         "sh1",
		StaffID:    "s1",
		Date:       time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		Start:      time.Date(2025, time.March, 3, 11, 0, 0, 0, time.UTC),
		End:        time.Date(2025, time.March, 3, 15, 0, 0, 0, time.UTC),
		Role:       "Server",
		Template:   "lunch",
		HourlyRate: m.HourlyRate,
		Efficiency: 1.0,
	}

	record := ShiftFromModel(&shift, "run-1")

	assert.Equal(t, "run-1", record.RunID)
	assert.Equal(t, "2025-03-03", record.ShiftDate)
	assert.Equal(t, "2025-03-03T11:00:00Z", record.StartTime)
	assert.Equal(t, "16", record.HourlyRate)
}
