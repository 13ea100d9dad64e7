package scheduling

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgoodall/brigade/pkg/core/model"
)

func TestRoleForPosition_FirstMatchWins(t *testing.T) {
	tables := DefaultTables()

	assert.Equal(t, "Server", tables.RoleForPosition("Head Server"))
	assert.Equal(t, "Cook", tables.RoleForPosition("Sous Chef"))
	assert.Equal(t, "Manager", tables.RoleForPosition("Shift Manager"))
	assert.Equal(t, "", tables.RoleForPosition("Sommelier"))

	// "Food Runner" appears only under Busser; verify scan order keeps a
	// title in exactly one bucket
	assert.Equal(t, "Busser", tables.RoleForPosition("Food Runner"))
}

func TestAllocateSlots_AliasResolution(t *testing.T) {
	// A "Waitress" fills a Server slot; a "Dishwasher" does not
	staff := []model.StaffMember{
		server("dw", 12, 40),
		server("wt", 14, 40),
	}
	staff[0].Position = "Dishwasher"
	staff[1].Position = "Waitress"

	state := NewScheduleState(1, 1)
	alloc := NewAllocator(DefaultTables(), NewEvaluator(nil), staff, state)

	alloc.AllocateSlots(day(2025, time.March, 3), DefaultTables().Templates["lunch"], "Server", 1)

	require.Len(t, state.Shifts, 1)
	assert.Equal(t, "wt", state.Shifts[0].StaffID)
}

func TestAllocateSlots_HourCapExcludes(t *testing.T) {
	// 4h already assigned against a 6h cap: another 4h shift doesn't fit
	staff := []model.StaffMember{server("s1", 15, 6)}
	state := NewScheduleState(7, 1)
	state.HoursAssigned["s1"] = 4

	alloc := NewAllocator(DefaultTables(), NewEvaluator(nil), staff, state)
	alloc.AllocateSlots(day(2025, time.March, 3), DefaultTables().Templates["lunch"], "Server", 1)

	assert.Empty(t, state.Shifts)
	assert.Equal(t, 1, state.Violations)
	assert.Equal(t, 1, state.TotalSlots)
}

func TestAllocateSlots_ShortfallCountsViolations(t *testing.T) {
	staff := []model.StaffMember{server("s1", 15, 40)}
	state := NewScheduleState(1, 1)

	alloc := NewAllocator(DefaultTables(), NewEvaluator(nil), staff, state)
	alloc.AllocateSlots(day(2025, time.March, 3), DefaultTables().Templates["dinner"], "Server", 3)

	assert.Len(t, state.Shifts, 1)
	assert.Equal(t, 2, state.Violations)
	assert.Equal(t, state.TotalSlots-state.FilledSlots, state.Violations)
}

func TestAllocateSlots_UtilizationBalancesBeforeCost(t *testing.T) {
	// The cheaper server already worked today, so the idle pricier one is
	// preferred for the next slot
	cheap := server("cheap", 10, 40)
	pricey := server("pricey", 25, 40)
	state := NewScheduleState(7, 1)
	state.HoursAssigned["cheap"] = 8

	alloc := NewAllocator(DefaultTables(), NewEvaluator(nil), []model.StaffMember{cheap, pricey}, state)
	alloc.AllocateSlots(day(2025, time.March, 3), DefaultTables().Templates["lunch"], "Server", 1)

	require.Len(t, state.Shifts, 1)
	assert.Equal(t, "pricey", state.Shifts[0].StaffID)
}

func TestAllocateSlots_SnapshotsRateAndEfficiency(t *testing.T) {
	m := server("s1", 18.50, 40)
	m.Efficiency = 1.2
	state := NewScheduleState(1, 1)

	alloc := NewAllocator(DefaultTables(), NewEvaluator(nil), []model.StaffMember{m}, state)
	alloc.AllocateSlots(day(2025, time.March, 3), DefaultTables().Templates["dinner"], "Server", 1)

	require.Len(t, state.Shifts, 1)
	shift := state.Shifts[0]
	assert.True(t, shift.HourlyRate.Equal(m.HourlyRate))
	assert.Equal(t, 1.2, shift.Efficiency)
	assert.True(t, shift.Cost().Equal(m.HourlyRate.Mul(decimal.NewFromInt(4))))
}

func TestOverlapsExistingShift(t *testing.T) {
	state := NewScheduleState(1, 1)
	monday := day(2025, time.March, 3)
	state.Shifts = append(state.Shifts, model.Shift{
		StaffID: "s1",
		Date:    monday,
		Start:   time.Date(2025, time.March, 3, 11, 0, 0, 0, time.UTC),
		End:     time.Date(2025, time.March, 3, 15, 0, 0, 0, time.UTC),
	})

	overlapping := OverlapsExistingShift(state, "s1", monday,
		time.Date(2025, time.March, 3, 14, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 3, 18, 0, 0, 0, time.UTC))
	assert.True(t, overlapping)

	adjacent := OverlapsExistingShift(state, "s1", monday,
		time.Date(2025, time.March, 3, 15, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 3, 19, 0, 0, 0, time.UTC))
	assert.False(t, adjacent)

	otherStaff := OverlapsExistingShift(state, "s2", monday,
		time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 3, 16, 0, 0, 0, time.UTC))
	assert.False(t, otherStaff)
}

func TestScheduleState_WorkedTodayResets(t *testing.T) {
	staff := []model.StaffMember{server("s1", 15, 40)}
	state := NewScheduleState(2, 1)

	alloc := NewAllocator(DefaultTables(), NewEvaluator(nil), staff, state)
	alloc.AllocateSlots(day(2025, time.March, 3), DefaultTables().Templates["lunch"], "Server", 1)
	assert.True(t, state.WorkedToday["s1"])

	state.ResetDay()
	assert.False(t, state.WorkedToday["s1"])
}
