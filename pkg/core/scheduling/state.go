package scheduling

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/rgoodall/brigade/pkg/core/model"
)

// ScheduleState is the mutable running state of a single generation run.
// It is created at run start, threaded through every allocation step, and
// never shared between runs or goroutines: parallel runs must each own
// their own state.
type ScheduleState struct {
	// HoursAssigned accumulates per-staff hours across the period
	HoursAssigned map[string]float64

	// WorkedToday flags staff already assigned a shift on the day being
	// processed. Reset at the start of each day; split shifts (lunch +
	// dinner) are allowed, so this marks rather than blocks.
	WorkedToday map[string]bool

	// Running slot accounting. Violations is always
	// TotalSlots - FilledSlots: every requested slot either fills or counts
	// as one unit of unmet demand.
	TotalSlots  int
	FilledSlots int
	Violations  int

	TotalCost decimal.Decimal

	// Shifts in assignment order
	Shifts []model.Shift

	// rng drives the stagger offsets. Seeded per run so identical inputs
	// reproduce identical schedules.
	rng *rand.Rand

	periodDays int
}

// NewScheduleState creates the run state with a seeded stagger source
func NewScheduleState(periodDays int, seed int64) *ScheduleState {
	return &ScheduleState{
		HoursAssigned: make(map[string]float64),
		WorkedToday:   make(map[string]bool),
		TotalCost:     decimal.Zero,
		rng:           rand.New(rand.NewSource(seed)),
		periodDays:    periodDays,
	}
}

// ResetDay clears the same-day tracking before processing a new date
func (s *ScheduleState) ResetDay() {
	s.WorkedToday = make(map[string]bool)
}

// MaxPeriodHours returns a staff member's hour cap pro-rated to the period.
// Periods shorter than a week still get the full weekly cap: the cap is a
// weekly limit, not a daily budget.
func (s *ScheduleState) MaxPeriodHours(m *model.StaffMember) float64 {
	weeks := float64(s.periodDays) / 7
	if weeks < 1 {
		weeks = 1
	}
	return m.MaxHoursPerWeek * weeks
}

// Utilization returns hours assigned so far divided by the period cap.
// Staff with a zero cap are reported as fully utilized.
func (s *ScheduleState) Utilization(m *model.StaffMember) float64 {
	cap := s.MaxPeriodHours(m)
	if cap <= 0 {
		return 1
	}
	return s.HoursAssigned[m.ID] / cap
}

// recordShift applies one assignment to the running totals
func (s *ScheduleState) recordShift(shift model.Shift) {
	s.Shifts = append(s.Shifts, shift)
	s.HoursAssigned[shift.StaffID] += shift.Hours()
	s.WorkedToday[shift.StaffID] = true
	s.TotalCost = s.TotalCost.Add(shift.Cost())
	s.FilledSlots++
}
