package scheduling

import (
	"time"

	"github.com/rgoodall/brigade/pkg/core/model"
)

// GenerateInput is the full snapshot a generation run works from. All
// collaborator data is resolved before the run starts; the engine performs
// no I/O of its own.
type GenerateInput struct {
	// Staff roster snapshot
	Staff []model.StaffMember

	// Constraints already resolved for every staff member
	Constraints []model.Constraint

	// Demand is the covers-per-hour curve by day type
	Demand model.DemandCurve

	// RoleRatios maps role -> target fraction of floor staff
	RoleRatios map[string]float64

	// PeriodStart and PeriodEnd are inclusive dates
	PeriodStart time.Time
	PeriodEnd   time.Time

	// Seed drives the stagger source; the same seed and inputs reproduce
	// the same schedule
	Seed int64

	// Tables overrides the static configuration; zero value uses
	// DefaultTables()
	Tables Tables
}

// GenerateOutcome is the run's complete output
type GenerateOutcome struct {
	Shifts  []model.Shift
	Metrics Metrics
}

// Generate runs one allocation pass over the period.
//
// Days are processed in calendar order and templates and roles within a day
// in a fixed order, because ranking and stagger draws depend on the running
// state. The pass is greedy: once a slot is filled it is never revisited,
// even if a later, better-fit candidate frees up. Only configuration
// problems abort the run; unmet demand surfaces through the metrics.
func Generate(input GenerateInput) (*GenerateOutcome, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	tables := input.Tables
	if tables.Templates == nil {
		tables = DefaultTables()
	}

	start := dateOnly(input.PeriodStart)
	end := dateOnly(input.PeriodEnd)
	periodDays := int(end.Sub(start).Hours()/24) + 1

	state := NewScheduleState(periodDays, input.Seed)
	eval := NewEvaluator(input.Constraints)
	allocator := NewAllocator(tables, eval, input.Staff, state)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		state.ResetDay()

		hours := input.Demand[model.DayTypeFor(day)]
		demand := HourlyRoleDemand(hours, input.RoleRatios)
		requirements := DeterminePatterns(demand, tables)

		for _, req := range requirements {
			allocator.AllocateSlots(day, req.Template, req.Role, req.Count)
		}
	}

	return &GenerateOutcome{
		Shifts:  state.Shifts,
		Metrics: state.Summarize(),
	}, nil
}

func validateInput(input *GenerateInput) error {
	if dateOnly(input.PeriodEnd).Before(dateOnly(input.PeriodStart)) {
		return &ConfigError{Reason: "period end precedes period start"}
	}

	if !hasDemand(input.Demand) {
		return nil
	}

	ratioSum := 0.0
	for _, ratio := range input.RoleRatios {
		if ratio < 0 {
			return &ConfigError{Reason: "role ratios must be non-negative"}
		}
		ratioSum += ratio
	}
	if ratioSum <= 0 {
		return &ConfigError{Reason: "role ratios sum to zero but the demand curve is non-empty"}
	}

	return nil
}

func hasDemand(curve model.DemandCurve) bool {
	for _, hours := range curve {
		for _, covers := range hours {
			if covers > 0 {
				return true
			}
		}
	}
	return false
}
