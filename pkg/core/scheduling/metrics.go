package scheduling

import "github.com/shopspring/decimal"

// Metrics summarizes one generation run. Every field is a deterministic
// function of the shift sequence and the violation counter.
type Metrics struct {
	CoveragePercent      float64
	AvgCostPerShift      decimal.Decimal
	EstimatedCost        decimal.Decimal
	TotalHours           float64
	ConstraintViolations int
	HasCoverageGaps      bool
}

// Summarize computes the run metrics from the final state. Zero demand and
// zero shifts are defined as zero values, never a division error.
func (s *ScheduleState) Summarize() Metrics {
	m := Metrics{
		EstimatedCost:        s.TotalCost,
		AvgCostPerShift:      decimal.Zero,
		ConstraintViolations: s.Violations,
		HasCoverageGaps:      s.Violations > 0,
	}

	if s.TotalSlots > 0 {
		m.CoveragePercent = float64(s.FilledSlots) / float64(s.TotalSlots) * 100
	}

	if n := len(s.Shifts); n > 0 {
		m.AvgCostPerShift = s.TotalCost.Div(decimal.NewFromInt(int64(n)))
	}

	for _, hours := range s.HoursAssigned {
		m.TotalHours += hours
	}

	return m
}
