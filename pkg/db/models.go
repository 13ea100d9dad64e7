package db

// Staff represents a roster database record
type Staff struct {
	ID              string
	Name            string
	Position        string
	HourlyRate      string // decimal text, empty if the record is missing a rate
	MaxHoursPerWeek float64
	Efficiency      float64 // 0 means not set
}

// Constraint represents a scheduling constraint database record.
// PTO rows use StartDate/EndDate; recurring rows use Rule plus either an
// RRULE string (weekday block lists) or ExpiresOn.
type Constraint struct {
	ID        string
	StaffID   string
	Kind      string
	StartDate string // date, PTO only
	EndDate   string // date, PTO only
	Rule      string
	RRule     string // RFC 5545 RRULE text for blocked_weekdays rows
	ExpiresOn string // date, nullable
}

// ScheduleRun represents one persisted generation run
type ScheduleRun struct {
	ID                   string
	PeriodStart          string // date
	PeriodEnd            string // date
	Seed                 int64
	CoveragePercent      float64
	EstimatedCost        string // decimal text
	AvgCostPerShift      string // decimal text
	TotalHours           float64
	ConstraintViolations int
	HasCoverageGaps      bool
	CreatedAt            string // timestamp
}

// Shift represents an assigned shift database record
type Shift struct {
	ID         string
	RunID      string
	StaffID    string
	ShiftDate  string // date
	StartTime  string // RFC 3339
	EndTime    string // RFC 3339
	Role       string
	Template   string
	HourlyRate string // decimal text
	Efficiency float64
}
