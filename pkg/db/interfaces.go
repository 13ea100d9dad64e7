package db

import "context"

// StaffStore defines the interface for roster database operations
type StaffStore interface {
	GetStaff(ctx context.Context) ([]Staff, error)
	InsertStaff(ctx context.Context, staff *Staff) error
}

// ConstraintStore defines the interface for constraint database operations
type ConstraintStore interface {
	GetConstraints(ctx context.Context) ([]Constraint, error)
	InsertConstraint(ctx context.Context, constraint *Constraint) error
}

// ScheduleStore defines the interface for schedule run and shift operations
type ScheduleStore interface {
	GetScheduleRuns(ctx context.Context) ([]ScheduleRun, error)
	GetShifts(ctx context.Context, runID string) ([]Shift, error)
	InsertScheduleRun(ctx context.Context, run *ScheduleRun, shifts []Shift) error
}

// Database aggregates every store the CLI needs. postgres.DB implements it.
type Database interface {
	StaffStore
	ConstraintStore
	ScheduleStore
	Close()
}
