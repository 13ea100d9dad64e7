package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rgoodall/brigade/pkg/db"
)

// mockTimeOffStore implements AddTimeOffStore for testing
type mockTimeOffStore struct {
	staff    []db.Staff
	inserted []db.Constraint
}

func (m *mockTimeOffStore) GetStaff(ctx context.Context) ([]db.Staff, error) {
	return m.staff, nil
}

func (m *mockTimeOffStore) InsertConstraint(ctx context.Context, constraint *db.Constraint) error {
	m.inserted = append(m.inserted, *constraint)
	return nil
}

func TestAddTimeOff_RecordsPTO(t *testing.T) {
	store := &mockTimeOffStore{staff: []db.Staff{{ID: "s1", Name: "Amara"}}}

	constraint, err := AddTimeOff(context.Background(), store, zap.NewNop(), "s1", "2025-06-10", "2025-06-14")
	require.NoError(t, err)

	assert.Equal(t, "pto", constraint.Kind)
	assert.Equal(t, "2025-06-10", constraint.StartDate)
	assert.Equal(t, "2025-06-14", constraint.EndDate)
	assert.NotEmpty(t, constraint.ID)
	require.Len(t, store.inserted, 1)
}

func TestAddTimeOff_SingleDay(t *testing.T) {
	store := &mockTimeOffStore{staff: []db.Staff{{ID: "s1"}}}

	constraint, err := AddTimeOff(context.Background(), store, zap.NewNop(), "s1", "2025-06-10", "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, constraint.StartDate, constraint.EndDate)
}

func TestAddTimeOff_RejectsBackwardsRange(t *testing.T) {
	store := &mockTimeOffStore{staff: []db.Staff{{ID: "s1"}}}

	_, err := AddTimeOff(context.Background(), store, zap.NewNop(), "s1", "2025-06-14", "2025-06-10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before it starts")
	assert.Empty(t, store.inserted)
}

func TestAddTimeOff_UnknownStaff(t *testing.T) {
	store := &mockTimeOffStore{staff: []db.Staff{{ID: "s1"}}}

	_, err := AddTimeOff(context.Background(), store, zap.NewNop(), "s9", "2025-06-10", "2025-06-14")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestAddTimeOff_MalformedDate(t *testing.T) {
	store := &mockTimeOffStore{staff: []db.Staff{{ID: "s1"}}}

	_, err := AddTimeOff(context.Background(), store, zap.NewNop(), "s1", "June 10th", "2025-06-14")
	assert.Error(t, err)
}
