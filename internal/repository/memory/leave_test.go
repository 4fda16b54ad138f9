package memory

import (
	"context"
	"testing"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedLeaves() []leave.LeaveRequest {
	return []leave.LeaveRequest{
		{
			ID: 1, EmployeeID: 1, Type: leave.TypeVacation, Status: leave.StatusPending,
			StartDate: day(2024, 3, 10), EndDate: day(2024, 3, 12),
			RequestDate: day(2024, 3, 1), Reason: "Spring break",
		},
		{
			ID: 2, EmployeeID: 2, Type: leave.TypeSick, Status: leave.StatusApproved,
			StartDate: day(2024, 4, 1), EndDate: day(2024, 4, 2),
			RequestDate: day(2024, 3, 28),
		},
	}
}

func TestLeaveStoreUpdatePreservesStatusFields(t *testing.T) {
	approvedBy := "Current User"
	approvedDate := day(2024, 3, 29)
	seed := seedLeaves()
	seed[1].ApprovedBy = &approvedBy
	seed[1].ApprovedDate = &approvedDate

	repo := NewLeaveRepository(seed)
	ctx := context.Background()

	updated, err := repo.Update(ctx, 2, leave.LeaveRequest{
		EmployeeID: 2,
		StartDate:  day(2024, 4, 3),
		EndDate:    day(2024, 4, 5),
		Type:       leave.TypeSick,
		Reason:     "Extended",
	})
	require.NoError(t, err)

	assert.Equal(t, day(2024, 4, 3), updated.StartDate)
	assert.Equal(t, leave.StatusApproved, updated.Status, "plain update never touches status")
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, "Current User", *updated.ApprovedBy)
	assert.Equal(t, day(2024, 3, 28), updated.RequestDate, "request date is immutable")
}

func TestLeaveStoreUpdateStatusReplacesApprovalTrail(t *testing.T) {
	repo := NewLeaveRepository(seedLeaves())
	ctx := context.Background()

	approvedBy := "Current User"
	approvedDate := day(2024, 3, 5)
	reason := "Team is at capacity that week"

	updated, err := repo.UpdateStatus(ctx, 1, leave.StatusRejected, &approvedBy, &approvedDate, &reason)
	require.NoError(t, err)

	assert.Equal(t, leave.StatusRejected, updated.Status)
	require.NotNil(t, updated.RejectionReason)
	assert.Equal(t, reason, *updated.RejectionReason)
	require.NotNil(t, updated.ApprovedDate)
	assert.Equal(t, approvedDate, *updated.ApprovedDate)
}

func TestLeaveStoreUpdateStatusMissing(t *testing.T) {
	repo := NewLeaveRepository(seedLeaves())

	_, err := repo.UpdateStatus(context.Background(), 99, leave.StatusApproved, nil, nil, nil)
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}

func TestLeaveStoreGetByDateRange(t *testing.T) {
	repo := NewLeaveRepository(seedLeaves())
	ctx := context.Background()

	tests := []struct {
		name       string
		start, end time.Time
		wantIDs    []int
	}{
		{name: "window covering both", start: day(2024, 3, 1), end: day(2024, 4, 30), wantIDs: []int{1, 2}},
		{name: "window touching a start boundary", start: day(2024, 3, 12), end: day(2024, 3, 20), wantIDs: []int{1}},
		{name: "window touching an end boundary", start: day(2024, 3, 1), end: day(2024, 3, 10), wantIDs: []int{1}},
		{name: "window between requests", start: day(2024, 3, 15), end: day(2024, 3, 25), wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByDateRange(ctx, tt.start, tt.end)
			require.NoError(t, err)

			var ids []int
			for _, req := range got {
				ids = append(ids, req.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestLeaveStoreGetUpcoming(t *testing.T) {
	repo := NewLeaveRepository(seedLeaves()).(*leaveStore)
	repo.now = func() time.Time { return day(2024, 3, 20) }
	ctx := context.Background()

	got, err := repo.GetUpcoming(ctx, 30)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID, "only the April request falls inside the window")
}

func TestLeaveStoreGetByEmployeeID(t *testing.T) {
	repo := NewLeaveRepository(seedLeaves())
	ctx := context.Background()

	got, err := repo.GetByEmployeeID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	none, err := repo.GetByEmployeeID(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, none)
}
