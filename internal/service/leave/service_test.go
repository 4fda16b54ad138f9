package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
	memoryRepo "github.com/staffhub/staffhub-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var fixedNow = time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)

func newTestService() (leave.LeaveService, leave.LeaveRepository) {
	repo := memoryRepo.NewLeaveRepository([]leave.LeaveRequest{
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
	})
	svc := NewLeaveService(repo).(*LeaveServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func TestApprovePendingRequest(t *testing.T) {
	svc, _ := newTestService()

	updated, err := svc.UpdateStatus(context.Background(), 1, leave.StatusApproved, "Current User", "")
	require.NoError(t, err)

	assert.Equal(t, leave.StatusApproved, updated.Status)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, "Current User", *updated.ApprovedBy)
	require.NotNil(t, updated.ApprovedDate)
	assert.Equal(t, fixedNow, *updated.ApprovedDate)
	assert.Nil(t, updated.RejectionReason, "approval never carries a rejection reason")
}

func TestRejectPendingRequest(t *testing.T) {
	svc, _ := newTestService()

	updated, err := svc.UpdateStatus(context.Background(), 1, leave.StatusRejected, "Current User", "Team is at capacity")
	require.NoError(t, err)

	assert.Equal(t, leave.StatusRejected, updated.Status)
	require.NotNil(t, updated.RejectionReason)
	assert.Equal(t, "Team is at capacity", *updated.RejectionReason)
	require.NotNil(t, updated.ApprovedBy, "rejection still records who processed it")
	require.NotNil(t, updated.ApprovedDate)
}

func TestProcessedRequestsAreTerminal(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, 2, leave.StatusRejected, "Current User", "")
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)

	_, err = svc.UpdateStatus(ctx, 2, leave.StatusApproved, "Current User", "")
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestUpdateStatusRejectsOtherTargets(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), 1, leave.StatusPending, "Current User", "")
	assert.ErrorIs(t, err, leave.ErrInvalidStatus)
}

func TestUpdateStatusMissingRequest(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), 99, leave.StatusApproved, "Current User", "")
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}

func TestCreateStampsRequestDate(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), leave.LeaveRequestInput{
		EmployeeID: 1,
		StartDate:  "2024-05-01",
		EndDate:    "2024-05-03",
		Type:       "Vacation",
		Reason:     "Long weekend",
	})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusPending, created.Status, "new requests always start pending")
	assert.Equal(t, fixedNow, created.RequestDate)
	assert.Equal(t, 3, created.ID)
}

func TestCreateValidation(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	tests := []struct {
		name   string
		input  leave.LeaveRequestInput
		fields []string
	}{
		{
			name:   "missing everything",
			input:  leave.LeaveRequestInput{},
			fields: []string{"employeeId", "startDate", "endDate", "type"},
		},
		{
			name: "end before start",
			input: leave.LeaveRequestInput{
				EmployeeID: 1, StartDate: "2024-05-03", EndDate: "2024-05-01", Type: "Vacation",
			},
			fields: []string{"endDate"},
		},
		{
			name: "unknown type",
			input: leave.LeaveRequestInput{
				EmployeeID: 1, StartDate: "2024-05-01", EndDate: "2024-05-03", Type: "Sabbatical",
			},
			fields: []string{"type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			details := verrs.ToMap()
			for _, field := range tt.fields {
				assert.Contains(t, details, field)
			}
		})
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2, "nothing is written when validation fails")
}

func TestUpdateKeepsApprovalState(t *testing.T) {
	svc, _ := newTestService()

	updated, err := svc.Update(context.Background(), 2, leave.LeaveRequestInput{
		EmployeeID: 2,
		StartDate:  "2024-04-01",
		EndDate:    "2024-04-04",
		Type:       "Sick Leave",
		Reason:     "Extended by the doctor",
	})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusApproved, updated.Status)
	assert.Equal(t, day(2024, 4, 4), updated.EndDate)
	assert.Equal(t, day(2024, 3, 28), updated.RequestDate)
}

func TestListFiltering(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	pending, err := svc.List(ctx, leave.Filter{Status: leave.StatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 1, pending[0].ID)

	byEmployee, err := svc.List(ctx, leave.Filter{EmployeeID: 2})
	require.NoError(t, err)
	require.Len(t, byEmployee, 1)
	assert.Equal(t, 2, byEmployee[0].ID)

	all, err := svc.List(ctx, leave.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
