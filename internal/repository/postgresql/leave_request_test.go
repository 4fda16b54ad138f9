package postgresql

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	_, err = db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS leave_requests (
			id SERIAL PRIMARY KEY,
			employee_id INT NOT NULL,
			start_date TIMESTAMPTZ NOT NULL,
			end_date TIMESTAMPTZ NOT NULL,
			type TEXT NOT NULL,
			status TEXT NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			request_date TIMESTAMPTZ NOT NULL,
			approved_by TEXT,
			approved_date TIMESTAMPTZ,
			rejection_reason TEXT
		)`)
	require.NoError(t, err)
	_, err = db.Exec(ctx, `TRUNCATE TABLE leave_requests RESTART IDENTITY`)
	require.NoError(t, err)
	return db
}

func pendingRequest(t *testing.T, repo leave.LeaveRepository) leave.LeaveRequest {
	t.Helper()
	created, err := repo.Create(context.Background(), leave.LeaveRequest{
		EmployeeID:  1,
		StartDate:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		Type:        leave.TypeVacation,
		Status:      leave.StatusPending,
		Reason:      "Spring break",
		RequestDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return created
}

func TestUpdateStatusIsTerminal(t *testing.T) {
	db := testDB(t)
	repo := NewLeaveRepository(db)
	ctx := context.Background()

	req := pendingRequest(t, repo)

	approvedBy := "Current User"
	approvedDate := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	updated, err := repo.UpdateStatus(ctx, req.ID, leave.StatusApproved, &approvedBy, &approvedDate, nil)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, updated.Status)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, "Current User", *updated.ApprovedBy)

	_, err = repo.UpdateStatus(ctx, req.ID, leave.StatusRejected, &approvedBy, &approvedDate, nil)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)

	_, err = repo.UpdateStatus(ctx, 9999, leave.StatusApproved, &approvedBy, &approvedDate, nil)
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}

func TestUpdatePreservesStatusColumns(t *testing.T) {
	db := testDB(t)
	repo := NewLeaveRepository(db)
	ctx := context.Background()

	req := pendingRequest(t, repo)

	approvedBy := "Current User"
	approvedDate := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	_, err := repo.UpdateStatus(ctx, req.ID, leave.StatusApproved, &approvedBy, &approvedDate, nil)
	require.NoError(t, err)

	edited, err := repo.Update(ctx, req.ID, leave.LeaveRequest{
		EmployeeID: 1,
		StartDate:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		Type:       leave.TypeVacation,
		Status:     leave.StatusPending,
		Reason:     "Extended",
	})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusApproved, edited.Status, "plain update never touches status")
	require.NotNil(t, edited.ApprovedBy)
	assert.True(t, edited.RequestDate.Equal(req.RequestDate), "request date is immutable")
	assert.True(t, edited.EndDate.Equal(time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)))
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	db := testDB(t)
	repo := NewLeaveRepository(db)
	ctx := context.Background()

	sentinel := errors.New("abort")
	err := WithTransaction(ctx, db, func(ctx context.Context) error {
		if _, err := repo.Create(ctx, leave.LeaveRequest{
			EmployeeID:  1,
			StartDate:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			Type:        leave.TypeVacation,
			Status:      leave.StatusPending,
			RequestDate: time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC),
		}); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "the insert rolled back with the transaction")
}

func TestWithTransactionCommits(t *testing.T) {
	db := testDB(t)
	repo := NewLeaveRepository(db)
	ctx := context.Background()

	err := WithTransaction(ctx, db, func(ctx context.Context) error {
		_, err := repo.Create(ctx, leave.LeaveRequest{
			EmployeeID:  1,
			StartDate:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			Type:        leave.TypeVacation,
			Status:      leave.StatusPending,
			RequestDate: time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC),
		})
		return err
	})
	require.NoError(t, err)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
