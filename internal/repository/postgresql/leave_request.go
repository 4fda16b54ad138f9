package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `id, employee_id, start_date, end_date, type, status, reason, request_date, approved_by, approved_date, rejection_reason`

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID,
		&req.EmployeeID,
		&req.StartDate,
		&req.EndDate,
		&req.Type,
		&req.Status,
		&req.Reason,
		&req.RequestDate,
		&req.ApprovedBy,
		&req.ApprovedDate,
		&req.RejectionReason,
	)
	return req, err
}

func (r *leaveRepositoryImpl) GetAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+leaveColumns+` FROM leave_requests ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id int) (*leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	req, err := scanLeave(q.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leave_requests WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *leaveRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID int) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE employee_id = $1 ORDER BY start_date`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func (r *leaveRepositoryImpl) GetByDateRange(ctx context.Context, start, end time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE start_date <= $2 AND end_date >= $1
		ORDER BY start_date`
	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func (r *leaveRepositoryImpl) GetUpcoming(ctx context.Context, days int) ([]leave.LeaveRequest, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return r.GetByDateRange(ctx, today, today.AddDate(0, 0, days))
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, start_date, end_date, type, status, reason,
			request_date, approved_by, approved_date, rejection_reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + leaveColumns
	return scanLeave(q.QueryRow(ctx, query,
		req.EmployeeID, req.StartDate, req.EndDate, req.Type, req.Status, req.Reason,
		req.RequestDate, req.ApprovedBy, req.ApprovedDate, req.RejectionReason,
	))
}

func (r *leaveRepositoryImpl) Update(ctx context.Context, id int, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Status fields and request_date stay untouched; only UpdateStatus
	// moves them.
	query := `
		UPDATE leave_requests
		SET employee_id = $2, start_date = $3, end_date = $4, type = $5, reason = $6
		WHERE id = $1
		RETURNING ` + leaveColumns
	updated, err := scanLeave(q.QueryRow(ctx, query,
		id, req.EmployeeID, req.StartDate, req.EndDate, req.Type, req.Reason,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveRequest{}, leave.ErrLeaveNotFound
	}
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return updated, nil
}

func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id int, status leave.Status, approvedBy *string, approvedDate *time.Time, rejectionReason *string) (leave.LeaveRequest, error) {
	var updated leave.LeaveRequest

	// The Pending check and the write share one transaction, so two
	// concurrent approvals cannot both pass the check.
	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		var current leave.Status
		err := q.QueryRow(ctx, `SELECT status FROM leave_requests WHERE id = $1 FOR UPDATE`, id).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveNotFound
		}
		if err != nil {
			return err
		}
		if current != leave.StatusPending {
			return leave.ErrLeaveAlreadyProcessed
		}

		query := `
			UPDATE leave_requests
			SET status = $2, approved_by = $3, approved_date = $4, rejection_reason = $5
			WHERE id = $1
			RETURNING ` + leaveColumns
		updated, err = scanLeave(q.QueryRow(ctx, query, id, status, approvedBy, approvedDate, rejectionReason))
		return err
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return updated, nil
}

func (r *leaveRepositoryImpl) Delete(ctx context.Context, id int) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

func collectLeaves(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
