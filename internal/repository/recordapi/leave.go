package recordapi

import (
	"context"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/recordapi"
)

const leaveTable = "leave_c"

var leaveFields = recordapi.Fields(
	"Name",
	"employee_id_c",
	"start_date_c",
	"end_date_c",
	"type_c",
	"status_c",
	"reason_c",
	"request_date_c",
	"approved_by_c",
	"approved_date_c",
	"rejection_reason_c",
)

type leaveRow struct {
	ID              int      `json:"Id,omitempty"`
	Name            string   `json:"Name,omitempty"`
	EmployeeID      lookupID `json:"employee_id_c"`
	StartDate       string   `json:"start_date_c"`
	EndDate         string   `json:"end_date_c"`
	Type            string   `json:"type_c"`
	Status          string   `json:"status_c"`
	Reason          string   `json:"reason_c"`
	RequestDate     string   `json:"request_date_c"`
	ApprovedBy      *string  `json:"approved_by_c"`
	ApprovedDate    *string  `json:"approved_date_c"`
	RejectionReason *string  `json:"rejection_reason_c"`
}

func (r leaveRow) toEntity() leave.LeaveRequest {
	status := leave.Status(r.Status)
	if r.Status == "" {
		status = leave.StatusPending
	}
	return leave.LeaveRequest{
		ID:              r.ID,
		EmployeeID:      int(r.EmployeeID),
		StartDate:       parseDate(r.StartDate),
		EndDate:         parseDate(r.EndDate),
		Type:            leave.Type(r.Type),
		Status:          status,
		Reason:          r.Reason,
		RequestDate:     parseDate(r.RequestDate),
		ApprovedBy:      r.ApprovedBy,
		ApprovedDate:    parseDatePtr(r.ApprovedDate),
		RejectionReason: r.RejectionReason,
	}
}

func leaveToRow(req leave.LeaveRequest) leaveRow {
	return leaveRow{
		ID:              req.ID,
		EmployeeID:      lookupID(req.EmployeeID),
		StartDate:       formatDate(req.StartDate),
		EndDate:         formatDate(req.EndDate),
		Type:            string(req.Type),
		Status:          string(req.Status),
		Reason:          req.Reason,
		RequestDate:     formatDate(req.RequestDate),
		ApprovedBy:      req.ApprovedBy,
		ApprovedDate:    formatDatePtr(req.ApprovedDate),
		RejectionReason: req.RejectionReason,
	}
}

type leaveRepositoryImpl struct {
	client *recordapi.Client
}

func NewLeaveRepository(client *recordapi.Client) leave.LeaveRepository {
	return &leaveRepositoryImpl{client: client}
}

func (r *leaveRepositoryImpl) GetAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.fetch(ctx, recordapi.FetchParams{Fields: leaveFields})
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id int) (*leave.LeaveRequest, error) {
	var row leaveRow
	found, err := r.client.GetRecordByID(ctx, leaveTable, id, recordapi.FetchParams{Fields: leaveFields}, &row)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	req := row.toEntity()
	return &req, nil
}

func (r *leaveRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID int) ([]leave.LeaveRequest, error) {
	return r.fetch(ctx, recordapi.FetchParams{
		Fields: leaveFields,
		Where: []recordapi.Where{
			{FieldName: "employee_id_c", Operator: "EqualTo", Values: []any{employeeID}},
		},
	})
}

func (r *leaveRepositoryImpl) GetByDateRange(ctx context.Context, start, end time.Time) ([]leave.LeaveRequest, error) {
	// Overlap query: starts before the window ends AND ends after the window
	// starts.
	return r.fetch(ctx, recordapi.FetchParams{
		Fields: leaveFields,
		WhereGroups: []recordapi.WhereGroup{{
			Operator: "AND",
			SubGroups: []recordapi.SubGroup{
				{Conditions: []recordapi.Condition{{
					FieldName: "start_date_c",
					Operator:  "LessThanOrEqualTo",
					Values:    []any{formatDate(end)},
				}}},
				{Conditions: []recordapi.Condition{{
					FieldName: "end_date_c",
					Operator:  "GreaterThanOrEqualTo",
					Values:    []any{formatDate(start)},
				}}},
			},
		}},
	})
}

func (r *leaveRepositoryImpl) GetUpcoming(ctx context.Context, days int) ([]leave.LeaveRequest, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return r.GetByDateRange(ctx, today, today.AddDate(0, 0, days))
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	row := leaveToRow(req)
	row.ID = 0

	var created leaveRow
	if err := r.client.CreateRecord(ctx, leaveTable, row, &created); err != nil {
		return leave.LeaveRequest{}, err
	}
	return created.toEntity(), nil
}

func (r *leaveRepositoryImpl) Update(ctx context.Context, id int, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	// Partial update: status_c, request_date_c and the approval columns stay
	// out of the batch so the backend keeps their stored values, matching
	// the other backends.
	row := struct {
		ID         int      `json:"Id"`
		EmployeeID lookupID `json:"employee_id_c"`
		StartDate  string   `json:"start_date_c"`
		EndDate    string   `json:"end_date_c"`
		Type       string   `json:"type_c"`
		Reason     string   `json:"reason_c"`
	}{
		ID:         id,
		EmployeeID: lookupID(req.EmployeeID),
		StartDate:  formatDate(req.StartDate),
		EndDate:    formatDate(req.EndDate),
		Type:       string(req.Type),
		Reason:     req.Reason,
	}

	var updated leaveRow
	if err := r.client.UpdateRecord(ctx, leaveTable, row, &updated); err != nil {
		return leave.LeaveRequest{}, err
	}
	return updated.toEntity(), nil
}

func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id int, status leave.Status, approvedBy *string, approvedDate *time.Time, rejectionReason *string) (leave.LeaveRequest, error) {
	// Partial update: only the status columns travel.
	row := struct {
		ID              int     `json:"Id"`
		Status          string  `json:"status_c"`
		ApprovedBy      *string `json:"approved_by_c"`
		ApprovedDate    *string `json:"approved_date_c"`
		RejectionReason *string `json:"rejection_reason_c"`
	}{
		ID:              id,
		Status:          string(status),
		ApprovedBy:      approvedBy,
		ApprovedDate:    formatDatePtr(approvedDate),
		RejectionReason: rejectionReason,
	}

	var updated leaveRow
	if err := r.client.UpdateRecord(ctx, leaveTable, row, &updated); err != nil {
		return leave.LeaveRequest{}, err
	}
	return updated.toEntity(), nil
}

func (r *leaveRepositoryImpl) Delete(ctx context.Context, id int) error {
	return r.client.DeleteRecord(ctx, leaveTable, id)
}

func (r *leaveRepositoryImpl) fetch(ctx context.Context, params recordapi.FetchParams) ([]leave.LeaveRequest, error) {
	var rows []leaveRow
	if err := r.client.FetchRecords(ctx, leaveTable, params, &rows); err != nil {
		return nil, err
	}

	requests := make([]leave.LeaveRequest, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, row.toEntity())
	}
	return requests, nil
}
