package leave

import (
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type LeaveRequestInput struct {
	EmployeeID  int    `json:"employeeId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Type        string `json:"type"`
	Reason      string `json:"reason,omitempty"`
	RequestDate string `json:"requestDate,omitempty"`
}

func (r LeaveRequestInput) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "Employee is required"})
	}

	var startOK, endOK bool
	var start, end time.Time
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "Start date is required"})
	} else if start, startOK = validator.ParseFlexibleDate(r.StartDate); !startOK {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "Start date must be a valid date"})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "End date is required"})
	} else if end, endOK = validator.ParseFlexibleDate(r.EndDate); !endOK {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "End date must be a valid date"})
	}
	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "End date must be after start date"})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "Leave type is required"})
	} else if !validator.IsInSlice(r.Type, Types()) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: ErrInvalidType.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity converts a validated input to the storage-ready shape. Status is
// always Pending on conversion; only UpdateStatus moves it.
func (r LeaveRequestInput) ToEntity() LeaveRequest {
	start, _ := validator.ParseFlexibleDate(r.StartDate)
	end, _ := validator.ParseFlexibleDate(r.EndDate)

	req := LeaveRequest{
		EmployeeID: r.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Type:       Type(r.Type),
		Status:     StatusPending,
		Reason:     r.Reason,
	}
	if requestDate, ok := validator.ParseFlexibleDate(r.RequestDate); ok {
		req.RequestDate = requestDate
	}
	return req
}

type UpdateStatusInput struct {
	Status          string `json:"status"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

func (r UpdateStatusInput) Validate() error {
	var errs validator.ValidationErrors

	switch Status(r.Status) {
	case StatusApproved, StatusRejected:
	default:
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Status must be Approved or Rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Filter narrows calendar and list views. Zero values mean "no filter".
type Filter struct {
	EmployeeID int
	Status     Status
}

func (f Filter) Matches(l LeaveRequest) bool {
	if f.EmployeeID != 0 && l.EmployeeID != f.EmployeeID {
		return false
	}
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	return true
}
