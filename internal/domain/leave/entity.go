package leave

import "time"

// LeaveRequest is a time-bounded absence tied to one employee. The closed
// [StartDate, EndDate] interval drives calendar bucketing. RequestDate is set
// once at creation. ApprovedBy/ApprovedDate are populated only when the
// status leaves Pending; RejectionReason only when the status is Rejected.
type LeaveRequest struct {
	ID              int        `json:"Id"`
	EmployeeID      int        `json:"employeeId"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         time.Time  `json:"endDate"`
	Type            Type       `json:"type"`
	Status          Status     `json:"status"`
	Reason          string     `json:"reason"`
	RequestDate     time.Time  `json:"requestDate"`
	ApprovedBy      *string    `json:"approvedBy"`
	ApprovedDate    *time.Time `json:"approvedDate"`
	RejectionReason *string    `json:"rejectionReason"`
}

// CoversDay reports whether day falls inside the request's date range,
// inclusive on both ends. Comparison is at day granularity.
func (l LeaveRequest) CoversDay(day time.Time) bool {
	d := truncateToDay(day)
	start := truncateToDay(l.StartDate)
	end := truncateToDay(l.EndDate)
	return !d.Before(start) && !d.After(end)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type Type string

const (
	TypeVacation  Type = "Vacation"
	TypeSick      Type = "Sick Leave"
	TypePersonal  Type = "Personal Leave"
	TypeMaternity Type = "Maternity Leave"
	TypePaternity Type = "Paternity Leave"
	TypeEmergency Type = "Emergency Leave"
)

func Types() []string {
	return []string{
		string(TypeVacation),
		string(TypeSick),
		string(TypePersonal),
		string(TypeMaternity),
		string(TypePaternity),
		string(TypeEmergency),
	}
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func Statuses() []string {
	return []string{
		string(StatusPending),
		string(StatusApproved),
		string(StatusRejected),
	}
}
