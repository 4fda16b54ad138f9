package employee

import "time"

type Employee struct {
	ID         int       `json:"Id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Photo      string    `json:"photo"`
	Role       Role      `json:"role"`
	Department string    `json:"department"`
	StartDate  time.Time `json:"startDate"`
	Status     Status    `json:"status"`
	Manager    string    `json:"manager"`
	Location   string    `json:"location"`
}

// FullName is the display name mirrored into the record store's Name column.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Role string

const (
	RoleManager   Role = "Manager"
	RoleDeveloper Role = "Developer"
	RoleDesigner  Role = "Designer"
	RoleHR        Role = "HR"
	RoleAnalyst   Role = "Analyst"
)

func Roles() []string {
	return []string{
		string(RoleManager),
		string(RoleDeveloper),
		string(RoleDesigner),
		string(RoleHR),
		string(RoleAnalyst),
	}
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusOnLeave  Status = "On Leave"
	StatusInactive Status = "Inactive"
)

func Statuses() []string {
	return []string{
		string(StatusActive),
		string(StatusOnLeave),
		string(StatusInactive),
	}
}
