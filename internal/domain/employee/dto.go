package employee

import (
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

// EmployeeRequest is the payload for both create and update. Dates arrive as
// "2006-01-02" or full ISO timestamps depending on the client form.
type EmployeeRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Photo      string `json:"photo,omitempty"`
	Role       string `json:"role"`
	Department string `json:"department"`
	StartDate  string `json:"startDate"`
	Status     string `json:"status,omitempty"`
	Manager    string `json:"manager,omitempty"`
	Location   string `json:"location,omitempty"`
}

func (r EmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "First name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "Last name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Please enter a valid email address"})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "Role is required"})
	} else if !validator.IsInSlice(r.Role, Roles()) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: ErrInvalidRole.Error()})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "Department is required"})
	}
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "Start date is required"})
	} else if _, ok := validator.ParseFlexibleDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "Start date must be a valid date"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: ErrInvalidStatus.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity converts a validated request into the storage-ready shape.
// Status defaults to Active when the form leaves it blank.
func (r EmployeeRequest) ToEntity() Employee {
	startDate, _ := validator.ParseFlexibleDate(r.StartDate)

	status := Status(r.Status)
	if r.Status == "" {
		status = StatusActive
	}

	return Employee{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		Photo:      r.Photo,
		Role:       Role(r.Role),
		Department: r.Department,
		StartDate:  startDate,
		Status:     status,
		Manager:    r.Manager,
		Location:   r.Location,
	}
}

// ListFilter carries the directory view's conjunctive filters. Zero values
// mean "no filter"; Clear resets all of them.
type ListFilter struct {
	Query      string `json:"query,omitempty"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role,omitempty"`
}

func (f ListFilter) IsZero() bool {
	return f.Query == "" && f.Department == "" && f.Role == ""
}

func (f *ListFilter) Clear() {
	*f = ListFilter{}
}
