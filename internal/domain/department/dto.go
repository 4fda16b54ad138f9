package department

import (
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type DepartmentRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	EmployeeCount *int   `json:"employeeCount,omitempty"`
	ManagerID     *int   `json:"managerId,omitempty"`
}

func (r DepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Department name is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "Description is required"})
	}
	if r.EmployeeCount != nil && *r.EmployeeCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeCount", Message: "Please enter a valid employee count"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r DepartmentRequest) ToEntity() Department {
	count := 0
	if r.EmployeeCount != nil {
		count = *r.EmployeeCount
	}
	return Department{
		Name:          r.Name,
		Description:   r.Description,
		EmployeeCount: count,
		ManagerID:     r.ManagerID,
	}
}
