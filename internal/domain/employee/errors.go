package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidRole      = errors.New("role must be one of Manager, Developer, Designer, HR, Analyst")
	ErrInvalidStatus    = errors.New("status must be one of Active, On Leave, Inactive")
)
