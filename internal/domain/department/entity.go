package department

// Department groups employees by name only. EmployeeCount is denormalized and
// manually entered; it is never derived from actual directory membership.
// ManagerID is a weak reference to an employee id with no integrity check and
// no cascade when that employee is deleted.
type Department struct {
	ID            int    `json:"Id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	EmployeeCount int    `json:"employeeCount"`
	ManagerID     *int   `json:"managerId"`
}
