package recordapi

import (
	"context"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/recordapi"
)

const employeeTable = "employee_c"

var employeeFields = recordapi.Fields(
	"Name",
	"first_name_c",
	"last_name_c",
	"email_c",
	"phone_c",
	"photo_c",
	"role_c",
	"department_c",
	"start_date_c",
	"status_c",
	"manager_c",
	"location_c",
)

// employeeRow is the storage shape of an employee record.
type employeeRow struct {
	ID         int    `json:"Id,omitempty"`
	Name       string `json:"Name"`
	FirstName  string `json:"first_name_c"`
	LastName   string `json:"last_name_c"`
	Email      string `json:"email_c"`
	Phone      string `json:"phone_c"`
	Photo      string `json:"photo_c"`
	Role       string `json:"role_c"`
	Department string `json:"department_c"`
	StartDate  string `json:"start_date_c"`
	Status     string `json:"status_c"`
	Manager    string `json:"manager_c"`
	Location   string `json:"location_c"`
}

func (r employeeRow) toEntity() employee.Employee {
	status := employee.Status(r.Status)
	if r.Status == "" {
		status = employee.StatusActive
	}
	return employee.Employee{
		ID:         r.ID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		Photo:      r.Photo,
		Role:       employee.Role(r.Role),
		Department: r.Department,
		StartDate:  parseDate(r.StartDate),
		Status:     status,
		Manager:    r.Manager,
		Location:   r.Location,
	}
}

func employeeToRow(emp employee.Employee) employeeRow {
	return employeeRow{
		ID:         emp.ID,
		Name:       emp.FullName(),
		FirstName:  emp.FirstName,
		LastName:   emp.LastName,
		Email:      emp.Email,
		Phone:      emp.Phone,
		Photo:      emp.Photo,
		Role:       string(emp.Role),
		Department: emp.Department,
		StartDate:  formatDate(emp.StartDate),
		Status:     string(emp.Status),
		Manager:    emp.Manager,
		Location:   emp.Location,
	}
}

type employeeRepositoryImpl struct {
	client *recordapi.Client
}

func NewEmployeeRepository(client *recordapi.Client) employee.EmployeeRepository {
	return &employeeRepositoryImpl{client: client}
}

func (r *employeeRepositoryImpl) GetAll(ctx context.Context) ([]employee.Employee, error) {
	return r.fetch(ctx, recordapi.FetchParams{Fields: employeeFields})
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int) (*employee.Employee, error) {
	var row employeeRow
	found, err := r.client.GetRecordByID(ctx, employeeTable, id, recordapi.FetchParams{Fields: employeeFields}, &row)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	emp := row.toEntity()
	return &emp, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	row := employeeToRow(emp)
	row.ID = 0

	var created employeeRow
	if err := r.client.CreateRecord(ctx, employeeTable, row, &created); err != nil {
		return employee.Employee{}, err
	}
	return created.toEntity(), nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, id int, emp employee.Employee) (employee.Employee, error) {
	row := employeeToRow(emp)
	row.ID = id

	var updated employeeRow
	if err := r.client.UpdateRecord(ctx, employeeTable, row, &updated); err != nil {
		return employee.Employee{}, err
	}
	return updated.toEntity(), nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int) error {
	return r.client.DeleteRecord(ctx, employeeTable, id)
}

func (r *employeeRepositoryImpl) Search(ctx context.Context, query string) ([]employee.Employee, error) {
	return r.fetch(ctx, recordapi.FetchParams{
		Fields: employeeFields,
		WhereGroups: []recordapi.WhereGroup{
			recordapi.ContainsAny(query,
				"first_name_c", "last_name_c", "email_c", "role_c", "department_c"),
		},
	})
}

func (r *employeeRepositoryImpl) FilterByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	return r.fetch(ctx, recordapi.FetchParams{
		Fields: employeeFields,
		Where: []recordapi.Where{
			{FieldName: "department_c", Operator: "EqualTo", Values: []any{department}},
		},
	})
}

func (r *employeeRepositoryImpl) FilterByRole(ctx context.Context, role string) ([]employee.Employee, error) {
	return r.fetch(ctx, recordapi.FetchParams{
		Fields: employeeFields,
		Where: []recordapi.Where{
			{FieldName: "role_c", Operator: "EqualTo", Values: []any{role}},
		},
	})
}

func (r *employeeRepositoryImpl) GetRecent(ctx context.Context, limit int) ([]employee.Employee, error) {
	return r.fetch(ctx, recordapi.FetchParams{
		Fields:     employeeFields,
		OrderBy:    []recordapi.OrderBy{{FieldName: "start_date_c", SortType: "DESC"}},
		PagingInfo: &recordapi.PagingInfo{Limit: limit, Offset: 0},
	})
}

func (r *employeeRepositoryImpl) fetch(ctx context.Context, params recordapi.FetchParams) ([]employee.Employee, error) {
	var rows []employeeRow
	if err := r.client.FetchRecords(ctx, employeeTable, params, &rows); err != nil {
		return nil, err
	}

	employees := make([]employee.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, row.toEntity())
	}
	return employees, nil
}
