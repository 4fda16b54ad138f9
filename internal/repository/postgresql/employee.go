package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, first_name, last_name, email, phone, photo_url, role, department, start_date, status, manager, location`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID,
		&emp.FirstName,
		&emp.LastName,
		&emp.Email,
		&emp.Phone,
		&emp.Photo,
		&emp.Role,
		&emp.Department,
		&emp.StartDate,
		&emp.Status,
		&emp.Manager,
		&emp.Location,
	)
	return emp, err
}

func (r *employeeRepositoryImpl) GetAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY id`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			first_name, last_name, email, phone, photo_url,
			role, department, start_date, status, manager, location
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + employeeColumns
	return scanEmployee(q.QueryRow(ctx, query,
		emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.Photo,
		emp.Role, emp.Department, emp.StartDate, emp.Status, emp.Manager, emp.Location,
	))
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, id int, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			first_name = $2, last_name = $3, email = $4, phone = $5, photo_url = $6,
			role = $7, department = $8, start_date = $9, status = $10, manager = $11, location = $12
		WHERE id = $1
		RETURNING ` + employeeColumns
	updated, err := scanEmployee(q.QueryRow(ctx, query, id,
		emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.Photo,
		emp.Role, emp.Department, emp.StartDate, emp.Status, emp.Manager, emp.Location,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, err
	}
	return updated, nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Search(ctx context.Context, search string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE first_name ILIKE '%' || $1 || '%'
		   OR last_name ILIKE '%' || $1 || '%'
		   OR email ILIKE '%' || $1 || '%'
		   OR role ILIKE '%' || $1 || '%'
		   OR department ILIKE '%' || $1 || '%'
		ORDER BY id`
	rows, err := q.Query(ctx, query, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepositoryImpl) FilterByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	return r.filterBy(ctx, "department", department)
}

func (r *employeeRepositoryImpl) FilterByRole(ctx context.Context, role string) ([]employee.Employee, error) {
	return r.filterBy(ctx, "role", role)
}

func (r *employeeRepositoryImpl) filterBy(ctx context.Context, column, value string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE ` + column + ` = $1 ORDER BY id`
	rows, err := q.Query(ctx, query, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepositoryImpl) GetRecent(ctx context.Context, limit int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY start_date DESC LIMIT $1`
	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}
