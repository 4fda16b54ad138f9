package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/department"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

const departmentColumns = `id, name, description, employee_count, manager_id`

func scanDepartment(row pgx.Row) (department.Department, error) {
	var dept department.Department
	err := row.Scan(
		&dept.ID,
		&dept.Name,
		&dept.Description,
		&dept.EmployeeCount,
		&dept.ManagerID,
	)
	return dept, err
}

func (r *departmentRepositoryImpl) GetAll(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+departmentColumns+` FROM departments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		dept, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}
	return departments, rows.Err()
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id int) (*department.Department, error) {
	q := GetQuerier(ctx, r.db)

	dept, err := scanDepartment(q.QueryRow(ctx, `SELECT `+departmentColumns+` FROM departments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	// manager_id is a weak reference on purpose: no foreign key, no
	// validation against employees.
	query := `
		INSERT INTO departments (name, description, employee_count, manager_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + departmentColumns
	return scanDepartment(q.QueryRow(ctx, query,
		dept.Name, dept.Description, dept.EmployeeCount, dept.ManagerID,
	))
}

func (r *departmentRepositoryImpl) Update(ctx context.Context, id int, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $2, description = $3, employee_count = $4, manager_id = $5
		WHERE id = $1
		RETURNING ` + departmentColumns
	updated, err := scanDepartment(q.QueryRow(ctx, query,
		id, dept.Name, dept.Description, dept.EmployeeCount, dept.ManagerID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	if err != nil {
		return department.Department{}, err
	}
	return updated, nil
}

func (r *departmentRepositoryImpl) Delete(ctx context.Context, id int) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}
