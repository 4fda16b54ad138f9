package recordapi

import (
	"context"

	"github.com/staffhub/staffhub-backend-go/internal/domain/department"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/recordapi"
)

const departmentTable = "department_c"

var departmentFields = recordapi.Fields(
	"Name",
	"manager_id_c",
	"employee_count_c",
	"description_c",
)

// departmentRow is the storage shape; the department name lives in the
// shared Name column.
type departmentRow struct {
	ID            int       `json:"Id,omitempty"`
	Name          string    `json:"Name"`
	ManagerID     *lookupID `json:"manager_id_c"`
	EmployeeCount int       `json:"employee_count_c"`
	Description   string    `json:"description_c"`
}

func (r departmentRow) toEntity() department.Department {
	var managerID *int
	if r.ManagerID != nil {
		id := int(*r.ManagerID)
		managerID = &id
	}
	return department.Department{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		EmployeeCount: r.EmployeeCount,
		ManagerID:     managerID,
	}
}

func departmentToRow(dept department.Department) departmentRow {
	var managerID *lookupID
	if dept.ManagerID != nil {
		id := lookupID(*dept.ManagerID)
		managerID = &id
	}
	return departmentRow{
		ID:            dept.ID,
		Name:          dept.Name,
		ManagerID:     managerID,
		EmployeeCount: dept.EmployeeCount,
		Description:   dept.Description,
	}
}

type departmentRepositoryImpl struct {
	client *recordapi.Client
}

func NewDepartmentRepository(client *recordapi.Client) department.DepartmentRepository {
	return &departmentRepositoryImpl{client: client}
}

func (r *departmentRepositoryImpl) GetAll(ctx context.Context) ([]department.Department, error) {
	var rows []departmentRow
	params := recordapi.FetchParams{Fields: departmentFields}
	if err := r.client.FetchRecords(ctx, departmentTable, params, &rows); err != nil {
		return nil, err
	}

	departments := make([]department.Department, 0, len(rows))
	for _, row := range rows {
		departments = append(departments, row.toEntity())
	}
	return departments, nil
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id int) (*department.Department, error) {
	var row departmentRow
	found, err := r.client.GetRecordByID(ctx, departmentTable, id, recordapi.FetchParams{Fields: departmentFields}, &row)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	dept := row.toEntity()
	return &dept, nil
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	row := departmentToRow(dept)
	row.ID = 0

	var created departmentRow
	if err := r.client.CreateRecord(ctx, departmentTable, row, &created); err != nil {
		return department.Department{}, err
	}
	return created.toEntity(), nil
}

func (r *departmentRepositoryImpl) Update(ctx context.Context, id int, dept department.Department) (department.Department, error) {
	row := departmentToRow(dept)
	row.ID = id

	var updated departmentRow
	if err := r.client.UpdateRecord(ctx, departmentTable, row, &updated); err != nil {
		return department.Department{}, err
	}
	return updated.toEntity(), nil
}

func (r *departmentRepositoryImpl) Delete(ctx context.Context, id int) error {
	return r.client.DeleteRecord(ctx, departmentTable, id)
}
