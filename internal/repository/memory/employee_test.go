package memory

import (
	"context"
	"testing"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID: 1, FirstName: "Ava", LastName: "Stone", Email: "ava.stone@staffhub.io",
			Role: employee.RoleDeveloper, Department: "Engineering",
			StartDate: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
			Status:    employee.StatusActive,
		},
		{
			ID: 3, FirstName: "Ben", LastName: "Okafor", Email: "ben.okafor@staffhub.io",
			Role: employee.RoleManager, Department: "Design",
			StartDate: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			Status:    employee.StatusOnLeave,
		},
	}
}

func TestEmployeeStoreCreateAssignsNextID(t *testing.T) {
	repo := NewEmployeeRepository(seedEmployees())
	ctx := context.Background()

	created, err := repo.Create(ctx, employee.Employee{FirstName: "Cara", LastName: "Lim"})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID, "id continues from the highest seeded one")

	next, err := repo.Create(ctx, employee.Employee{FirstName: "Dan", LastName: "Reyes"})
	require.NoError(t, err)
	assert.Equal(t, 5, next.ID)
}

func TestEmployeeStoreCreateReusesFreedHighID(t *testing.T) {
	repo := NewEmployeeRepository(seedEmployees())
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 3))

	created, err := repo.Create(ctx, employee.Employee{FirstName: "Cara", LastName: "Lim"})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID, "max+1 over the records present, not ever-assigned ids")
}

func TestEmployeeStoreGetByIDMiss(t *testing.T) {
	repo := NewEmployeeRepository(seedEmployees())

	got, err := repo.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEmployeeStoreUpdateMissingReturnsNotFound(t *testing.T) {
	repo := NewEmployeeRepository(seedEmployees())

	_, err := repo.Update(context.Background(), 99, employee.Employee{FirstName: "Nobody"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeStoreDeleteMissingReturnsNotFound(t *testing.T) {
	repo := NewEmployeeRepository(seedEmployees())

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeStoreDeleteThenGet(t *testing.T) {
	repo := NewEmployeeRepository(seedEmployees())
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 1))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEmployeeStoreGetAllReturnsCopies(t *testing.T) {
	repo := NewEmployeeRepository(seedEmployees())
	ctx := context.Background()

	first, err := repo.GetAll(ctx)
	require.NoError(t, err)
	first[0].FirstName = "Mutated"

	second, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ava", second[0].FirstName)
}

func TestEmployeeStoreSearch(t *testing.T) {
	repo := NewEmployeeRepository(seedEmployees())
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "matches first name case-insensitively", query: "AVA", want: 1},
		{name: "matches email", query: "okafor@", want: 1},
		{name: "matches department", query: "engineering", want: 1},
		{name: "matches role", query: "manager", want: 1},
		{name: "no match", query: "zzz", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestEmployeeStoreFilters(t *testing.T) {
	repo := NewEmployeeRepository(seedEmployees())
	ctx := context.Background()

	byDept, err := repo.FilterByDepartment(ctx, "Design")
	require.NoError(t, err)
	require.Len(t, byDept, 1)
	assert.Equal(t, "Ben", byDept[0].FirstName)

	byRole, err := repo.FilterByRole(ctx, string(employee.RoleDeveloper))
	require.NoError(t, err)
	require.Len(t, byRole, 1)
	assert.Equal(t, "Ava", byRole[0].FirstName)
}

func TestEmployeeStoreGetRecent(t *testing.T) {
	repo := NewEmployeeRepository(seedEmployees())
	ctx := context.Background()

	recent, err := repo.GetRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "Ben", recent[0].FirstName, "newest start date first")

	all, err := repo.GetRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 2, "limit beyond size returns everything")
}
