package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
	memoryRepo "github.com/staffhub/staffhub-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (employee.EmployeeService, employee.EmployeeRepository) {
	repo := memoryRepo.NewEmployeeRepository([]employee.Employee{
		{
			ID: 1, FirstName: "Ava", LastName: "Stone", Email: "ava.stone@staffhub.io",
			Role: employee.RoleDeveloper, Department: "Engineering",
			StartDate: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
			Status:    employee.StatusActive,
		},
		{
			ID: 2, FirstName: "Ben", LastName: "Okafor", Email: "ben.okafor@staffhub.io",
			Role: employee.RoleManager, Department: "Engineering",
			StartDate: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			Status:    employee.StatusActive,
		},
		{
			ID: 3, FirstName: "Cara", LastName: "Lim", Email: "cara.lim@staffhub.io",
			Role: employee.RoleDesigner, Department: "Design",
			StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Status:    employee.StatusOnLeave,
		},
	})
	return NewEmployeeService(repo), repo
}

func validRequest() employee.EmployeeRequest {
	return employee.EmployeeRequest{
		FirstName:  "Dana",
		LastName:   "Reyes",
		Email:      "dana.reyes@staffhub.io",
		Role:       "Analyst",
		Department: "Finance",
		StartDate:  "2024-08-01",
	}
}

func TestListFiltersCombineConjunctively(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name   string
		filter employee.ListFilter
		want   []string
	}{
		{name: "no filter lists everyone", filter: employee.ListFilter{}, want: []string{"Ava", "Ben", "Cara"}},
		{name: "department only", filter: employee.ListFilter{Department: "Engineering"}, want: []string{"Ava", "Ben"}},
		{name: "query narrows department", filter: employee.ListFilter{Query: "ben", Department: "Engineering"}, want: []string{"Ben"}},
		{name: "query and role must both match", filter: employee.ListFilter{Query: "ava", Role: "Manager"}, want: []string{}},
		{name: "query matches email", filter: employee.ListFilter{Query: "cara.lim@"}, want: []string{"Cara"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.List(ctx, tt.filter)
			require.NoError(t, err)

			names := make([]string, 0, len(got))
			for _, emp := range got {
				names = append(names, emp.FirstName)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestClearingFilterRestoresFullList(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	filter := employee.ListFilter{Query: "ava", Department: "Engineering"}
	narrowed, err := svc.List(ctx, filter)
	require.NoError(t, err)
	require.Len(t, narrowed, 1)

	filter.Clear()
	assert.True(t, filter.IsZero())

	full, err := svc.List(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, full, 3)
}

func TestCreateValidation(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	req := validRequest()
	req.FirstName = ""
	req.Email = "not-an-email"

	_, err := svc.Create(ctx, req)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	details := verrs.ToMap()
	assert.Contains(t, details, "firstName")
	assert.Contains(t, details, "email")

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3, "nothing is written when validation fails")
}

func TestCreateDefaultsStatusToActive(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, employee.StatusActive, created.Status)
	assert.Equal(t, 4, created.ID)
}

func TestUpdateMissingEmployee(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), 99, validRequest())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSearchBlankQueryReturnsEveryone(t *testing.T) {
	svc, _ := newTestService()

	got, err := svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestRecentDefaultsToFive(t *testing.T) {
	svc, _ := newTestService()

	got, err := svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "Cara", got[0].FirstName, "newest hire first")
}
