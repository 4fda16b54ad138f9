package fixtures

import (
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/department"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }

// SeedEmployees returns the mock backend's employee fixture. Ids are
// pre-assigned; the mock store continues from the highest one.
func SeedEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID: 1, FirstName: "Sarah", LastName: "Chen", Email: "sarah.chen@staffhub.dev",
			Phone: "+1 555 0101", Photo: "https://i.pravatar.cc/150?img=1",
			Role: employee.RoleManager, Department: "Engineering",
			StartDate: date(2021, time.March, 15), Status: employee.StatusActive,
			Manager: "", Location: "San Francisco",
		},
		{
			ID: 2, FirstName: "Marcus", LastName: "Johnson", Email: "marcus.johnson@staffhub.dev",
			Phone: "+1 555 0102", Photo: "https://i.pravatar.cc/150?img=12",
			Role: employee.RoleDeveloper, Department: "Engineering",
			StartDate: date(2022, time.June, 1), Status: employee.StatusActive,
			Manager: "Sarah Chen", Location: "Remote",
		},
		{
			ID: 3, FirstName: "Priya", LastName: "Patel", Email: "priya.patel@staffhub.dev",
			Phone: "+1 555 0103", Photo: "https://i.pravatar.cc/150?img=5",
			Role: employee.RoleDesigner, Department: "Design",
			StartDate: date(2020, time.November, 9), Status: employee.StatusOnLeave,
			Manager: "Sarah Chen", Location: "New York",
		},
		{
			ID: 4, FirstName: "Diego", LastName: "Ramirez", Email: "diego.ramirez@staffhub.dev",
			Phone: "+1 555 0104", Photo: "https://i.pravatar.cc/150?img=14",
			Role: employee.RoleAnalyst, Department: "Finance",
			StartDate: date(2023, time.January, 23), Status: employee.StatusActive,
			Manager: "Emma Wilson", Location: "Austin",
		},
		{
			ID: 5, FirstName: "Emma", LastName: "Wilson", Email: "emma.wilson@staffhub.dev",
			Phone: "+1 555 0105", Photo: "https://i.pravatar.cc/150?img=9",
			Role: employee.RoleManager, Department: "Finance",
			StartDate: date(2019, time.August, 5), Status: employee.StatusActive,
			Manager: "", Location: "Chicago",
		},
		{
			ID: 6, FirstName: "Tomasz", LastName: "Nowak", Email: "tomasz.nowak@staffhub.dev",
			Phone: "+48 555 0106", Photo: "https://i.pravatar.cc/150?img=33",
			Role: employee.RoleDeveloper, Department: "Engineering",
			StartDate: date(2024, time.February, 12), Status: employee.StatusActive,
			Manager: "Sarah Chen", Location: "Warsaw",
		},
		{
			ID: 7, FirstName: "Aisha", LastName: "Okafor", Email: "aisha.okafor@staffhub.dev",
			Phone: "+44 555 0107", Photo: "https://i.pravatar.cc/150?img=20",
			Role: employee.RoleHR, Department: "People",
			StartDate: date(2022, time.September, 30), Status: employee.StatusActive,
			Manager: "", Location: "London",
		},
		{
			ID: 8, FirstName: "Liam", LastName: "Murphy", Email: "liam.murphy@staffhub.dev",
			Phone: "+353 555 0108", Photo: "https://i.pravatar.cc/150?img=53",
			Role: employee.RoleDeveloper, Department: "Engineering",
			StartDate: date(2023, time.July, 17), Status: employee.StatusInactive,
			Manager: "Sarah Chen", Location: "Dublin",
		},
	}
}

// SeedDepartments returns the department fixture. EmployeeCount is the
// manually entered value and intentionally diverges from the employee list.
func SeedDepartments() []department.Department {
	return []department.Department{
		{ID: 1, Name: "Engineering", Description: "Product development and platform infrastructure", EmployeeCount: 4, ManagerID: intPtr(1)},
		{ID: 2, Name: "Design", Description: "Product and brand design", EmployeeCount: 2, ManagerID: intPtr(3)},
		{ID: 3, Name: "Finance", Description: "Accounting, payroll and planning", EmployeeCount: 2, ManagerID: intPtr(5)},
		{ID: 4, Name: "People", Description: "Recruiting, onboarding and employee experience", EmployeeCount: 1, ManagerID: intPtr(7)},
		{ID: 5, Name: "Sales", Description: "Revenue and customer relationships", EmployeeCount: 3, ManagerID: nil},
	}
}

// SeedLeaveRequests covers every leave type and all three statuses.
func SeedLeaveRequests() []leave.LeaveRequest {
	return []leave.LeaveRequest{
		{
			ID: 1, EmployeeID: 3, Type: leave.TypeMaternity, Status: leave.StatusApproved,
			StartDate: date(2024, time.March, 1), EndDate: date(2024, time.May, 24),
			Reason:      "Parental leave",
			RequestDate: date(2024, time.January, 10),
			ApprovedBy:  strPtr("Aisha Okafor"), ApprovedDate: timePtr(date(2024, time.January, 12)),
		},
		{
			ID: 2, EmployeeID: 2, Type: leave.TypeVacation, Status: leave.StatusApproved,
			StartDate: date(2024, time.March, 10), EndDate: date(2024, time.March, 12),
			Reason:      "Long weekend trip",
			RequestDate: date(2024, time.February, 20),
			ApprovedBy:  strPtr("Sarah Chen"), ApprovedDate: timePtr(date(2024, time.February, 21)),
		},
		{
			ID: 3, EmployeeID: 4, Type: leave.TypeSick, Status: leave.StatusPending,
			StartDate: date(2024, time.March, 18), EndDate: date(2024, time.March, 19),
			Reason:      "Flu",
			RequestDate: date(2024, time.March, 17),
		},
		{
			ID: 4, EmployeeID: 6, Type: leave.TypePersonal, Status: leave.StatusRejected,
			StartDate: date(2024, time.April, 2), EndDate: date(2024, time.April, 5),
			Reason:      "Family visit",
			RequestDate: date(2024, time.March, 5),
			ApprovedBy:  strPtr("Sarah Chen"), ApprovedDate: timePtr(date(2024, time.March, 6)),
			RejectionReason: strPtr("Sprint deadline that week"),
		},
		{
			ID: 5, EmployeeID: 2, Type: leave.TypePaternity, Status: leave.StatusPending,
			StartDate: date(2024, time.June, 1), EndDate: date(2024, time.June, 14),
			Reason:      "Newborn",
			RequestDate: date(2024, time.March, 14),
		},
		{
			ID: 6, EmployeeID: 7, Type: leave.TypeEmergency, Status: leave.StatusApproved,
			StartDate: date(2024, time.March, 11), EndDate: date(2024, time.March, 11),
			Reason:      "Urgent family matter",
			RequestDate: date(2024, time.March, 11),
			ApprovedBy:  strPtr("Current User"), ApprovedDate: timePtr(date(2024, time.March, 11)),
		},
	}
}
