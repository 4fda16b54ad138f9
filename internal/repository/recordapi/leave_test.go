package recordapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/recordapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// recordUpdateStub captures the record object of a single-record update
// batch and answers with the given stored row.
func recordUpdateStub(t *testing.T, stored map[string]any, sent *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/tables/leave_c/records", r.URL.Path)

		var payload struct {
			Records []map[string]any `json:"records"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Records, 1)
		*sent = payload.Records[0]

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"results": []map[string]any{{"success": true, "data": stored}},
		})
	}))
}

func approvedStoredRow() map[string]any {
	return map[string]any{
		"Id":              5,
		"employee_id_c":   map[string]any{"Id": 2, "Name": "Ben Okafor"},
		"start_date_c":    "2024-04-01T00:00:00Z",
		"end_date_c":      "2024-04-04T00:00:00Z",
		"type_c":          "Sick Leave",
		"status_c":        "Approved",
		"reason_c":        "Extended by the doctor",
		"request_date_c":  "2024-03-28T00:00:00Z",
		"approved_by_c":   "Current User",
		"approved_date_c": "2024-03-29T00:00:00Z",
	}
}

func TestRemoteLeaveUpdateLeavesStatusColumnsBehind(t *testing.T) {
	var sent map[string]any
	server := recordUpdateStub(t, approvedStoredRow(), &sent)
	defer server.Close()

	repo := NewLeaveRepository(recordapi.NewClient(server.URL, "p", "k"))
	updated, err := repo.Update(context.Background(), 5, leave.LeaveRequest{
		EmployeeID: 2,
		StartDate:  day(2024, 4, 1),
		EndDate:    day(2024, 4, 4),
		Type:       leave.TypeSick,
		Status:     leave.StatusPending,
		Reason:     "Extended by the doctor",
	})
	require.NoError(t, err)

	for _, column := range []string{
		"status_c", "request_date_c", "approved_by_c", "approved_date_c", "rejection_reason_c",
	} {
		assert.NotContains(t, sent, column, "plain edits never carry %s", column)
	}
	assert.Equal(t, float64(5), sent["Id"])
	assert.Equal(t, "2024-04-04T00:00:00Z", sent["end_date_c"])

	assert.Equal(t, leave.StatusApproved, updated.Status, "stored status survives the edit")
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, "Current User", *updated.ApprovedBy)
	assert.Equal(t, day(2024, 3, 28), updated.RequestDate)
}

func TestRemoteLeaveUpdateStatusSendsOnlyStatusColumns(t *testing.T) {
	stored := approvedStoredRow()
	stored["status_c"] = "Rejected"
	stored["rejection_reason_c"] = "Team is at capacity"

	var sent map[string]any
	server := recordUpdateStub(t, stored, &sent)
	defer server.Close()

	repo := NewLeaveRepository(recordapi.NewClient(server.URL, "p", "k"))
	approvedBy := "Current User"
	approvedDate := day(2024, 3, 29)
	reason := "Team is at capacity"

	updated, err := repo.UpdateStatus(context.Background(), 5, leave.StatusRejected, &approvedBy, &approvedDate, &reason)
	require.NoError(t, err)

	assert.Equal(t, "Rejected", sent["status_c"])
	for _, column := range []string{"start_date_c", "end_date_c", "type_c", "reason_c", "request_date_c"} {
		assert.NotContains(t, sent, column, "status transitions never rewrite %s", column)
	}

	assert.Equal(t, leave.StatusRejected, updated.Status)
	require.NotNil(t, updated.RejectionReason)
	assert.Equal(t, "Team is at capacity", *updated.RejectionReason)
}
