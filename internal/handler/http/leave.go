package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/middleware"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	ListLeaves(w http.ResponseWriter, r *http.Request)
	GetLeave(w http.ResponseWriter, r *http.Request)
	CreateLeave(w http.ResponseWriter, r *http.Request)
	UpdateLeave(w http.ResponseWriter, r *http.Request)
	UpdateLeaveStatus(w http.ResponseWriter, r *http.Request)
	DeleteLeave(w http.ResponseWriter, r *http.Request)
	UpcomingLeaves(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// ListLeaves implements LeaveHandler. Supports employeeId and status query
// filters, plus start/end (YYYY-MM-DD) for an overlap range query.
func (h *leaveHandlerImpl) ListLeaves(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("start") != "" || q.Get("end") != "" {
		start, err := time.Parse("2006-01-02", q.Get("start"))
		if err != nil {
			response.BadRequest(w, "Invalid start date, expected YYYY-MM-DD", nil)
			return
		}
		end, err := time.Parse("2006-01-02", q.Get("end"))
		if err != nil {
			response.BadRequest(w, "Invalid end date, expected YYYY-MM-DD", nil)
			return
		}
		result, err := h.leaveService.ByDateRange(r.Context(), start, end)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	filter := leave.Filter{Status: leave.Status(q.Get("status"))}
	if raw := q.Get("employeeId"); raw != "" {
		employeeID, err := strconv.Atoi(raw)
		if err != nil || employeeID <= 0 {
			response.BadRequest(w, "Invalid employeeId", nil)
			return
		}
		filter.EmployeeID = employeeID
	}

	// An employee's own history needs no status narrowing; the dedicated
	// store query serves it directly.
	if filter.EmployeeID != 0 && filter.Status == "" {
		result, err := h.leaveService.ByEmployee(r.Context(), filter.EmployeeID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	result, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetLeave implements LeaveHandler
func (h *leaveHandlerImpl) GetLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.leaveService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if result == nil {
		response.NotFound(w, "Leave request not found")
		return
	}

	response.Success(w, result)
}

// CreateLeave implements LeaveHandler
func (h *leaveHandlerImpl) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var input leave.LeaveRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Create(r.Context(), input)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created successfully", result)
}

// UpdateLeave implements LeaveHandler. Edits never touch the status or the
// approval trail; UpdateLeaveStatus is the only path for those.
func (h *leaveHandlerImpl) UpdateLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input leave.LeaveRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Update(r.Context(), id, input)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated successfully", result)
}

// UpdateLeaveStatus implements LeaveHandler. The approver is taken from the
// request's actor, not the payload.
func (h *leaveHandlerImpl) UpdateLeaveStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input leave.UpdateStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := input.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	result, err := h.leaveService.UpdateStatus(r.Context(), id, leave.Status(input.Status), actor, input.RejectionReason)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+input.Status, result)
}

// DeleteLeave implements LeaveHandler
func (h *leaveHandlerImpl) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.leaveService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted successfully", nil)
}

// UpcomingLeaves implements LeaveHandler
func (h *leaveHandlerImpl) UpcomingLeaves(w http.ResponseWriter, r *http.Request) {
	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}

	result, err := h.leaveService.Upcoming(r.Context(), days)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
