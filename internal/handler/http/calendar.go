package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
	"github.com/staffhub/staffhub-backend-go/internal/service/calendar"
)

type CalendarHandler interface {
	GetMonth(w http.ResponseWriter, r *http.Request)
	ResolveDay(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService *calendar.CalendarService
}

func NewCalendarHandler(calendarService *calendar.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{calendarService: calendarService}
}

// GetMonth implements CalendarHandler. The month query parameter is
// YYYY-MM and defaults to the current month; employeeId and status narrow
// the view.
func (h *calendarHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	anchor := calendar.Today(time.Now().UTC())
	if raw := q.Get("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			response.BadRequest(w, "Invalid month, expected YYYY-MM", nil)
			return
		}
		anchor = parsed
	}

	filter, ok := leaveFilterFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.calendarService.Month(r.Context(), anchor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ResolveDay implements CalendarHandler. Answers whether clicking a day
// opens the single covering request for edit or starts a new one.
func (h *calendarHandlerImpl) ResolveDay(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	filter, ok := leaveFilterFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.calendarService.ResolveDay(r.Context(), day, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func leaveFilterFromQuery(w http.ResponseWriter, r *http.Request) (leave.Filter, bool) {
	var filter leave.Filter
	q := r.URL.Query()

	if raw := q.Get("employeeId"); raw != "" {
		employeeID, err := strconv.Atoi(raw)
		if err != nil || employeeID <= 0 {
			response.BadRequest(w, "Invalid employeeId", nil)
			return leave.Filter{}, false
		}
		filter.EmployeeID = employeeID
	}
	filter.Status = leave.Status(q.Get("status"))

	return filter, true
}
