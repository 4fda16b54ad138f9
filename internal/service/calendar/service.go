// Package calendar computes the month view: a whole-week grid of day cells
// with leave requests bucketed into every day their closed date range
// covers.
package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
)

// MaxVisibleEntries caps how many leave entries a day cell shows directly;
// the rest collapse into the overflow counter. Display truncation only, the
// full bucket stays in Entries.
const MaxVisibleEntries = 2

type Day struct {
	Date     time.Time            `json:"date"`
	InMonth  bool                 `json:"inMonth"`
	IsToday  bool                 `json:"isToday"`
	Entries  []leave.LeaveRequest `json:"entries"`
	Overflow int                  `json:"overflow"`
}

// Visible returns the entries a cell renders directly.
func (d Day) Visible() []leave.LeaveRequest {
	if len(d.Entries) <= MaxVisibleEntries {
		return d.Entries
	}
	return d.Entries[:MaxVisibleEntries]
}

type Month struct {
	Anchor time.Time `json:"anchor"`
	Days   []Day     `json:"days"`
}

// Weeks slices the grid into 7-day rows. The grid is always a whole number
// of weeks.
func (m Month) Weeks() [][]Day {
	weeks := make([][]Day, 0, len(m.Days)/7)
	for i := 0; i+7 <= len(m.Days); i += 7 {
		weeks = append(weeks, m.Days[i:i+7])
	}
	return weeks
}

// MonthStart normalizes any anchor to the first day of its month.
func MonthStart(anchor time.Time) time.Time {
	return time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// NextMonth, PrevMonth and Today are the anchor transitions. Each is a pure
// replacement; month arithmetic is unbounded in both directions.
func NextMonth(anchor time.Time) time.Time {
	return MonthStart(anchor).AddDate(0, 1, 0)
}

func PrevMonth(anchor time.Time) time.Time {
	return MonthStart(anchor).AddDate(0, -1, 0)
}

func Today(now time.Time) time.Time {
	return MonthStart(now)
}

// GridRange returns the first and last visible days for an anchor's month:
// from the Sunday on or before the 1st through the Saturday on or after the
// last day, so leading and trailing days of adjacent months fill whole
// weeks.
func GridRange(anchor time.Time) (time.Time, time.Time) {
	monthStart := MonthStart(anchor)
	monthEnd := monthStart.AddDate(0, 1, -1)

	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, int(time.Saturday-monthEnd.Weekday()))
	return gridStart, gridEnd
}

// BucketLeaves returns the requests whose [StartDate, EndDate] interval
// contains day, boundary-inclusive on both ends, after applying the view
// filter.
func BucketLeaves(day time.Time, requests []leave.LeaveRequest, filter leave.Filter) []leave.LeaveRequest {
	var bucket []leave.LeaveRequest
	for _, req := range requests {
		if filter.Matches(req) && req.CoversDay(day) {
			bucket = append(bucket, req)
		}
	}
	return bucket
}

// DayAction is what a click on a day cell resolves to.
type DayAction struct {
	// Kind is "edit" when exactly one request covers the day, otherwise
	// "create" anchored to the date.
	Kind    string    `json:"kind"`
	Date    time.Time `json:"date"`
	LeaveID int       `json:"leaveId,omitempty"`
}

func ResolveDayClick(day time.Time, requests []leave.LeaveRequest, filter leave.Filter) DayAction {
	bucket := BucketLeaves(day, requests, filter)
	if len(bucket) == 1 {
		return DayAction{Kind: "edit", Date: day, LeaveID: bucket[0].ID}
	}
	return DayAction{Kind: "create", Date: day}
}

type CalendarService struct {
	leaveRepo leave.LeaveRepository
	now       func() time.Time
}

func NewCalendarService(leaveRepo leave.LeaveRepository) *CalendarService {
	return &CalendarService{leaveRepo: leaveRepo, now: time.Now}
}

// Month builds the display grid for the anchor's month. Only requests
// overlapping the visible range are fetched.
func (s *CalendarService) Month(ctx context.Context, anchor time.Time, filter leave.Filter) (Month, error) {
	gridStart, gridEnd := GridRange(anchor)

	requests, err := s.leaveRepo.GetByDateRange(ctx, gridStart, gridEnd)
	if err != nil {
		return Month{}, fmt.Errorf("failed to load leave requests: %w", err)
	}

	monthStart := MonthStart(anchor)
	today := s.now().UTC()
	var days []Day
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		entries := BucketLeaves(day, requests, filter)
		overflow := 0
		if len(entries) > MaxVisibleEntries {
			overflow = len(entries) - MaxVisibleEntries
		}
		days = append(days, Day{
			Date:     day,
			InMonth:  day.Month() == monthStart.Month() && day.Year() == monthStart.Year(),
			IsToday:  sameDay(day, today),
			Entries:  entries,
			Overflow: overflow,
		})
	}

	return Month{Anchor: monthStart, Days: days}, nil
}

// ResolveDay answers what a click on the given day should open.
func (s *CalendarService) ResolveDay(ctx context.Context, day time.Time, filter leave.Filter) (DayAction, error) {
	requests, err := s.leaveRepo.GetByDateRange(ctx, day, day)
	if err != nil {
		return DayAction{}, fmt.Errorf("failed to load leave requests: %w", err)
	}
	return ResolveDayClick(day, requests, filter), nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
