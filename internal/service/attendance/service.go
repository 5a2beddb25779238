// Package attendance assembles the console's attendance views from backend
// records: today's punch card, paginated record lists, and the monthly
// calendar. The backend remains authoritative for every status and hour
// figure; this layer only filters, decorates, and aggregates.
package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/codewithgaurave/hrms-console-go/internal/domain/attendance"
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/hrapi"
	"github.com/codewithgaurave/hrms-console-go/internal/service/punch"
)

// Backend is the slice of the HR API this service reads from.
type Backend interface {
	Today(ctx context.Context) (*attendance.AttendanceDay, error)
	EmployeeToday(ctx context.Context, employeeID string) (*attendance.AttendanceDay, error)
	ListAttendance(ctx context.Context, filter attendance.RecordsFilter) ([]attendance.AttendanceDay, int64, error)
	MyAttendances(ctx context.Context, filter attendance.RecordsFilter) ([]attendance.AttendanceDay, int64, error)
	EmployeeDetails(ctx context.Context, query attendance.DetailsQuery) ([]attendance.AttendanceDay, int64, error)
}

type Service struct {
	api      Backend
	workflow *punch.Workflow
	now      func() time.Time
}

func NewService(api Backend, workflow *punch.Workflow) *Service {
	return &Service{
		api:      api,
		workflow: workflow,
		now:      time.Now,
	}
}

// TodayView is the punch card: today's record (if any) plus the punch state
// driving which action buttons are live.
type TodayView struct {
	Day   *attendance.DayView `json:"day"`
	State punch.State         `json:"state"`
}

// Today fetches the caller's record for today and seeds the punch state
// machine from it, so punches start from what the backend already has.
func (s *Service) Today(ctx context.Context, employeeID string) (TodayView, error) {
	day, err := s.api.Today(ctx)
	if err != nil {
		return TodayView{}, err
	}
	return s.seedToday(employeeID, day), nil
}

// EmployeeToday is Today for a manager looking at one of their employees.
func (s *Service) EmployeeToday(ctx context.Context, employeeID string) (TodayView, error) {
	day, err := s.api.EmployeeToday(ctx, employeeID)
	if err != nil {
		return TodayView{}, err
	}
	return s.seedToday(employeeID, day), nil
}

func (s *Service) seedToday(subject string, day *attendance.AttendanceDay) TodayView {
	s.workflow.Seed(subject, day)
	view := TodayView{State: s.workflow.State(subject)}
	if day != nil {
		view.Day = &attendance.DayView{AttendanceDay: *day, Style: day.Status.Style()}
	}
	return view
}

// ListRecords returns a page of attendance across employees (team views).
func (s *Service) ListRecords(ctx context.Context, filter attendance.RecordsFilter) (attendance.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}
	days, total, err := s.api.ListAttendance(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, err
	}
	return buildPage(days, total, filter.Page, filter.Limit), nil
}

// MyRecords returns a page of the caller's own attendance.
func (s *Service) MyRecords(ctx context.Context, filter attendance.RecordsFilter) (attendance.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}
	days, total, err := s.api.MyAttendances(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, err
	}
	return buildPage(days, total, filter.Page, filter.Limit), nil
}

// DetailsResponse carries exactly one of the three per-employee views,
// selected by the query's type.
type DetailsResponse struct {
	EmployeeID string                   `json:"employee_id"`
	Type       string                   `json:"type"`
	Summary    *attendance.Summary      `json:"summary,omitempty"`
	Records    *attendance.ListResponse `json:"records,omitempty"`
	Calendar   *CalendarResponse        `json:"calendar,omitempty"`
}

// CalendarResponse is the month view plus its padded render grid and label.
type CalendarResponse struct {
	attendance.MonthView
	Label string                   `json:"label"`
	Grid  []attendance.CalendarDay `json:"grid"`
}

// EmployeeDetails serves the detail page tabs: summary, records, or calendar.
// The calendar type ignores pagination; year and month default to the
// current ones.
func (s *Service) EmployeeDetails(ctx context.Context, query attendance.DetailsQuery) (DetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return DetailsResponse{}, err
	}

	now := s.now()
	if query.Year == 0 {
		query.Year = now.Year()
	}
	if query.Month == 0 {
		query.Month = int(now.Month())
	}

	days, total, err := s.api.EmployeeDetails(ctx, query)
	if err != nil {
		var apiErr *hrapi.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return DetailsResponse{}, attendance.ErrAttendanceNotFound
		}
		return DetailsResponse{}, err
	}

	resp := DetailsResponse{EmployeeID: query.EmployeeID, Type: query.Type}
	switch query.Type {
	case "summary":
		summary := attendance.Summarize(days)
		resp.Summary = &summary
	case "records":
		page := buildPage(days, total, query.Page, query.Limit)
		resp.Records = &page
	case "calendar":
		month := attendance.BuildMonth(query.Year, time.Month(query.Month), days, now)
		resp.Calendar = &CalendarResponse{
			MonthView: month,
			Label:     month.MonthLabel(),
			Grid:      month.Grid(),
		}
	}
	return resp, nil
}

// buildPage decorates records with their status styles and fills in the
// pagination arithmetic.
func buildPage(days []attendance.AttendanceDay, total int64, page, limit int) attendance.ListResponse {
	records := make([]attendance.DayView, 0, len(days))
	for _, day := range days {
		records = append(records, attendance.DayView{AttendanceDay: day, Style: day.Status.Style()})
	}

	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return attendance.ListResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Showing:    showing(page, limit, total, len(days)),
		Records:    records,
		Summary:    attendance.Summarize(days),
	}
}

// showing renders the "1-20 of 53" range caption for list footers.
func showing(page, limit int, total int64, count int) string {
	if total == 0 || count == 0 {
		return "0 of 0"
	}
	start := (page-1)*limit + 1
	end := start + count - 1
	return fmt.Sprintf("%d-%d of %d", start, end, total)
}
