package hrapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/codewithgaurave/hrms-console-go/internal/domain/attendance"
)

type punchRequest struct {
	Coordinates *attendance.Coordinates `json:"coordinates,omitempty"`
}

type hrPunchInRequest struct {
	PunchInTime *string `json:"punchInTime,omitempty"`
}

type hrPunchOutRequest struct {
	PunchOutTime *string `json:"punchOutTime,omitempty"`
}

// PunchIn records the caller's own punch-in, with the captured coordinates.
func (c *Client) PunchIn(ctx context.Context, coords *attendance.Coordinates) (attendance.AttendanceDay, error) {
	var day attendance.AttendanceDay
	_, err := c.do(ctx, http.MethodPost, "/attendance/punch-in", nil, punchRequest{Coordinates: coords}, &day)
	return day, err
}

// PunchOut records the caller's own punch-out.
func (c *Client) PunchOut(ctx context.Context, coords *attendance.Coordinates) (attendance.AttendanceDay, error) {
	var day attendance.AttendanceDay
	_, err := c.do(ctx, http.MethodPost, "/attendance/punch-out", nil, punchRequest{Coordinates: coords}, &day)
	return day, err
}

// PunchInByHR records a punch-in on behalf of an employee. A nil manualTime
// lets the backend stamp its current time.
func (c *Client) PunchInByHR(ctx context.Context, employeeID string, manualTime *time.Time) (attendance.AttendanceDay, error) {
	var body hrPunchInRequest
	if manualTime != nil {
		formatted := formatTime(*manualTime)
		body.PunchInTime = &formatted
	}
	var day attendance.AttendanceDay
	_, err := c.do(ctx, http.MethodPost, "/attendance/"+url.PathEscape(employeeID)+"/punch-in/by-hr", nil, body, &day)
	return day, err
}

// PunchOutByHR records a punch-out on behalf of an employee.
func (c *Client) PunchOutByHR(ctx context.Context, employeeID string, manualTime *time.Time) (attendance.AttendanceDay, error) {
	var body hrPunchOutRequest
	if manualTime != nil {
		formatted := formatTime(*manualTime)
		body.PunchOutTime = &formatted
	}
	var day attendance.AttendanceDay
	_, err := c.do(ctx, http.MethodPost, "/attendance/"+url.PathEscape(employeeID)+"/punch-out/by-hr", nil, body, &day)
	return day, err
}

// Today returns the caller's record for the current date, if any.
func (c *Client) Today(ctx context.Context) (*attendance.AttendanceDay, error) {
	var day attendance.AttendanceDay
	_, err := c.do(ctx, http.MethodGet, "/attendance/today", nil, nil, &day)
	if err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil // no punch yet today
		}
		return nil, err
	}
	return &day, nil
}

// EmployeeToday returns an employee's record for the current date, if any.
func (c *Client) EmployeeToday(ctx context.Context, employeeID string) (*attendance.AttendanceDay, error) {
	var day attendance.AttendanceDay
	_, err := c.do(ctx, http.MethodGet, "/attendance/employee/"+url.PathEscape(employeeID)+"/today", nil, nil, &day)
	if err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &day, nil
}

func recordsQuery(filter attendance.RecordsFilter) url.Values {
	q := url.Values{}
	setIfPresent(q, "employeeId", filter.EmployeeID)
	setIfPresent(q, "startDate", filter.StartDate)
	setIfPresent(q, "endDate", filter.EndDate)
	setIfPresent(q, "status", filter.Status)
	setIfPresent(q, "department", filter.Department)
	setIfPresent(q, "designation", filter.Designation)
	setIfPresent(q, "officeLocation", filter.OfficeLocation)
	setIfPresent(q, "shift", filter.Shift)
	setIfPresent(q, "search", filter.Search)
	setPagination(q, filter.Page, filter.Limit, filter.SortBy, filter.SortOrder)
	return q
}

// ListAttendance fetches attendance records across employees (team views).
func (c *Client) ListAttendance(ctx context.Context, filter attendance.RecordsFilter) ([]attendance.AttendanceDay, int64, error) {
	var days []attendance.AttendanceDay
	meta, err := c.do(ctx, http.MethodGet, "/attendance", recordsQuery(filter), nil, &days)
	if err != nil {
		return nil, 0, err
	}
	return days, metaTotal(meta, len(days)), nil
}

// MyAttendances fetches the caller's own attendance records.
func (c *Client) MyAttendances(ctx context.Context, filter attendance.RecordsFilter) ([]attendance.AttendanceDay, int64, error) {
	var days []attendance.AttendanceDay
	meta, err := c.do(ctx, http.MethodGet, "/attendance/my-attendances", recordsQuery(filter), nil, &days)
	if err != nil {
		return nil, 0, err
	}
	return days, metaTotal(meta, len(days)), nil
}

// EmployeeDetails fetches one employee's attendance scoped by view type
// (summary, records, calendar) and period.
func (c *Client) EmployeeDetails(ctx context.Context, query attendance.DetailsQuery) ([]attendance.AttendanceDay, int64, error) {
	q := url.Values{}
	q.Set("type", query.Type)
	if query.Year != 0 {
		q.Set("year", strconv.Itoa(query.Year))
	}
	if query.Month != 0 {
		q.Set("month", strconv.Itoa(query.Month))
	}
	setPagination(q, query.Page, query.Limit, query.SortBy, query.SortOrder)

	var days []attendance.AttendanceDay
	meta, err := c.do(ctx, http.MethodGet, "/attendance/"+url.PathEscape(query.EmployeeID)+"/details", q, nil, &days)
	if err != nil {
		return nil, 0, err
	}
	return days, metaTotal(meta, len(days)), nil
}

func metaTotal(meta *Meta, fallback int) int64 {
	if meta != nil && meta.TotalItems > 0 {
		return meta.TotalItems
	}
	return int64(fallback)
}
