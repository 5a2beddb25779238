package hrapi

import (
	"context"
	"net/http"
)

// AttendanceStats is the backend's daily attendance breakdown for dashboards.
type AttendanceStats struct {
	OnTime        int64   `json:"on_time"`
	Late          int64   `json:"late"`
	Absent        int64   `json:"absent"`
	Total         int64   `json:"total"`
	OnTimePercent float64 `json:"on_time_percent"`
	LatePercent   float64 `json:"late_percent"`
	AbsentPercent float64 `json:"absent_percent"`
	Date          string  `json:"date"` // YYYY-MM-DD
}

// TeamSummary is the backend's headline numbers for the manager dashboard.
type TeamSummary struct {
	TotalEmployees  int64 `json:"total_employees"`
	PresentToday    int64 `json:"present_today"`
	OnLeaveToday    int64 `json:"on_leave_today"`
	PendingRequests int64 `json:"pending_requests"`
}

// DashboardStats fetches the backend-aggregated dashboard numbers.
func (c *Client) DashboardStats(ctx context.Context) (AttendanceStats, TeamSummary, error) {
	var payload struct {
		Attendance AttendanceStats `json:"attendance_stats"`
		Team       TeamSummary     `json:"team_summary"`
	}
	_, err := c.do(ctx, http.MethodGet, "/dashboard/summary", nil, nil, &payload)
	if err != nil {
		return AttendanceStats{}, TeamSummary{}, err
	}
	return payload.Attendance, payload.Team, nil
}
