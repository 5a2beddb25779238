// Package dashboard composes the console landing page: the backend's
// aggregated numbers, the caller's own punch card, and their urgent tasks.
package dashboard

import (
	"context"

	"github.com/codewithgaurave/hrms-console-go/internal/domain/task"
	"github.com/codewithgaurave/hrms-console-go/internal/domain/user"
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/hrapi"
	"github.com/codewithgaurave/hrms-console-go/internal/service/attendance"
	taskService "github.com/codewithgaurave/hrms-console-go/internal/service/task"
)

// Backend is the slice of the HR API this service reads from.
type Backend interface {
	DashboardStats(ctx context.Context) (hrapi.AttendanceStats, hrapi.TeamSummary, error)
}

type Service struct {
	api        Backend
	attendance *attendance.Service
	tasks      *taskService.Service
}

func NewService(api Backend, attendanceService *attendance.Service, tasks *taskService.Service) *Service {
	return &Service{api: api, attendance: attendanceService, tasks: tasks}
}

// TaskCounts is the dashboard's deadline pressure gauge, reduced from the
// caller's open tasks at render time.
type TaskCounts struct {
	Overdue  int `json:"overdue"`
	DueToday int `json:"due_today"`
	DueSoon  int `json:"due_soon"`
	Open     int `json:"open"`
}

// Overview is the landing page payload. Team numbers only appear for
// managers; the punch card and task gauge always do.
type Overview struct {
	Today      attendance.TodayView  `json:"today"`
	Tasks      TaskCounts            `json:"tasks"`
	Attendance hrapi.AttendanceStats `json:"attendance_stats"`
	Team       *hrapi.TeamSummary    `json:"team_summary,omitempty"`
}

// Overview assembles the dashboard for the caller.
func (s *Service) Overview(ctx context.Context, identity user.Identity) (Overview, error) {
	today, err := s.attendance.Today(ctx, identity.EmployeeID)
	if err != nil {
		return Overview{}, err
	}

	myTasks, err := s.tasks.My(ctx, task.ListFilter{Limit: 100})
	if err != nil {
		return Overview{}, err
	}

	stats, team, err := s.api.DashboardStats(ctx)
	if err != nil {
		return Overview{}, err
	}

	overview := Overview{
		Today:      today,
		Tasks:      countTasks(myTasks.Tasks),
		Attendance: stats,
	}
	if identity.IsManager() {
		overview.Team = &team
	}
	return overview, nil
}

func countTasks(views []task.TaskView) TaskCounts {
	var counts TaskCounts
	for _, view := range views {
		switch view.Urgency {
		case task.UrgencyOverdue:
			counts.Overdue++
		case task.UrgencyDueToday:
			counts.DueToday++
		case task.UrgencyDueTomorrow, task.UrgencyApproachingSoon:
			counts.DueSoon++
		}
		if view.Urgency != task.UrgencyCompleted {
			counts.Open++
		}
	}
	return counts
}
