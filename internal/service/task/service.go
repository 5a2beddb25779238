// Package task serves the console's task lists and the status/review
// actions, decorating each task with its deadline urgency at render time.
package task

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/codewithgaurave/hrms-console-go/internal/domain/task"
	"github.com/codewithgaurave/hrms-console-go/internal/domain/user"
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/hrapi"
)

// Backend is the slice of the HR API this service uses.
type Backend interface {
	ListTasks(ctx context.Context, filter task.ListFilter) ([]task.Task, int64, error)
	MyTasks(ctx context.Context, filter task.ListFilter) ([]task.Task, int64, error)
	UpdateTaskStatus(ctx context.Context, id, status string) (task.Task, error)
	ReviewTask(ctx context.Context, id, verdict, comment string) (task.Task, error)
}

type Service struct {
	api Backend
	now func() time.Time
}

func NewService(api Backend) *Service {
	return &Service{api: api, now: time.Now}
}

// List returns a page of tasks across employees, each classified against a
// single clock sample so the whole page is internally consistent.
func (s *Service) List(ctx context.Context, filter task.ListFilter) (task.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return task.ListResponse{}, err
	}
	tasks, total, err := s.api.ListTasks(ctx, filter)
	if err != nil {
		return task.ListResponse{}, err
	}
	return s.buildPage(tasks, total, filter.Page, filter.Limit), nil
}

// My returns a page of the caller's own tasks.
func (s *Service) My(ctx context.Context, filter task.ListFilter) (task.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return task.ListResponse{}, err
	}
	tasks, total, err := s.api.MyTasks(ctx, filter)
	if err != nil {
		return task.ListResponse{}, err
	}
	return s.buildPage(tasks, total, filter.Page, filter.Limit), nil
}

// UpdateStatus moves a task along its lifecycle and returns the updated view.
func (s *Service) UpdateStatus(ctx context.Context, req task.UpdateStatusRequest) (task.TaskView, error) {
	if err := req.Validate(); err != nil {
		return task.TaskView{}, err
	}
	updated, err := s.api.UpdateTaskStatus(ctx, req.ID, req.Status)
	if err != nil {
		return task.TaskView{}, mapUpstreamError(err, task.ErrInvalidTransition)
	}
	return s.decorate(updated, s.now()), nil
}

// Review approves or rejects a completed task. Only reviewers may call it.
func (s *Service) Review(ctx context.Context, identity user.Identity, req task.ReviewRequest) (task.TaskView, error) {
	if !identity.CanReviewTasks() {
		return task.TaskView{}, user.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return task.TaskView{}, err
	}
	updated, err := s.api.ReviewTask(ctx, req.ID, req.Verdict, req.Comment)
	if err != nil {
		return task.TaskView{}, mapUpstreamError(err, task.ErrReviewNotAllowed)
	}
	return s.decorate(updated, s.now()), nil
}

// mapUpstreamError folds backend rejections of a task action into the task
// error taxonomy: an unknown id becomes ErrTaskNotFound and a lifecycle
// conflict becomes the action's conflict sentinel. Everything else passes
// through untouched.
func mapUpstreamError(err error, onConflict error) error {
	var apiErr *hrapi.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	switch apiErr.StatusCode {
	case http.StatusNotFound:
		return task.ErrTaskNotFound
	case http.StatusConflict:
		return onConflict
	}
	return err
}

func (s *Service) decorate(t task.Task, now time.Time) task.TaskView {
	urgency := task.Classify(t, now)
	return task.TaskView{Task: t, Urgency: urgency, Style: urgency.Style()}
}

// buildPage classifies every task with one shared now and fills in the
// pagination arithmetic.
func (s *Service) buildPage(tasks []task.Task, total int64, page, limit int) task.ListResponse {
	now := s.now()
	views := make([]task.TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, s.decorate(t, now))
	}

	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	showing := "0 of 0"
	if total > 0 && len(tasks) > 0 {
		start := (page-1)*limit + 1
		showing = fmt.Sprintf("%d-%d of %d", start, start+len(tasks)-1, total)
	}

	return task.ListResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Showing:    showing,
		Tasks:      views,
	}
}
