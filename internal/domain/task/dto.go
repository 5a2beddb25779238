package task

import (
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/validator"
)

// ListFilter drives the task list views (all tasks, my tasks).
type ListFilter struct {
	Search     *string `json:"search,omitempty"`
	Status     *string `json:"status,omitempty"`
	Priority   *string `json:"priority,omitempty"`
	AssignedTo *string `json:"assigned_to,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortBy    string `json:"sort_by"`    // deadline, priority, status, title
	SortOrder string `json:"sort_order"` // asc, desc
}

var taskSortColumns = []string{"deadline", "priority", "status", "title", "assigned_to"}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil && !TaskStatus(*f.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a known task status",
		})
	}

	if f.SortBy == "" {
		f.SortBy = "deadline"
	}
	if !validator.IsInSlice(f.SortBy, taskSortColumns) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by is not a sortable column",
		})
	}

	if f.SortOrder == "" {
		f.SortOrder = "asc"
	}
	if f.SortOrder != "asc" && f.SortOrder != "desc" {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "sort_order must be asc or desc",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateStatusRequest moves a task along its lifecycle.
type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "task id is required",
		})
	}

	if !TaskStatus(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a known task status",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ReviewRequest approves or rejects a completed task.
type ReviewRequest struct {
	ID      string `json:"-"`
	Verdict string `json:"verdict"` // approve, reject
	Comment string `json:"comment,omitempty"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "task id is required",
		})
	}

	if r.Verdict != "approve" && r.Verdict != "reject" {
		errs = append(errs, validator.ValidationError{
			Field:   "verdict",
			Message: "verdict must be approve or reject",
		})
	}

	if r.Verdict == "reject" && validator.IsEmpty(r.Comment) {
		errs = append(errs, validator.ValidationError{
			Field:   "comment",
			Message: "a comment is required when rejecting",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// TaskView is a task decorated with its derived urgency for rendering.
type TaskView struct {
	Task
	Urgency DeadlineUrgency `json:"urgency"`
	Style   UrgencyStyle    `json:"urgency_style"`
}

// ListResponse is the console-facing page of tasks.
type ListResponse struct {
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"total_pages"`
	Showing    string     `json:"showing"`
	Tasks      []TaskView `json:"tasks"`
}
