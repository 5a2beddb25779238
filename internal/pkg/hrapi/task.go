package hrapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/codewithgaurave/hrms-console-go/internal/domain/task"
)

func taskQuery(filter task.ListFilter) url.Values {
	q := url.Values{}
	setIfPresent(q, "search", filter.Search)
	setIfPresent(q, "status", filter.Status)
	setIfPresent(q, "priority", filter.Priority)
	setIfPresent(q, "assignedTo", filter.AssignedTo)
	setPagination(q, filter.Page, filter.Limit, filter.SortBy, filter.SortOrder)
	return q
}

// ListTasks fetches tasks across employees.
func (c *Client) ListTasks(ctx context.Context, filter task.ListFilter) ([]task.Task, int64, error) {
	var tasks []task.Task
	meta, err := c.do(ctx, http.MethodGet, "/tasks", taskQuery(filter), nil, &tasks)
	if err != nil {
		return nil, 0, err
	}
	return tasks, metaTotal(meta, len(tasks)), nil
}

// MyTasks fetches tasks assigned to the caller.
func (c *Client) MyTasks(ctx context.Context, filter task.ListFilter) ([]task.Task, int64, error) {
	var tasks []task.Task
	meta, err := c.do(ctx, http.MethodGet, "/tasks/my", taskQuery(filter), nil, &tasks)
	if err != nil {
		return nil, 0, err
	}
	return tasks, metaTotal(meta, len(tasks)), nil
}

type updateTaskStatusRequest struct {
	Status string `json:"status"`
}

// UpdateTaskStatus moves a task to a new lifecycle status.
func (c *Client) UpdateTaskStatus(ctx context.Context, id, status string) (task.Task, error) {
	var updated task.Task
	_, err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id)+"/status", nil, updateTaskStatusRequest{Status: status}, &updated)
	return updated, err
}

type reviewTaskRequest struct {
	Verdict string `json:"verdict"`
	Comment string `json:"comment,omitempty"`
}

// ReviewTask approves or rejects a completed task.
func (c *Client) ReviewTask(ctx context.Context, id, verdict, comment string) (task.Task, error) {
	var updated task.Task
	_, err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id)+"/review", nil, reviewTaskRequest{Verdict: verdict, Comment: comment}, &updated)
	return updated, err
}
