package task

import "time"

// TaskStatus is the backend-stored lifecycle state of a task.
type TaskStatus string

const (
	StatusNew        TaskStatus = "New"
	StatusAssigned   TaskStatus = "Assigned"
	StatusInProgress TaskStatus = "InProgress"
	StatusPending    TaskStatus = "Pending"
	StatusCompleted  TaskStatus = "Completed"
	StatusApproved   TaskStatus = "Approved"
	StatusRejected   TaskStatus = "Rejected"
)

var Statuses = []TaskStatus{
	StatusNew,
	StatusAssigned,
	StatusInProgress,
	StatusPending,
	StatusCompleted,
	StatusApproved,
	StatusRejected,
}

func (s TaskStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Done reports whether the work itself is finished, regardless of review state.
func (s TaskStatus) Done() bool {
	return s == StatusCompleted || s == StatusApproved
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
	PriorityUrgent TaskPriority = "Urgent"
)

type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	Deadline    *time.Time   `json:"deadline,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	AssignedTo  string       `json:"assigned_to"`
	AssignedBy  string       `json:"assigned_by"`
	IsActive    bool         `json:"is_active"`
}

// EffectiveDeadline prefers the explicit deadline and falls back to the due
// date; both fields exist on the wire because older records only carry due_date.
func (t Task) EffectiveDeadline() *time.Time {
	if t.Deadline != nil {
		return t.Deadline
	}
	return t.DueDate
}
