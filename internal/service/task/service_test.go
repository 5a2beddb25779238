package task

import (
	"context"
	"testing"
	"time"

	"github.com/codewithgaurave/hrms-console-go/internal/domain/task"
	"github.com/codewithgaurave/hrms-console-go/internal/domain/user"
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/hrapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	tasks       []task.Task
	total       int64
	updated     task.Task
	err         error
	lastFilter  task.ListFilter
	lastID      string
	lastStatus  string
	lastVerdict string
	lastComment string
	calls       int
}

func (f *fakeBackend) ListTasks(ctx context.Context, filter task.ListFilter) ([]task.Task, int64, error) {
	f.lastFilter = filter
	f.calls++
	return f.tasks, f.total, f.err
}

func (f *fakeBackend) MyTasks(ctx context.Context, filter task.ListFilter) ([]task.Task, int64, error) {
	f.lastFilter = filter
	f.calls++
	return f.tasks, f.total, f.err
}

func (f *fakeBackend) UpdateTaskStatus(ctx context.Context, id, status string) (task.Task, error) {
	f.lastID, f.lastStatus = id, status
	f.calls++
	return f.updated, f.err
}

func (f *fakeBackend) ReviewTask(ctx context.Context, id, verdict, comment string) (task.Task, error) {
	f.lastID, f.lastVerdict, f.lastComment = id, verdict, comment
	f.calls++
	return f.updated, f.err
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
}

func newTestService(backend *fakeBackend) *Service {
	svc := NewService(backend)
	svc.now = fixedNow
	return svc
}

func deadlineIn(d time.Duration) *time.Time {
	t := fixedNow().Add(d)
	return &t
}

func TestList_ClassifiesWithOneClockSample(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		tasks: []task.Task{
			{ID: "t1", Title: "overdue", Status: task.StatusInProgress, Deadline: deadlineIn(-30 * time.Hour)},
			{ID: "t2", Title: "today", Status: task.StatusAssigned, Deadline: deadlineIn(-2 * time.Hour)},
			{ID: "t3", Title: "done", Status: task.StatusCompleted, Deadline: deadlineIn(-48 * time.Hour)},
			{ID: "t4", Title: "floating", Status: task.StatusNew},
		},
		total: 4,
	}
	svc := newTestService(backend)

	resp, err := svc.List(context.Background(), task.ListFilter{})

	require.NoError(t, err)
	require.Len(t, resp.Tasks, 4)
	assert.Equal(t, task.UrgencyOverdue, resp.Tasks[0].Urgency)
	assert.Equal(t, task.UrgencyDueToday, resp.Tasks[1].Urgency)
	assert.Equal(t, task.UrgencyCompleted, resp.Tasks[2].Urgency, "done status wins over the past deadline")
	assert.Equal(t, task.UrgencyNoDeadline, resp.Tasks[3].Urgency)
	assert.Equal(t, "Overdue", resp.Tasks[0].Style.Label)
	assert.Equal(t, "1-4 of 4", resp.Showing)
}

func TestList_AppliesFilterDefaults(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{}
	svc := newTestService(backend)

	resp, err := svc.List(context.Background(), task.ListFilter{})

	require.NoError(t, err)
	assert.Equal(t, 1, backend.lastFilter.Page)
	assert.Equal(t, 20, backend.lastFilter.Limit)
	assert.Equal(t, "deadline", backend.lastFilter.SortBy)
	assert.Equal(t, "asc", backend.lastFilter.SortOrder)
	assert.Equal(t, "0 of 0", resp.Showing)
}

func TestList_RejectsUnknownStatusWithoutFetching(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{}
	svc := newTestService(backend)
	bad := "Imaginary"

	_, err := svc.List(context.Background(), task.ListFilter{Status: &bad})

	require.Error(t, err)
	assert.Zero(t, backend.calls)
}

func TestMy_PaginationArithmetic(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		tasks: []task.Task{{ID: "t1", Status: task.StatusNew}},
		total: 41,
	}
	svc := newTestService(backend)

	resp, err := svc.My(context.Background(), task.ListFilter{Page: 3, Limit: 20})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, "41-41 of 41", resp.Showing)
}

func TestUpdateStatus_ReturnsDecoratedTask(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		updated: task.Task{ID: "t1", Status: task.StatusCompleted},
	}
	svc := newTestService(backend)

	view, err := svc.UpdateStatus(context.Background(), task.UpdateStatusRequest{ID: "t1", Status: "Completed"})

	require.NoError(t, err)
	assert.Equal(t, "t1", backend.lastID)
	assert.Equal(t, "Completed", backend.lastStatus)
	assert.Equal(t, task.UrgencyCompleted, view.Urgency)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{}
	svc := newTestService(backend)

	_, err := svc.UpdateStatus(context.Background(), task.UpdateStatusRequest{ID: "t1", Status: "Imaginary"})

	require.Error(t, err)
	assert.Zero(t, backend.calls)
}

func TestReview_RequiresReviewerRole(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{}
	svc := newTestService(backend)
	employee := user.Identity{EmployeeID: "emp-1", Role: user.RoleEmployee}

	_, err := svc.Review(context.Background(), employee, task.ReviewRequest{ID: "t1", Verdict: "approve"})

	assert.ErrorIs(t, err, user.ErrForbidden)
	assert.Zero(t, backend.calls)
}

func TestReview_RejectNeedsComment(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{}
	svc := newTestService(backend)
	manager := user.Identity{EmployeeID: "mgr-1", Role: user.RoleManager}

	_, err := svc.Review(context.Background(), manager, task.ReviewRequest{ID: "t1", Verdict: "reject"})

	require.Error(t, err)
	assert.Zero(t, backend.calls)
}

func TestReview_ForwardsVerdictAndComment(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		updated: task.Task{ID: "t1", Status: task.StatusRejected, Deadline: deadlineIn(72 * time.Hour)},
	}
	svc := newTestService(backend)
	hr := user.Identity{EmployeeID: "hr-1", Role: user.RoleHR}

	view, err := svc.Review(context.Background(), hr, task.ReviewRequest{ID: "t1", Verdict: "reject", Comment: "missing report"})

	require.NoError(t, err)
	assert.Equal(t, "reject", backend.lastVerdict)
	assert.Equal(t, "missing report", backend.lastComment)
	assert.Equal(t, task.UrgencyApproachingSoon, view.Urgency, "a rejected task goes back to deadline tracking")
}

func TestUpdateStatus_UnknownTaskMapsToNotFound(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{err: &hrapi.APIError{StatusCode: 404, Message: "task not found"}}
	svc := newTestService(backend)

	_, err := svc.UpdateStatus(context.Background(), task.UpdateStatusRequest{ID: "ghost", Status: "Completed"})

	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestUpdateStatus_UpstreamConflictMapsToInvalidTransition(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{err: &hrapi.APIError{StatusCode: 409, Message: "task is already approved"}}
	svc := newTestService(backend)

	_, err := svc.UpdateStatus(context.Background(), task.UpdateStatusRequest{ID: "t1", Status: "InProgress"})

	assert.ErrorIs(t, err, task.ErrInvalidTransition)
}

func TestReview_UpstreamConflictMapsToReviewNotAllowed(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{err: &hrapi.APIError{StatusCode: 409, Message: "task is not completed"}}
	svc := newTestService(backend)
	manager := user.Identity{EmployeeID: "mgr-1", Role: user.RoleManager}

	_, err := svc.Review(context.Background(), manager, task.ReviewRequest{ID: "t1", Verdict: "approve"})

	assert.ErrorIs(t, err, task.ErrReviewNotAllowed)
}

func TestReview_UnknownTaskMapsToNotFound(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{err: &hrapi.APIError{StatusCode: 404}}
	svc := newTestService(backend)
	manager := user.Identity{EmployeeID: "mgr-1", Role: user.RoleManager}

	_, err := svc.Review(context.Background(), manager, task.ReviewRequest{ID: "ghost", Verdict: "approve"})

	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}
