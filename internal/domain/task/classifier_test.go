package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var classifyNow = time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

func deadlineIn(d time.Duration) *time.Time {
	t := classifyNow.Add(d)
	return &t
}

func TestClassify_DoneStatusWinsOverDeadline(t *testing.T) {
	t.Parallel()

	overdue := deadlineIn(-72 * time.Hour)
	for _, status := range []TaskStatus{StatusCompleted, StatusApproved} {
		got := Classify(Task{Status: status, Deadline: overdue}, classifyNow)
		assert.Equal(t, UrgencyCompleted, got, "status %s", status)
	}

	// Rejected work is not done; the deadline still applies.
	got := Classify(Task{Status: StatusRejected, Deadline: overdue}, classifyNow)
	assert.Equal(t, UrgencyOverdue, got)
}

func TestClassify_NoDeadline(t *testing.T) {
	t.Parallel()

	got := Classify(Task{Status: StatusInProgress}, classifyNow)
	assert.Equal(t, UrgencyNoDeadline, got)
}

func TestClassify_FallsBackToDueDate(t *testing.T) {
	t.Parallel()

	got := Classify(Task{Status: StatusAssigned, DueDate: deadlineIn(12 * time.Hour)}, classifyNow)
	assert.Equal(t, UrgencyDueTomorrow, got)
}

func TestClassify_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		deadline *time.Time
		want     DeadlineUrgency
	}{
		{"well past", deadlineIn(-96 * time.Hour), UrgencyOverdue},
		{"just over a day past", deadlineIn(-25 * time.Hour), UrgencyOverdue},
		{"missed earlier today", deadlineIn(-6 * time.Hour), UrgencyDueToday},
		{"exactly now", deadlineIn(0), UrgencyDueToday},
		{"six hours out", deadlineIn(6 * time.Hour), UrgencyDueTomorrow},
		{"exactly one day", deadlineIn(24 * time.Hour), UrgencyDueTomorrow},
		{"thirty hours out", deadlineIn(30 * time.Hour), UrgencyApproachingSoon},
		{"exactly two days", deadlineIn(48 * time.Hour), UrgencyApproachingSoon},
		{"exactly three days", deadlineIn(72 * time.Hour), UrgencyApproachingSoon},
		{"just over three days", deadlineIn(73 * time.Hour), UrgencyOnTrack},
		{"next week", deadlineIn(7 * 24 * time.Hour), UrgencyOnTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(Task{Status: StatusInProgress, Deadline: tt.deadline}, classifyNow)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_DeterministicForSameInputs(t *testing.T) {
	t.Parallel()

	tk := Task{Status: StatusPending, Deadline: deadlineIn(50 * time.Hour)}
	first := Classify(tk, classifyNow)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(tk, classifyNow))
	}
}

func TestUrgencyStyle_Exhaustive(t *testing.T) {
	t.Parallel()

	all := []DeadlineUrgency{
		UrgencyCompleted, UrgencyOverdue, UrgencyDueToday, UrgencyDueTomorrow,
		UrgencyApproachingSoon, UrgencyOnTrack, UrgencyNoDeadline,
	}
	seen := make(map[int]bool)
	for _, u := range all {
		style := u.Style()
		assert.NotEmpty(t, style.Color)
		assert.NotEmpty(t, style.Label)
		assert.False(t, seen[style.Order], "order %d reused", style.Order)
		seen[style.Order] = true
	}
}
