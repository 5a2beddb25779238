package task

import (
	"math"
	"time"
)

// DeadlineUrgency is derived at render time from (status, deadline, now). It is
// never stored; every view recomputes it through Classify so all of them agree.
type DeadlineUrgency string

const (
	UrgencyCompleted       DeadlineUrgency = "Completed"
	UrgencyOverdue         DeadlineUrgency = "Overdue"
	UrgencyDueToday        DeadlineUrgency = "DueToday"
	UrgencyDueTomorrow     DeadlineUrgency = "DueTomorrow"
	UrgencyApproachingSoon DeadlineUrgency = "ApproachingSoon"
	UrgencyOnTrack         DeadlineUrgency = "OnTrack"
	UrgencyNoDeadline      DeadlineUrgency = "NoDeadline"
)

// Classify derives the urgency label for a task. Callers classifying a batch
// must sample now once and pass the same value for every task so the batch is
// internally consistent.
func Classify(t Task, now time.Time) DeadlineUrgency {
	if t.Status.Done() {
		return UrgencyCompleted
	}

	deadline := t.EffectiveDeadline()
	if deadline == nil {
		return UrgencyNoDeadline
	}

	daysDiff := int(math.Ceil(deadline.Sub(now).Hours() / 24))
	switch {
	case daysDiff < 0:
		return UrgencyOverdue
	case daysDiff == 0:
		return UrgencyDueToday
	case daysDiff == 1:
		return UrgencyDueTomorrow
	case daysDiff <= 3:
		return UrgencyApproachingSoon
	default:
		return UrgencyOnTrack
	}
}

// UrgencyStyle is the visual weight of an urgency label.
type UrgencyStyle struct {
	Color string `json:"color"`
	Label string `json:"label"`
	Order int    `json:"order"`
}

func (u DeadlineUrgency) Style() UrgencyStyle {
	switch u {
	case UrgencyOverdue:
		return UrgencyStyle{Color: "#DC2626", Label: "Overdue", Order: 0}
	case UrgencyDueToday:
		return UrgencyStyle{Color: "#EA580C", Label: "Due today", Order: 1}
	case UrgencyDueTomorrow:
		return UrgencyStyle{Color: "#D97706", Label: "Due tomorrow", Order: 2}
	case UrgencyApproachingSoon:
		return UrgencyStyle{Color: "#CA8A04", Label: "Due soon", Order: 3}
	case UrgencyOnTrack:
		return UrgencyStyle{Color: "#16A34A", Label: "On track", Order: 4}
	case UrgencyCompleted:
		return UrgencyStyle{Color: "#2563EB", Label: "Completed", Order: 5}
	case UrgencyNoDeadline:
		return UrgencyStyle{Color: "#64748B", Label: "No deadline", Order: 6}
	default:
		return UrgencyStyle{Color: "#64748B", Label: "No deadline", Order: 6}
	}
}
