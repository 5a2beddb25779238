package attendance

// StatusStyle is the fixed visual weight of a status: color and icon for the
// badge, order for grouping in legends and summaries.
type StatusStyle struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Order int    `json:"order"`
}

// Style maps a status to its visual weight. The switch is exhaustive over the
// closed set; an unknown value falls through to the NotRecorded style, which
// only happens when a record bypassed ParseStatus.
func (s AttendanceStatus) Style() StatusStyle {
	switch s {
	case StatusPresent:
		return StatusStyle{Color: "#22C55E", Icon: "check-circle", Order: 0}
	case StatusLate:
		return StatusStyle{Color: "#F59E0B", Icon: "clock-alert", Order: 1}
	case StatusEarlyDeparture:
		return StatusStyle{Color: "#EAB308", Icon: "log-out", Order: 2}
	case StatusHalfDay:
		return StatusStyle{Color: "#FB923C", Icon: "circle-half", Order: 3}
	case StatusAbsent:
		return StatusStyle{Color: "#EF4444", Icon: "x-circle", Order: 4}
	case StatusOnLeave:
		return StatusStyle{Color: "#3B82F6", Icon: "calendar-minus", Order: 5}
	case StatusHoliday:
		return StatusStyle{Color: "#A855F7", Icon: "sun", Order: 6}
	case StatusWeekOff:
		return StatusStyle{Color: "#94A3B8", Icon: "moon", Order: 7}
	case StatusNotRecorded:
		return StatusStyle{Color: "#CBD5E1", Icon: "minus-circle", Order: 8}
	default:
		return StatusStyle{Color: "#CBD5E1", Icon: "minus-circle", Order: 8}
	}
}

// Attended reports whether the status counts as the employee having shown up.
func (s AttendanceStatus) Attended() bool {
	switch s {
	case StatusPresent, StatusLate, StatusHalfDay, StatusEarlyDeparture:
		return true
	default:
		return false
	}
}

// Working reports whether the day counts toward working days: anything the
// employee was expected to work, including days they missed.
func (s AttendanceStatus) Working() bool {
	switch s {
	case StatusHoliday, StatusWeekOff, StatusNotRecorded:
		return false
	default:
		return true
	}
}

// Summary aggregates a collection of attendance days for rendering. Hours are
// simple sums of the backend-computed per-day values, never re-derived.
type Summary struct {
	Counts        map[AttendanceStatus]int `json:"counts"`
	TotalHours    float64                  `json:"total_hours"`
	TotalOvertime float64                  `json:"total_overtime"`
}

// Summarize reduces a set of days to per-status counts and hour totals.
// Records with absent hour fields contribute zero.
func Summarize(days []AttendanceDay) Summary {
	summary := Summary{
		Counts: make(map[AttendanceStatus]int),
	}
	for _, day := range days {
		summary.Counts[day.Status]++
		summary.TotalHours += day.WorkHours()
		summary.TotalOvertime += day.Overtime()
	}
	return summary
}
