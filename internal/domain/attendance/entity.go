package attendance

import (
	"time"
)

// AttendanceStatus is the authoritative per-day status computed by the backend.
// The console never derives it; it only parses, presents and aggregates it.
type AttendanceStatus string

const (
	StatusPresent        AttendanceStatus = "Present"
	StatusLate           AttendanceStatus = "Late"
	StatusAbsent         AttendanceStatus = "Absent"
	StatusHalfDay        AttendanceStatus = "HalfDay"
	StatusOnLeave        AttendanceStatus = "OnLeave"
	StatusHoliday        AttendanceStatus = "Holiday"
	StatusWeekOff        AttendanceStatus = "WeekOff"
	StatusEarlyDeparture AttendanceStatus = "EarlyDeparture"
	StatusNotRecorded    AttendanceStatus = "NotRecorded"
)

// Statuses lists every valid status in presentation order.
var Statuses = []AttendanceStatus{
	StatusPresent,
	StatusLate,
	StatusEarlyDeparture,
	StatusHalfDay,
	StatusAbsent,
	StatusOnLeave,
	StatusHoliday,
	StatusWeekOff,
	StatusNotRecorded,
}

func (s AttendanceStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus maps a backend status string to the closed set.
func ParseStatus(raw string) (AttendanceStatus, error) {
	s := AttendanceStatus(raw)
	if !s.Valid() {
		return "", ErrUnknownStatus
	}
	return s, nil
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PunchEvent is one half of a day's record. At most two exist per day (in, out)
// and they are immutable once the backend has accepted them.
type PunchEvent struct {
	Timestamp   time.Time    `json:"timestamp"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// AttendanceDay is one employee's record for one calendar date. Status, hours
// and the office-boundary flag are backend-computed and read-only here.
type AttendanceDay struct {
	ID                     string           `json:"id,omitempty"`
	EmployeeID             string           `json:"employee_id"`
	EmployeeName           string           `json:"employee_name,omitempty"`
	Date                   string           `json:"date"` // YYYY-MM-DD
	PunchIn                *PunchEvent      `json:"punch_in,omitempty"`
	PunchOut               *PunchEvent      `json:"punch_out,omitempty"`
	Status                 AttendanceStatus `json:"status"`
	TotalWorkHours         *float64         `json:"total_work_hours,omitempty"`
	OvertimeHours          *float64         `json:"overtime_hours,omitempty"`
	IsWithinOfficeLocation bool             `json:"is_within_office_location"`
	Notes                  string           `json:"notes,omitempty"`
}

// DateTime parses the record's date field.
func (d AttendanceDay) DateTime() (time.Time, error) {
	return time.Parse("2006-01-02", d.Date)
}

// WorkHours returns the backend-computed hours, treating an absent value as zero.
func (d AttendanceDay) WorkHours() float64 {
	if d.TotalWorkHours == nil {
		return 0
	}
	return *d.TotalWorkHours
}

// Overtime returns the backend-computed overtime, treating an absent value as zero.
func (d AttendanceDay) Overtime() float64 {
	if d.OvertimeHours == nil {
		return 0
	}
	return *d.OvertimeHours
}
