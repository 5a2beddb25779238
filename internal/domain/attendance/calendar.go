package attendance

import (
	"fmt"
	"time"
)

// CalendarDay is one cell of the monthly attendance view.
type CalendarDay struct {
	Day            int              `json:"day"`
	Date           string           `json:"date"`
	DayOfWeek      string           `json:"day_of_week"`
	IsToday        bool             `json:"is_today"`
	IsCurrentMonth bool             `json:"is_current_month"`
	Status         AttendanceStatus `json:"status"`
	PunchIn        *PunchEvent      `json:"punch_in,omitempty"`
	PunchOut       *PunchEvent      `json:"punch_out,omitempty"`
	WorkHours      float64          `json:"work_hours"`
	Overtime       float64          `json:"overtime"`
	Notes          string           `json:"notes,omitempty"`
}

// MonthSummary carries the per-month counters, derived once per month.
type MonthSummary struct {
	WorkingDays    int     `json:"working_days"`
	AttendedDays   int     `json:"attended_days"`
	AttendanceRate float64 `json:"attendance_rate"`
	TotalHours     float64 `json:"total_hours"`
	TotalOvertime  float64 `json:"total_overtime"`
}

// MonthView holds exactly one cell per date of the month plus the summary.
// Grid expands it to the padded 7-column layout.
type MonthView struct {
	Year    int           `json:"year"`
	Month   time.Month    `json:"month"`
	Days    []CalendarDay `json:"days"`
	Summary MonthSummary  `json:"summary"`
}

// BuildMonth assembles the backend's per-day records into a month of cells.
// Dates with no record are synthesized as NotRecorded with zeroed numbers.
// A day is tagged IsToday only when it matches today's calendar date.
func BuildMonth(year int, month time.Month, days []AttendanceDay, today time.Time) MonthView {
	byDate := make(map[string]AttendanceDay, len(days))
	for _, d := range days {
		byDate[d.Date] = d
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	todayDate := today.Format("2006-01-02")

	view := MonthView{
		Year:  year,
		Month: month,
		Days:  make([]CalendarDay, 0, daysInMonth),
	}

	for dayNum := 1; dayNum <= daysInMonth; dayNum++ {
		date := time.Date(year, month, dayNum, 0, 0, 0, 0, time.UTC)
		dateStr := date.Format("2006-01-02")

		cell := CalendarDay{
			Day:            dayNum,
			Date:           dateStr,
			DayOfWeek:      date.Weekday().String(),
			IsToday:        dateStr == todayDate,
			IsCurrentMonth: true,
			Status:         StatusNotRecorded,
		}

		if record, ok := byDate[dateStr]; ok {
			cell.Status = record.Status
			cell.PunchIn = record.PunchIn
			cell.PunchOut = record.PunchOut
			cell.WorkHours = record.WorkHours()
			cell.Overtime = record.Overtime()
			cell.Notes = record.Notes
		}

		view.Days = append(view.Days, cell)
	}

	view.Summary = summarizeMonth(view.Days)
	return view
}

// summarizeMonth derives the month counters in one pass over the cells.
func summarizeMonth(days []CalendarDay) MonthSummary {
	var summary MonthSummary
	for _, cell := range days {
		if cell.Status.Working() {
			summary.WorkingDays++
		}
		if cell.Status.Attended() {
			summary.AttendedDays++
		}
		summary.TotalHours += cell.WorkHours
		summary.TotalOvertime += cell.Overtime
	}
	if summary.WorkingDays > 0 {
		summary.AttendanceRate = float64(summary.AttendedDays) / float64(summary.WorkingDays) * 100
	}
	return summary
}

// Grid expands the month into a renderable 7-column grid: leading cells back to
// the start of the first week and trailing cells to the end of the last week
// belong to adjacent months and carry IsCurrentMonth=false.
func (v MonthView) Grid() []CalendarDay {
	first := time.Date(v.Year, v.Month, 1, 0, 0, 0, 0, time.UTC)
	leading := int(first.Weekday()) // Sunday-first grid

	total := leading + len(v.Days)
	if rem := total % 7; rem != 0 {
		total += 7 - rem
	}

	grid := make([]CalendarDay, 0, total)
	for i := leading; i > 0; i-- {
		date := first.AddDate(0, 0, -i)
		grid = append(grid, adjacentCell(date))
	}
	grid = append(grid, v.Days...)
	last := first.AddDate(0, 1, -1)
	for i := 1; len(grid) < total; i++ {
		grid = append(grid, adjacentCell(last.AddDate(0, 0, i)))
	}
	return grid
}

func adjacentCell(date time.Time) CalendarDay {
	return CalendarDay{
		Day:            date.Day(),
		Date:           date.Format("2006-01-02"),
		DayOfWeek:      date.Weekday().String(),
		IsCurrentMonth: false,
		Status:         StatusNotRecorded,
	}
}

// MonthLabel is the "February 2024" heading for the view.
func (v MonthView) MonthLabel() string {
	return fmt.Sprintf("%s %d", v.Month.String(), v.Year)
}
