package attendance

import (
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// RecordsFilter drives the attendance list views (records, team attendance).
type RecordsFilter struct {
	// Search & Filter
	EmployeeID     *string `json:"employee_id,omitempty"`
	StartDate      *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate        *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status         *string `json:"status,omitempty"`
	Department     *string `json:"department,omitempty"`
	Designation    *string `json:"designation,omitempty"`
	OfficeLocation *string `json:"office_location,omitempty"`
	Shift          *string `json:"shift,omitempty"`
	Search         *string `json:"search,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // date, employee_name, punch_in, punch_out, status
	SortOrder string `json:"sort_order"` // asc, desc
}

var recordsSortColumns = []string{"date", "employee_name", "punch_in", "punch_out", "status", "total_work_hours"}

func (f *RecordsFilter) Validate() error {
	var errs validator.ValidationErrors

	// Page validation
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	// Limit validation
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Status != nil {
		if _, err := ParseStatus(*f.Status); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status is not a known attendance status",
			})
		}
	}

	if f.SortBy == "" {
		f.SortBy = "date"
	}
	if !validator.IsInSlice(f.SortBy, recordsSortColumns) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by is not a sortable column",
		})
	}

	if f.SortOrder == "" {
		f.SortOrder = "desc"
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

// DetailsQuery drives the per-employee details endpoint; type selects the view.
type DetailsQuery struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"` // summary, records, calendar
	Year       int    `json:"year"`
	Month      int    `json:"month"`

	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

var detailsTypes = []string{"summary", "records", "calendar"}

func (q *DetailsQuery) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(q.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if q.Type == "" {
		q.Type = "summary"
	}
	if !validator.IsInSlice(q.Type, detailsTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of summary, records, calendar",
		})
	}

	if q.Month < 0 || q.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
	if q.SortBy == "" {
		q.SortBy = "date"
	}
	if q.SortOrder == "" {
		q.SortOrder = "desc"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListResponse is the console-facing page of attendance records.
type ListResponse struct {
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
	Showing    string    `json:"showing"`
	Records    []DayView `json:"records"`
	Summary    Summary   `json:"summary"`
}

// DayView is one attendance record decorated with its presentation style.
type DayView struct {
	AttendanceDay
	Style StatusStyle `json:"style"`
}
