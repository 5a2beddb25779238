package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/codewithgaurave/hrms-console-go/internal/domain/attendance"
	"github.com/codewithgaurave/hrms-console-go/internal/handler/http/response"
	"github.com/codewithgaurave/hrms-console-go/internal/location"
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/jwt"
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/validator"
	attendanceService "github.com/codewithgaurave/hrms-console-go/internal/service/attendance"
	"github.com/codewithgaurave/hrms-console-go/internal/service/punch"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
	EmployeeToday(w http.ResponseWriter, r *http.Request)
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	PunchInByHR(w http.ResponseWriter, r *http.Request)
	PunchOutByHR(w http.ResponseWriter, r *http.Request)
	ConfirmPunch(w http.ResponseWriter, r *http.Request)
	CancelPunch(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	EmployeeDetails(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService *attendanceService.Service
	workflow          *punch.Workflow
	jwtService        jwt.Service
}

func NewAttendanceHandler(service *attendanceService.Service, workflow *punch.Workflow, jwtService jwt.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: service,
		workflow:          workflow,
		jwtService:        jwtService,
	}
}

// punchBody is the self-punch payload: the fix the console UI captured in
// the browser, or the geolocation error code when capture failed there.
type punchBody struct {
	Fix       *location.Fix `json:"fix,omitempty"`
	ErrorCode string        `json:"error_code,omitempty"`
}

func (b *punchBody) Validate() error {
	if b.Fix == nil {
		return nil
	}

	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(b.Fix.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "fix.latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if !validator.IsValidLongitude(b.Fix.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "fix.longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// hrPunchBody is the on-behalf payload; the manual time is optional.
type hrPunchBody struct {
	Time *time.Time `json:"time,omitempty"`
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	identity, err := h.jwtService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	view, err := h.attendanceService.Today(r.Context(), identity.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

// EmployeeToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) EmployeeToday(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	view, err := h.attendanceService.EmployeeToday(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

// PunchIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	h.selfPunch(w, r, punch.ActionIn)
}

// PunchOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	h.selfPunch(w, r, punch.ActionOut)
}

func (h *attendanceHandlerImpl) selfPunch(w http.ResponseWriter, r *http.Request, action punch.Action) {
	identity, err := h.jwtService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var body punchBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := body.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	src := location.FixSource{}
	switch {
	case body.ErrorCode != "":
		src.Err = location.ErrorForCode(body.ErrorCode)
	case body.Fix != nil:
		src.Fix = *body.Fix
	default:
		src.Err = location.ErrPositionUnavailable
	}
	ctx := location.WithForwardedFix(r.Context(), src)

	day, err := h.workflow.SubmitPunch(ctx, action, identity.EmployeeID, punch.AsSelf, nil)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Punched in"
	if action == punch.ActionOut {
		message = "Punched out"
	}
	response.SuccessWithMessage(w, message, day)
}

// PunchInByHR implements AttendanceHandler.
func (h *attendanceHandlerImpl) PunchInByHR(w http.ResponseWriter, r *http.Request) {
	h.hrPunch(w, r, punch.ActionIn)
}

// PunchOutByHR implements AttendanceHandler.
func (h *attendanceHandlerImpl) PunchOutByHR(w http.ResponseWriter, r *http.Request) {
	h.hrPunch(w, r, punch.ActionOut)
}

func (h *attendanceHandlerImpl) hrPunch(w http.ResponseWriter, r *http.Request, action punch.Action) {
	employeeID := chi.URLParam(r, "employeeID")

	// An absent body means no manual time; chunked requests report no
	// Content-Length, so decode unconditionally and treat EOF as empty.
	var body hrPunchBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	day, err := h.workflow.SubmitPunch(r.Context(), action, employeeID, punch.AsManagerOnBehalf, body.Time)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Punch recorded", day)
}

// ConfirmPunch implements AttendanceHandler.
func (h *attendanceHandlerImpl) ConfirmPunch(w http.ResponseWriter, r *http.Request) {
	identity, err := h.jwtService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	action := punch.Action(chi.URLParam(r, "action"))
	if action != punch.ActionIn && action != punch.ActionOut {
		response.BadRequest(w, "Unknown punch action", nil)
		return
	}

	pending, err := h.workflow.RequestConfirmation(identity.EmployeeID, action)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, pending)
}

// CancelPunch implements AttendanceHandler.
func (h *attendanceHandlerImpl) CancelPunch(w http.ResponseWriter, r *http.Request) {
	identity, err := h.jwtService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.workflow.CancelConfirmation(identity.EmployeeID)
	response.SuccessWithMessage(w, "Punch cancelled", nil)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := recordsFilterFromQuery(r)

	result, err := h.attendanceService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// My implements AttendanceHandler.
func (h *attendanceHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	filter := recordsFilterFromQuery(r)

	result, err := h.attendanceService.MyRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// EmployeeDetails implements AttendanceHandler.
func (h *attendanceHandlerImpl) EmployeeDetails(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := attendance.DetailsQuery{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Type:       q.Get("type"),
		Year:       atoiOrZero(q.Get("year")),
		Month:      atoiOrZero(q.Get("month")),
		Page:       atoiOrZero(q.Get("page")),
		Limit:      atoiOrZero(q.Get("limit")),
		SortBy:     q.Get("sortBy"),
		SortOrder:  q.Get("sortOrder"),
	}

	result, err := h.attendanceService.EmployeeDetails(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func recordsFilterFromQuery(r *http.Request) attendance.RecordsFilter {
	q := r.URL.Query()
	return attendance.RecordsFilter{
		EmployeeID:     optional(q.Get("employeeId")),
		StartDate:      optional(q.Get("startDate")),
		EndDate:        optional(q.Get("endDate")),
		Status:         optional(q.Get("status")),
		Department:     optional(q.Get("department")),
		Designation:    optional(q.Get("designation")),
		OfficeLocation: optional(q.Get("officeLocation")),
		Shift:          optional(q.Get("shift")),
		Search:         optional(q.Get("search")),
		Page:           atoiOrZero(q.Get("page")),
		Limit:          atoiOrZero(q.Get("limit")),
		SortBy:         q.Get("sortBy"),
		SortOrder:      q.Get("sortOrder"),
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func atoiOrZero(value string) int {
	n, _ := strconv.Atoi(value)
	return n
}
