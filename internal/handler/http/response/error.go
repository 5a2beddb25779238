package response

import (
	"errors"
	"net/http"

	"github.com/codewithgaurave/hrms-console-go/internal/domain/attendance"
	"github.com/codewithgaurave/hrms-console-go/internal/domain/payroll"
	"github.com/codewithgaurave/hrms-console-go/internal/domain/task"
	"github.com/codewithgaurave/hrms-console-go/internal/domain/user"
	"github.com/codewithgaurave/hrms-console-go/internal/location"
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/hrapi"
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/validator"
	"github.com/codewithgaurave/hrms-console-go/internal/service/punch"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// The upstream rejected a punch; its wording is surfaced verbatim.
	var backendErr *punch.BackendError
	if errors.As(err, &backendErr) {
		Conflict(w, backendErr.Message)
		return
	}

	// Any other upstream reply keeps its status for client errors; server
	// errors collapse to a bad gateway.
	var apiErr *hrapi.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			message := apiErr.Message
			if message == "" {
				message = "Request rejected by the HR backend"
			}
			errorJSON(w, apiErr.StatusCode, "UPSTREAM_REJECTED", message, nil)
			return
		}
		BadGateway(w, "The HR backend is unavailable. Please try again.")
		return
	}

	switch {
	// User errors
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrForbidden):
		Forbidden(w, "You do not have access to this resource")

	// Punch workflow errors
	case errors.Is(err, attendance.ErrAlreadyPunched):
		Conflict(w, "Already punched in for today")
	case errors.Is(err, attendance.ErrAlreadyPunchedOut):
		Conflict(w, "Already punched out for today")
	case errors.Is(err, attendance.ErrNotYetPunchedIn):
		BadRequest(w, "Punch in before punching out", nil)
	case errors.Is(err, attendance.ErrPunchInFlight):
		Conflict(w, "A punch is already being processed")
	case errors.Is(err, attendance.ErrLocationRequired):
		BadRequest(w, "A location fix is required to punch", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnknownStatus):
		BadRequest(w, "Unknown attendance status", nil)

	// Location capture errors
	case errors.Is(err, location.ErrPermissionDenied):
		BadRequest(w, "Location permission denied. Enable location access to punch.", nil)
	case errors.Is(err, location.ErrPositionUnavailable):
		BadRequest(w, "Your location could not be determined. Try again.", nil)
	case errors.Is(err, location.ErrTimeout):
		BadRequest(w, "Timed out waiting for a location fix. Try again.", nil)
	case errors.Is(err, location.ErrUnsupported):
		BadRequest(w, "Location capture is not available on this device", nil)

	// Task errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrInvalidTransition):
		Conflict(w, "Task cannot move to the requested status")
	case errors.Is(err, task.ErrReviewNotAllowed):
		Conflict(w, "Only completed tasks can be reviewed")

	// Payroll errors
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
