package attendance

import "errors"

// Attendance domain errors
var (
	// Punch workflow errors
	ErrAlreadyPunched    = errors.New("you have already punched in for today")
	ErrAlreadyPunchedOut = errors.New("you have already punched out for today")
	ErrNotYetPunchedIn   = errors.New("you have not punched in yet")
	ErrLocationRequired  = errors.New("location is required to punch in or out")
	ErrPunchInFlight     = errors.New("a punch submission is already in progress")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrUnknownStatus      = errors.New("unknown attendance status")
)
