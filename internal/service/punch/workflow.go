package punch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/codewithgaurave/hrms-console-go/internal/domain/attendance"
	"github.com/codewithgaurave/hrms-console-go/internal/location"
	"github.com/codewithgaurave/hrms-console-go/internal/pkg/hrapi"
)

type Action string

const (
	ActionIn  Action = "in"
	ActionOut Action = "out"
)

// ActingAs distinguishes an employee punching for themselves from a manager
// punching on an employee's behalf.
type ActingAs string

const (
	AsSelf            ActingAs = "self"
	AsManagerOnBehalf ActingAs = "manager"
)

// State of one subject's day: NoPunch -> PunchedIn -> PunchedOut (terminal).
type State string

const (
	StateNoPunch    State = "no_punch"
	StatePunchedIn  State = "punched_in"
	StatePunchedOut State = "punched_out"
)

// Submitter is the slice of the HR API the workflow needs.
type Submitter interface {
	PunchIn(ctx context.Context, coords *attendance.Coordinates) (attendance.AttendanceDay, error)
	PunchOut(ctx context.Context, coords *attendance.Coordinates) (attendance.AttendanceDay, error)
	PunchInByHR(ctx context.Context, employeeID string, manualTime *time.Time) (attendance.AttendanceDay, error)
	PunchOutByHR(ctx context.Context, employeeID string, manualTime *time.Time) (attendance.AttendanceDay, error)
}

// Capturer produces a location reading for self-punches.
type Capturer interface {
	Capture(ctx context.Context) (location.Reading, error)
}

// PendingAction is a confirmation preview. Requesting or cancelling one never
// transitions the state machine; only a successful submit does.
type PendingAction struct {
	Action      Action                    `json:"action"`
	Subject     string                    `json:"subject"`
	RequestedAt time.Time                 `json:"requested_at"`
	CurrentDay  *attendance.AttendanceDay `json:"current_day,omitempty"`
}

// BackendError carries the backend's rejection message verbatim.
type BackendError struct {
	Action  Action
	Message string
}

func (e *BackendError) Error() string {
	return e.Message
}

type subjectState struct {
	day      *attendance.AttendanceDay
	inFlight Action
	pending  *PendingAction
}

// Workflow sequences punch-in/punch-out per subject per day. It caches only
// the backend-returned record for the day; status and hours on it are
// authoritative and replaced wholesale on every successful submit.
type Workflow struct {
	api       Submitter
	locations Capturer
	now       func() time.Time

	mu       sync.Mutex
	subjects map[string]*subjectState
}

func NewWorkflow(api Submitter, locations Capturer) *Workflow {
	return &Workflow{
		api:       api,
		locations: locations,
		now:       time.Now,
		subjects:  make(map[string]*subjectState),
	}
}

func (w *Workflow) key(subject string) string {
	return subject + "|" + w.now().Format("2006-01-02")
}

func (w *Workflow) subjectState(subject string) *subjectState {
	key := w.key(subject)
	st, ok := w.subjects[key]
	if !ok {
		w.pruneLocked()
		st = &subjectState{}
		w.subjects[key] = st
	}
	return st
}

// pruneLocked drops entries left over from previous days, keeping the map
// bounded by the number of subjects seen today. Entries with a submission
// still in flight are spared; they are reaped on a later prune.
func (w *Workflow) pruneLocked() {
	today := "|" + w.now().Format("2006-01-02")
	for key, st := range w.subjects {
		if st.inFlight == "" && !strings.HasSuffix(key, today) {
			delete(w.subjects, key)
		}
	}
}

func stateOf(day *attendance.AttendanceDay) State {
	switch {
	case day == nil || day.PunchIn == nil:
		return StateNoPunch
	case day.PunchOut == nil:
		return StatePunchedIn
	default:
		return StatePunchedOut
	}
}

// State reports the subject's punch state for today, for enabling UI actions.
func (w *Workflow) State(subject string) State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return stateOf(w.subjectState(subject).day)
}

// Day returns the cached backend record for the subject's today, if any.
func (w *Workflow) Day(subject string) *attendance.AttendanceDay {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.subjectState(subject).day
}

// Seed installs a record fetched out of band (the today endpoints) so the
// state machine starts from what the backend already has.
func (w *Workflow) Seed(subject string, day *attendance.AttendanceDay) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subjectState(subject).day = day
}

// validateTransition rejects anything but NoPunch--in-->PunchedIn and
// PunchedIn--out-->PunchedOut, before any network call happens.
func validateTransition(state State, action Action) error {
	switch action {
	case ActionIn:
		if state != StateNoPunch {
			return attendance.ErrAlreadyPunched
		}
	case ActionOut:
		switch state {
		case StateNoPunch:
			return attendance.ErrNotYetPunchedIn
		case StatePunchedOut:
			return attendance.ErrAlreadyPunchedOut
		}
	default:
		return fmt.Errorf("unknown punch action %q", action)
	}
	return nil
}

// RequestConfirmation stages a confirmation preview for the action. It fails
// fast when the action would be invalid, so the UI never shows a dead dialog.
func (w *Workflow) RequestConfirmation(subject string, action Action) (PendingAction, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	st := w.subjectState(subject)
	if err := validateTransition(stateOf(st.day), action); err != nil {
		return PendingAction{}, err
	}

	pending := PendingAction{
		Action:      action,
		Subject:     subject,
		RequestedAt: w.now(),
		CurrentDay:  st.day,
	}
	st.pending = &pending
	return pending, nil
}

// CancelConfirmation drops the staged preview. No transition occurs.
func (w *Workflow) CancelConfirmation(subject string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subjectState(subject).pending = nil
}

// SubmitPunch validates, captures location when acting as self, submits, and
// replaces the cached day with the backend's record. On any failure the state
// machine stays where it was, so the same slot can be retried.
func (w *Workflow) SubmitPunch(ctx context.Context, action Action, subject string, actingAs ActingAs, manualTime *time.Time) (attendance.AttendanceDay, error) {
	w.mu.Lock()
	st := w.subjectState(subject)

	if inFlight := st.inFlight; inFlight != "" {
		w.mu.Unlock()
		// A duplicate of the submission already running resolves the same way
		// the settled state would.
		if inFlight == action && action == ActionIn {
			return attendance.AttendanceDay{}, attendance.ErrAlreadyPunched
		}
		if inFlight == action && action == ActionOut {
			return attendance.AttendanceDay{}, attendance.ErrAlreadyPunchedOut
		}
		return attendance.AttendanceDay{}, attendance.ErrPunchInFlight
	}

	if err := validateTransition(stateOf(st.day), action); err != nil {
		w.mu.Unlock()
		return attendance.AttendanceDay{}, err
	}

	st.inFlight = action
	w.mu.Unlock()

	day, err := w.submit(ctx, action, subject, actingAs, manualTime)

	w.mu.Lock()
	defer w.mu.Unlock()
	st.inFlight = ""
	if err != nil {
		return attendance.AttendanceDay{}, err
	}

	st.day = &day
	st.pending = nil // dismiss any confirmation UI
	return day, nil
}

func (w *Workflow) submit(ctx context.Context, action Action, subject string, actingAs ActingAs, manualTime *time.Time) (attendance.AttendanceDay, error) {
	if actingAs == AsManagerOnBehalf {
		if action == ActionIn {
			return w.wrapBackend(action)(w.api.PunchInByHR(ctx, subject, manualTime))
		}
		return w.wrapBackend(action)(w.api.PunchOutByHR(ctx, subject, manualTime))
	}

	// Self-punch: capture must succeed before anything is submitted.
	if w.locations == nil {
		return attendance.AttendanceDay{}, attendance.ErrLocationRequired
	}
	reading, err := w.locations.Capture(ctx)
	if err != nil {
		return attendance.AttendanceDay{}, err
	}

	coords := &attendance.Coordinates{
		Latitude:  reading.Latitude,
		Longitude: reading.Longitude,
	}
	if action == ActionIn {
		return w.wrapBackend(action)(w.api.PunchIn(ctx, coords))
	}
	return w.wrapBackend(action)(w.api.PunchOut(ctx, coords))
}

// wrapBackend converts upstream rejections into punch errors that keep the
// backend's message verbatim, with a generic per-action fallback.
func (w *Workflow) wrapBackend(action Action) func(attendance.AttendanceDay, error) (attendance.AttendanceDay, error) {
	return func(day attendance.AttendanceDay, err error) (attendance.AttendanceDay, error) {
		if err == nil {
			return day, nil
		}
		var apiErr *hrapi.APIError
		if errors.As(err, &apiErr) {
			message := apiErr.Message
			if message == "" {
				message = genericMessage(action)
			}
			return attendance.AttendanceDay{}, &BackendError{Action: action, Message: message}
		}
		return attendance.AttendanceDay{}, &BackendError{Action: action, Message: genericMessage(action)}
	}
}

func genericMessage(action Action) string {
	if action == ActionIn {
		return "Failed to punch in. Please try again."
	}
	return "Failed to punch out. Please try again."
}
