package task

import "errors"

// Task domain errors
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTransition = errors.New("task cannot move to the requested status")
	ErrReviewNotAllowed  = errors.New("only completed tasks can be reviewed")
)
