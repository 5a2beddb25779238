package user

import "errors"

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrForbidden    = errors.New("you do not have permission to perform this action")
)
