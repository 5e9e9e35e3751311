package domain

import "errors"

var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid call status transition")
	ErrMessageDeleted    = errors.New("message has been deleted")
	ErrCallBusy          = errors.New("user is already in a call")
	ErrConnectionGone    = errors.New("connection is gone")
)
