package entity

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrBadRequest       = errors.New("bad request")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotReady         = errors.New("service not ready")
	ErrMissingReference = errors.New("missing reference row")
)

var (
	ErrUnknownChannel      = errors.New("unknown notification channel")
	ErrUnknownNotification = errors.New("unknown notification kind")
)
