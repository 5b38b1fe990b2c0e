package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrForbidden          = errors.New("not allowed for this role")

	ErrSoldOut           = errors.New("no ticket tier available")
	ErrEventFull         = errors.New("event is full")
	ErrEventClosed       = errors.New("event registrations are closed")
	ErrRegistrationGone  = errors.New("registration is cancelled")
	ErrStorageDisabled   = errors.New("file storage is not configured")
	ErrUnsupportedUpload = errors.New("unsupported file")
)
