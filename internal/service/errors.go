package service

import "errors"

// Validation and transition errors produced by the services. Store-level
// absence errors live in the database package; together they form the
// whole error surface the API layer maps to status codes.
var (
	ErrInvalidPeriod      = errors.New("invalid booking period")
	ErrInvalidPagination  = errors.New("invalid pagination parameters")
	ErrUnknownState       = errors.New("unknown state")
	ErrItemUnavailable    = errors.New("item is not available for booking")
	ErrAlreadyApproved    = errors.New("booking is already approved")
	ErrNoCompletedBooking = errors.New("commenting requires a completed booking")
	ErrEmptyText          = errors.New("text must not be blank")
)
