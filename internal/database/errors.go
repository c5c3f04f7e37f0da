package database

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("item request not found")

	ErrDuplicateEmail = errors.New("email already in use")

	// ErrConcurrentModification is returned when a versioned update loses
	// the race against another writer.
	ErrConcurrentModification = errors.New("booking was modified concurrently")
)
