package domain

import "errors"

var (
	// ErrNotFound is returned when a creative or campaign required by an
	// operation does not exist. It is the only error the engine lets escape
	// to the trigger layer.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned when an approval decision arrives for
	// a partner row that is not synced.
	ErrInvalidTransition = errors.New("invalid sync status transition")
)
