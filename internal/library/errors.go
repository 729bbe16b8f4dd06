package library

import "errors"

var (
	// ErrNotFound is returned when a title (or its link set) is not saved.
	ErrNotFound = errors.New("title not found")

	// ErrDuplicate is returned when a title or link slot is already taken.
	ErrDuplicate = errors.New("title or link already saved")

	// ErrConstraint is returned when a row breaks a schema check, such as an
	// unknown title type or a link pointing at a missing title.
	ErrConstraint = errors.New("constraint violation")

	// ErrPositionMismatch is returned when a link position does not fit the
	// title: option slots on a series, episode slots on a movie, or numbers
	// below 1.
	ErrPositionMismatch = errors.New("link position does not match title type")
)
