package draft

import "errors"

var (
	// ErrNoSelection indicates no title has been selected yet.
	ErrNoSelection = errors.New("no title selected")

	// ErrUnknownPosition indicates the position is not part of the current layout.
	ErrUnknownPosition = errors.New("position not in current layout")

	// ErrNotBlocked indicates Confirm or Cancel was called with no pending report.
	ErrNotBlocked = errors.New("no pending validation report")

	// ErrBusy indicates generation is already running.
	ErrBusy = errors.New("generation in progress")

	// ErrNotFound indicates the draft id is unknown or was reaped.
	ErrNotFound = errors.New("draft not found")
)
