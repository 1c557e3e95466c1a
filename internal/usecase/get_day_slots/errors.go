package get_day_slots

import "errors"

var (
	// ErrNoBusiness is returned when the session has no catalog loaded.
	ErrNoBusiness = errors.New("get day slots: no business loaded")

	// ErrFetchFailed is returned when the slot source fails.
	ErrFetchFailed = errors.New("get day slots: fetch failed")
)
