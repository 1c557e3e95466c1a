package load_catalog

import "errors"

var (
	// ErrBusinessNotFound is returned when the slug is unknown.
	ErrBusinessNotFound = errors.New("load catalog: business not found")

	// ErrLoadFailed is returned when the catalog cannot be fetched.
	ErrLoadFailed = errors.New("load catalog: load failed")
)
