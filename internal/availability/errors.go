package availability

import "errors"

var (
	// ErrInvalidDuration is returned when the service duration is not positive.
	ErrInvalidDuration = errors.New("availability: service duration must be positive")

	// ErrInvalidHours is returned when the business hours are malformed.
	ErrInvalidHours = errors.New("availability: invalid business hours")
)
