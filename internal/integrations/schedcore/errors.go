package schedcore

import "errors"

var (
	// ErrBusinessNotFound is returned when the business slug or id is unknown.
	ErrBusinessNotFound = errors.New("schedcore client: business not found")

	// ErrServiceNotFound is returned when the requested service is unknown.
	ErrServiceNotFound = errors.New("schedcore client: service not found")

	// ErrRejected is returned when the backend refuses the request
	// (validation failure, occupied slot, malformed reference).
	ErrRejected = errors.New("schedcore client: request rejected")

	// ErrInvalidResponse is returned when the backend answers with an
	// unexpected status or an undecodable payload.
	ErrInvalidResponse = errors.New("schedcore client: invalid response")

	// ErrInternal is returned on transport-level failures.
	ErrInternal = errors.New("schedcore client: internal error")
)
