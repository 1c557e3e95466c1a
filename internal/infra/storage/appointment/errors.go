package appointment

import "errors"

var (
	// ErrBuildQuery is returned when the SQL query cannot be built.
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails.
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("appointment.repository: failed to scan row")

	// ErrRecordNotFound is returned when the appointment record is unknown.
	ErrRecordNotFound = errors.New("appointment.repository: record not found")
)
