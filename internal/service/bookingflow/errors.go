package bookingflow

import "errors"

var (
	// ErrInvalidTransition is returned when a step change breaks the linear
	// pipeline (skipping forward, or advancing without the step's data).
	ErrInvalidTransition = errors.New("booking flow: invalid step transition")

	// ErrUnknownStep is returned for step names outside the pipeline.
	ErrUnknownStep = errors.New("booking flow: unknown step")

	// ErrStaleSlots is returned when an availability result arrives for a
	// date that is no longer the selected one.
	ErrStaleSlots = errors.New("booking flow: stale slot response")

	// ErrSlotUnavailable is returned when the chosen slot is already taken.
	ErrSlotUnavailable = errors.New("booking flow: slot unavailable")

	// ErrSlotNotFound is returned when the chosen slot is not among the
	// currently offered ones.
	ErrSlotNotFound = errors.New("booking flow: slot not found")

	// ErrServiceNotFound is returned when the chosen main service is not in
	// the loaded catalog.
	ErrServiceNotFound = errors.New("booking flow: service not found")

	// ErrExtraNotFound is returned when the toggled add-on is not in the
	// loaded catalog.
	ErrExtraNotFound = errors.New("booking flow: extra service not found")

	// ErrNoMainService is returned when an add-on is toggled before a main
	// service has been selected.
	ErrNoMainService = errors.New("booking flow: no main service selected")

	// ErrMissingBookingData is returned when confirmation is attempted
	// without a slot, service or customer contact.
	ErrMissingBookingData = errors.New("booking flow: missing booking data")

	// ErrSessionComplete is returned when a finished session is asked to
	// move again.
	ErrSessionComplete = errors.New("booking flow: session already complete")

	// ErrCatalogNotLoaded is returned when an operation needs the catalog
	// before it has been loaded into the session.
	ErrCatalogNotLoaded = errors.New("booking flow: catalog not loaded")
)
