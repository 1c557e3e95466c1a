package confirm_booking

import "errors"

var (
	// ErrMissingData is returned when the request lacks a slot, service or
	// customer contact.
	ErrMissingData = errors.New("confirm booking: missing booking data")

	// ErrBookingFailed is returned when the scheduling backend refuses or
	// fails the customer or appointment creation.
	ErrBookingFailed = errors.New("confirm booking: booking failed")
)
