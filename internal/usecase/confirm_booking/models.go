package confirm_booking

import "github.com/lavaderolesan/LSN-BookingFlow/internal/domain"

// Request is the full selection of a session ready to confirm.
type Request struct {
	Business *domain.Business
	Slot     *domain.TimeSlot
	Service  *domain.Service
	Extras   []domain.Service
	Customer *domain.CustomerInput
	Notes    string

	TotalPrice           float64
	TotalDurationMinutes int
}

// Response carries the confirmed appointment and the customer record used
// for it (found or freshly created).
type Response struct {
	Appointment *domain.Appointment
	Customer    *domain.Customer
}
