package bookingflow

import (
	"time"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
)

// State is one booking session's data: the loaded catalog, the pipeline
// position and every selection made so far. It is owned by a Flow and must
// only be read through Flow.Snapshot.
type State struct {
	Business *domain.Business

	Services           []domain.Service
	MainServices       []domain.Service
	AdditionalServices []domain.Service

	SelectedDate   time.Time
	AvailableSlots []domain.TimeSlot

	CurrentStep     domain.BookingStep
	SelectedSlot    *domain.TimeSlot
	SelectedService *domain.Service
	SelectedExtras  []domain.Service
	CustomerInfo    *domain.CustomerInput
	Notes           string

	ConfirmedAppointment *domain.Appointment

	IsLoading bool
	Error     string
}

// TotalPrice sums the main service price with every selected add-on.
// No selection prices at zero.
func (s *State) TotalPrice() float64 {
	total := 0.0
	if s.SelectedService != nil {
		total += s.SelectedService.Price
	}
	for _, extra := range s.SelectedExtras {
		total += extra.Price
	}
	return total
}

// TotalDuration sums the durations of the main service and every selected
// add-on, in minutes.
func (s *State) TotalDuration() int {
	total := 0
	if s.SelectedService != nil {
		total += s.SelectedService.DurationMinutes
	}
	for _, extra := range s.SelectedExtras {
		total += extra.DurationMinutes
	}
	return total
}

// clone copies the state with fresh slices so the caller can read it without
// holding the flow's lock.
func (s *State) clone() State {
	out := *s

	out.Services = append([]domain.Service(nil), s.Services...)
	out.MainServices = append([]domain.Service(nil), s.MainServices...)
	out.AdditionalServices = append([]domain.Service(nil), s.AdditionalServices...)
	out.AvailableSlots = append([]domain.TimeSlot(nil), s.AvailableSlots...)
	out.SelectedExtras = append([]domain.Service(nil), s.SelectedExtras...)

	if s.SelectedSlot != nil {
		slot := *s.SelectedSlot
		out.SelectedSlot = &slot
	}
	if s.SelectedService != nil {
		svc := *s.SelectedService
		out.SelectedService = &svc
	}
	if s.CustomerInfo != nil {
		info := *s.CustomerInfo
		out.CustomerInfo = &info
	}
	if s.ConfirmedAppointment != nil {
		appt := *s.ConfirmedAppointment
		out.ConfirmedAppointment = &appt
	}

	return out
}
