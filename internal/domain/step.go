package domain

import "fmt"

// BookingStep identifies one stage of the booking pipeline.
// The pipeline is strictly linear: no branches, no skipping forward.
type BookingStep string

const (
	StepCalendar     BookingStep = "calendar"
	StepService      BookingStep = "service"
	StepCustomer     BookingStep = "customer"
	StepConfirmation BookingStep = "confirmation"
	StepSuccess      BookingStep = "success"
)

// StepOrder lists the pipeline stages in order.
var StepOrder = []BookingStep{
	StepCalendar,
	StepService,
	StepCustomer,
	StepConfirmation,
	StepSuccess,
}

// Index returns the position of the step in the pipeline, or -1 if unknown.
func (s BookingStep) Index() int {
	for i, step := range StepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

// Valid reports whether the step is one of the pipeline stages.
func (s BookingStep) Valid() bool {
	return s.Index() >= 0
}

// Before reports whether s comes earlier in the pipeline than other.
// Unknown steps compare as not-before.
func (s BookingStep) Before(other BookingStep) bool {
	a, b := s.Index(), other.Index()
	return a >= 0 && b >= 0 && a < b
}

// ParseBookingStep validates a raw step name.
func ParseBookingStep(raw string) (BookingStep, error) {
	step := BookingStep(raw)
	if !step.Valid() {
		return "", fmt.Errorf("unknown booking step %q", raw)
	}
	return step, nil
}
