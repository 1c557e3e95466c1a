package bookingflow

import (
	"sync"
	"time"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
)

// Flow is the state machine of one booking session. Every mutation goes
// through its mutex, which is what makes the stale-slot discard and step
// gating atomic under concurrent requests on the same session.
type Flow struct {
	mu         sync.Mutex
	state      State
	classifier *domain.Classifier
	log        Logger
}

// New creates a flow positioned at the calendar step with today selected.
func New(classifier *domain.Classifier, log Logger, now time.Time) *Flow {
	if classifier == nil {
		classifier = domain.DefaultClassifier()
	}

	return &Flow{
		state: State{
			CurrentStep:  domain.StepCalendar,
			SelectedDate: dateOnly(now),
		},
		classifier: classifier,
		log:        log,
	}
}

// SetCatalog loads the business and its service list into the session,
// partitioning services into main offerings and add-ons.
func (f *Flow) SetCatalog(business *domain.Business, services []domain.Service) {
	f.mu.Lock()
	defer f.mu.Unlock()

	main, addOns := f.classifier.Split(services)

	f.state.Business = business
	f.state.Services = services
	f.state.MainServices = main
	f.state.AdditionalServices = addOns
}

// SelectDate changes the selected date (day granularity). The current slot
// list and slot selection are dropped and the session is marked loading until
// fresh availability is applied.
func (f *Flow) SelectDate(date time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.SelectedDate = dateOnly(date)
	f.state.AvailableSlots = nil
	f.state.SelectedSlot = nil
	f.state.IsLoading = true
	f.state.Error = ""
}

// ApplySlots installs an availability result. A result computed for a date
// that is no longer the selected one is discarded with ErrStaleSlots: the
// last date selection wins, regardless of response arrival order.
func (f *Flow) ApplySlots(date time.Time, slots []domain.TimeSlot) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !sameDay(date, f.state.SelectedDate) {
		f.log.Warn("Discarding stale slots for %s, selected date is %s",
			date.Format(domain.DateFormat), f.state.SelectedDate.Format(domain.DateFormat))
		return ErrStaleSlots
	}

	f.state.AvailableSlots = slots
	f.state.IsLoading = false
	f.state.Error = ""
	return nil
}

// FailSlots records an availability fetch failure, unless the session has
// already moved on to another date.
func (f *Flow) FailSlots(date time.Time, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !sameDay(date, f.state.SelectedDate) {
		return
	}

	f.state.AvailableSlots = nil
	f.state.IsLoading = false
	f.state.Error = msg
}

// SelectSlot picks one of the currently offered slots by start instant and
// provider. An empty provider matches any provider at that start.
func (f *Flow) SelectSlot(start time.Time, providerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.state.AvailableSlots {
		slot := f.state.AvailableSlots[i]
		if !slot.Start.Equal(start) {
			continue
		}
		if providerID != "" && slot.ProviderID != providerID {
			continue
		}
		if !slot.Available {
			return ErrSlotUnavailable
		}
		f.state.SelectedSlot = &slot
		return nil
	}

	return ErrSlotNotFound
}

// SelectService picks the main service. Already selected add-ons are kept:
// they are independent of the main offering.
func (f *Flow) SelectService(serviceID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Services == nil {
		return ErrCatalogNotLoaded
	}

	for i := range f.state.MainServices {
		if f.state.MainServices[i].ID == serviceID {
			svc := f.state.MainServices[i]
			f.state.SelectedService = &svc
			return nil
		}
	}

	return ErrServiceNotFound
}

// ToggleExtra adds or removes an add-on. Requires a selected main service;
// toggling twice restores the previous selection.
func (f *Flow) ToggleExtra(serviceID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Services == nil {
		return ErrCatalogNotLoaded
	}
	if f.state.SelectedService == nil {
		return ErrNoMainService
	}

	for i, extra := range f.state.SelectedExtras {
		if extra.ID == serviceID {
			f.state.SelectedExtras = append(f.state.SelectedExtras[:i], f.state.SelectedExtras[i+1:]...)
			return nil
		}
	}

	for i := range f.state.AdditionalServices {
		if f.state.AdditionalServices[i].ID == serviceID {
			f.state.SelectedExtras = append(f.state.SelectedExtras, f.state.AdditionalServices[i])
			return nil
		}
	}

	return ErrExtraNotFound
}

// SetCustomerInfo stores the contact data. Validation happens before this
// call; the flow stores what it is given.
func (f *Flow) SetCustomerInfo(info domain.CustomerInput) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.CustomerInfo = &info
}

// SetNotes stores the free-text customer notes.
func (f *Flow) SetNotes(notes string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.Notes = notes
}

// GoToStep moves the session to another pipeline step.
//
// Backward movement is always allowed except out of the terminal success
// step. Forward movement is allowed only to the immediate next step, only
// when the current step's data is present, and never into success: success
// is reachable solely through CompleteBooking.
func (f *Flow) GoToStep(target domain.BookingStep) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.goToStepLocked(target)
}

// Back moves one step backwards.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx := f.state.CurrentStep.Index()
	if idx <= 0 {
		return ErrInvalidTransition
	}
	return f.goToStepLocked(domain.StepOrder[idx-1])
}

func (f *Flow) goToStepLocked(target domain.BookingStep) error {
	if !target.Valid() {
		return ErrUnknownStep
	}
	if f.state.CurrentStep == domain.StepSuccess {
		return ErrSessionComplete
	}

	current := f.state.CurrentStep
	if target == current {
		return nil
	}

	if target.Before(current) {
		f.state.CurrentStep = target
		f.state.Error = ""
		return nil
	}

	if target.Index() != current.Index()+1 || target == domain.StepSuccess {
		return ErrInvalidTransition
	}
	if err := f.advanceRequirementLocked(current); err != nil {
		return err
	}

	f.state.CurrentStep = target
	f.state.Error = ""
	return nil
}

// advanceRequirementLocked checks that the data a step must produce is
// present before the session may leave it forwards.
func (f *Flow) advanceRequirementLocked(current domain.BookingStep) error {
	switch current {
	case domain.StepCalendar:
		if f.state.SelectedSlot == nil {
			return ErrInvalidTransition
		}
	case domain.StepService:
		if f.state.SelectedService == nil {
			return ErrInvalidTransition
		}
	case domain.StepCustomer:
		if f.state.CustomerInfo == nil {
			return ErrInvalidTransition
		}
	}
	return nil
}

// CompleteBooking records the confirmed appointment and moves the session to
// the terminal success step. Only valid on the confirmation step with the
// full selection present.
func (f *Flow) CompleteBooking(appointment *domain.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.CurrentStep != domain.StepConfirmation {
		return ErrInvalidTransition
	}
	if f.state.SelectedSlot == nil || f.state.SelectedService == nil || f.state.CustomerInfo == nil {
		return ErrMissingBookingData
	}

	f.state.ConfirmedAppointment = appointment
	f.state.CurrentStep = domain.StepSuccess
	f.state.IsLoading = false
	f.state.Error = ""
	return nil
}

// Reset returns the session to the calendar step for a new booking. The
// loaded catalog, selected date and its availability survive; every
// selection, the confirmed appointment and the error state are dropped.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.CurrentStep = domain.StepCalendar
	f.state.SelectedSlot = nil
	f.state.SelectedService = nil
	f.state.SelectedExtras = nil
	f.state.CustomerInfo = nil
	f.state.Notes = ""
	f.state.ConfirmedAppointment = nil
	f.state.IsLoading = false
	f.state.Error = ""
}

// SetError records a session-level error message.
func (f *Flow) SetError(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.Error = msg
	f.state.IsLoading = false
}

// SetLoading flips the loading flag.
func (f *Flow) SetLoading(loading bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.IsLoading = loading
}

// TotalPrice returns the price of the current selection.
func (f *Flow) TotalPrice() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state.TotalPrice()
}

// TotalDuration returns the duration of the current selection in minutes.
func (f *Flow) TotalDuration() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state.TotalDuration()
}

// Snapshot returns a copy of the session state safe to read without the lock.
func (f *Flow) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state.clone()
}

// dateOnly truncates an instant to its calendar day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sameDay compares two instants at day granularity, each in its own zone.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
