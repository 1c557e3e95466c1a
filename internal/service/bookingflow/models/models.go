package models

import (
	"time"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/service/bookingflow"
)

// SessionView is the JSON projection of a booking session returned by every
// session endpoint.
type SessionView struct {
	Business             *BusinessView    `json:"business,omitempty"`
	MainServices         []ServiceView    `json:"mainServices"`
	AdditionalServices   []ServiceView    `json:"additionalServices"`
	SelectedDate         string           `json:"selectedDate"`
	AvailableSlots       []SlotView       `json:"availableSlots"`
	CurrentStep          string           `json:"currentStep"`
	SelectedSlot         *SlotView        `json:"selectedSlot,omitempty"`
	SelectedService      *ServiceView     `json:"selectedService,omitempty"`
	SelectedExtras       []ServiceView    `json:"selectedExtras"`
	Customer             *CustomerView    `json:"customer,omitempty"`
	Notes                string           `json:"notes,omitempty"`
	TotalPrice           float64          `json:"totalPrice"`
	TotalDurationMinutes int              `json:"totalDurationMinutes"`
	Appointment          *AppointmentView `json:"appointment,omitempty"`
	IsLoading            bool             `json:"isLoading"`
	Error                string           `json:"error,omitempty"`
}

// BusinessView is the JSON projection of the business profile.
type BusinessView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address,omitempty"`
	Timezone string `json:"timezone"`
}

// ServiceView is the JSON projection of a catalog service.
type ServiceView struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	Category        string  `json:"category"`
}

// SlotView is the JSON projection of a time slot.
type SlotView struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Available    bool      `json:"available"`
	ProviderID   string    `json:"providerId"`
	ProviderName string    `json:"providerName,omitempty"`
}

// CustomerView is the JSON projection of the captured contact data.
type CustomerView struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// AppointmentView is the JSON projection of the confirmed appointment.
type AppointmentView struct {
	ID     string    `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
}

// FromState projects a session state snapshot into its JSON view. The
// classifier provides display categories for the service lists.
func FromState(state bookingflow.State, classifier *domain.Classifier) SessionView {
	view := SessionView{
		MainServices:         serviceViews(state.MainServices, classifier),
		AdditionalServices:   serviceViews(state.AdditionalServices, classifier),
		SelectedDate:         state.SelectedDate.Format(domain.DateFormat),
		AvailableSlots:       slotViews(state.AvailableSlots),
		CurrentStep:          string(state.CurrentStep),
		SelectedExtras:       serviceViews(state.SelectedExtras, classifier),
		Notes:                state.Notes,
		TotalPrice:           state.TotalPrice(),
		TotalDurationMinutes: state.TotalDuration(),
		IsLoading:            state.IsLoading,
		Error:                state.Error,
	}

	if state.Business != nil {
		view.Business = &BusinessView{
			ID:       state.Business.ID,
			Name:     state.Business.Name,
			Slug:     state.Business.Slug,
			Phone:    state.Business.Phone,
			Email:    state.Business.Email,
			Address:  state.Business.Address,
			Timezone: state.Business.Timezone,
		}
	}
	if state.SelectedSlot != nil {
		slot := slotView(*state.SelectedSlot)
		view.SelectedSlot = &slot
	}
	if state.SelectedService != nil {
		svc := serviceView(*state.SelectedService, classifier)
		view.SelectedService = &svc
	}
	if state.CustomerInfo != nil {
		view.Customer = &CustomerView{
			Name:  state.CustomerInfo.Name,
			Email: state.CustomerInfo.Email,
			Phone: state.CustomerInfo.Phone,
		}
	}
	if state.ConfirmedAppointment != nil {
		view.Appointment = &AppointmentView{
			ID:     state.ConfirmedAppointment.ID,
			Start:  state.ConfirmedAppointment.Start,
			End:    state.ConfirmedAppointment.End,
			Status: string(state.ConfirmedAppointment.Status),
		}
	}

	return view
}

func serviceViews(services []domain.Service, classifier *domain.Classifier) []ServiceView {
	out := make([]ServiceView, 0, len(services))
	for _, s := range services {
		out = append(out, serviceView(s, classifier))
	}
	return out
}

func serviceView(s domain.Service, classifier *domain.Classifier) ServiceView {
	return ServiceView{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Currency:        s.Currency,
		Category:        classifier.CategoryOf(s),
	}
}

func slotViews(slots []domain.TimeSlot) []SlotView {
	out := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		out = append(out, slotView(s))
	}
	return out
}

func slotView(s domain.TimeSlot) SlotView {
	return SlotView{
		Start:        s.Start,
		End:          s.End,
		Available:    s.Available,
		ProviderID:   s.ProviderID,
		ProviderName: s.ProviderName,
	}
}
