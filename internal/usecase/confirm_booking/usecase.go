package confirm_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/integrations/schedcore"
)

const backendTimeFormat = "2006-01-02T15:04:05"

// Usecase turns a completed selection into a confirmed appointment: resolve
// the customer (find by email or create), create the appointment, then keep
// a local record.
//
// The two backend writes are not transactional. A customer created for a
// booking that then fails stays behind on purpose: the next attempt with the
// same email finds and reuses it.
type Usecase struct {
	scheduler SchedulerClient
	recorder  Recorder
	log       Logger
}

func NewUsecase(scheduler SchedulerClient, recorder Recorder, log Logger) *Usecase {
	return &Usecase{
		scheduler: scheduler,
		recorder:  recorder,
		log:       log,
	}
}

func (u *Usecase) Execute(ctx context.Context, req Request) (*Response, error) {
	if req.Business == nil || req.Slot == nil || req.Service == nil || req.Customer == nil {
		return nil, ErrMissingData
	}

	customer, err := u.resolveCustomer(ctx, req)
	if err != nil {
		return nil, err
	}

	appointment, err := u.createAppointment(ctx, req, customer)
	if err != nil {
		return nil, err
	}

	u.record(ctx, req, customer, appointment)

	u.log.Info("Confirmed appointment %s for customer %s", appointment.ID, customer.ID)
	return &Response{Appointment: appointment, Customer: customer}, nil
}

// resolveCustomer finds an existing customer by email, creating one when the
// search comes up empty. A failed search is treated as a miss: creation is
// still attempted.
func (u *Usecase) resolveCustomer(ctx context.Context, req Request) (*domain.Customer, error) {
	found, err := u.scheduler.SearchCustomers(ctx, req.Business.ID, req.Customer.Email)
	if err != nil {
		u.log.Warn("Customer search failed for %s: %v", req.Customer.Email, err)
	}
	if len(found) > 0 {
		return &found[0], nil
	}

	firstName, lastName := domain.SplitFullName(req.Customer.Name)
	customer, err := u.scheduler.CreateCustomer(ctx, schedcore.CustomerCreateRequest{
		BusinessID: req.Business.ID,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      req.Customer.Email,
		Phone:      req.Customer.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create customer: %v", ErrBookingFailed, err)
	}

	return customer, nil
}

func (u *Usecase) createAppointment(ctx context.Context, req Request, customer *domain.Customer) (*domain.Appointment, error) {
	loc := req.Business.Location()

	var notes *string
	if combined := combineNotes(req.Notes, req.Extras); combined != "" {
		notes = &combined
	}

	appointment, err := u.scheduler.CreateAppointment(ctx, schedcore.AppointmentCreateRequest{
		BusinessID:    req.Business.ID,
		ServiceID:     req.Service.ID,
		ProviderID:    req.Slot.ProviderID,
		CustomerID:    customer.ID,
		StartTime:     req.Slot.Start.In(loc).Format(backendTimeFormat),
		CustomerNotes: notes,
	}, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: create appointment: %v", ErrBookingFailed, err)
	}

	return appointment, nil
}

// record keeps the local denormalized copy, best effort.
func (u *Usecase) record(ctx context.Context, req Request, customer *domain.Customer, appointment *domain.Appointment) {
	if u.recorder == nil {
		return
	}

	extraNames := make([]string, 0, len(req.Extras))
	for _, extra := range req.Extras {
		extraNames = append(extraNames, extra.Name)
	}

	var notes *string
	if req.Notes != "" {
		n := req.Notes
		notes = &n
	}

	record := &domain.AppointmentRecord{
		ID:                   appointment.ID,
		BusinessID:           req.Business.ID,
		CustomerID:           customer.ID,
		ServiceID:            req.Service.ID,
		ProviderID:           req.Slot.ProviderID,
		Start:                appointment.Start,
		End:                  appointment.End,
		Status:               appointment.Status,
		ServiceName:          req.Service.Name,
		ServicePrice:         req.Service.Price,
		ExtraServiceNames:    extraNames,
		TotalPrice:           req.TotalPrice,
		TotalDurationMinutes: req.TotalDurationMinutes,
		CustomerName:         req.Customer.Name,
		CustomerEmail:        req.Customer.Email,
		Notes:                notes,
	}

	if err := u.recorder.Create(ctx, record); err != nil {
		u.log.Error("Failed to record appointment %s locally: %v", appointment.ID, err)
	}
}

// combineNotes appends the selected add-on names to the customer notes so
// the backend sees the full order even though it books one service.
func combineNotes(notes string, extras []domain.Service) string {
	if len(extras) == 0 {
		return notes
	}

	names := make([]string, 0, len(extras))
	for _, extra := range extras {
		names = append(names, extra.Name)
	}

	line := "Servicios adicionales: " + strings.Join(names, ", ")
	if notes == "" {
		return line
	}
	return notes + "\n" + line
}
