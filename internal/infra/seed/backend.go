package seed

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/integrations/schedcore"
)

// Backend is an in-memory scheduling backend for running without a remote
// one: customers keyed by email, appointments fabricated on the spot.
type Backend struct {
	mu           sync.Mutex
	catalog      *Catalog
	customers    map[string]domain.Customer
	appointments []domain.Appointment
}

// NewBackend creates an empty in-memory backend over the seeded catalog.
func NewBackend(catalog *Catalog) *Backend {
	return &Backend{
		catalog:   catalog,
		customers: make(map[string]domain.Customer),
	}
}

// SearchCustomers finds customers by exact email, case-insensitive.
func (b *Backend) SearchCustomers(_ context.Context, businessID, email string) ([]domain.Customer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	customer, ok := b.customers[customerKey(businessID, email)]
	if !ok {
		return []domain.Customer{}, nil
	}
	return []domain.Customer{customer}, nil
}

// CreateCustomer stores a customer record, replacing any previous one with
// the same email.
func (b *Backend) CreateCustomer(_ context.Context, req schedcore.CustomerCreateRequest) (*domain.Customer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	customer := domain.Customer{
		ID:         uuid.NewString(),
		BusinessID: req.BusinessID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	b.customers[customerKey(req.BusinessID, req.Email)] = customer

	return &customer, nil
}

// CreateAppointment fabricates a confirmed appointment. The end instant
// comes from the booked service's duration.
func (b *Backend) CreateAppointment(_ context.Context, req schedcore.AppointmentCreateRequest, loc *time.Location) (*domain.Appointment, error) {
	start, err := time.ParseInLocation("2006-01-02T15:04:05", req.StartTime, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time: %v", schedcore.ErrRejected, err)
	}

	duration, err := b.serviceDuration(req.ServiceID)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	appointment := domain.Appointment{
		ID:            uuid.NewString(),
		BusinessID:    req.BusinessID,
		CustomerID:    req.CustomerID,
		ServiceID:     req.ServiceID,
		ProviderID:    req.ProviderID,
		Start:         start,
		End:           start.Add(time.Duration(duration) * time.Minute),
		Status:        domain.StatusConfirmed,
		CustomerNotes: req.CustomerNotes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	b.appointments = append(b.appointments, appointment)

	return &appointment, nil
}

func (b *Backend) serviceDuration(serviceID string) (int, error) {
	for _, svc := range b.catalog.services {
		if svc.ID == serviceID {
			return svc.DurationMinutes, nil
		}
	}
	return 0, fmt.Errorf("%w: service %q", schedcore.ErrServiceNotFound, serviceID)
}

func customerKey(businessID, email string) string {
	return businessID + "|" + strings.ToLower(email)
}
