package confirm_booking

import (
	"context"
	"time"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/integrations/schedcore"
)

// SchedulerClient is the scheduling backend surface the confirmation needs.
type SchedulerClient interface {
	SearchCustomers(ctx context.Context, businessID, email string) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, req schedcore.CustomerCreateRequest) (*domain.Customer, error)
	CreateAppointment(ctx context.Context, req schedcore.AppointmentCreateRequest, loc *time.Location) (*domain.Appointment, error)
}

// Recorder keeps the business's own copy of confirmed appointments.
// Optional; recording failures never fail the booking.
type Recorder interface {
	Create(ctx context.Context, record *domain.AppointmentRecord) error
}

// Logger is the logging contract required by the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
