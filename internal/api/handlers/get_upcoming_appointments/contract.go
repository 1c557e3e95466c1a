package get_upcoming_appointments

import (
	"context"
	"time"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
)

type AppointmentRepository interface {
	GetUpcoming(ctx context.Context, businessID string, from, to time.Time) ([]domain.AppointmentRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
