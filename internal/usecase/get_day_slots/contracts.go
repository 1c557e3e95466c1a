package get_day_slots

import (
	"context"
	"time"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
)

// SlotSource provides the availability of one date. Implemented by the local
// availability engine and by the scheduling backend client.
type SlotSource interface {
	DaySlots(ctx context.Context, business *domain.Business, serviceID string, durationMinutes int, date time.Time) ([]domain.TimeSlot, error)
}

// Logger is the logging contract required by the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
