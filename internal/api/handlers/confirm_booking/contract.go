package confirm_booking

import (
	"context"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/service/bookingflow"
	confirmBooking "github.com/lavaderolesan/LSN-BookingFlow/internal/usecase/confirm_booking"
)

type ConfirmBookingUseCase interface {
	Execute(ctx context.Context, req confirmBooking.Request) (*confirmBooking.Response, error)
}

type SessionStore interface {
	Get(id string) (*bookingflow.Flow, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
