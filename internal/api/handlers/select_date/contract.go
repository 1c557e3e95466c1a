package select_date

import (
	"context"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/service/bookingflow"
	getDaySlots "github.com/lavaderolesan/LSN-BookingFlow/internal/usecase/get_day_slots"
)

type GetDaySlotsUseCase interface {
	Execute(ctx context.Context, req getDaySlots.Request) (*getDaySlots.Response, error)
}

type SessionStore interface {
	Get(id string) (*bookingflow.Flow, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
