package create_session

import (
	"context"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/service/bookingflow"
	getDaySlots "github.com/lavaderolesan/LSN-BookingFlow/internal/usecase/get_day_slots"
	loadCatalog "github.com/lavaderolesan/LSN-BookingFlow/internal/usecase/load_catalog"
)

type LoadCatalogUseCase interface {
	Execute(ctx context.Context, req loadCatalog.Request) (*loadCatalog.Response, error)
}

type GetDaySlotsUseCase interface {
	Execute(ctx context.Context, req getDaySlots.Request) (*getDaySlots.Response, error)
}

type SessionStore interface {
	Put(flow *bookingflow.Flow) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
