package select_service

import "github.com/lavaderolesan/LSN-BookingFlow/internal/service/bookingflow"

type SessionStore interface {
	Get(id string) (*bookingflow.Flow, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
