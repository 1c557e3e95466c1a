package load_catalog

import (
	"context"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/infra/cache/catalog"
)

// CatalogSource provides the business profile and its service list.
type CatalogSource interface {
	BusinessBySlug(ctx context.Context, slug string) (*domain.Business, error)
	ServicesByBusiness(ctx context.Context, businessID string) ([]domain.Service, error)
}

// Cache is the optional catalog cache in front of the source.
type Cache interface {
	Get(ctx context.Context, slug string) (*catalog.Payload, error)
	Set(ctx context.Context, slug string, payload *catalog.Payload) error
}

// Logger is the logging contract required by the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
