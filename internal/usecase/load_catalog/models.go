package load_catalog

import "github.com/lavaderolesan/LSN-BookingFlow/internal/domain"

// Request identifies the business whose catalog is needed.
type Request struct {
	Slug string
}

// Response carries the loaded catalog, bookable services only, sorted for
// display.
type Response struct {
	Business *domain.Business
	Services []domain.Service
}
