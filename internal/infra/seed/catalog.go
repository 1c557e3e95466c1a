// Package seed provides the built-in Lavadero Lesan catalog and an
// in-memory scheduling backend, used when no remote backend is configured.
package seed

import (
	"context"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/integrations/schedcore"
	"github.com/lavaderolesan/LSN-BookingFlow/pkg/ptr"
	"github.com/lavaderolesan/LSN-BookingFlow/pkg/types"
)

// Catalog serves the seeded business and price list.
type Catalog struct {
	business *domain.Business
	services []domain.Service
}

// NewCatalog creates the seeded catalog source.
func NewCatalog() *Catalog {
	return &Catalog{
		business: seedBusiness(),
		services: seedServices(),
	}
}

// BusinessBySlug returns the seeded business; any other slug is unknown.
func (c *Catalog) BusinessBySlug(_ context.Context, slug string) (*domain.Business, error) {
	if slug != c.business.Slug {
		return nil, schedcore.ErrBusinessNotFound
	}

	business := *c.business
	return &business, nil
}

// ServicesByBusiness returns the seeded price list.
func (c *Catalog) ServicesByBusiness(_ context.Context, businessID string) ([]domain.Service, error) {
	if businessID != c.business.ID {
		return nil, schedcore.ErrBusinessNotFound
	}

	return append([]domain.Service(nil), c.services...), nil
}

func seedBusiness() *domain.Business {
	weekday := domain.DayHours{
		Open:  types.TimeString("09:00"),
		Close: types.TimeString("20:00"),
		Breaks: []domain.BreakInterval{
			{Start: types.TimeString("14:00"), End: types.TimeString("16:30")},
		},
	}

	return &domain.Business{
		ID:          "b1",
		Name:        "Lavadero Lesan",
		Slug:        "lavadero-lesan",
		Description: "Lavadero de coches profesional con servicios de limpieza integral, pulido y tratamiento especializado.",
		Phone:       "+34 600 000 000",
		Email:       "info@lavaderolesan.com",
		Address:     "Córdoba, España",
		Timezone:    "Europe/Madrid",
		Active:      true,
		Hours: domain.BusinessHours{
			Monday:    weekday,
			Tuesday:   weekday,
			Wednesday: weekday,
			Thursday:  weekday,
			Friday:    weekday,
			Saturday:  domain.DayHours{Open: types.TimeString("09:00"), Close: types.TimeString("14:00")},
			Sunday:    domain.DayHours{Closed: true},
		},
		Settings: domain.BookingSettings{
			AdvanceBookingDays:      30,
			MinBookingNoticeHours:   1,
			MaxBookingsPerDay:       20,
			AllowCancellation:       true,
			CancellationHoursNotice: 12,
			RequirePayment:          false,
			AutoConfirm:             true,
			SlotDurationMinutes:     30,
		},
	}
}

// seedServices is the Lavadero Lesan price list: three wash tiers per
// vehicle class plus the add-on services.
func seedServices() []domain.Service {
	svc := func(id, name, description string, duration int, price float64, color string, sortOrder, bufferAfter int) domain.Service {
		return domain.Service{
			ID:                 id,
			BusinessID:         "b1",
			Name:               name,
			Description:        description,
			DurationMinutes:    duration,
			Price:              price,
			Currency:           "EUR",
			Color:              ptr.Ptr(color),
			Active:             true,
			SortOrder:          sortOrder,
			BufferAfterMinutes: bufferAfter,
		}
	}

	return []domain.Service{
		svc("s1", "Limpieza Básica - Turismo Pequeño",
			"Lavado exterior completo con secado a mano para turismos pequeños.", 30, 15, "#00A6A6", 1, 5),
		svc("s2", "Limpieza Completa - Turismo Pequeño",
			"Lavado exterior e interior completo, aspirado y limpieza de cristales.", 45, 22, "#00A6A6", 2, 5),
		svc("s3", "Limpieza Integral - Turismo Pequeño",
			"Tratamiento premium con lavado exterior, interior detallado, encerado y protección.", 60, 30, "#00A6A6", 3, 10),
		svc("s4", "Limpieza Básica - Turismo Grande",
			"Lavado exterior completo con secado a mano para turismos grandes.", 35, 18, "#008585", 4, 5),
		svc("s5", "Limpieza Completa - Turismo Grande",
			"Lavado exterior e interior completo, aspirado y limpieza de cristales.", 50, 25, "#008585", 5, 5),
		svc("s6", "Limpieza Integral - Turismo Grande",
			"Tratamiento premium con lavado exterior, interior detallado, encerado y protección.", 75, 35, "#008585", 6, 10),
		svc("s7", "Limpieza Básica - Todo Terreno/Monovolumen",
			"Lavado exterior completo con secado a mano para SUV y monovolúmenes.", 40, 20, "#006666", 7, 5),
		svc("s8", "Limpieza Completa - Todo Terreno/Monovolumen",
			"Lavado exterior e interior completo, aspirado completo de todas las plazas.", 60, 30, "#006666", 8, 5),
		svc("s9", "Limpieza Integral - Todo Terreno/Monovolumen",
			"Tratamiento premium completo con encerado y protección integral.", 90, 40, "#006666", 9, 10),
		svc("s10", "Limpieza de Tapicerías (por plaza)",
			"Limpieza profunda de tapicerías con productos especializados. Precio por plaza.", 30, 15, "#E63946", 10, 5),
		svc("s11", "Pulido de Faros",
			"Restauración y pulido de faros para mejorar la visibilidad.", 45, 25, "#E63946", 11, 5),
		svc("s12", "Suplemento Pelos de Animal / Suciedad Extrema",
			"Tratamiento adicional para vehículos con pelos de mascota o suciedad extrema.", 20, 10, "#E63946", 12, 0),
	}
}
