package load_catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/infra/cache/catalog"
	"github.com/lavaderolesan/LSN-BookingFlow/internal/integrations/schedcore"
)

// Usecase loads the business profile and service catalog for a session,
// preferring the cache over the source. A nil cache disables caching.
type Usecase struct {
	source CatalogSource
	cache  Cache
	log    Logger
}

func NewUsecase(source CatalogSource, cache Cache, log Logger) *Usecase {
	return &Usecase{
		source: source,
		cache:  cache,
		log:    log,
	}
}

func (u *Usecase) Execute(ctx context.Context, req Request) (*Response, error) {
	if payload := u.fromCache(ctx, req.Slug); payload != nil {
		return &Response{Business: payload.Business, Services: payload.Services}, nil
	}

	business, err := u.source.BusinessBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, schedcore.ErrBusinessNotFound) {
			return nil, fmt.Errorf("%w: slug %q", ErrBusinessNotFound, req.Slug)
		}
		return nil, fmt.Errorf("%w: business: %v", ErrLoadFailed, err)
	}

	services, err := u.source.ServicesByBusiness(ctx, business.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: services: %v", ErrLoadFailed, err)
	}

	services = bookableSorted(services)

	u.toCache(ctx, req.Slug, &catalog.Payload{Business: business, Services: services})

	u.log.Info("Loaded catalog for %q: %d services", req.Slug, len(services))
	return &Response{Business: business, Services: services}, nil
}

func (u *Usecase) fromCache(ctx context.Context, slug string) *catalog.Payload {
	if u.cache == nil {
		return nil
	}

	payload, err := u.cache.Get(ctx, slug)
	if err != nil {
		if !errors.Is(err, catalog.ErrCacheMiss) {
			u.log.Warn("Catalog cache read failed for %q: %v", slug, err)
		}
		return nil
	}

	return payload
}

// toCache writes through best-effort: a cache failure never fails the load.
func (u *Usecase) toCache(ctx context.Context, slug string, payload *catalog.Payload) {
	if u.cache == nil {
		return
	}

	if err := u.cache.Set(ctx, slug, payload); err != nil {
		u.log.Warn("Catalog cache write failed for %q: %v", slug, err)
	}
}

// bookableSorted keeps only currently bookable services, ordered by the
// business's display order and then by name.
func bookableSorted(services []domain.Service) []domain.Service {
	out := make([]domain.Service, 0, len(services))
	for i := range services {
		if services[i].IsBookable() {
			out = append(out, services[i])
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})

	return out
}
