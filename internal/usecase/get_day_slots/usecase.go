package get_day_slots

import (
	"context"
	"fmt"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
)

// Usecase fetches the availability of one date for the session's reference
// service.
type Usecase struct {
	source SlotSource
	log    Logger
}

func NewUsecase(source SlotSource, log Logger) *Usecase {
	return &Usecase{
		source: source,
		log:    log,
	}
}

// Execute resolves the reference service (the selected one, or the first
// main offering) and asks the source for that date's slots. A session with
// no services yet gets an empty day, not an error.
func (u *Usecase) Execute(ctx context.Context, req Request) (*Response, error) {
	if req.Business == nil {
		return nil, ErrNoBusiness
	}

	serviceID, duration := referenceService(req)
	if serviceID == "" {
		return &Response{Date: req.Date, Slots: []domain.TimeSlot{}}, nil
	}

	slots, err := u.source.DaySlots(ctx, req.Business, serviceID, duration, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	u.log.Info("Fetched %d slots for %s", len(slots), req.Date.Format(domain.DateFormat))
	return &Response{Date: req.Date, Slots: slots}, nil
}

func referenceService(req Request) (string, int) {
	svc := req.SelectedService
	if svc == nil && len(req.MainServices) > 0 {
		svc = &req.MainServices[0]
	}
	if svc == nil {
		return "", 0
	}

	duration := svc.DurationMinutes
	if duration <= 0 {
		duration = domain.DefaultServiceDurationMinutes
	}
	return svc.ID, duration
}
