package get_day_slots

import (
	"time"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
)

// Request describes whose availability to fetch and for when. The selected
// service may be nil; the main service list then provides the reference
// duration.
type Request struct {
	Business        *domain.Business
	SelectedService *domain.Service
	MainServices    []domain.Service
	Date            time.Time
}

// Response carries the slots of the requested date.
type Response struct {
	Date  time.Time
	Slots []domain.TimeSlot
}
