package domain

import (
	"time"

	"github.com/lavaderolesan/LSN-BookingFlow/pkg/types"
)

// Business represents the car wash whose calendar is being booked.
type Business struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Phone       string
	Email       string
	Address     string
	Timezone    string
	LogoURL     *string
	Website     *string
	Active      bool
	Hours       BusinessHours
	Settings    BookingSettings
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Location resolves the business timezone, falling back to the local zone
// when the IANA name cannot be loaded.
func (b *Business) Location() *time.Location {
	if b == nil || b.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// BusinessHours holds the weekly opening schedule.
type BusinessHours struct {
	Monday    DayHours
	Tuesday   DayHours
	Wednesday DayHours
	Thursday  DayHours
	Friday    DayHours
	Saturday  DayHours
	Sunday    DayHours
}

// ForWeekday returns the schedule for the given weekday.
func (h BusinessHours) ForWeekday(weekday time.Weekday) DayHours {
	switch weekday {
	case time.Monday:
		return h.Monday
	case time.Tuesday:
		return h.Tuesday
	case time.Wednesday:
		return h.Wednesday
	case time.Thursday:
		return h.Thursday
	case time.Friday:
		return h.Friday
	case time.Saturday:
		return h.Saturday
	case time.Sunday:
		return h.Sunday
	default:
		return DayHours{Closed: true}
	}
}

// DayHours describes one weekday: opening window, closed flag and optional
// break intervals during which no slot may be offered.
type DayHours struct {
	Open   types.TimeString
	Close  types.TimeString
	Closed bool
	Breaks []BreakInterval
}

// BreakInterval is a pause inside the opening window (e.g. lunch break).
type BreakInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// BookingSettings holds the booking policy published by the business.
type BookingSettings struct {
	AdvanceBookingDays      int
	MinBookingNoticeHours   int
	MaxBookingsPerDay       int
	AllowCancellation       bool
	CancellationHoursNotice int
	RequirePayment          bool
	AutoConfirm             bool
	SlotDurationMinutes     int
}
