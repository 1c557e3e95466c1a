package schedcore

import (
	"fmt"
	"sort"
	"time"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
	"github.com/lavaderolesan/LSN-BookingFlow/pkg/types"
)

// Logger is the logging contract required by the client.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Business JSON model from the scheduling backend.
type Business struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Description   string          `json:"description"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	Timezone      string          `json:"timezone"`
	LogoURL       *string         `json:"logo_url,omitempty"`
	Website       *string         `json:"website,omitempty"`
	Active        bool            `json:"active"`
	BusinessHours BusinessHours   `json:"business_hours"`
	Settings      BookingSettings `json:"booking_settings"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

// BusinessHours JSON model, one entry per weekday.
type BusinessHours struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

// DayHours JSON model.
type DayHours struct {
	Open   string        `json:"open"`
	Close  string        `json:"close"`
	Closed bool          `json:"closed"`
	Breaks []BreakWindow `json:"breaks,omitempty"`
}

// BreakWindow JSON model.
type BreakWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BookingSettings JSON model.
type BookingSettings struct {
	AdvanceBookingDays      int  `json:"advance_booking_days"`
	MinBookingNoticeHours   int  `json:"min_booking_notice_hours"`
	MaxBookingsPerDay       int  `json:"max_bookings_per_day"`
	AllowCancellation       bool `json:"allow_cancellation"`
	CancellationHoursNotice int  `json:"cancellation_hours_notice"`
	RequirePayment          bool `json:"require_payment"`
	AutoConfirm             bool `json:"auto_confirm"`
	SlotDurationMinutes     int  `json:"slot_duration_minutes,omitempty"`
}

// Service JSON model.
type Service struct {
	ID                  string  `json:"id"`
	BusinessID          string  `json:"business_id"`
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	DurationMinutes     int     `json:"duration_minutes"`
	Price               float64 `json:"price"`
	Currency            string  `json:"currency"`
	Color               *string `json:"color,omitempty"`
	IsActive            bool    `json:"is_active"`
	SortOrder           int     `json:"sort_order"`
	BufferBeforeMinutes int     `json:"buffer_before_minutes"`
	BufferAfterMinutes  int     `json:"buffer_after_minutes"`
}

// Customer JSON model.
type Customer struct {
	ID         string  `json:"id"`
	BusinessID string  `json:"business_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// Appointment JSON model.
type Appointment struct {
	ID            string  `json:"id"`
	BusinessID    string  `json:"business_id"`
	CustomerID    string  `json:"customer_id"`
	ServiceID     string  `json:"service_id"`
	ProviderID    string  `json:"provider_id"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Status        string  `json:"status"`
	CustomerNotes *string `json:"customer_notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// AvailabilityDay JSON model: all providers' slots for one date.
type AvailabilityDay struct {
	Date      string          `json:"date"`
	Providers []ProviderSlots `json:"providers"`
}

// ProviderSlots JSON model.
type ProviderSlots struct {
	ProviderID   string    `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	Slots        []RawSlot `json:"slots"`
}

// RawSlot JSON model.
type RawSlot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// CustomerCreateRequest is the payload for creating a customer record.
type CustomerCreateRequest struct {
	BusinessID string  `json:"business_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
}

// AppointmentCreateRequest is the payload for creating an appointment.
type AppointmentCreateRequest struct {
	BusinessID    string  `json:"business_id"`
	ServiceID     string  `json:"service_id"`
	ProviderID    string  `json:"provider_id"`
	CustomerID    string  `json:"customer_id"`
	StartTime     string  `json:"start_time"`
	CustomerNotes *string `json:"customer_notes,omitempty"`
}

// ToDomain converts the backend business model into the domain entity.
func (b *Business) ToDomain() (*domain.Business, error) {
	hours, err := b.BusinessHours.toDomain()
	if err != nil {
		return nil, err
	}

	return &domain.Business{
		ID:          b.ID,
		Name:        b.Name,
		Slug:        b.Slug,
		Description: b.Description,
		Phone:       b.Phone,
		Email:       b.Email,
		Address:     b.Address,
		Timezone:    b.Timezone,
		LogoURL:     b.LogoURL,
		Website:     b.Website,
		Active:      b.Active,
		Hours:       hours,
		Settings: domain.BookingSettings{
			AdvanceBookingDays:      b.Settings.AdvanceBookingDays,
			MinBookingNoticeHours:   b.Settings.MinBookingNoticeHours,
			MaxBookingsPerDay:       b.Settings.MaxBookingsPerDay,
			AllowCancellation:       b.Settings.AllowCancellation,
			CancellationHoursNotice: b.Settings.CancellationHoursNotice,
			RequirePayment:          b.Settings.RequirePayment,
			AutoConfirm:             b.Settings.AutoConfirm,
			SlotDurationMinutes:     b.Settings.SlotDurationMinutes,
		},
	}, nil
}

func (h BusinessHours) toDomain() (domain.BusinessHours, error) {
	out := domain.BusinessHours{}
	days := []struct {
		src DayHours
		dst *domain.DayHours
	}{
		{h.Monday, &out.Monday},
		{h.Tuesday, &out.Tuesday},
		{h.Wednesday, &out.Wednesday},
		{h.Thursday, &out.Thursday},
		{h.Friday, &out.Friday},
		{h.Saturday, &out.Saturday},
		{h.Sunday, &out.Sunday},
	}

	for _, d := range days {
		converted, err := d.src.toDomain()
		if err != nil {
			return domain.BusinessHours{}, err
		}
		*d.dst = converted
	}

	return out, nil
}

func (d DayHours) toDomain() (domain.DayHours, error) {
	if d.Closed {
		return domain.DayHours{Closed: true}, nil
	}

	open, err := types.NewTimeStringFromString(d.Open)
	if err != nil {
		return domain.DayHours{}, fmt.Errorf("%w: open time: %v", ErrInvalidResponse, err)
	}
	closeTime, err := types.NewTimeStringFromString(d.Close)
	if err != nil {
		return domain.DayHours{}, fmt.Errorf("%w: close time: %v", ErrInvalidResponse, err)
	}

	breaks := make([]domain.BreakInterval, 0, len(d.Breaks))
	for _, br := range d.Breaks {
		start, err := types.NewTimeStringFromString(br.Start)
		if err != nil {
			return domain.DayHours{}, fmt.Errorf("%w: break start: %v", ErrInvalidResponse, err)
		}
		end, err := types.NewTimeStringFromString(br.End)
		if err != nil {
			return domain.DayHours{}, fmt.Errorf("%w: break end: %v", ErrInvalidResponse, err)
		}
		breaks = append(breaks, domain.BreakInterval{Start: start, End: end})
	}

	return domain.DayHours{Open: open, Close: closeTime, Breaks: breaks}, nil
}

// ToDomain converts the backend service model into the domain entity.
func (s *Service) ToDomain() domain.Service {
	return domain.Service{
		ID:                  s.ID,
		BusinessID:          s.BusinessID,
		Name:                s.Name,
		Description:         s.Description,
		DurationMinutes:     s.DurationMinutes,
		Price:               s.Price,
		Currency:            s.Currency,
		Color:               s.Color,
		Active:              s.IsActive,
		SortOrder:           s.SortOrder,
		BufferBeforeMinutes: s.BufferBeforeMinutes,
		BufferAfterMinutes:  s.BufferAfterMinutes,
	}
}

// ToDomain converts the backend customer model into the domain entity.
func (c *Customer) ToDomain() domain.Customer {
	return domain.Customer{
		ID:         c.ID,
		BusinessID: c.BusinessID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		Notes:      c.Notes,
	}
}

// ToDomain converts the backend appointment model into the domain entity.
// Timestamps are interpreted in the given location when they carry no zone.
func (a *Appointment) ToDomain(loc *time.Location) (*domain.Appointment, error) {
	start, err := parseBackendTime(a.StartTime, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time: %v", ErrInvalidResponse, err)
	}
	end, err := parseBackendTime(a.EndTime, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: end_time: %v", ErrInvalidResponse, err)
	}

	return &domain.Appointment{
		ID:            a.ID,
		BusinessID:    a.BusinessID,
		CustomerID:    a.CustomerID,
		ServiceID:     a.ServiceID,
		ProviderID:    a.ProviderID,
		Start:         start,
		End:           end,
		Status:        domain.AppointmentStatus(a.Status),
		CustomerNotes: a.CustomerNotes,
	}, nil
}

// ToDomainSlots maps a backend availability day onto domain slots.
// Unavailable entries are kept, flagged, so callers can render taken slots;
// malformed entries are skipped. Output is chronological, with duplicate
// provider/start pairs dropped.
func (d *AvailabilityDay) ToDomainSlots(loc *time.Location) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)
	seen := map[string]bool{}

	for _, provider := range d.Providers {
		for _, raw := range provider.Slots {
			start, err := parseBackendTime(raw.Start, loc)
			if err != nil {
				continue
			}
			end, err := parseBackendTime(raw.End, loc)
			if err != nil {
				continue
			}

			key := provider.ProviderID + "|" + start.Format(time.RFC3339)
			if seen[key] {
				continue
			}
			seen[key] = true

			slots = append(slots, domain.TimeSlot{
				Start:        start,
				End:          end,
				Available:    raw.Available,
				ProviderID:   provider.ProviderID,
				ProviderName: provider.ProviderName,
			})
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Start.Before(slots[j].Start) })

	return slots
}

// parseBackendTime accepts RFC3339 timestamps and the backend's
// zone-less "2006-01-02T15:04:05" form.
func parseBackendTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", s, loc)
}
