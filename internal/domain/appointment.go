package domain

import "time"

// AppointmentStatus represents the status of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment is a confirmed booking as reported by the scheduling backend.
type Appointment struct {
	ID            string
	BusinessID    string
	CustomerID    string
	ServiceID     string
	ProviderID    string
	Start         time.Time
	End           time.Time
	Status        AppointmentStatus
	CustomerNotes *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActive returns true if the appointment still occupies its slot.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// AppointmentRecord is the denormalized local copy of a confirmed
// appointment, kept for the business's own records and reporting.
type AppointmentRecord struct {
	ID         string
	BusinessID string
	CustomerID string
	ServiceID  string
	ProviderID string
	Start      time.Time
	End        time.Time
	Status     AppointmentStatus

	// Denormalized data for history
	ServiceName          string
	ServicePrice         float64
	ExtraServiceNames    []string
	TotalPrice           float64
	TotalDurationMinutes int
	CustomerName         string
	CustomerEmail        string
	Notes                *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
