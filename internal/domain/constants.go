package domain

// Default booking policy values
const (
	DefaultSlotStepMinutes        = 30
	DefaultAdvanceBookingDays     = 30
	DefaultServiceDurationMinutes = 30
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxNotesLength            = 500
	MinCustomerNameLength     = 2
	MinPhoneDigits            = 9
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
