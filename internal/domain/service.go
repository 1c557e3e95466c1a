package domain

import "time"

// Service represents one offering from the price list. Immutable once loaded
// for the session.
type Service struct {
	ID                  string
	BusinessID          string
	Name                string
	Description         string
	DurationMinutes     int
	Price               float64
	Currency            string
	Color               *string
	Active              bool
	SortOrder           int
	BufferBeforeMinutes int
	BufferAfterMinutes  int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsBookable returns true if the service can currently be offered.
func (s *Service) IsBookable() bool {
	return s.Active && s.DurationMinutes > 0
}
