package domain

import "time"

// TimeSlot is a bookable start/end window for one service performed by one
// provider. Slots are value objects: they are regenerated whenever the
// selected date or service changes and are never mutated in place.
type TimeSlot struct {
	Start        time.Time
	End          time.Time
	Available    bool
	ProviderID   string
	ProviderName string
}

// Matches reports whether two slots denote the same offering
// (same provider, same start instant).
func (s TimeSlot) Matches(other TimeSlot) bool {
	return s.ProviderID == other.ProviderID && s.Start.Equal(other.Start)
}
