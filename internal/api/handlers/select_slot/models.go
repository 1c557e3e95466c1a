package select_slot

import "time"

// SelectSlotRequest picks one of the offered slots. Advance defaults to
// true: picking a slot moves the session on to service selection.
type SelectSlotRequest struct {
	Start      time.Time `json:"start"`
	ProviderID string    `json:"providerId,omitempty"`
	Advance    *bool     `json:"advance,omitempty"`
}

func (r *SelectSlotRequest) ShouldAdvance() bool {
	return r.Advance == nil || *r.Advance
}
