package set_customer

import "github.com/lavaderolesan/LSN-BookingFlow/internal/domain"

// SetCustomerRequest captures the contact data and optional notes.
type SetCustomerRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
	Notes string  `json:"notes,omitempty"`
}

func (r *SetCustomerRequest) ToInput() domain.CustomerInput {
	return domain.CustomerInput{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}
