package domain

import (
	"strings"
	"time"
)

// Customer is a customer record as stored by the scheduling backend.
type Customer struct {
	ID         string
	BusinessID string
	FirstName  string
	LastName   string
	Email      string
	Phone      *string
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CustomerInput is the contact data captured during the booking flow.
// Validation is performed by the validation collaborator, not here.
type CustomerInput struct {
	Name  string
	Email string
	Phone *string
}

// SplitFullName splits a full name at the first whitespace boundary:
// first token becomes the first name, the remainder the last name
// (empty string if there is no remainder).
func SplitFullName(name string) (firstName, lastName string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}
