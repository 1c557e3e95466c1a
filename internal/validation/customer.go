package validation

import (
	"regexp"
	"strings"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/domain"
)

// User-facing validation messages, per field.
const (
	msgNameRequired  = "El nombre es obligatorio"
	msgNameTooShort  = "El nombre debe tener al menos 2 caracteres"
	msgEmailRequired = "El email es obligatorio"
	msgEmailInvalid  = "Introduce un email válido"
	msgPhoneInvalid  = "Introduce un teléfono válido"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s./0-9]*$`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

// CustomerInput validates the booking contact data and returns per-field
// error messages. An empty map means the input is valid. The phone number is
// optional; when present it must look like a phone number and carry at least
// nine digits.
func CustomerInput(input domain.CustomerInput) map[string]string {
	errs := map[string]string{}

	name := strings.TrimSpace(input.Name)
	switch {
	case name == "":
		errs["name"] = msgNameRequired
	case len([]rune(name)) < domain.MinCustomerNameLength:
		errs["name"] = msgNameTooShort
	}

	email := strings.TrimSpace(input.Email)
	switch {
	case email == "":
		errs["email"] = msgEmailRequired
	case !emailPattern.MatchString(email):
		errs["email"] = msgEmailInvalid
	}

	if input.Phone != nil {
		phone := strings.TrimSpace(*input.Phone)
		if phone != "" && !validPhone(phone) {
			errs["phone"] = msgPhoneInvalid
		}
	}

	return errs
}

func validPhone(phone string) bool {
	if !phonePattern.MatchString(phone) {
		return false
	}
	return len(digitPattern.FindAllString(phone, -1)) >= domain.MinPhoneDigits
}
