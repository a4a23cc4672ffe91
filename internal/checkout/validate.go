package checkout

import (
	"regexp"
	"strings"

	"chillout-web/internal/domain"
)

var (
	nonDigits    = regexp.MustCompile(`\D`)
	phonePattern = regexp.MustCompile(`^\d{10,15}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Validate checks the checkout form fields and returns a map of field
// name to error message. An empty map means the details are valid. Each
// field yields at most one error, keyed exactly to that field.
func Validate(d domain.CustomerDetails) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Name is required"
	}

	if strings.TrimSpace(d.Phone) == "" {
		errs["phone"] = "Phone is required"
	} else if !phonePattern.MatchString(nonDigits.ReplaceAllString(d.Phone, "")) {
		errs["phone"] = "Enter a valid phone number"
	}

	if strings.TrimSpace(d.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(d.Email) {
		errs["email"] = "Enter a valid email"
	}

	if strings.TrimSpace(d.Address) == "" {
		errs["address"] = "Delivery address is required"
	}

	return errs
}
