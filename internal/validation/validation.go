package validation

import (
	"errors"
	"regexp"
	"strings"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationError describes a single invalid request field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidateEmail checks that an email address is well-formed
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(email) > 254 {
		return &ValidationError{Field: "email", Message: "email is too long"}
	}
	if !emailRegexp.MatchString(email) {
		return &ValidationError{Field: "email", Message: "email is not valid"}
	}
	return nil
}

// ValidateName checks that a display name is present and reasonable
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) < 2 {
		return &ValidationError{Field: "name", Message: "name must be at least 2 characters"}
	}
	if len(name) > 100 {
		return &ValidationError{Field: "name", Message: "name is too long"}
	}
	return nil
}

// ValidatePassword checks minimum password requirements
func ValidatePassword(password string) error {
	if password == "" {
		return &ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 {
		return &ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	if len(password) > 72 {
		// bcrypt truncates input beyond 72 bytes
		return &ValidationError{Field: "password", Message: "password is too long"}
	}
	return nil
}

// FieldFor extracts the field name from a validation error, or "" when the
// error is not a ValidationError
func FieldFor(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	return ""
}
