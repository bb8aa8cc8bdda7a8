package auth

import (
	"strings"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// LoginInput holds parameters for password login.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(i.Username) > 150 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RegisterInput holds parameters for self-signup.
type RegisterInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// Normalize trims whitespace and lower-cases the email.
func (i *RegisterInput) Normalize() {
	i.Username = strings.TrimSpace(i.Username)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.FirstName = strings.TrimSpace(i.FirstName)
	i.LastName = strings.TrimSpace(i.LastName)
}

// Validate validates the register input. minPassword is the configured
// minimum password length.
func (i RegisterInput) Validate(minPassword int) error {
	var errs []domain.FieldError

	errs = append(errs, domain.ValidateUsername(i.Username)...)
	errs = append(errs, domain.ValidateEmail(i.Email)...)
	errs = append(errs, domain.ValidatePassword(i.Password, minPassword)...)

	if len(i.FirstName) > 150 {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
	}
	if len(i.LastName) > 150 {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
