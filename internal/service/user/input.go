package user

import (
	"strings"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// UpdateProfileInput holds the fields a user may change on their own account.
type UpdateProfileInput struct {
	Email     string
	FirstName string
	LastName  string
}

// Normalize trims whitespace and lower-cases the email.
func (i *UpdateProfileInput) Normalize() {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.FirstName = strings.TrimSpace(i.FirstName)
	i.LastName = strings.TrimSpace(i.LastName)
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	errs := validateDetails(i.Email, i.FirstName, i.LastName)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateUserInput holds parameters for an administrator creating an account.
type CreateUserInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	Role      string
	// Inactive creates the account disabled.
	Inactive bool
}

// Normalize trims whitespace and lower-cases the email.
func (i *CreateUserInput) Normalize() {
	i.Username = strings.TrimSpace(i.Username)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.FirstName = strings.TrimSpace(i.FirstName)
	i.LastName = strings.TrimSpace(i.LastName)
}

// Validate validates the create input and returns the parsed role.
func (i CreateUserInput) Validate(minPassword int) (domain.Role, error) {
	var errs []domain.FieldError

	errs = append(errs, domain.ValidateUsername(i.Username)...)
	errs = append(errs, domain.ValidatePassword(i.Password, minPassword)...)
	errs = append(errs, validateDetails(i.Email, i.FirstName, i.LastName)...)

	role, ok := domain.ParseRole(i.Role)
	if !ok {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be Admin, Operator or Viewer"})
	}

	if len(errs) > 0 {
		return "", &domain.ValidationError{Errors: errs}
	}
	return role, nil
}

// UpdateUserInput holds the administrative changes to an account. Nil
// fields are left unchanged.
type UpdateUserInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	IsActive  *bool
	Role      *string
}

// Validate validates the update input and returns the parsed role, if any.
func (i UpdateUserInput) Validate() (*domain.Role, error) {
	var errs []domain.FieldError

	email, first, last := deref(i.Email), deref(i.FirstName), deref(i.LastName)
	errs = append(errs, validateDetails(strings.TrimSpace(email), strings.TrimSpace(first), strings.TrimSpace(last))...)

	var role *domain.Role
	if i.Role != nil {
		r, ok := domain.ParseRole(*i.Role)
		if !ok {
			errs = append(errs, domain.FieldError{Field: "role", Message: "must be Admin, Operator or Viewer"})
		}
		role = &r
	}

	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}
	return role, nil
}

// apply copies the set detail fields onto u and reports whether anything
// changed.
func (i UpdateUserInput) apply(u *domain.User) bool {
	changed := false
	set := func(dst *string, src *string, lower bool) {
		if src == nil {
			return
		}
		v := strings.TrimSpace(*src)
		if lower {
			v = strings.ToLower(v)
		}
		if v != *dst {
			*dst = v
			changed = true
		}
	}
	set(&u.Email, i.Email, true)
	set(&u.FirstName, i.FirstName, false)
	set(&u.LastName, i.LastName, false)
	return changed
}

func validateDetails(email, first, last string) []domain.FieldError {
	errs := domain.ValidateEmail(email)
	if len(first) > 150 {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
	}
	if len(last) > 150 {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
	}
	return errs
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
