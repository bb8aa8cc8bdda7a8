package domain

import (
	"fmt"
	"strings"
)

// ValidateUsername checks a username: required, at most 150 characters of
// letters, digits and @.+-_ with no spaces.
func ValidateUsername(username string) []FieldError {
	switch {
	case username == "":
		return []FieldError{{Field: "username", Message: "required"}}
	case len(username) > 150:
		return []FieldError{{Field: "username", Message: "too long"}}
	}
	for _, r := range username {
		if !isUsernameRune(r) {
			return []FieldError{{Field: "username", Message: "invalid characters"}}
		}
	}
	return nil
}

func isUsernameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case strings.ContainsRune("@.+-_", r):
		return true
	}
	return false
}

// ValidateEmail accepts an empty email or a plausible address.
func ValidateEmail(email string) []FieldError {
	if email == "" {
		return nil
	}
	if len(email) > 254 {
		return []FieldError{{Field: "email", Message: "too long"}}
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
		return []FieldError{{Field: "email", Message: "invalid email"}}
	}
	return nil
}

// ValidatePassword enforces the minimum length and the bcrypt input limit.
func ValidatePassword(password string, minLen int) []FieldError {
	switch {
	case password == "":
		return []FieldError{{Field: "password", Message: "required"}}
	case len(password) < minLen:
		return []FieldError{{Field: "password", Message: fmt.Sprintf("must be at least %d characters", minLen)}}
	case len(password) > 72:
		return []FieldError{{Field: "password", Message: "too long"}}
	}
	return nil
}
