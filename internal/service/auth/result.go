package auth

import (
	"time"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// AuthResult is returned by Login and Register operations.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}
