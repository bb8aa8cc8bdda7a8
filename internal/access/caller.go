package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/labsample-backend/internal/domain"
	"github.com/heartmarshall/labsample-backend/pkg/ctxutil"
)

// UserLoader loads a user together with groups and permissions.
type UserLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Caller resolves the authenticated user of the request. Roles are read
// from storage on every call, so group changes apply immediately.
func Caller(ctx context.Context, users UserLoader) (*domain.User, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("load caller: %w", err)
	}
	return u, nil
}
