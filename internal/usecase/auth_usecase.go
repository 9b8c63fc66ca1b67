package usecase

import (
	"context"

	"contacts/internal/domain/entity"
)

// AuthUsecase resolves a presented session token to its user.
type AuthUsecase interface {
	// Authenticate returns the user holding token, or ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
