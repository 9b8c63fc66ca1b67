// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"contacts/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100"`
}

// UpdateUserInput carries the profile fields to change. Nil fields are left as they are.
type UpdateUserInput struct {
	Name     *string `json:"name" validate:"omitnil,min=1,max=100"`
	Password *string `json:"password" validate:"omitnil,min=1,max=100"`
}

// --- Output DTOs ---

// UserResponse is the public view of a user. Token is only set by Login.
type UserResponse struct {
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Token    *string `json:"token,omitempty"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*UserResponse, error)
	Login(ctx context.Context, input *LoginInput) (*UserResponse, error)
	Get(ctx context.Context, user *entity.User) (*UserResponse, error)
	Update(ctx context.Context, user *entity.User, input *UpdateUserInput) (*UserResponse, error)

	// Logout clears the caller's session token.
	Logout(ctx context.Context, user *entity.User) error
}
