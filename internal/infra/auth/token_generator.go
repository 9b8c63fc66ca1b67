package auth

import (
	"contacts/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type uuidTokenGenerator struct{}

// NewTokenGenerator returns a generator of random (v4) UUID session tokens.
func NewTokenGenerator() service.TokenGenerator {
	return &uuidTokenGenerator{}
}

func (g *uuidTokenGenerator) Generate() (string, error) {
	token, err := uuid.NewRandom()
	if err != nil {
		return "", errors.WithStack(err)
	}

	return token.String(), nil
}
