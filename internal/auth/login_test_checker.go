package auth

import (
	"context"

	"github.com/google/uuid"
)

// LoginTestChecker resolves tokens from an in-memory map.
type LoginTestChecker struct {
	LoggedSessions map[string]uuid.UUID
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]uuid.UUID{},
	}
}

func (c *LoginTestChecker) UserFromToken(_ context.Context, token string) (uuid.UUID, error) {
	userID, ok := c.LoggedSessions[token]
	if !ok {
		return uuid.Nil, ErrSessionNotFound
	}
	return userID, nil
}
