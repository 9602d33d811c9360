package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	tokens      *TokenIssuer
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client, tokens *TokenIssuer) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		tokens:      tokens,
	}
}

// UserFromToken returns the user of a valid token with a live session.
func (c *LoginChecker) UserFromToken(ctx context.Context, token string) (uuid.UUID, error) {
	claims, err := c.tokens.Parse(token)
	if err != nil {
		return uuid.Nil, err
	}

	createdAtUnixStr, err := c.redisClient.Get(ctx, sessionKey(claims.ID)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrSessionNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("get session: %w", err)
	}

	createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse session created at: %w", err)
	}

	if time.Since(time.Unix(createdAtUnix, 0)) > c.ttl {
		return uuid.Nil, ErrSessionExpired
	}

	return claims.UserID, nil
}
