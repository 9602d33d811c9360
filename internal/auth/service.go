package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/workoutworks/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "workoutworks-session||"
	sessionsSetKey   = "workoutworks-sessions"
)

type Session struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Service keeps the registry of live sessions in redis. A session is a
// JWT whose ID is registered here, so it can be revoked before it expires.
type Service struct {
	redisClient *redis.Client
	tokens      *TokenIssuer
	ttl         time.Duration
	// ability to inject session id generator (for unit and dev testing)
	NewSessionID func() string
}

func NewService(
	ttl time.Duration,
	redisClient *redis.Client,
	tokens *TokenIssuer,
) *Service {
	return &Service{
		ttl:          ttl,
		redisClient:  redisClient,
		tokens:       tokens,
		NewSessionID: uuid.NewString,
	}
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func (s *Service) Login(ctx context.Context, userID uuid.UUID, createdAt time.Time) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.service.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sessionID := s.NewSessionID()
	token, expiresAt, err := s.tokens.Issue(userID, sessionID, createdAt)
	if err != nil {
		return nil, err
	}

	if err := s.redisClient.Set(ctx, sessionKey(sessionID), createdAt.Unix(), s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	// add session to the set of sessions
	if err := s.redisClient.SAdd(ctx, sessionsSetKey, sessionID).Err(); err != nil {
		return nil, fmt.Errorf("register session: %w", err)
	}

	return &Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout revokes the session of token. Returns false if it was not active.
func (s *Service) Logout(ctx context.Context, token string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.service.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	claims, err := s.tokens.ParseIgnoringExpiry(token)
	if err != nil {
		return false, err
	}

	deleted, err := s.redisClient.Del(ctx, sessionKey(claims.ID)).Result()
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}

	if err := s.redisClient.SRem(ctx, sessionsSetKey, claims.ID).Err(); err != nil {
		return false, fmt.Errorf("unregister session: %w", err)
	}

	return deleted > 0, nil
}

// ScanAndClean goes through all registered sessions and drops the ones
// that are gone from redis or older than the TTL.
func (s *Service) ScanAndClean(ctx context.Context) {
	sessionIDs, err := s.redisClient.SMembers(ctx, sessionsSetKey).Result()
	if err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionIDs) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Infof("auth service, scan and clean [%d sessions] start ...", len(sessionIDs))
	var toRemove []string
	for _, sessionID := range sessionIDs {
		createdAtUnixStr, err := s.redisClient.Get(ctx, sessionKey(sessionID)).Result()
		if errors.Is(err, redis.Nil) {
			toRemove = append(toRemove, sessionID)
			continue
		}
		if err != nil {
			log.Errorf("auth service, scan and clean session %s: %s", sessionID, err)
			continue
		}

		createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
		if err != nil {
			log.Errorf("auth service, scan and clean session %s: %s", sessionID, err)
			continue
		}

		if time.Since(time.Unix(createdAtUnix, 0)) > s.ttl {
			toRemove = append(toRemove, sessionID)
		}
	}

	for _, sessionID := range toRemove {
		log.Debugf("auth service, cleaning session: %s", sessionID)
		if err := s.redisClient.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
			log.Errorf("auth service, clean session %s: %s", sessionID, err)
			continue
		}

		if err := s.redisClient.SRem(ctx, sessionsSetKey, sessionID).Err(); err != nil {
			log.Errorf("auth service, clean session %s: %s", sessionID, err)
			continue
		}
	}
	log.Infof("auth service, scan and clean done, removed %d sessions", len(toRemove))
}
