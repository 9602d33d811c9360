package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "workoutworks"

var ErrInvalidToken = errors.New("invalid token")

// Claims carry the user and, as the JWT ID, the session it belongs to.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	// injectable clock, for tests
	Now func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		Now:    time.Now,
	}
}

func (ti *TokenIssuer) Issue(userID uuid.UUID, sessionID string, issuedAt time.Time) (string, time.Time, error) {
	expiresAt := issuedAt.Add(ti.ttl)
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies the signature and the expiry.
func (ti *TokenIssuer) Parse(token string) (*Claims, error) {
	return ti.parse(token, jwt.WithTimeFunc(ti.Now))
}

// ParseIgnoringExpiry verifies only the signature, used when signing out.
func (ti *TokenIssuer) ParseIgnoringExpiry(token string) (*Claims, error) {
	return ti.parse(token, jwt.WithoutClaimsValidation())
}

func (ti *TokenIssuer) parse(token string, opts ...jwt.ParserOption) (*Claims, error) {
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return ti.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.ID == "" || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
