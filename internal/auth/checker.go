package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

type Checker interface {
	UserFromToken(ctx context.Context, token string) (uuid.UUID, error)
}

type ctxKey struct{}

// ContextWithUserID stores the signed in user for the rest of the request.
func ContextWithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFromContext returns the signed in user, or uuid.Nil and false.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(ctxKey{}).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

const (
	SessionCookieName = "ww_session"
	bearerPrefix      = "Bearer "
)

// TokenFromRequest reads the session token from the Authorization header,
// falling back to the session cookie.
func TokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
