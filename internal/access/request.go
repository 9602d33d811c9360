package access

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/workoutworks/internal/auth"
	"github.com/2beens/workoutworks/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidUserID = errors.New("invalid userId")

type Viewer interface {
	Viewable(ctx context.Context, acting, requested uuid.UUID) (uuid.UUID, error)
}

// RequestedUserID reads the optional userId query parameter.
// uuid.Nil means no user was asked for.
func RequestedUserID(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("userId"))
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidUserID
	}
	return id, nil
}

// ActingUser returns the signed in user, or answers 401.
func ActingUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok || userID == uuid.Nil {
		pkg.WriteJSONError(w, "not signed in", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}

// ViewedUser resolves whose records the request reads, answering
// 400, 401, 403 or 500 itself when that is not possible.
func ViewedUser(w http.ResponseWriter, r *http.Request, viewer Viewer) (uuid.UUID, bool) {
	acting, ok := ActingUser(w, r)
	if !ok {
		return uuid.Nil, false
	}

	requested, err := RequestedUserID(r)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return uuid.Nil, false
	}

	owner, err := viewer.Viewable(r.Context(), acting, requested)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			log.Debugf("user %s may not view %s", acting, requested)
			pkg.WriteJSONError(w, "forbidden", http.StatusForbidden)
			return uuid.Nil, false
		}
		log.Errorf("resolve viewed user %s for %s: %s", requested, acting, err)
		pkg.WriteJSONError(w, "internal error", http.StatusInternalServerError)
		return uuid.Nil, false
	}

	return owner, true
}
