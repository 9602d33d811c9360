package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/2beens/workoutworks/internal/telemetry/tracing"
	"github.com/2beens/workoutworks/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const MinPasswordLength = 6

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=auth_test

type usersRepo interface {
	Create(ctx context.Context, email, passwordHash, displayName string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateLastSignIn(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type sessionService interface {
	Login(ctx context.Context, userID uuid.UUID, createdAt time.Time) (*Session, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type SignUpResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type Handler struct {
	usersRepo usersRepo
	sessions  sessionService
	tracker   *RequestTracker
}

func NewHandler(usersRepo usersRepo, sessions sessionService, tracker *RequestTracker) *Handler {
	return &Handler{
		usersRepo: usersRepo,
		sessions:  sessions,
		tracker:   tracker,
	}
}

// SetupRoutes registers the /auth routes, wrapped in authMiddlewares
// (rate limiting), and the password change route on the main router.
func (h *Handler) SetupRoutes(mainRouter *mux.Router, authMiddlewares ...mux.MiddlewareFunc) {
	authRouter := mainRouter.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/signup", h.HandleSignUp).Methods("POST", "OPTIONS").Name("auth-signup")
	authRouter.HandleFunc("/signin", h.HandleSignIn).Methods("POST", "OPTIONS").Name("auth-signin")
	authRouter.HandleFunc("/signout", h.HandleSignOut).Methods("GET", "POST", "OPTIONS").Name("auth-signout")
	authRouter.HandleFunc("/callback", h.HandleCallback).Methods("GET").Name("auth-callback")
	authRouter.Use(authMiddlewares...)

	mainRouter.HandleFunc("/api/profile/password", h.HandleChangePassword).Methods("PUT", "OPTIONS").Name("profile-password")
}

func (h *Handler) track(r *http.Request, action string) {
	if h.tracker == nil {
		return
	}
	ip, err := pkg.ReadUserIP(r)
	if err != nil {
		ip = "unknown"
	}
	h.tracker.Track(action + ":" + ip)
}

func (h *Handler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.signup")
	defer span.End()
	h.track(r, "signup")

	var req SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("signup, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		pkg.WriteJSONError(w, "A valid email is required", http.StatusBadRequest)
		return
	}
	if len(req.Password) < MinPasswordLength {
		pkg.WriteJSONError(w, "Password must be at least 6 characters", http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		log.Errorf("signup, hash password: %s", err)
		pkg.WriteJSONError(w, "Failed to sign up", http.StatusInternalServerError)
		return
	}

	user, err := h.usersRepo.Create(ctx, email, passwordHash, strings.TrimSpace(req.DisplayName))
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			pkg.WriteJSONError(w, "Email is already registered", http.StatusConflict)
			return
		}
		log.Errorf("signup, create user: %s", err)
		pkg.WriteJSONError(w, "Failed to sign up", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.String("user.id", user.ID.String()))
	log.Debugf("new user signed up: %s", user.ID)
	pkg.WriteJSON(w, SignUpResponse{ID: user.ID, Email: user.Email}, http.StatusCreated)
}

func (h *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.signin")
	defer span.End()
	h.track(r, "signin")

	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("signin, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		pkg.WriteJSONError(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.usersRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Tracef("[email] failed signin attempt for: %s", req.Email)
			pkg.WriteJSONError(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		log.Errorf("signin, get user: %s", err)
		pkg.WriteJSONError(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}

	if !pkg.CheckPasswordHash(req.Password, user.PasswordHash) {
		log.Tracef("[password] failed signin attempt for: %s", req.Email)
		pkg.WriteJSONError(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	session, err := h.sessions.Login(ctx, user.ID, now)
	if err != nil {
		log.Errorf("signin, create session: %s", err)
		pkg.WriteJSONError(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}

	// no need to fail the signin for this one
	if err := h.usersRepo.UpdateLastSignIn(ctx, user.ID, now); err != nil {
		log.Errorf("signin, update last sign in for %s: %s", user.ID, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})

	span.SetAttributes(attribute.String("user.id", user.ID.String()))
	log.Tracef("signin success: %s", user.ID)
	pkg.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.signout")
	defer span.End()
	h.track(r, "signout")

	token := TokenFromRequest(r)
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := h.sessions.Logout(ctx, token)
	if err != nil {
		log.Tracef("[failed signout] => %s: %s", r.URL.Path, err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	pkg.WriteTextResponseOK(w, "logged-out")
}

// HandleCallback is where email confirmation links land.
func (h *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.changePassword")
	defer span.End()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "Not signed in", http.StatusUnauthorized)
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Password) < MinPasswordLength {
		pkg.WriteJSONError(w, "Password must be at least 6 characters", http.StatusBadRequest)
		return
	}
	if req.Password != req.ConfirmPassword {
		pkg.WriteJSONError(w, "Passwords do not match", http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		log.Errorf("change password, hash: %s", err)
		pkg.WriteJSONError(w, "Failed to update password", http.StatusInternalServerError)
		return
	}

	if err := h.usersRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
		log.Errorf("change password for %s: %s", userID, err)
		pkg.WriteJSONError(w, "Failed to update password", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, map[string]string{"message": "Password updated successfully"}, http.StatusOK)
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}
