package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/workoutworks/internal/access"
	"github.com/2beens/workoutworks/internal/telemetry/tracing"
	"github.com/2beens/workoutworks/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const maxDisplayNameLength = 64

//go:generate mockgen -source=$GOFILE -destination=profiles_mocks_test.go -package=profiles_test

type profilesRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*Profile, error)
	UserSummary(ctx context.Context, userID uuid.UUID) (*UserSummary, error)
	UpdateDisplayName(ctx context.Context, userID uuid.UUID, displayName string) error
	SetAvatarURL(ctx context.Context, userID uuid.UUID, avatarURL string) (*string, error)
	IsApproved(ctx context.Context, userID uuid.UUID) (bool, error)
	ListApproved(ctx context.Context) ([]Profile, error)
	MemberCard(ctx context.Context, userID uuid.UUID) (*MemberCard, error)
}

type avatarStore interface {
	PresignUpload(ctx context.Context, key, contentType string, size int64) (string, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
	KeyFromURL(url string) (string, bool)
}

type UpdateProfileRequest struct {
	DisplayName string `json:"displayName"`
}

type AvatarUploadRequest struct {
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

type AvatarUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	AvatarURL string `json:"avatarUrl"`
}

type MembersResponse struct {
	Members []Profile `json:"members"`
}

type Handler struct {
	repo    profilesRepo
	avatars avatarStore
	// Now stamps avatar object keys.
	Now func() time.Time
}

func NewHandler(repo profilesRepo, avatars avatarStore) *Handler {
	return &Handler{
		repo:    repo,
		avatars: avatars,
		Now:     time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/get-user", h.HandleGetUser).Methods("GET", "OPTIONS").Name("get-user")
	r.HandleFunc("/api/profile", h.HandleGetProfile).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/api/profile", h.HandleUpdateProfile).Methods("PUT", "OPTIONS").Name("update-profile")
	r.HandleFunc("/api/profile/avatar", h.HandleAvatarUpload).Methods("POST", "OPTIONS").Name("profile-avatar")
	r.HandleFunc("/api/members", h.HandleMembers).Methods("GET", "OPTIONS").Name("members")
	r.HandleFunc("/lab/members/{id}", h.HandleMemberCard).Methods("GET", "OPTIONS").Name("lab-member")
}

// HandleGetUser answers the public summary of a user. Unknown users get a
// bare summary with the default display name.
func (h *Handler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.get-user")
	defer span.End()

	rawID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if rawID == "" {
		pkg.WriteJSONError(w, "User ID is required", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("user.id", rawID))

	userID, err := uuid.Parse(rawID)
	if err != nil {
		log.Debugf("get user, unparsable id %q", rawID)
		pkg.WriteJSON(w, bareUserSummary(rawID), http.StatusOK)
		return
	}

	summary, err := h.repo.UserSummary(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			pkg.WriteJSON(w, bareUserSummary(rawID), http.StatusOK)
			return
		}
		log.Errorf("get user %s: %s", userID, err)
		pkg.WriteJSONError(w, "Failed to fetch user data", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.get")
	defer span.End()

	userID, ok := access.ActingUser(w, r)
	if !ok {
		return
	}

	profile, err := h.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			pkg.WriteJSONError(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile %s: %s", userID, err)
		pkg.WriteJSONError(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.update")
	defer span.End()

	userID, ok := access.ActingUser(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update profile, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		pkg.WriteJSONError(w, "Display name is required", http.StatusBadRequest)
		return
	}
	if len([]rune(displayName)) > maxDisplayNameLength {
		pkg.WriteJSONError(w, "Display name is too long", http.StatusBadRequest)
		return
	}

	if err := h.repo.UpdateDisplayName(ctx, userID, displayName); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			pkg.WriteJSONError(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("update profile %s: %s", userID, err)
		pkg.WriteJSONError(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, UpdateProfileRequest{DisplayName: displayName}, http.StatusOK)
}

// HandleAvatarUpload hands out a presigned upload URL for a new avatar,
// records it on the profile and drops the previous avatar object.
func (h *Handler) HandleAvatarUpload(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.avatar")
	defer span.End()

	userID, ok := access.ActingUser(w, r)
	if !ok {
		return
	}

	var req AvatarUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("avatar upload, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	ext, err := AvatarExtension(req.ContentType)
	if err != nil {
		pkg.WriteJSONError(w, "Only JPEG and PNG images are allowed", http.StatusBadRequest)
		return
	}
	if req.Size <= 0 || req.Size > MaxAvatarSize {
		pkg.WriteJSONError(w, "Avatar must be smaller than 5 MB", http.StatusBadRequest)
		return
	}

	key := fmt.Sprintf("%s/%d.%s", userID, h.Now().UnixMilli(), ext)
	span.SetAttributes(attribute.String("avatar.key", key))

	uploadURL, err := h.avatars.PresignUpload(ctx, key, strings.ToLower(strings.TrimSpace(req.ContentType)), req.Size)
	if err != nil {
		log.Errorf("presign avatar upload for %s: %s", userID, err)
		pkg.WriteJSONError(w, "Failed to prepare avatar upload", http.StatusInternalServerError)
		return
	}

	avatarURL := h.avatars.PublicURL(key)
	previous, err := h.repo.SetAvatarURL(ctx, userID, avatarURL)
	if err != nil {
		log.Errorf("set avatar for %s: %s", userID, err)
		pkg.WriteJSONError(w, "Failed to update avatar", http.StatusInternalServerError)
		return
	}

	if previous != nil {
		h.removePreviousAvatar(ctx, userID, *previous)
	}

	pkg.WriteJSON(w, AvatarUploadResponse{UploadURL: uploadURL, AvatarURL: avatarURL}, http.StatusOK)
}

// removePreviousAvatar only touches objects under the user's own prefix.
func (h *Handler) removePreviousAvatar(ctx context.Context, userID uuid.UUID, previousURL string) {
	key, ok := h.avatars.KeyFromURL(previousURL)
	if !ok || !strings.HasPrefix(key, userID.String()+"/") {
		log.Debugf("previous avatar of %s is not ours to remove: %s", userID, previousURL)
		return
	}
	if err := h.avatars.Delete(ctx, key); err != nil {
		log.Warnf("remove previous avatar %s: %s", key, err)
	}
}

// HandleMembers lists approved members to approved members. Everyone else
// gets an empty list.
func (h *Handler) HandleMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.members")
	defer span.End()

	userID, ok := access.ActingUser(w, r)
	if !ok {
		return
	}

	approved, err := h.repo.IsApproved(ctx, userID)
	if err != nil {
		log.Errorf("members, approval of %s: %s", userID, err)
		pkg.WriteJSONError(w, "Failed to fetch members", http.StatusInternalServerError)
		return
	}
	if !approved {
		pkg.WriteJSON(w, MembersResponse{Members: []Profile{}}, http.StatusOK)
		return
	}

	members, err := h.repo.ListApproved(ctx)
	if err != nil {
		log.Errorf("list members: %s", err)
		pkg.WriteJSONError(w, "Failed to fetch members", http.StatusInternalServerError)
		return
	}
	if members == nil {
		members = []Profile{}
	}

	pkg.WriteJSON(w, MembersResponse{Members: members}, http.StatusOK)
}

func (h *Handler) HandleMemberCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.member-card")
	defer span.End()

	userID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteJSONError(w, "member not found", http.StatusNotFound)
		return
	}

	card, err := h.repo.MemberCard(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			pkg.WriteJSONError(w, "member not found", http.StatusNotFound)
			return
		}
		log.Errorf("member card %s: %s", userID, err)
		pkg.WriteJSONError(w, "Failed to fetch member", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, card, http.StatusOK)
}
