package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/2beens/workoutworks/internal/access"
	"github.com/2beens/workoutworks/internal/telemetry/tracing"
	"github.com/2beens/workoutworks/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const maxDraftSize = 64 << 10

//go:generate mockgen -source=$GOFILE -destination=drafts_mocks_test.go -package=drafts_test

type draftStore interface {
	Save(ctx context.Context, ownerID uuid.UUID, form string, fields json.RawMessage) (*Draft, error)
	Restore(ctx context.Context, ownerID uuid.UUID, form string) (*Draft, error)
	Clear(ctx context.Context, ownerID uuid.UUID, form string) error
}

type Handler struct {
	store draftStore
}

func NewHandler(store draftStore) *Handler {
	return &Handler{
		store: store,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/drafts/{form}", h.HandleRestore).Methods("GET", "OPTIONS").Name("draft-restore")
	r.HandleFunc("/api/drafts/{form}", h.HandleSave).Methods("PUT", "OPTIONS").Name("draft-save")
	r.HandleFunc("/api/drafts/{form}", h.HandleClear).Methods("DELETE", "OPTIONS").Name("draft-clear")
}

func (h *Handler) HandleRestore(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.restore")
	defer span.End()

	userID, ok := access.ActingUser(w, r)
	if !ok {
		return
	}

	draft, err := h.store.Restore(ctx, userID, mux.Vars(r)["form"])
	if err != nil {
		h.writeStoreError(w, err, "restore")
		return
	}

	pkg.WriteJSON(w, draft, http.StatusOK)
}

func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.save")
	defer span.End()

	userID, ok := access.ActingUser(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxDraftSize+1))
	if err != nil {
		log.Tracef("save draft, read body: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(body) > maxDraftSize {
		pkg.WriteJSONError(w, "draft is too large", http.StatusRequestEntityTooLarge)
		return
	}
	if !json.Valid(body) {
		pkg.WriteJSONError(w, "draft must be valid json", http.StatusBadRequest)
		return
	}

	draft, err := h.store.Save(ctx, userID, mux.Vars(r)["form"], json.RawMessage(body))
	if err != nil {
		h.writeStoreError(w, err, "save")
		return
	}

	pkg.WriteJSON(w, draft, http.StatusOK)
}

func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.clear")
	defer span.End()

	userID, ok := access.ActingUser(w, r)
	if !ok {
		return
	}

	if err := h.store.Clear(ctx, userID, mux.Vars(r)["form"]); err != nil {
		h.writeStoreError(w, err, "clear")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeStoreError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, ErrUnknownForm):
		pkg.WriteJSONError(w, "unknown form", http.StatusBadRequest)
	case errors.Is(err, ErrDraftNotFound), errors.Is(err, ErrDraftCorrupt):
		pkg.WriteJSONError(w, "draft not found", http.StatusNotFound)
	default:
		log.Errorf("%s draft: %s", op, err)
		pkg.WriteJSONError(w, "Failed to process draft", http.StatusInternalServerError)
	}
}
