package meals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/workoutworks/internal/access"
	"github.com/2beens/workoutworks/internal/telemetry/tracing"
	"github.com/2beens/workoutworks/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=meals_mocks_test.go -package=meals_test

type mealService interface {
	Log(ctx context.Context, userID uuid.UUID, newMeal NewMeal) (*Meal, error)
	Day(ctx context.Context, userID uuid.UUID, date string) (*DayLog, error)
	Week(ctx context.Context, userID uuid.UUID, date string) (*WeekLog, error)
}

type viewer interface {
	Viewable(ctx context.Context, acting, requested uuid.UUID) (uuid.UUID, error)
}

type Handler struct {
	service mealService
	viewer  viewer
}

func NewHandler(service mealService, viewer viewer) *Handler {
	return &Handler{
		service: service,
		viewer:  viewer,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/meals", h.HandleAdd).Methods("POST", "OPTIONS").Name("new-meal")
	r.HandleFunc("/api/meals", h.HandleDay).Methods("GET", "OPTIONS").Name("list-meals")
	r.HandleFunc("/api/meals/weekly", h.HandleWeek).Methods("GET", "OPTIONS").Name("weekly-meals")
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.add")
	defer span.End()

	userID, ok := access.ActingUser(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("user.id", userID.String()))

	var req NewMeal
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add meal, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	meal, err := h.service.Log(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrCreatineAlreadyLogged):
			pkg.WriteJSONError(w, "Creatine has already been logged for today", http.StatusConflict)
		case errors.Is(err, ErrMissingFields):
			pkg.WriteJSONError(w, "Please fill in all fields", http.StatusBadRequest)
		case errors.Is(err, ErrInvalidDate):
			pkg.WriteJSONError(w, "Invalid recognition date", http.StatusBadRequest)
		case errors.Is(err, ErrNegativeProteinOrWeight):
			pkg.WriteJSONError(w, "Weight must be positive and protein not negative", http.StatusBadRequest)
		default:
			log.Errorf("add meal for %s: %s", userID, err)
			pkg.WriteJSONError(w, "Failed to add food", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, meal, http.StatusCreated)
}

func (h *Handler) HandleDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.day")
	defer span.End()

	owner, ok := access.ViewedUser(w, r, h.viewer)
	if !ok {
		return
	}

	day, err := h.service.Day(ctx, owner, r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			pkg.WriteJSONError(w, "invalid date", http.StatusBadRequest)
			return
		}
		log.Errorf("meals day for %s: %s", owner, err)
		pkg.WriteJSONError(w, "Failed to fetch meals", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, day, http.StatusOK)
}

func (h *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.week")
	defer span.End()

	owner, ok := access.ViewedUser(w, r, h.viewer)
	if !ok {
		return
	}

	week, err := h.service.Week(ctx, owner, r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			pkg.WriteJSONError(w, "invalid date", http.StatusBadRequest)
			return
		}
		log.Errorf("meals week for %s: %s", owner, err)
		pkg.WriteJSONError(w, "Failed to fetch weekly protein", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, week, http.StatusOK)
}
