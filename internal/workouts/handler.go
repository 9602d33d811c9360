package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/workoutworks/internal/access"
	"github.com/2beens/workoutworks/internal/aggregator"
	"github.com/2beens/workoutworks/internal/telemetry/tracing"
	"github.com/2beens/workoutworks/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type exerciseService interface {
	Add(ctx context.Context, userID uuid.UUID, newExercise NewExercise) (*Exercise, error)
	List(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Exercise, error)
	Delete(ctx context.Context, acting uuid.UUID, id int) error
	VolumeByDay(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]aggregator.DayTotal, error)
	WeeklyVolume(ctx context.Context, userID uuid.UUID, ref time.Time) (*WeekVolume, error)
}

type viewer interface {
	Viewable(ctx context.Context, acting, requested uuid.UUID) (uuid.UUID, error)
}

type ListResponse struct {
	Exercises []Exercise `json:"exercises"`
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type VolumeResponse struct {
	VolumeData []aggregator.DayTotal `json:"volumeData"`
}

type Handler struct {
	service exerciseService
	viewer  viewer
	// Now is used for the weekly view when no date is given.
	Now func() time.Time
}

func NewHandler(service exerciseService, viewer viewer) *Handler {
	return &Handler{
		service: service,
		viewer:  viewer,
		Now:     time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/exercises", h.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/api/exercises", h.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/api/exercises/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
	r.HandleFunc("/api/workout-volume", h.HandleWorkoutVolume).Methods("GET", "OPTIONS").Name("workout-volume")
	r.HandleFunc("/api/workout-volume/weekly", h.HandleWeeklyVolume).Methods("GET", "OPTIONS").Name("workout-volume-weekly")
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	userID, ok := access.ActingUser(w, r)
	if !ok {
		return
	}

	var req NewExercise
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add exercise, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	exercise, err := h.service.Add(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingExerciseName):
			pkg.WriteJSONError(w, "Exercise name is required", http.StatusBadRequest)
		case errors.Is(err, ErrUnknownMuscleGroup):
			pkg.WriteJSONError(w, "Unknown muscle group", http.StatusBadRequest)
		case errors.Is(err, ErrInvalidVolume):
			pkg.WriteJSONError(w, "Volume must not be negative", http.StatusBadRequest)
		default:
			log.Errorf("add exercise for %s: %s", userID, err)
			pkg.WriteJSONError(w, "Failed to save exercise", http.StatusInternalServerError)
		}
		return
	}

	span.SetAttributes(attribute.Int("exercise.id", exercise.ID))
	pkg.WriteJSON(w, exercise, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	owner, ok := access.ViewedUser(w, r, h.viewer)
	if !ok {
		return
	}

	var from, to time.Time
	var err error
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		if from, err = aggregator.ParseDate(fromStr); err != nil {
			pkg.WriteJSONError(w, "invalid from date", http.StatusBadRequest)
			return
		}
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		if to, err = aggregator.ParseDate(toStr); err != nil {
			pkg.WriteJSONError(w, "invalid to date", http.StatusBadRequest)
			return
		}
		to = to.AddDate(0, 0, 1)
	}

	exercises, err := h.service.List(ctx, owner, from, to)
	if err != nil {
		log.Errorf("list exercises for %s: %s", owner, err)
		pkg.WriteJSONError(w, "Failed to fetch exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ListResponse{Exercises: exercises}, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := access.ActingUser(w, r)
	if !ok {
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		pkg.WriteJSONError(w, "error, id NaN", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	if err := h.service.Delete(ctx, userID, id); err != nil {
		switch {
		case errors.Is(err, ErrExerciseNotFound):
			pkg.WriteJSONError(w, "exercise not found", http.StatusNotFound)
		case errors.Is(err, access.ErrForbidden):
			log.Debugf("user %s tried to delete exercise %d", userID, id)
			pkg.WriteJSONError(w, "forbidden", http.StatusForbidden)
		default:
			log.Errorf("delete exercise %d: %s", id, err)
			pkg.WriteJSONError(w, "exercise not deleted", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

// HandleWorkoutVolume answers daily volume totals for an inclusive date
// range. All three parameters are required.
func (h *Handler) HandleWorkoutVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.volume")
	defer span.End()

	query := r.URL.Query()
	if strings.TrimSpace(query.Get("userId")) == "" || query.Get("startDate") == "" || query.Get("endDate") == "" {
		pkg.WriteJSONError(w, "Missing required parameters: userId, startDate, endDate", http.StatusBadRequest)
		return
	}
	start, err := aggregator.ParseDate(query.Get("startDate"))
	if err != nil {
		pkg.WriteJSONError(w, "invalid startDate", http.StatusBadRequest)
		return
	}
	end, err := aggregator.ParseDate(query.Get("endDate"))
	if err != nil {
		pkg.WriteJSONError(w, "invalid endDate", http.StatusBadRequest)
		return
	}

	owner, ok := access.ViewedUser(w, r, h.viewer)
	if !ok {
		return
	}

	volumeData, err := h.service.VolumeByDay(ctx, owner, start, end)
	if err != nil {
		if errors.Is(err, ErrRangeTooLong) {
			pkg.WriteJSONError(w, "date range too long", http.StatusBadRequest)
			return
		}
		log.Errorf("workout volume for %s: %s", owner, err)
		pkg.WriteJSONError(w, "Failed to fetch workout volume data", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, VolumeResponse{VolumeData: volumeData}, http.StatusOK)
}

func (h *Handler) HandleWeeklyVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.volume-weekly")
	defer span.End()

	owner, ok := access.ViewedUser(w, r, h.viewer)
	if !ok {
		return
	}

	ref := h.Now().UTC()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := aggregator.ParseDate(dateStr)
		if err != nil {
			pkg.WriteJSONError(w, "invalid date", http.StatusBadRequest)
			return
		}
		ref = parsed
	}

	week, err := h.service.WeeklyVolume(ctx, owner, ref)
	if err != nil {
		log.Errorf("weekly volume for %s: %s", owner, err)
		pkg.WriteJSONError(w, "Failed to fetch workout volume data", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, week, http.StatusOK)
}
