package inference

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/workoutworks/internal/telemetry/tracing"
	"github.com/2beens/workoutworks/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=inference_mocks_test.go -package=inference_test

type estimator interface {
	EstimateProtein(ctx context.Context, food string, weightGrams float64, instruction string) (float64, error)
	EstimateVolume(ctx context.Context, content, instruction string) (*VolumeEstimate, error)
	PredictMuscleGroup(ctx context.Context, exerciseName string, vocabulary []string) (string, bool, error)
}

type ProteinRequest struct {
	Food        string  `json:"food"`
	Weight      float64 `json:"weight"`
	Instruction string  `json:"instruction"`
}

type ProteinResponse struct {
	Protein float64 `json:"protein"`
}

type VolumeRequest struct {
	Content     string `json:"content"`
	Instruction string `json:"instruction"`
}

type MuscleGroupRequest struct {
	ExerciseName string   `json:"exerciseName"`
	MuscleGroups []string `json:"muscleGroups"`
}

type MuscleGroupResponse struct {
	MuscleGroup *string `json:"muscleGroup"`
}

type Handler struct {
	estimator estimator
}

func NewHandler(estimator estimator) *Handler {
	return &Handler{
		estimator: estimator,
	}
}

func (h *Handler) HandleCalculateProtein(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.inference.protein")
	defer span.End()

	var req ProteinRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Food) == "" || req.Weight <= 0 {
		pkg.WriteJSONError(w, "Food name and weight are required", http.StatusBadRequest)
		return
	}

	protein, err := h.estimator.EstimateProtein(ctx, req.Food, req.Weight, req.Instruction)
	if err != nil {
		if errors.Is(err, ErrNotFood) {
			pkg.WriteJSONError(w, "This does not appear to be a valid food item", http.StatusBadRequest)
			return
		}
		log.Errorf("calculate protein for [%s]: %s", req.Food, err)
		pkg.WriteJSONError(w, "Failed to calculate protein content", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ProteinResponse{Protein: protein}, http.StatusOK)
}

func (h *Handler) HandleCalculateVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.inference.volume")
	defer span.End()

	var req VolumeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		pkg.WriteJSONError(w, "Exercise details are required", http.StatusBadRequest)
		return
	}

	estimate, err := h.estimator.EstimateVolume(ctx, req.Content, req.Instruction)
	if err != nil {
		if errors.Is(err, ErrEmptyContent) {
			pkg.WriteJSONError(w, "Exercise details are required", http.StatusBadRequest)
			return
		}
		log.Errorf("calculate total volume: %s", err)
		pkg.WriteJSONError(w, "Failed to calculate total volume", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, estimate, http.StatusOK)
}

func (h *Handler) HandlePredictMuscleGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.inference.muscleGroup")
	defer span.End()

	var req MuscleGroupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.ExerciseName) == "" {
		pkg.WriteJSONError(w, "Exercise name is required", http.StatusBadRequest)
		return
	}
	if len(req.MuscleGroups) == 0 {
		pkg.WriteJSONError(w, "Valid muscle groups array is required", http.StatusBadRequest)
		return
	}

	group, ok, err := h.estimator.PredictMuscleGroup(ctx, req.ExerciseName, req.MuscleGroups)
	if err != nil {
		log.Errorf("predict muscle group for [%s]: %s", req.ExerciseName, err)
		pkg.WriteJSONError(w, "Failed to predict muscle group", http.StatusInternalServerError)
		return
	}

	resp := MuscleGroupResponse{}
	if ok {
		resp.MuscleGroup = &group
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		pkg.WriteJSONError(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Tracef("decode request body: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}
