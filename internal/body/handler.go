package body

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
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

const maxTrendWindow = 31

//go:generate mockgen -source=$GOFILE -destination=body_mocks_test.go -package=body_test

type bodyRepo interface {
	AddMetric(ctx context.Context, metric Metric) (*Metric, error)
	ListMetrics(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Metric, error)
	LatestMetric(ctx context.Context, userID uuid.UUID) (*Metric, error)
	AddGoal(ctx context.Context, goal Goal) (*Goal, error)
	LatestGoal(ctx context.Context, userID uuid.UUID) (*Goal, error)
}

type viewer interface {
	Viewable(ctx context.Context, acting, requested uuid.UUID) (uuid.UUID, error)
}

type AddMetricRequest struct {
	Weight             *float64 `json:"weight"`
	SkeletalMuscleMass *float64 `json:"skeletalMuscleMass"`
	PercentBodyFat     *float64 `json:"percentBodyFat"`
}

type AddGoalRequest struct {
	SkeletalMuscleMass *float64 `json:"skeletalMuscleMass"`
	PercentBodyFat     *float64 `json:"percentBodyFat"`
}

type MetricsResponse struct {
	Metrics []Metric `json:"metrics"`
}

type LatestMetricResponse struct {
	Metric *Metric `json:"metric"`
}

type GoalResponse struct {
	Goal      aggregator.BodyComposition `json:"goal"`
	IsDefault bool                       `json:"isDefault"`
}

type ProgressResponse struct {
	Metrics         []Metric                    `json:"metrics"`
	Window          int                         `json:"window"`
	MuscleMassTrend []float64                   `json:"muscleMassTrend"`
	BodyFatTrend    []float64                   `json:"bodyFatTrend"`
	Goal            aggregator.BodyComposition  `json:"goal"`
	Deltas          *aggregator.BodyComposition `json:"deltas"`
}

type Handler struct {
	repo   bodyRepo
	viewer viewer
}

func NewHandler(repo bodyRepo, viewer viewer) *Handler {
	return &Handler{
		repo:   repo,
		viewer: viewer,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/metrics", h.HandleAddMetric).Methods("POST", "OPTIONS").Name("new-metric")
	r.HandleFunc("/api/metrics", h.HandleListMetrics).Methods("GET", "OPTIONS").Name("list-metrics")
	r.HandleFunc("/api/metrics/latest", h.HandleLatestMetric).Methods("GET", "OPTIONS").Name("latest-metric")
	r.HandleFunc("/api/goals", h.HandleAddGoal).Methods("POST", "OPTIONS").Name("new-goal")
	r.HandleFunc("/api/goals/latest", h.HandleLatestGoal).Methods("GET", "OPTIONS").Name("latest-goal")
	r.HandleFunc("/api/progress", h.HandleProgress).Methods("GET", "OPTIONS").Name("progress")
}

func (h *Handler) HandleAddMetric(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.metric.add")
	defer span.End()

	userID, ok := access.ActingUser(w, r)
	if !ok {
		return
	}

	var req AddMetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add metric, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SkeletalMuscleMass == nil || req.PercentBodyFat == nil {
		pkg.WriteJSONError(w, "Please fill in all fields", http.StatusBadRequest)
		return
	}
	if *req.SkeletalMuscleMass <= 0 || *req.PercentBodyFat < 0 || *req.PercentBodyFat > 100 {
		pkg.WriteJSONError(w, "Invalid body composition values", http.StatusBadRequest)
		return
	}
	if req.Weight != nil && *req.Weight <= 0 {
		pkg.WriteJSONError(w, "Invalid weight", http.StatusBadRequest)
		return
	}

	span.SetAttributes(attribute.String("user.id", userID.String()))
	metric, err := h.repo.AddMetric(ctx, Metric{
		UserID:             userID,
		Weight:             req.Weight,
		SkeletalMuscleMass: *req.SkeletalMuscleMass,
		PercentBodyFat:     *req.PercentBodyFat,
	})
	if err != nil {
		log.Errorf("add metric for %s: %s", userID, err)
		pkg.WriteJSONError(w, "Failed to save metric", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, metric, http.StatusCreated)
}

func (h *Handler) HandleListMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.metric.list")
	defer span.End()

	owner, ok := access.ViewedUser(w, r, h.viewer)
	if !ok {
		return
	}

	from, to, err := dateRange(r)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	span.SetAttributes(attribute.String("owner.id", owner.String()))
	metrics, err := h.repo.ListMetrics(ctx, owner, from, to)
	if err != nil {
		log.Errorf("list metrics for %s: %s", owner, err)
		pkg.WriteJSONError(w, "Failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	if metrics == nil {
		metrics = []Metric{}
	}

	pkg.WriteJSON(w, MetricsResponse{Metrics: metrics}, http.StatusOK)
}

func (h *Handler) HandleLatestMetric(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.metric.latest")
	defer span.End()

	owner, ok := access.ViewedUser(w, r, h.viewer)
	if !ok {
		return
	}

	metric, err := h.repo.LatestMetric(ctx, owner)
	if err != nil && !errors.Is(err, ErrMetricNotFound) {
		log.Errorf("latest metric for %s: %s", owner, err)
		pkg.WriteJSONError(w, "Failed to fetch metric", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, LatestMetricResponse{Metric: metric}, http.StatusOK)
}

func (h *Handler) HandleAddGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.goal.add")
	defer span.End()

	userID, ok := access.ActingUser(w, r)
	if !ok {
		return
	}

	var req AddGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add goal, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SkeletalMuscleMass == nil || req.PercentBodyFat == nil {
		pkg.WriteJSONError(w, "Please fill in all fields", http.StatusBadRequest)
		return
	}
	if *req.SkeletalMuscleMass <= 0 || *req.PercentBodyFat < 0 || *req.PercentBodyFat > 100 {
		pkg.WriteJSONError(w, "Invalid body composition values", http.StatusBadRequest)
		return
	}

	goal, err := h.repo.AddGoal(ctx, Goal{
		UserID:             userID,
		SkeletalMuscleMass: *req.SkeletalMuscleMass,
		PercentBodyFat:     *req.PercentBodyFat,
	})
	if err != nil {
		log.Errorf("add goal for %s: %s", userID, err)
		pkg.WriteJSONError(w, "Failed to save goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, goal, http.StatusCreated)
}

func (h *Handler) HandleLatestGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.goal.latest")
	defer span.End()

	owner, ok := access.ViewedUser(w, r, h.viewer)
	if !ok {
		return
	}

	goal, isDefault, err := h.currentGoal(ctx, owner)
	if err != nil {
		log.Errorf("latest goal for %s: %s", owner, err)
		pkg.WriteJSONError(w, "Failed to fetch goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, GoalResponse{Goal: goal, IsDefault: isDefault}, http.StatusOK)
}

// HandleProgress returns the whole metric series with centered trend lines,
// the current goal and how far the latest metric is from it.
func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.progress")
	defer span.End()

	owner, ok := access.ViewedUser(w, r, h.viewer)
	if !ok {
		return
	}

	window := aggregator.DefaultWindow
	if windowStr := r.URL.Query().Get("window"); windowStr != "" {
		parsed, err := strconv.Atoi(windowStr)
		if err != nil || parsed < 1 || parsed > maxTrendWindow {
			pkg.WriteJSONError(w, "invalid window", http.StatusBadRequest)
			return
		}
		window = parsed
	}
	span.SetAttributes(attribute.Int("window", window))

	metrics, err := h.repo.ListMetrics(ctx, owner, time.Time{}, time.Time{})
	if err != nil {
		log.Errorf("progress, list metrics for %s: %s", owner, err)
		pkg.WriteJSONError(w, "Failed to fetch metrics", http.StatusInternalServerError)
		return
	}

	goal, _, err := h.currentGoal(ctx, owner)
	if err != nil {
		log.Errorf("progress, latest goal for %s: %s", owner, err)
		pkg.WriteJSONError(w, "Failed to fetch goal", http.StatusInternalServerError)
		return
	}

	muscleMass := make([]float64, len(metrics))
	bodyFat := make([]float64, len(metrics))
	for i, m := range metrics {
		muscleMass[i] = m.SkeletalMuscleMass
		bodyFat[i] = m.PercentBodyFat
	}

	resp := ProgressResponse{
		Metrics:         metrics,
		Window:          window,
		MuscleMassTrend: aggregator.MovingAverage(muscleMass, window),
		BodyFatTrend:    aggregator.MovingAverage(bodyFat, window),
		Goal:            goal,
	}
	if resp.Metrics == nil {
		resp.Metrics = []Metric{}
	}
	if len(metrics) > 0 {
		deltas := aggregator.GoalDeltas(metrics[len(metrics)-1].Composition(), goal)
		resp.Deltas = &deltas
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) currentGoal(ctx context.Context, owner uuid.UUID) (aggregator.BodyComposition, bool, error) {
	goal, err := h.repo.LatestGoal(ctx, owner)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			return aggregator.DefaultGoal, true, nil
		}
		return aggregator.BodyComposition{}, false, err
	}
	return goal.Composition(), false, nil
}

// dateRange reads the optional inclusive from/to dates and returns them as
// a half open [from, to+1d) range.
func dateRange(r *http.Request) (from, to time.Time, err error) {
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		if from, err = aggregator.ParseDate(fromStr); err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid from date")
		}
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		if to, err = aggregator.ParseDate(toStr); err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid to date")
		}
		to = to.AddDate(0, 0, 1)
	}
	return from, to, nil
}
