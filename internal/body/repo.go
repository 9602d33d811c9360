package body

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/workoutworks/internal/telemetry/tracing"
	"github.com/2beens/workoutworks/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrMetricNotFound = errors.New("metric not found")
	ErrGoalNotFound   = errors.New("goal not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddMetric(ctx context.Context, metric Metric) (_ *Metric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.metric.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", metric.UserID.String()))

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO metric (uid, weight, skeletal_muscle_mass, percent_body_fat)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at;`,
		metric.UserID, metric.Weight, metric.SkeletalMuscleMass, metric.PercentBodyFat,
	).Scan(&metric.ID, &metric.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert metric: %w", err)
	}

	return &metric, nil
}

// ListMetrics returns the user's metrics ascending by creation time.
// Zero from/to leave that side of the range open; to is exclusive.
func (r *Repo) ListMetrics(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []Metric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.metric.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	conditions := []string{"uid = $1"}
	args := []any{userID}
	if !from.IsZero() {
		args = append(args, from)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if !to.IsZero() {
		args = append(args, to)
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", len(args)))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, uid, created_at, weight, skeletal_muscle_mass, percent_body_fat
			FROM metric
			WHERE `+strings.Join(conditions, " AND ")+`
			ORDER BY created_at ASC, id ASC;`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query metrics: %w", err)
	}

	metrics, err := pgx.CollectRows(rows, scanMetric)
	if err != nil {
		return nil, fmt.Errorf("collect metrics: %w", err)
	}
	span.SetAttributes(attribute.Int("metrics.count", len(metrics)))

	return metrics, nil
}

func (r *Repo) LatestMetric(ctx context.Context, userID uuid.UUID) (_ *Metric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.metric.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, uid, created_at, weight, skeletal_muscle_mass, percent_body_fat
			FROM metric
			WHERE uid = $1
			ORDER BY created_at DESC, id DESC
			LIMIT 1;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query latest metric: %w", err)
	}

	metric, err := pgx.CollectOneRow(rows, scanMetric)
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrMetricNotFound
		}
		return nil, fmt.Errorf("collect latest metric: %w", err)
	}

	return &metric, nil
}

func (r *Repo) AddGoal(ctx context.Context, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.goal.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", goal.UserID.String()))

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO goal (uid, skeletal_muscle_mass, percent_body_fat)
			VALUES ($1, $2, $3)
			RETURNING id, created_at;`,
		goal.UserID, goal.SkeletalMuscleMass, goal.PercentBodyFat,
	).Scan(&goal.ID, &goal.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}

	return &goal, nil
}

func (r *Repo) LatestGoal(ctx context.Context, userID uuid.UUID) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.goal.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	var goal Goal
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, uid, created_at, skeletal_muscle_mass, percent_body_fat
			FROM goal
			WHERE uid = $1
			ORDER BY created_at DESC, id DESC
			LIMIT 1;`,
		userID,
	).Scan(&goal.ID, &goal.UserID, &goal.CreatedAt, &goal.SkeletalMuscleMass, &goal.PercentBodyFat); err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("query latest goal: %w", err)
	}

	return &goal, nil
}

func scanMetric(row pgx.CollectableRow) (Metric, error) {
	var m Metric
	err := row.Scan(&m.ID, &m.UserID, &m.CreatedAt, &m.Weight, &m.SkeletalMuscleMass, &m.PercentBodyFat)
	return m, err
}
