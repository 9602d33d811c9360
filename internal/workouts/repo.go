package workouts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/workoutworks/internal/aggregator"
	"github.com/2beens/workoutworks/internal/telemetry/tracing"
	"github.com/2beens/workoutworks/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrExerciseNotFound = errors.New("exercise not found")

const exerciseColumns = `id, uid, created_at, exercise_name, brand_name, is_freeweight, content, total_volume, target_muscle_group`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", exercise.UserID.String()))

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO exercise
				(uid, exercise_name, brand_name, is_freeweight, content, total_volume, target_muscle_group)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at;`,
		exercise.UserID, exercise.ExerciseName, exercise.BrandName, exercise.IsFreeweight,
		exercise.Content, exercise.TotalVolume, exercise.TargetMuscleGroup,
	).Scan(&exercise.ID, &exercise.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	return &exercise, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(ctx, `SELECT `+exerciseColumns+` FROM exercise WHERE id = $1;`, id)
	if err != nil {
		return nil, fmt.Errorf("query exercise: %w", err)
	}

	exercise, err := pgx.CollectOneRow(rows, scanExercise)
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("collect exercise: %w", err)
	}

	return &exercise, nil
}

// List returns the user's exercises newest first. Zero from/to leave that
// side of the range open; to is exclusive.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	conditions, args := rangeConditions(userID, from, to)
	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+`
			FROM exercise
			WHERE `+conditions+`
			ORDER BY created_at DESC, id DESC;`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}

	exercises, err := pgx.CollectRows(rows, scanExercise)
	if err != nil {
		return nil, fmt.Errorf("collect exercises: %w", err)
	}
	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))

	return exercises, nil
}

// VolumeRecords returns the recorded volumes in [from, to), dated in UTC.
// Exercises without a volume are skipped.
func (r *Repo) VolumeRecords(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []aggregator.Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.volume-records")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	conditions, args := rangeConditions(userID, from, to)
	rows, err := r.db.Query(
		ctx,
		`SELECT created_at, total_volume
			FROM exercise
			WHERE `+conditions+` AND total_volume IS NOT NULL
			ORDER BY created_at ASC;`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query volumes: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (aggregator.Record, error) {
		var rec aggregator.Record
		err := row.Scan(&rec.Date, &rec.Value)
		rec.Date = rec.Date.UTC()
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect volumes: %w", err)
	}

	return records, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func rangeConditions(userID uuid.UUID, from, to time.Time) (string, []any) {
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
	return strings.Join(conditions, " AND "), args
}

func scanExercise(row pgx.CollectableRow) (Exercise, error) {
	var e Exercise
	err := row.Scan(
		&e.ID, &e.UserID, &e.CreatedAt, &e.ExerciseName, &e.BrandName,
		&e.IsFreeweight, &e.Content, &e.TotalVolume, &e.TargetMuscleGroup,
	)
	return e, err
}
