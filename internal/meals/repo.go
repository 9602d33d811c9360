package meals

import (
	"context"
	"fmt"

	"github.com/2beens/workoutworks/internal/telemetry/tracing"
	"github.com/2beens/workoutworks/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const mealColumns = `id, uid, created_at, to_char(recognition_date, 'YYYY-MM-DD'), food_name, weight, protein_content, is_creatine`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, meal Meal) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", meal.UserID.String()),
		attribute.Bool("creatine", meal.IsCreatine),
	)

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO meal (uid, recognition_date, food_name, weight, protein_content, is_creatine)
			VALUES ($1, $2::date, $3, $4, $5, $6)
			RETURNING id, created_at;`,
		meal.UserID, meal.RecognitionDate, meal.FoodName, meal.Weight, meal.ProteinContent, meal.IsCreatine,
	).Scan(&meal.ID, &meal.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert meal: %w", err)
	}

	return &meal, nil
}

// ListByDate returns the user's entries for one recognition date, newest first.
func (r *Repo) ListByDate(ctx context.Context, userID uuid.UUID, date string) (_ []Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.list-by-date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()), attribute.String("date", date))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+mealColumns+`
			FROM meal
			WHERE uid = $1 AND recognition_date = $2::date
			ORDER BY created_at DESC, id DESC;`,
		userID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("query meals: %w", err)
	}

	return collectMeals(rows)
}

// ListRange returns the user's entries with recognition dates in [from, to],
// oldest first.
func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to string) (_ []Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.list-range")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID.String()),
		attribute.String("from", from),
		attribute.String("to", to),
	)

	rows, err := r.db.Query(
		ctx,
		`SELECT `+mealColumns+`
			FROM meal
			WHERE uid = $1 AND recognition_date BETWEEN $2::date AND $3::date
			ORDER BY recognition_date ASC, created_at ASC;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query meals range: %w", err)
	}

	return collectMeals(rows)
}

func (r *Repo) CreatineLogged(ctx context.Context, userID uuid.UUID, date string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.creatine-logged")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var logged bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (
			SELECT 1 FROM meal WHERE uid = $1 AND recognition_date = $2::date AND is_creatine
		);`,
		userID, date,
	).Scan(&logged); err != nil {
		return false, fmt.Errorf("query creatine: %w", err)
	}

	return logged, nil
}

// LatestWeight returns the weight of the user's newest metric, nil when
// there is no metric or it has no weight.
func (r *Repo) LatestWeight(ctx context.Context, userID uuid.UUID) (_ *float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.latest-weight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var weight *float64
	if err := r.db.QueryRow(
		ctx,
		`SELECT weight FROM metric WHERE uid = $1 ORDER BY created_at DESC, id DESC LIMIT 1;`,
		userID,
	).Scan(&weight); err != nil {
		if pkg.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest weight: %w", err)
	}

	return weight, nil
}

func collectMeals(rows pgx.Rows) ([]Meal, error) {
	meals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Meal, error) {
		var m Meal
		err := row.Scan(
			&m.ID, &m.UserID, &m.CreatedAt, &m.RecognitionDate,
			&m.FoodName, &m.Weight, &m.ProteinContent, &m.IsCreatine,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect meals: %w", err)
	}
	return meals, nil
}
