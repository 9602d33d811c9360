package workouts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/workoutworks/internal/access"
	"github.com/2beens/workoutworks/internal/aggregator"
	"github.com/2beens/workoutworks/internal/inference"
	"github.com/2beens/workoutworks/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// maxVolumeRangeDays bounds the day buckets a single volume query may ask for.
const maxVolumeRangeDays = 366

var (
	ErrMissingExerciseName = errors.New("exercise name is required")
	ErrUnknownMuscleGroup  = errors.New("unknown muscle group")
	ErrInvalidVolume       = errors.New("volume must not be negative")
	ErrRangeTooLong        = errors.New("date range too long")
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type exercisesRepo interface {
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	Get(ctx context.Context, id int) (*Exercise, error)
	List(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Exercise, error)
	VolumeRecords(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]aggregator.Record, error)
	Delete(ctx context.Context, id int) error
}

type estimator interface {
	EstimateVolume(ctx context.Context, content, instruction string) (*inference.VolumeEstimate, error)
	PredictMuscleGroup(ctx context.Context, exerciseName string, vocabulary []string) (string, bool, error)
}

type NewExercise struct {
	ExerciseName      string   `json:"exerciseName"`
	BrandName         *string  `json:"brandName"`
	IsFreeweight      bool     `json:"isFreeweight"`
	Content           string   `json:"content"`
	TotalVolume       *float64 `json:"totalVolume"`
	TargetMuscleGroup string   `json:"targetMuscleGroup"`
	// Estimate fills a missing volume and muscle group through inference.
	Estimate bool `json:"estimate"`
}

type WeekVolume struct {
	WeekStart string                `json:"weekStart"`
	Days      []aggregator.DayTotal `json:"days"`
}

type Service struct {
	repo      exercisesRepo
	estimator estimator
}

func NewService(repo exercisesRepo, estimator estimator) *Service {
	return &Service{
		repo:      repo,
		estimator: estimator,
	}
}

// Add stores an exercise. With Estimate set, a missing volume and muscle
// group are filled in through inference; a failed estimate leaves the field
// empty and the exercise is stored anyway.
func (s *Service) Add(ctx context.Context, userID uuid.UUID, newExercise NewExercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise := Exercise{
		UserID:       userID,
		ExerciseName: strings.TrimSpace(newExercise.ExerciseName),
		IsFreeweight: newExercise.IsFreeweight,
		Content:      strings.TrimSpace(newExercise.Content),
		TotalVolume:  newExercise.TotalVolume,
	}
	if exercise.ExerciseName == "" {
		return nil, ErrMissingExerciseName
	}
	if newExercise.BrandName != nil {
		if brand := strings.TrimSpace(*newExercise.BrandName); brand != "" {
			exercise.BrandName = &brand
		}
	}
	if exercise.TotalVolume != nil && *exercise.TotalVolume < 0 {
		return nil, ErrInvalidVolume
	}

	group, ok := NormalizeMuscleGroup(newExercise.TargetMuscleGroup)
	if !ok {
		return nil, ErrUnknownMuscleGroup
	}
	exercise.TargetMuscleGroup = group

	span.SetAttributes(attribute.Bool("estimate", newExercise.Estimate))
	if newExercise.Estimate && s.estimator != nil {
		s.fillEstimates(ctx, &exercise)
	}

	added, err := s.repo.Add(ctx, exercise)
	if err != nil {
		return nil, fmt.Errorf("add exercise: %w", err)
	}
	added.VolumeEquation = exercise.VolumeEquation

	return added, nil
}

func (s *Service) fillEstimates(ctx context.Context, exercise *Exercise) {
	if exercise.TotalVolume == nil && exercise.Content != "" {
		estimate, err := s.estimator.EstimateVolume(ctx, exercise.Content, "")
		if err != nil {
			log.Warnf("estimate volume for %q: %s", exercise.ExerciseName, err)
		} else {
			volume := float64(estimate.Volume)
			exercise.TotalVolume = &volume
			exercise.VolumeEquation = estimate.Equation
		}
	}

	if exercise.TargetMuscleGroup == "" {
		group, found, err := s.estimator.PredictMuscleGroup(ctx, exercise.ExerciseName, DefaultMuscleGroups)
		if err != nil {
			log.Warnf("predict muscle group for %q: %s", exercise.ExerciseName, err)
		} else if found {
			exercise.TargetMuscleGroup = group
		}
	}
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Exercise, error) {
	exercises, err := s.repo.List(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	if exercises == nil {
		exercises = []Exercise{}
	}
	return exercises, nil
}

// Delete removes an exercise owned by acting.
func (s *Service) Delete(ctx context.Context, acting uuid.UUID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	exercise, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanMutate(acting, exercise.UserID) {
		return access.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

// VolumeByDay returns one total per calendar day in [start, end].
func (s *Service) VolumeByDay(ctx context.Context, userID uuid.UUID, start, end time.Time) (_ []aggregator.DayTotal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.volume-by-day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start = aggregator.CalendarDate(start)
	end = aggregator.CalendarDate(end)
	if end.Sub(start) > maxVolumeRangeDays*24*time.Hour {
		return nil, ErrRangeTooLong
	}

	records, err := s.repo.VolumeRecords(ctx, userID, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("volume records: %w", err)
	}

	return aggregator.SumByDay(start, end, records), nil
}

// WeeklyVolume returns Monday..Sunday totals for the week containing ref.
func (s *Service) WeeklyVolume(ctx context.Context, userID uuid.UUID, ref time.Time) (*WeekVolume, error) {
	start := aggregator.WeekStart(ref)
	records, err := s.repo.VolumeRecords(ctx, userID, start, start.AddDate(0, 0, 7))
	if err != nil {
		return nil, fmt.Errorf("weekly volume records: %w", err)
	}

	return &WeekVolume{
		WeekStart: start.Format(aggregator.DateLayout),
		Days:      aggregator.WeekBucket(ref, records),
	}, nil
}
