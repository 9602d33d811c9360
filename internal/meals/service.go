package meals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/workoutworks/internal/aggregator"
	"github.com/2beens/workoutworks/internal/telemetry/metrics"
	"github.com/2beens/workoutworks/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrMissingFields           = errors.New("please fill in all fields")
	ErrInvalidDate             = errors.New("invalid date")
	ErrCreatineAlreadyLogged   = errors.New("creatine has already been logged for today")
	ErrNegativeProteinOrWeight = errors.New("weight and protein must not be negative")
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=meals_test

type mealsRepo interface {
	Add(ctx context.Context, meal Meal) (*Meal, error)
	ListByDate(ctx context.Context, userID uuid.UUID, date string) ([]Meal, error)
	ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]Meal, error)
	CreatineLogged(ctx context.Context, userID uuid.UUID, date string) (bool, error)
	LatestWeight(ctx context.Context, userID uuid.UUID) (*float64, error)
}

// NewMeal is a meal entry as submitted. Weight and ProteinContent are
// ignored for creatine.
type NewMeal struct {
	FoodName        string   `json:"foodName"`
	Weight          *float64 `json:"weight"`
	ProteinContent  *float64 `json:"proteinContent"`
	RecognitionDate string   `json:"recognitionDate"`
}

type DayLog struct {
	Date          string  `json:"date"`
	Meals         []Meal  `json:"meals"`
	TotalProtein  float64 `json:"totalProtein"`
	ProteinGoal   int     `json:"proteinGoal"`
	CreatineTaken bool    `json:"creatineTaken"`
}

type WeekLog struct {
	WeekStart   string                `json:"weekStart"`
	Days        []aggregator.DayTotal `json:"days"`
	ProteinGoal int                   `json:"proteinGoal"`
}

type Service struct {
	repo           mealsRepo
	metricsManager *metrics.Manager
	// Now is the clock used for entries submitted without a date.
	Now func() time.Time
}

func NewService(repo mealsRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
		Now:            time.Now,
	}
}

// Log stores a meal entry. Creatine is stored with a fixed weight and no
// protein, and at most once per recognition date. That rule is a read
// before the write, so two concurrent creatine submissions can both pass it.
func (s *Service) Log(ctx context.Context, userID uuid.UUID, newMeal NewMeal) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.meals.log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	date, err := s.recognitionDate(newMeal.RecognitionDate)
	if err != nil {
		return nil, err
	}

	meal := Meal{
		UserID:          userID,
		RecognitionDate: date,
		FoodName:        strings.TrimSpace(newMeal.FoodName),
	}
	span.SetAttributes(attribute.String("date", date))

	if IsCreatine(meal.FoodName) {
		logged, err := s.repo.CreatineLogged(ctx, userID, date)
		if err != nil {
			return nil, fmt.Errorf("check creatine: %w", err)
		}
		if logged {
			if s.metricsManager != nil {
				s.metricsManager.CounterCreatineRejected.Inc()
			}
			return nil, ErrCreatineAlreadyLogged
		}
		meal.IsCreatine = true
		meal.Weight = CreatineWeight
		meal.ProteinContent = 0
	} else {
		if meal.FoodName == "" || newMeal.Weight == nil || newMeal.ProteinContent == nil {
			return nil, ErrMissingFields
		}
		if *newMeal.Weight <= 0 || *newMeal.ProteinContent < 0 {
			return nil, ErrNegativeProteinOrWeight
		}
		meal.Weight = *newMeal.Weight
		meal.ProteinContent = *newMeal.ProteinContent
	}

	added, err := s.repo.Add(ctx, meal)
	if err != nil {
		return nil, fmt.Errorf("add meal: %w", err)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterMeals.Inc()
	}
	log.Tracef("meal %d logged for %s on %s", added.ID, userID, date)

	return added, nil
}

// Day returns the entries for one recognition date with the protein totals.
func (s *Service) Day(ctx context.Context, userID uuid.UUID, date string) (_ *DayLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.meals.day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if date, err = s.recognitionDate(date); err != nil {
		return nil, err
	}

	meals, err := s.repo.ListByDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	goal, err := s.proteinGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	day := &DayLog{
		Date:        date,
		Meals:       meals,
		ProteinGoal: goal,
	}
	if day.Meals == nil {
		day.Meals = []Meal{}
	}
	for _, m := range meals {
		day.TotalProtein += m.ProteinContent
		if m.IsCreatine {
			day.CreatineTaken = true
		}
	}

	return day, nil
}

// Week returns Monday..Sunday protein totals for the week containing date.
func (s *Service) Week(ctx context.Context, userID uuid.UUID, date string) (_ *WeekLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.meals.week")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if date, err = s.recognitionDate(date); err != nil {
		return nil, err
	}
	ref, err := aggregator.ParseDate(date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	start := aggregator.WeekStart(ref)
	end := start.AddDate(0, 0, 6)

	meals, err := s.repo.ListRange(ctx, userID, start.Format(aggregator.DateLayout), end.Format(aggregator.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("list week meals: %w", err)
	}

	records := make([]aggregator.Record, 0, len(meals))
	for _, m := range meals {
		d, err := aggregator.ParseDate(m.RecognitionDate)
		if err != nil {
			log.Warnf("meal %d has an unreadable date %q", m.ID, m.RecognitionDate)
			continue
		}
		records = append(records, aggregator.Record{Date: d, Value: m.ProteinContent})
	}

	goal, err := s.proteinGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &WeekLog{
		WeekStart:   start.Format(aggregator.DateLayout),
		Days:        aggregator.WeekBucket(ref, records),
		ProteinGoal: goal,
	}, nil
}

func (s *Service) proteinGoal(ctx context.Context, userID uuid.UUID) (int, error) {
	weight, err := s.repo.LatestWeight(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("latest weight: %w", err)
	}
	return aggregator.ProteinGoal(weight), nil
}

// recognitionDate validates date, defaulting to today.
func (s *Service) recognitionDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return s.Now().UTC().Format(aggregator.DateLayout), nil
	}
	parsed, err := aggregator.ParseDate(date)
	if err != nil {
		return "", ErrInvalidDate
	}
	return parsed.Format(aggregator.DateLayout), nil
}
