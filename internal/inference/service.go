package inference

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/workoutworks/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrNotFood             = errors.New("not a food item")
	ErrMissingFood         = errors.New("food name is required")
	ErrInvalidWeight       = errors.New("weight must be positive")
	ErrEmptyContent        = errors.New("exercise details are required")
	ErrMissingExerciseName = errors.New("exercise name is required")
	ErrEmptyVocabulary     = errors.New("muscle group vocabulary is empty")
)

type completer interface {
	Complete(ctx context.Context, task Task, messages []Message, temperature *float64) (string, error)
}

type Service struct {
	completer completer
}

func NewService(completer completer) *Service {
	return &Service{
		completer: completer,
	}
}

// EstimateProtein first makes sure food is actually a food, then asks for the
// grams of protein in weightGrams of it.
func (s *Service) EstimateProtein(ctx context.Context, food string, weightGrams float64, instruction string) (protein float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "inference.service.estimateProtein")
	span.SetAttributes(attribute.String("food", food))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	food = strings.TrimSpace(food)
	if food == "" {
		return 0, ErrMissingFood
	}
	if weightGrams <= 0 {
		return 0, ErrInvalidWeight
	}

	foodCheck, err := s.completer.Complete(ctx, TaskFoodCheck, foodCheckMessages(food), nil)
	if err != nil {
		return 0, fmt.Errorf("food check: %w", err)
	}
	if !ParseFoodCheck(foodCheck) {
		log.Debugf("inference: [%s] is not a food, answer: %s", food, foodCheck)
		return 0, ErrNotFood
	}

	answer, err := s.completer.Complete(ctx, TaskProtein, proteinMessages(food, weightGrams, instruction), nil)
	if err != nil {
		return 0, fmt.Errorf("protein estimate: %w", err)
	}

	return ParseProtein(answer)
}

func (s *Service) EstimateVolume(ctx context.Context, content, instruction string) (estimate *VolumeEstimate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "inference.service.estimateVolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	temperature := volumeTemperature
	answer, err := s.completer.Complete(ctx, TaskVolume, volumeMessages(content, instruction), &temperature)
	if err != nil {
		return nil, fmt.Errorf("volume estimate: %w", err)
	}

	estimate, err = ParseVolumeResponse(answer)
	if err != nil {
		log.Errorf("inference: failed to parse volume answer [%s]: %s", answer, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("volume", estimate.Volume))

	return estimate, nil
}

// PredictMuscleGroup returns false when the answer is outside vocabulary.
func (s *Service) PredictMuscleGroup(ctx context.Context, exerciseName string, vocabulary []string) (_ string, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "inference.service.predictMuscleGroup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exerciseName = strings.TrimSpace(exerciseName)
	if exerciseName == "" {
		return "", false, ErrMissingExerciseName
	}
	if len(vocabulary) == 0 {
		return "", false, ErrEmptyVocabulary
	}

	temperature := muscleGroupTemperature
	answer, err := s.completer.Complete(ctx, TaskMuscleGroup, muscleGroupMessages(exerciseName, vocabulary), &temperature)
	if errors.Is(err, ErrEmptyCompletion) {
		log.Warnf("inference: no muscle group answer for exercise [%s]", exerciseName)
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("muscle group prediction: %w", err)
	}

	group, ok := ParseMuscleGroup(answer, vocabulary)
	if !ok {
		log.Warnf("inference: invalid muscle group [%s] for exercise [%s]", answer, exerciseName)
	}

	return group, ok, nil
}
