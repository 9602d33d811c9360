package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/workoutworks/internal/aggregator"
	"github.com/2beens/workoutworks/internal/body"
	"github.com/2beens/workoutworks/internal/meals"

	"github.com/google/uuid"
)

type proteinSource interface {
	Week(ctx context.Context, userID uuid.UUID, date string) (*meals.WeekLog, error)
}

type volumeSource interface {
	VolumeByDay(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]aggregator.DayTotal, error)
}

type bodySource interface {
	ListMetrics(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]body.Metric, error)
	LatestGoal(ctx context.Context, userID uuid.UUID) (*body.Goal, error)
}

// contextService is what the tool handlers read from.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	WeeklyProtein(ctx context.Context, userID uuid.UUID, date string) (*meals.WeekLog, error)
	WorkoutVolume(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]aggregator.DayTotal, error)
	BodyCompositionTrend(ctx context.Context, userID uuid.UUID, window int) (*BodyCompositionTrend, error)
}

type BodyCompositionTrend struct {
	Metrics         []body.Metric               `json:"metrics"`
	Window          int                         `json:"window"`
	MuscleMassTrend []float64                   `json:"muscleMassTrend"`
	BodyFatTrend    []float64                   `json:"bodyFatTrend"`
	Goal            aggregator.BodyComposition  `json:"goal"`
	Deltas          *aggregator.BodyComposition `json:"deltas,omitempty"`
}

// ContextService reads fitness data on behalf of MCP clients.
type ContextService struct {
	schema  SchemaRepo
	protein proteinSource
	volume  volumeSource
	body    bodySource
}

func NewContextService(schema SchemaRepo, protein proteinSource, volume volumeSource, body bodySource) *ContextService {
	return &ContextService{
		schema:  schema,
		protein: protein,
		volume:  volume,
		body:    body,
	}
}

// GetSchema renders the fitness tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetFitnessColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Fitness DB Schema\n\nNo fitness tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}
	tables := make([]string, 0, len(byTable))
	for t := range byTable {
		tables = append(tables, t)
	}
	sort.Strings(tables)

	var b strings.Builder
	b.WriteString("# Fitness DB Schema\n\n")
	for _, table := range tables {
		fmt.Fprintf(&b, "## %s\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|---------|\n", table)
		for _, c := range byTable[table] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func (s *ContextService) WeeklyProtein(ctx context.Context, userID uuid.UUID, date string) (*meals.WeekLog, error) {
	return s.protein.Week(ctx, userID, date)
}

func (s *ContextService) WorkoutVolume(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]aggregator.DayTotal, error) {
	return s.volume.VolumeByDay(ctx, userID, start, end)
}

// BodyCompositionTrend returns every measurement with centered trend lines
// and the distance to the current goal.
func (s *ContextService) BodyCompositionTrend(ctx context.Context, userID uuid.UUID, window int) (*BodyCompositionTrend, error) {
	if window < 1 {
		window = aggregator.DefaultWindow
	}

	metrics, err := s.body.ListMetrics(ctx, userID, time.Time{}, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}

	goal := aggregator.DefaultGoal
	latestGoal, err := s.body.LatestGoal(ctx, userID)
	switch {
	case err == nil:
		goal = latestGoal.Composition()
	case !errors.Is(err, body.ErrGoalNotFound):
		return nil, fmt.Errorf("latest goal: %w", err)
	}

	muscleMass := make([]float64, len(metrics))
	bodyFat := make([]float64, len(metrics))
	for i, m := range metrics {
		muscleMass[i] = m.SkeletalMuscleMass
		bodyFat[i] = m.PercentBodyFat
	}

	trend := &BodyCompositionTrend{
		Metrics:         metrics,
		Window:          window,
		MuscleMassTrend: aggregator.MovingAverage(muscleMass, window),
		BodyFatTrend:    aggregator.MovingAverage(bodyFat, window),
		Goal:            goal,
	}
	if trend.Metrics == nil {
		trend.Metrics = []body.Metric{}
	}
	if len(metrics) > 0 {
		deltas := aggregator.GoalDeltas(metrics[len(metrics)-1].Composition(), goal)
		trend.Deltas = &deltas
	}

	return trend, nil
}
