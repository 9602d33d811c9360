package body

import (
	"time"

	"github.com/2beens/workoutworks/internal/aggregator"

	"github.com/google/uuid"
)

// Metric is one body composition measurement. Metrics are append only,
// the newest one is the user's current composition.
type Metric struct {
	ID                 int       `json:"id"`
	UserID             uuid.UUID `json:"userId"`
	CreatedAt          time.Time `json:"createdAt"`
	Weight             *float64  `json:"weight"`
	SkeletalMuscleMass float64   `json:"skeletalMuscleMass"`
	PercentBodyFat     float64   `json:"percentBodyFat"`
}

func (m Metric) Composition() aggregator.BodyComposition {
	return aggregator.BodyComposition{
		SkeletalMuscleMass: m.SkeletalMuscleMass,
		PercentBodyFat:     m.PercentBodyFat,
	}
}

// Goal is a body composition target. The newest goal wins.
type Goal struct {
	ID                 int       `json:"id"`
	UserID             uuid.UUID `json:"userId"`
	CreatedAt          time.Time `json:"createdAt"`
	SkeletalMuscleMass float64   `json:"skeletalMuscleMass"`
	PercentBodyFat     float64   `json:"percentBodyFat"`
}

func (g Goal) Composition() aggregator.BodyComposition {
	return aggregator.BodyComposition{
		SkeletalMuscleMass: g.SkeletalMuscleMass,
		PercentBodyFat:     g.PercentBodyFat,
	}
}
