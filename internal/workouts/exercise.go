package workouts

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultMuscleGroups is the vocabulary exercises are classified into.
var DefaultMuscleGroups = []string{"chest", "back", "legs", "shoulders", "arms", "core"}

type Exercise struct {
	ID                int       `json:"id"`
	UserID            uuid.UUID `json:"userId"`
	CreatedAt         time.Time `json:"createdAt"`
	ExerciseName      string    `json:"exerciseName"`
	BrandName         *string   `json:"brandName"`
	IsFreeweight      bool      `json:"isFreeweight"`
	Content           string    `json:"content"`
	TotalVolume       *float64  `json:"totalVolume"`
	TargetMuscleGroup string    `json:"targetMuscleGroup"`
	// VolumeEquation is how an estimated volume was worked out, not stored.
	VolumeEquation string `json:"volumeEquation,omitempty"`
}

// NormalizeMuscleGroup lower cases group and reports whether it is known.
// An empty group is valid and stays empty.
func NormalizeMuscleGroup(group string) (string, bool) {
	group = strings.ToLower(strings.TrimSpace(group))
	if group == "" {
		return "", true
	}
	return group, slices.Contains(DefaultMuscleGroups, group)
}
