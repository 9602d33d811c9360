package meals

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	creatineName = "creatine"
	// a creatine scoop is logged with a fixed weight and no protein
	CreatineWeight = 5
)

type Meal struct {
	ID              int       `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	CreatedAt       time.Time `json:"createdAt"`
	RecognitionDate string    `json:"recognitionDate"`
	FoodName        string    `json:"foodName"`
	Weight          float64   `json:"weight"`
	ProteinContent  float64   `json:"proteinContent"`
	IsCreatine      bool      `json:"isCreatine"`
}

// IsCreatine reports whether foodName names the creatine supplement.
func IsCreatine(foodName string) bool {
	return strings.EqualFold(strings.TrimSpace(foodName), creatineName)
}
