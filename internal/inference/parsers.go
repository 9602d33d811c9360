package inference

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	equationMarker = "Equation:"
	resultMarker   = "Result:"
)

var (
	ErrNotANumber     = errors.New("response is not a number")
	ErrNoVolumeResult = errors.New("no volume figure in response")

	integerRegex = regexp.MustCompile(`\d+`)
)

type VolumeEstimate struct {
	Volume   int    `json:"volume"`
	Equation string `json:"equation"`
}

// ParseProtein expects the whole (trimmed) response to be a non-negative decimal.
func ParseProtein(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	protein, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, trimmed)
	}
	if math.IsNaN(protein) || math.IsInf(protein, 0) || protein < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, trimmed)
	}
	return protein, nil
}

// ParseVolumeResponse reads an "Equation: ...\nResult: N" answer.
// The equation may continue over several lines until the Result line.
// Without a usable Result line the first integer anywhere is taken.
func ParseVolumeResponse(text string) (*VolumeEstimate, error) {
	response := strings.TrimSpace(text)
	lines := strings.Split(response, "\n")

	estimate := &VolumeEstimate{}
	volume := ""
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, equationMarker):
			parts := []string{strings.TrimSpace(strings.TrimPrefix(line, equationMarker))}
			for _, next := range lines[i+1:] {
				if strings.HasPrefix(next, resultMarker) {
					break
				}
				parts = append(parts, strings.TrimSpace(next))
			}
			estimate.Equation = strings.Join(parts, " ")
		case strings.HasPrefix(line, resultMarker):
			if match := integerRegex.FindString(line[len(resultMarker):]); match != "" {
				volume = match
			}
		}
	}

	if volume == "" {
		volume = integerRegex.FindString(response)
	}
	if volume == "" {
		return nil, ErrNoVolumeResult
	}

	v, err := strconv.Atoi(volume)
	if err != nil {
		return nil, fmt.Errorf("volume %q: %w", volume, err)
	}
	estimate.Volume = v

	return estimate, nil
}

// ParseMuscleGroup matches the answer against the allowed vocabulary.
// Anything outside of it is no prediction, not an error.
func ParseMuscleGroup(text string, vocabulary []string) (string, bool) {
	answer := strings.ToLower(strings.TrimSpace(text))
	if answer == "" {
		return "", false
	}
	for _, group := range vocabulary {
		if answer == group {
			return group, true
		}
	}
	return "", false
}

// ParseFoodCheck is true only for an explicit "true" answer.
func ParseFoodCheck(text string) bool {
	return strings.ToLower(strings.TrimSpace(text)) == "true"
}
