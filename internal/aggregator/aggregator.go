// Package aggregator turns raw, already fetched records into calendar aligned
// series: day buckets, week buckets, centered trend lines and goals.
// Everything here is pure and safe for concurrent use.
package aggregator

import (
	"math"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"

	// DefaultWindow is the moving average window used when none is given.
	DefaultWindow = 3
	// FallbackProteinGoal is used when no body weight is on record.
	FallbackProteinGoal = 160

	daysInWeek    = 7
	secondsPerDay = 24 * 60 * 60
)

// Record is a single dated value. Only the calendar date of Date matters,
// read in Date's own location.
type Record struct {
	Date  time.Time
	Value float64
}

type DayTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// CalendarDate drops the clock and location of t, keeping its calendar date.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate reads a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// WeekStart returns the Monday of the week containing d.
// A Sunday belongs to the week that started on the previous Monday.
func WeekStart(d time.Time) time.Time {
	date := CalendarDate(d)
	offset := (int(date.Weekday()) + 6) % daysInWeek
	return date.AddDate(0, 0, -offset)
}

// WeekBucket returns exactly 7 buckets, Monday through Sunday of the week
// containing ref. Records outside that week are dropped.
func WeekBucket(ref time.Time, records []Record) []DayTotal {
	start := WeekStart(ref)
	return SumByDay(start, start.AddDate(0, 0, daysInWeek-1), records)
}

// SumByDay returns one bucket per calendar day in [start, end], ascending,
// summing records by calendar date. Days without records are 0, records
// outside the range are dropped. An end before start yields no buckets.
func SumByDay(start, end time.Time, records []Record) []DayTotal {
	startDate := CalendarDate(start)
	endDate := CalendarDate(end)
	if endDate.Before(startDate) {
		return []DayTotal{}
	}

	// both dates are UTC midnights, so whole days divide evenly
	dayCount := int((endDate.Unix()-startDate.Unix())/secondsPerDay) + 1
	buckets := make([]DayTotal, dayCount)
	index := make(map[string]int, dayCount)
	for i := range buckets {
		date := startDate.AddDate(0, 0, i).Format(DateLayout)
		buckets[i] = DayTotal{Date: date}
		index[date] = i
	}

	for _, r := range records {
		if i, ok := index[r.Date.Format(DateLayout)]; ok {
			buckets[i].Total += r.Value
		}
	}

	return buckets
}

// MovingAverage returns a centered moving average of samples. The window is
// truncated at both ends of the series, so edge points average fewer samples.
// Windows below 1 fall back to DefaultWindow.
func MovingAverage(samples []float64, window int) []float64 {
	if window < 1 {
		window = DefaultWindow
	}
	half := window / 2
	n := len(samples)

	out := make([]float64, n)
	for i := range samples {
		from := max(0, i-half)
		to := min(n, i+half+1)
		sum := 0.0
		for j := from; j < to; j++ {
			sum += samples[j]
		}
		out[i] = sum / float64(to-from)
	}
	return out
}

// ProteinGoal is twice the latest body weight in grams, rounded.
func ProteinGoal(latestWeight *float64) int {
	if latestWeight == nil {
		return FallbackProteinGoal
	}
	return int(math.Round(*latestWeight * 2))
}
