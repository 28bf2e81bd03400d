package sportbucket

import (
	"math"
	"sort"
	"time"

	"github.com/rebld/rebldserver/internal/gymstats/sport"
)

const (
	// fresh entries start optimistic, the averages only drift down with real reports
	initialSuccessRate      = 1.0
	initialPerformanceScore = 80.0
	initialConfidence       = 0.1
	defaultTypicalSets      = 3
	defaultTypicalReps      = 10

	fullConfidenceUsage = 20

	// a category filter keeps entries placed in that category more than this share of the time
	categoryShareThreshold = 0.4
)

// Confidence is usage/20 capped at 1. It never reports below the confidence
// a freshly created entry starts with.
func Confidence(usageCount int) float64 {
	return math.Max(initialConfidence, math.Min(float64(usageCount)/fullConfidenceUsage, 1))
}

// NewEntry builds the first entry of an exercise within a sport.
func NewEntry(sp sport.Sport, exerciseName string, placement sport.Placement, userID string, now time.Time) Entry {
	return Entry{
		Sport:               sp,
		ExerciseName:        sport.NormalizeExerciseName(exerciseName),
		UsageCount:          1,
		SuccessRate:         initialSuccessRate,
		AvgPerformanceScore: initialPerformanceScore,
		TypicalSets:         defaultTypicalSets,
		TypicalReps:         defaultTypicalReps,
		PlacementStats:      PlacementStats{}.Inc(placement),
		ConfidenceScore:     initialConfidence,
		CreatedByUser:       userID,
		LastUpdated:         now,
	}
}

// WithUsage records one more use of the exercise in the given placement.
func (e Entry) WithUsage(placement sport.Placement, now time.Time) Entry {
	e.UsageCount++
	e.PlacementStats = e.PlacementStats.Inc(placement)
	e.ConfidenceScore = math.Max(e.ConfidenceScore, Confidence(e.UsageCount))
	e.LastUpdated = now
	return e
}

// WithPerformance folds one performance report into the rolling averages.
// The weight of the old averages is the usage count at call time, which is left unchanged.
func (e Entry) WithPerformance(success bool, performanceScore float64, now time.Time) Entry {
	weight := float64(e.UsageCount)
	successValue := 0.0
	if success {
		successValue = 1
	}

	e.SuccessRate = (e.SuccessRate*weight + successValue) / (weight + 1)
	e.AvgPerformanceScore = (e.AvgPerformanceScore*weight + clampScore(performanceScore)) / (weight + 1)
	e.ConfidenceScore = Confidence(e.UsageCount)
	e.LastUpdated = now
	return e
}

func clampScore(score float64) float64 {
	return math.Max(0, math.Min(score, 100))
}

// QueryFilters narrows down the entries of a sport. Nil fields are not applied.
type QueryFilters struct {
	MinScore      *float64
	MinUsageCount *int
	Category      *sport.Placement
}

func (f QueryFilters) keep(e Entry) bool {
	if f.MinScore != nil && e.AvgPerformanceScore < *f.MinScore {
		return false
	}
	if f.MinUsageCount != nil && e.UsageCount < *f.MinUsageCount {
		return false
	}
	if f.Category != nil {
		if e.PlacementStats.Total() == 0 {
			return false
		}
		if e.PlacementStats.Share(*f.Category) <= categoryShareThreshold {
			return false
		}
	}
	return true
}

// FilterAndRank applies filters and sorts the result by WeightedScore, descending.
// Equal scores keep their input order.
func FilterAndRank(entries []Entry, filters QueryFilters) []Entry {
	ranked := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if filters.keep(e) {
			ranked = append(ranked, e)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].WeightedScore() > ranked[j].WeightedScore()
	})
	return ranked
}
