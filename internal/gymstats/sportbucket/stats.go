package sportbucket

import (
	"sort"

	"github.com/rebld/rebldserver/internal/gymstats/sport"
)

const performersListSize = 10

type Performer struct {
	ExerciseName string  `json:"exercise_name"`
	Score        float64 `json:"score"`
	UsageCount   int     `json:"usage_count"`
}

// CategoryDistribution holds the percentage (0-100) of placements per workout phase.
type CategoryDistribution struct {
	Warmup   float64 `json:"warmup"`
	Main     float64 `json:"main"`
	Cooldown float64 `json:"cooldown"`
}

type Stats struct {
	Sport                sport.Sport          `json:"sport"`
	TotalExercises       int                  `json:"total_exercises"`
	TotalUsage           int                  `json:"total_usage"`
	AvgPerformanceScore  float64              `json:"avg_performance_score"`
	HighPerformers       []Performer          `json:"high_performers"`
	LowPerformers        []Performer          `json:"low_performers"`
	CategoryDistribution CategoryDistribution `json:"category_distribution"`
}

// ComputeStats summarizes the entries of one sport. High performers are the top 10 by
// average score, low performers the bottom 10 listed from the lowest up.
func ComputeStats(sp sport.Sport, entries []Entry) *Stats {
	stats := &Stats{
		Sport:          sp,
		HighPerformers: []Performer{},
		LowPerformers:  []Performer{},
	}
	if len(entries) == 0 {
		return stats
	}

	var scoreSum float64
	var totals PlacementStats
	for _, e := range entries {
		stats.TotalUsage += e.UsageCount
		scoreSum += e.AvgPerformanceScore
		totals.WarmupCount += e.PlacementStats.WarmupCount
		totals.MainCount += e.PlacementStats.MainCount
		totals.CooldownCount += e.PlacementStats.CooldownCount
	}
	stats.TotalExercises = len(entries)
	stats.AvgPerformanceScore = scoreSum / float64(len(entries))

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AvgPerformanceScore > sorted[j].AvgPerformanceScore
	})

	for i := 0; i < len(sorted) && i < performersListSize; i++ {
		stats.HighPerformers = append(stats.HighPerformers, toPerformer(sorted[i]))
	}
	for i := len(sorted) - 1; i >= 0 && len(stats.LowPerformers) < performersListSize; i-- {
		stats.LowPerformers = append(stats.LowPerformers, toPerformer(sorted[i]))
	}

	stats.CategoryDistribution = CategoryDistribution{
		Warmup:   totals.Share(sport.PlacementWarmup) * 100,
		Main:     totals.Share(sport.PlacementMain) * 100,
		Cooldown: totals.Share(sport.PlacementCooldown) * 100,
	}

	return stats
}

func toPerformer(e Entry) Performer {
	return Performer{
		ExerciseName: e.ExerciseName,
		Score:        e.AvgPerformanceScore,
		UsageCount:   e.UsageCount,
	}
}
