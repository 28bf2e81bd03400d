package sportbucket

import (
	"errors"
	"fmt"
	"time"

	"github.com/rebld/rebldserver/internal/apperr"
	"github.com/rebld/rebldserver/internal/gymstats/sport"
)

var (
	ErrEntryNotFound = fmt.Errorf("sport bucket entry %w", apperr.ErrNotFound)
	ErrEntryExists   = errors.New("sport bucket entry already exists")
)

// PlacementStats is the histogram of the workout phases an exercise was placed in.
type PlacementStats struct {
	WarmupCount   int `json:"warmup_count"`
	MainCount     int `json:"main_count"`
	CooldownCount int `json:"cooldown_count"`
}

func (ps PlacementStats) Count(p sport.Placement) int {
	switch p {
	case sport.PlacementWarmup:
		return ps.WarmupCount
	case sport.PlacementMain:
		return ps.MainCount
	case sport.PlacementCooldown:
		return ps.CooldownCount
	default:
		return 0
	}
}

func (ps PlacementStats) Total() int {
	return ps.WarmupCount + ps.MainCount + ps.CooldownCount
}

// Inc returns a copy with the bucket of p incremented.
func (ps PlacementStats) Inc(p sport.Placement) PlacementStats {
	switch p {
	case sport.PlacementWarmup:
		ps.WarmupCount++
	case sport.PlacementMain:
		ps.MainCount++
	case sport.PlacementCooldown:
		ps.CooldownCount++
	}
	return ps
}

// Share is the fraction of all placements that went to p, 0 when nothing was placed yet.
func (ps PlacementStats) Share(p sport.Placement) float64 {
	total := ps.Total()
	if total == 0 {
		return 0
	}
	return float64(ps.Count(p)) / float64(total)
}

// Entry holds the aggregate statistics of one (sport, exercise) pair.
type Entry struct {
	ID                  int            `json:"id"`
	Sport               sport.Sport    `json:"sport"`
	ExerciseName        string         `json:"exercise_name"`
	UsageCount          int            `json:"usage_count"`
	SuccessRate         float64        `json:"success_rate"`
	AvgPerformanceScore float64        `json:"avg_performance_score"`
	TypicalSets         int            `json:"typical_sets"`
	TypicalReps         int            `json:"typical_reps"`
	TypicalDurationS    *int           `json:"typical_duration_s"`
	TypicalWeightRatio  *float64       `json:"typical_weight_ratio"`
	PlacementStats      PlacementStats `json:"placement_stats"`
	ConfidenceScore     float64        `json:"confidence_score"`
	CreatedByUser       string         `json:"created_by_user"`
	LastUpdated         time.Time      `json:"last_updated"`
}

// WeightedScore is the ranking key of an entry: the average score scaled by how
// many samples back it.
func (e Entry) WeightedScore() float64 {
	return e.AvgPerformanceScore * e.ConfidenceScore
}
