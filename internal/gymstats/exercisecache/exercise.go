package exercisecache

import (
	"fmt"
	"time"

	"github.com/rebld/rebldserver/internal/apperr"
	"github.com/rebld/rebldserver/internal/gymstats/sport"
)

var ErrExerciseNotFound = fmt.Errorf("exercise %w", apperr.ErrNotFound)

// Severity of a contraindication. Absolute ones make an exercise unsafe for the injury,
// caution and monitor ones come with modification guidance instead.
type Severity string

const (
	SeverityAbsolute Severity = "absolute"
	SeverityCaution  Severity = "caution"
	SeverityMonitor  Severity = "monitor"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityAbsolute, SeverityCaution, SeverityMonitor:
		return true
	default:
		return false
	}
}

type Contraindication struct {
	InjuryType           string   `json:"injury_type" validate:"required"`
	Severity             Severity `json:"severity" validate:"required,oneof=absolute caution monitor"`
	Reason               string   `json:"reason"`
	SafeModifications    []string `json:"safe_modifications"`
	AlternativeExercises []string `json:"alternative_exercises"`
}

type BenefitLevel string

const (
	BenefitHigh     BenefitLevel = "high"
	BenefitModerate BenefitLevel = "moderate"
	BenefitLow      BenefitLevel = "low"
)

// Value orders benefit levels: high=3, moderate=2, low=1, 0 for anything else.
func (l BenefitLevel) Value() int {
	switch l {
	case BenefitHigh:
		return 3
	case BenefitModerate:
		return 2
	case BenefitLow:
		return 1
	default:
		return 0
	}
}

type TherapeuticBenefit struct {
	Condition           string       `json:"condition" validate:"required"`
	BenefitLevel        BenefitLevel `json:"benefit_level" validate:"required,oneof=high moderate low"`
	Explanation         string       `json:"explanation"`
	RecommendedProtocol *string      `json:"recommended_protocol"`
}

// SportRatings holds the 0-10 suitability of an exercise per sport. Unrated sports are absent.
type SportRatings map[sport.Sport]float64

func (r SportRatings) Rating(sp sport.Sport) (float64, bool) {
	rating, ok := r[sp]
	return rating, ok
}

type Exercise struct {
	ID                  int                  `json:"id"`
	ExerciseName        string               `json:"exercise_name"`
	Explanation         string               `json:"explanation"`
	MusclesWorked       []string             `json:"muscles_worked"`
	FormCue             *string              `json:"form_cue"`
	CommonMistake       *string              `json:"common_mistake"`
	PrimaryCategory     *sport.Placement     `json:"primary_category"`
	Contraindications   []Contraindication   `json:"injury_contraindications"`
	TherapeuticBenefits []TherapeuticBenefit `json:"therapeutic_benefits"`
	SportRatings        SportRatings         `json:"sport_ratings"`
	HitCount            int                  `json:"hit_count"`
	GeneratedAt         time.Time            `json:"generated_at"`
	LastAccessed        time.Time            `json:"last_accessed"`
}

// InCategory reports whether the exercise's primary category is c.
func (e Exercise) InCategory(c sport.Placement) bool {
	return e.PrimaryCategory != nil && *e.PrimaryCategory == c
}
