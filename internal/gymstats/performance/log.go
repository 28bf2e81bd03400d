package performance

import (
	"time"

	"github.com/rebld/rebldserver/internal/gymstats/sport"

	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeCompleted   Outcome = "completed"
	OutcomeSubstituted Outcome = "substituted"
	OutcomeSkipped     Outcome = "skipped"
	OutcomeNone        Outcome = ""
)

// Log is one attempt of an exercise. Logs are append only.
type Log struct {
	ID               uuid.UUID    `json:"id"`
	UserID           string       `json:"user_id" validate:"required"`
	ExerciseName     string       `json:"exercise_name" validate:"required,max=200"`
	SportContext     *sport.Sport `json:"sport_context" validate:"omitempty,sport"`
	SessionID        *string      `json:"session_id" validate:"omitempty,max=100"`
	Completed        bool         `json:"completed"`
	Skipped          bool         `json:"skipped"`
	Substituted      bool         `json:"substituted"`
	SubstituteReason *string      `json:"substitute_reason" validate:"omitempty,max=500"`
	ActualSets       *int         `json:"actual_sets" validate:"omitempty,min=0"`
	ActualReps       *int         `json:"actual_reps" validate:"omitempty,min=0"`
	ActualWeight     *float64     `json:"actual_weight" validate:"omitempty,min=0"`
	ActualDurationS  *int         `json:"actual_duration_s" validate:"omitempty,min=0"`
	RPE              *float64     `json:"rpe" validate:"omitempty,min=1,max=10"`
	FormQuality      *int         `json:"form_quality" validate:"omitempty,min=1,max=5"`
	PainExperienced  *bool        `json:"pain_experienced"`
	PainLocation     *string      `json:"pain_location" validate:"omitempty,max=100"`
	WasPR            bool         `json:"was_pr"`
	Notes            *string      `json:"notes" validate:"omitempty,max=2000"`
	Timestamp        time.Time    `json:"timestamp"`
}

// PrimaryOutcome picks the dominant outcome when more than one flag is set:
// completed, then substituted, then skipped.
func (l Log) PrimaryOutcome() Outcome {
	switch {
	case l.Completed:
		return OutcomeCompleted
	case l.Substituted:
		return OutcomeSubstituted
	case l.Skipped:
		return OutcomeSkipped
	default:
		return OutcomeNone
	}
}

func (l Log) HadPain() bool {
	return l.PainExperienced != nil && *l.PainExperienced
}

// Succeeded means the exercise was completed without pain.
func (l Log) Succeeded() bool {
	return l.PrimaryOutcome() == OutcomeCompleted && !l.HadPain()
}

const (
	baseScore        = 80.0
	formPointValue   = 20.0
	overexertionRPE  = 8.0
	overexertionCost = 10.0
	painCost         = 30.0
	prBonus          = 10.0
)

// Score rates an attempt on the 0-100 scale of the sport bucket averages.
// Anything not completed scores 0. Form quality replaces the base score
// when present, effort above RPE 8 and pain cost points, a PR adds some.
func Score(l Log) float64 {
	if l.PrimaryOutcome() != OutcomeCompleted {
		return 0
	}

	score := baseScore
	if l.FormQuality != nil {
		score = float64(*l.FormQuality) * formPointValue
	}
	if l.RPE != nil && *l.RPE > overexertionRPE {
		score -= (*l.RPE - overexertionRPE) * overexertionCost
	}
	if l.HadPain() {
		score -= painCost
	}
	if l.WasPR {
		score += prBonus
	}

	return min(max(score, 0), 100)
}
