package users

import (
	"fmt"
	"strings"
	"time"

	"github.com/rebld/rebldserver/internal/apperr"
)

var ErrUserNotFound = fmt.Errorf("user %w", apperr.ErrNotFound)

type InjurySeverity string

const (
	SeverityMild     InjurySeverity = "mild"
	SeverityModerate InjurySeverity = "moderate"
	SeveritySevere   InjurySeverity = "severe"
)

type Injury struct {
	InjuryType   string         `json:"injury_type" validate:"required,max=100"`
	Severity     InjurySeverity `json:"severity" validate:"required,oneof=mild moderate severe"`
	AffectedArea string         `json:"affected_area" validate:"required,max=100"`
	DateReported string         `json:"date_reported"`
	Notes        *string        `json:"notes"`
}

type PastInjury struct {
	InjuryType    string  `json:"injury_type" validate:"required,max=100"`
	DateOccurred  string  `json:"date_occurred"`
	DateRecovered *string `json:"date_recovered"`
	Recurring     bool    `json:"recurring"`
}

type InjuryProfile struct {
	CurrentInjuries      []Injury     `json:"current_injuries" validate:"dive"`
	InjuryHistory        []PastInjury `json:"injury_history" validate:"dive"`
	MovementRestrictions []string     `json:"movement_restrictions"`
	PainTriggers         []string     `json:"pain_triggers"`
	LastUpdated          time.Time    `json:"last_updated"`
}

// CurrentInjuryTypes returns the distinct, lowercased injury types the user currently has.
func (p *InjuryProfile) CurrentInjuryTypes() []string {
	if p == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(p.CurrentInjuries))
	var types []string
	for _, injury := range p.CurrentInjuries {
		injuryType := strings.ToLower(strings.TrimSpace(injury.InjuryType))
		if injuryType == "" {
			continue
		}
		if _, ok := seen[injuryType]; ok {
			continue
		}
		seen[injuryType] = struct{}{}
		types = append(types, injuryType)
	}
	return types
}

type TrainingPreferences struct {
	PrimaryGoal       string   `json:"primary_goal" validate:"required,max=100"`
	ExperienceLevel   string   `json:"experience_level" validate:"required,max=50"`
	TrainingFrequency string   `json:"training_frequency" validate:"max=20"`
	PainPoints        []string `json:"pain_points"`
	Sport             *string  `json:"sport" validate:"omitempty,sport"`
	// SportSpecific names the sport whose exercise ratings drive recommendations.
	SportSpecific   *string   `json:"sport_specific" validate:"omitempty,sport"`
	AdditionalNotes *string   `json:"additional_notes" validate:"omitempty,max=2000"`
	LastUpdated     time.Time `json:"last_updated"`
}

type User struct {
	ID                  int                  `json:"id"`
	UserID              string               `json:"user_id"`
	UserCode            *string              `json:"user_code"`
	TrainingPreferences *TrainingPreferences `json:"training_preferences"`
	InjuryProfile       *InjuryProfile       `json:"injury_profile"`
	CreatedAt           time.Time            `json:"created_at"`
}
