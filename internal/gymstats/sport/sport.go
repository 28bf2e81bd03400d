// Package sport holds the vocabulary shared by the gymstats packages: the supported
// sports, the workout phases an exercise can be placed in and the exercise name key.
package sport

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rebld/rebldserver/internal/apperr"
)

type Sport string

const (
	Boxing         Sport = "boxing"
	Hyrox          Sport = "hyrox"
	RockClimbing   Sport = "rock_climbing"
	Basketball     Sport = "basketball"
	Soccer         Sport = "soccer"
	Tennis         Sport = "tennis"
	Running        Sport = "running"
	Swimming       Sport = "swimming"
	Cycling        Sport = "cycling"
	GeneralFitness Sport = "general_fitness"
)

// All returns the supported sports in a stable order.
func All() []Sport {
	return []Sport{
		Boxing, Hyrox, RockClimbing, Basketball, Soccer,
		Tennis, Running, Swimming, Cycling, GeneralFitness,
	}
}

func (s Sport) String() string {
	return string(s)
}

func (s Sport) IsValid() bool {
	switch s {
	case Boxing,
		Hyrox,
		RockClimbing,
		Basketball,
		Soccer,
		Tennis,
		Running,
		Swimming,
		Cycling,
		GeneralFitness:
		return true
	default:
		return false
	}
}

func Parse(s string) (Sport, error) {
	sp := Sport(strings.ToLower(strings.TrimSpace(s)))
	if !sp.IsValid() {
		return "", apperr.Validation("unknown sport [%s]", s)
	}
	return sp, nil
}

// Placement is the workout phase an exercise was used in.
type Placement string

const (
	PlacementWarmup   Placement = "warmup"
	PlacementMain     Placement = "main"
	PlacementCooldown Placement = "cooldown"
)

func Placements() []Placement {
	return []Placement{PlacementWarmup, PlacementMain, PlacementCooldown}
}

func (p Placement) String() string {
	return string(p)
}

func (p Placement) IsValid() bool {
	switch p {
	case PlacementWarmup, PlacementMain, PlacementCooldown:
		return true
	default:
		return false
	}
}

func ParsePlacement(s string) (Placement, error) {
	p := Placement(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: unknown placement [%s]", apperr.ErrValidation, s)
	}
	return p, nil
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeExerciseName lowercases and trims name, and collapses inner whitespace runs
// into single underscores: " Goblet  Squat" -> "goblet_squat".
func NormalizeExerciseName(name string) string {
	return whitespaceRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
}
