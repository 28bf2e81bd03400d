// Package safety screens candidate exercises against a user's current injuries.
package safety

import (
	"strings"

	"github.com/rebld/rebldserver/internal/gymstats/exercisecache"
)

// Assessed is an exercise that passed the injury screen, with the guidance collected
// from its caution level contraindications.
type Assessed struct {
	exercisecache.Exercise
	SuggestedModifications []string `json:"suggested_modifications"`
	AlternativeExercises   []string `json:"alternative_exercises"`
}

// Filter drops every candidate with an absolute contraindication for any of the injury types
// and keeps the rest in their original order. Candidates without injury data are kept as is.
func Filter(injuryTypes []string, candidates []exercisecache.Exercise) []Assessed {
	assessed := make([]Assessed, 0, len(candidates))

	if len(injuryTypes) == 0 {
		for _, exercise := range candidates {
			assessed = append(assessed, newAssessed(exercise))
		}
		return assessed
	}

	for _, exercise := range candidates {
		result, safe := assess(injuryTypes, exercise)
		if safe {
			assessed = append(assessed, result)
		}
	}

	return assessed
}

func assess(injuryTypes []string, exercise exercisecache.Exercise) (Assessed, bool) {
	result := newAssessed(exercise)
	if len(exercise.Contraindications) == 0 {
		return result, true
	}

	modifications := newStringSet()
	alternatives := newStringSet()
	for _, injuryType := range injuryTypes {
		for _, contraindication := range exercise.Contraindications {
			if !matches(contraindication.InjuryType, injuryType) {
				continue
			}
			switch contraindication.Severity {
			case exercisecache.SeverityAbsolute:
				return Assessed{}, false
			case exercisecache.SeverityCaution:
				modifications.add(contraindication.SafeModifications...)
				alternatives.add(contraindication.AlternativeExercises...)
			}
		}
	}

	result.SuggestedModifications = modifications.values
	result.AlternativeExercises = alternatives.values
	return result, true
}

func newAssessed(exercise exercisecache.Exercise) Assessed {
	return Assessed{
		Exercise:               exercise,
		SuggestedModifications: []string{},
		AlternativeExercises:   []string{},
	}
}

func matches(contraindicationType, injuryType string) bool {
	return strings.EqualFold(strings.TrimSpace(contraindicationType), strings.TrimSpace(injuryType))
}

// stringSet keeps insertion order, blank values are skipped
type stringSet struct {
	seen   map[string]struct{}
	values []string
}

func newStringSet() *stringSet {
	return &stringSet{
		seen:   map[string]struct{}{},
		values: []string{},
	}
}

func (s *stringSet) add(values ...string) {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := s.seen[v]; ok {
			continue
		}
		s.seen[v] = struct{}{}
		s.values = append(s.values, v)
	}
}
