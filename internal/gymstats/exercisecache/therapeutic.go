package exercisecache

import "sort"

type TherapeuticMatch struct {
	Exercise          Exercise             `json:"exercise"`
	RelevantBenefits  []TherapeuticBenefit `json:"relevant_benefits"`
	TotalBenefitScore int                  `json:"total_benefit_score"`
}

// Therapeutic picks the exercises helping with any of conditions. An exercise is kept when
// at least one of its relevant benefits reaches minLevel (low when empty); the score sums the
// levels of all relevant benefits. Highest score first.
func Therapeutic(exercises []Exercise, conditions []string, minLevel BenefitLevel) []TherapeuticMatch {
	minValue := BenefitLow.Value()
	if minLevel != "" {
		minValue = minLevel.Value()
	}

	wanted := make(map[string]bool, len(conditions))
	for _, c := range conditions {
		wanted[c] = true
	}

	matches := make([]TherapeuticMatch, 0)
	for _, ex := range exercises {
		var (
			relevant   []TherapeuticBenefit
			score      int
			reachesMin bool
		)
		for _, benefit := range ex.TherapeuticBenefits {
			if !wanted[benefit.Condition] {
				continue
			}
			relevant = append(relevant, benefit)
			score += benefit.BenefitLevel.Value()
			if benefit.BenefitLevel.Value() >= minValue {
				reachesMin = true
			}
		}
		if len(relevant) == 0 || !reachesMin {
			continue
		}
		matches = append(matches, TherapeuticMatch{
			Exercise:          ex,
			RelevantBenefits:  relevant,
			TotalBenefitScore: score,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].TotalBenefitScore > matches[j].TotalBenefitScore
	})
	return matches
}
