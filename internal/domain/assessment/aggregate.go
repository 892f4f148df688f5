package assessment

import (
	"sort"

	"career-compass/internal/domain/vector"
)

const maxCareerSignals = 5

// Profile is the test-level aggregate derived from a question set.
type Profile struct {
	TotalMarks            int
	CompetencyProfile     vector.Competencies
	PersonalityProfile    vector.PersonalityTraits
	DominantCareerSignals []string
}

// Aggregate computes a test profile from scratch. Competency and personality
// profiles are the per-question mean rounded to 2 decimals (the grader sums
// instead). Career signals are the top 5 tags by frequency, ties kept in first
// seen order.
func Aggregate(questions []Question) Profile {
	var (
		totalMarks int
		comp       vector.Competencies
		pers       vector.PersonalityTraits
	)

	counts := map[string]int{}
	order := make([]string, 0)

	for _, q := range questions {
		totalMarks += q.EffectiveMarks()
		comp = comp.Add(q.Competencies)
		pers = pers.Add(q.PersonalityTraits)

		for _, tag := range q.CareerTags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	n := float64(len(questions))
	if n == 0 {
		n = 1
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxCareerSignals {
		order = order[:maxCareerSignals]
	}

	return Profile{
		TotalMarks: totalMarks,
		CompetencyProfile: vector.Competencies{
			Analytical: mean2(comp.Analytical, n),
			Verbal:     mean2(comp.Verbal, n),
			Creative:   mean2(comp.Creative, n),
			Scientific: mean2(comp.Scientific, n),
			Social:     mean2(comp.Social, n),
			Technical:  mean2(comp.Technical, n),
		},
		PersonalityProfile: vector.PersonalityTraits{
			Leadership:   mean2(pers.Leadership, n),
			Teamwork:     mean2(pers.Teamwork, n),
			RiskTaking:   mean2(pers.RiskTaking, n),
			Discipline:   mean2(pers.Discipline, n),
			Adaptability: mean2(pers.Adaptability, n),
			Creativity:   mean2(pers.Creativity, n),
		},
		DominantCareerSignals: order,
	}
}

func mean2(sum, n float64) float64 {
	return vector.Round(sum/n, 2)
}
