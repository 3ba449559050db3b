package service

import "sat_prep_backend/internal/model"

// Score computes the percentage of correct answers for one section
// attempt. answers is keyed by question id, never by position, so the
// caller's ordering can never misalign a grade. Comparison is exact
// string equality, case-sensitive, no trimming. An empty question list
// scores 0.
func Score(questions []model.Question, answers map[string]string) float64 {
	if len(questions) == 0 {
		return 0
	}

	correct := 0
	for _, q := range questions {
		if chosen, ok := answers[q.ID]; ok && chosen == q.Answer {
			correct++
		}
	}

	return float64(correct) / float64(len(questions)) * 100
}
