package service

import (
	"testing"

	"sat_prep_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func question(id, answer string) model.Question {
	q := model.Question{
		QuestionText:  "stem",
		AnswerChoices: model.StringList{answer, "wrong-1", "wrong-2", "wrong-3"},
		Answer:        answer,
	}
	q.ID = id
	return q
}

func TestScore_AllCorrect(t *testing.T) {
	questions := []model.Question{question("q1", "A"), question("q2", "B")}
	answers := map[string]string{"q1": "A", "q2": "B"}

	assert.Equal(t, 100.0, Score(questions, answers))
}

func TestScore_Partial(t *testing.T) {
	questions := []model.Question{
		question("q1", "A"),
		question("q2", "B"),
		question("q3", "C"),
		question("q4", "D"),
	}
	answers := map[string]string{"q1": "A", "q2": "X", "q3": "C"}

	assert.Equal(t, 50.0, Score(questions, answers))
}

func TestScore_UnansweredCountsWrong(t *testing.T) {
	questions := []model.Question{question("q1", "A"), question("q2", "B")}
	answers := map[string]string{"q1": "A"}

	assert.Equal(t, 50.0, Score(questions, answers))
}

func TestScore_KeyedByIDNotPosition(t *testing.T) {
	questions := []model.Question{question("q1", "A"), question("q2", "B")}
	// Answers arrive keyed by id, so their iteration order is irrelevant
	// and an id mismatch scores zero even when the values line up.
	assert.Equal(t, 0.0, Score(questions, map[string]string{"q9": "A", "q8": "B"}))
	assert.Equal(t, 100.0, Score(questions, map[string]string{"q2": "B", "q1": "A"}))
}

func TestScore_ExactEquality(t *testing.T) {
	questions := []model.Question{question("q1", "Paris")}

	assert.Equal(t, 0.0, Score(questions, map[string]string{"q1": "paris"}))
	assert.Equal(t, 0.0, Score(questions, map[string]string{"q1": " Paris"}))
	assert.Equal(t, 100.0, Score(questions, map[string]string{"q1": "Paris"}))
}

func TestScore_EmptyQuestionList(t *testing.T) {
	assert.Equal(t, 0.0, Score(nil, map[string]string{"q1": "A"}))
	assert.Equal(t, 0.0, Score([]model.Question{}, nil))
}
