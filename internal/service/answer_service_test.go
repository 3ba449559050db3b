package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAnswer_CreatesOnFirstSubmission(t *testing.T) {
	store := newFakeAnswerStore()
	svc := NewAnswerService(store)

	a, err := svc.SubmitAnswer(1, SubmitAnswerRequest{
		SectionID:  "sec-1",
		QuestionID: "q-1",
		Answer:     "B",
	})
	require.NoError(t, err)
	assert.Equal(t, "B", a.Answer)
	assert.Len(t, store.answers, 1)
}

func TestSubmitAnswer_ResubmissionUpdatesInPlace(t *testing.T) {
	store := newFakeAnswerStore()
	svc := NewAnswerService(store)

	first, err := svc.SubmitAnswer(1, SubmitAnswerRequest{SectionID: "sec-1", QuestionID: "q-1", Answer: "B"})
	require.NoError(t, err)

	second, err := svc.SubmitAnswer(1, SubmitAnswerRequest{SectionID: "sec-1", QuestionID: "q-1", Answer: "C"})
	require.NoError(t, err)

	// Same row, last write wins.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "C", second.Answer)
	assert.Len(t, store.answers, 1)

	answers, err := svc.SectionAnswers(1, "sec-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"q-1": "C"}, answers)
}

func TestSubmitAnswer_UsersDoNotCollide(t *testing.T) {
	store := newFakeAnswerStore()
	svc := NewAnswerService(store)

	_, err := svc.SubmitAnswer(1, SubmitAnswerRequest{SectionID: "sec-1", QuestionID: "q-1", Answer: "A"})
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(2, SubmitAnswerRequest{SectionID: "sec-1", QuestionID: "q-1", Answer: "B"})
	require.NoError(t, err)

	mine, err := svc.SectionAnswers(1, "sec-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"q-1": "A"}, mine)

	theirs, err := svc.SectionAnswers(2, "sec-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"q-1": "B"}, theirs)
}

func TestSectionAnswers_EmptyWhenNothingSubmitted(t *testing.T) {
	svc := NewAnswerService(newFakeAnswerStore())

	answers, err := svc.SectionAnswers(1, "sec-1")
	require.NoError(t, err)
	assert.Empty(t, answers)
}
