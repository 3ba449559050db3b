package generator

import (
	"fmt"
	"strings"
)

// ValidationError describes why generated content was rejected. Nothing
// that fails validation is ever persisted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("generated content rejected (%s): %s", e.Field, e.Message)
}

// validateSection checks the structural invariants the JSON schema
// cannot fully express: exact counts, choice membership, uniqueness.
func validateSection(sec *GeneratedSection, cfg Config) error {
	if strings.TrimSpace(sec.Title) == "" {
		return &ValidationError{Field: "title", Message: "empty title"}
	}

	if len(sec.Questions) != cfg.QuestionCount {
		return &ValidationError{
			Field:   "questions",
			Message: fmt.Sprintf("expected %d questions, got %d", cfg.QuestionCount, len(sec.Questions)),
		}
	}

	for i := range sec.Questions {
		if err := validateQuestion(&sec.Questions[i], i, cfg); err != nil {
			return err
		}
	}

	return nil
}

func validateQuestion(q *GeneratedQuestion, idx int, cfg Config) error {
	field := fmt.Sprintf("questions[%d]", idx)

	if strings.TrimSpace(q.QuestionText) == "" {
		return &ValidationError{Field: field, Message: "empty question text"}
	}

	if len(q.AnswerChoices) != cfg.ChoiceCount {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("expected %d answer choices, got %d", cfg.ChoiceCount, len(q.AnswerChoices)),
		}
	}

	seen := make(map[string]bool, len(q.AnswerChoices))
	for _, c := range q.AnswerChoices {
		if strings.TrimSpace(c) == "" {
			return &ValidationError{Field: field, Message: "empty answer choice"}
		}
		if seen[c] {
			return &ValidationError{Field: field, Message: fmt.Sprintf("duplicate answer choice %q", c)}
		}
		seen[c] = true
	}

	// Choice-membership invariant: answer must be one of the choices,
	// matched exactly.
	if !seen[q.Answer] {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("answer %q is not one of the answer choices", q.Answer),
		}
	}

	return nil
}

// validateFollowUp applies the same invariants to a follow-up question.
func validateFollowUp(f *GeneratedFollowUp, cfg Config) error {
	if strings.TrimSpace(f.FollowUpContent) == "" {
		return &ValidationError{Field: "follow_up_content", Message: "empty question text"}
	}

	if len(f.AnswerChoices) != cfg.ChoiceCount {
		return &ValidationError{
			Field:   "answer_choices",
			Message: fmt.Sprintf("expected %d answer choices, got %d", cfg.ChoiceCount, len(f.AnswerChoices)),
		}
	}

	found := false
	for _, c := range f.AnswerChoices {
		if c == f.CorrectAnswer {
			found = true
			break
		}
	}
	if !found {
		return &ValidationError{
			Field:   "correct_answer",
			Message: fmt.Sprintf("correct answer %q is not one of the answer choices", f.CorrectAnswer),
		}
	}

	return nil
}
