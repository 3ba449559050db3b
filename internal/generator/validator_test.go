package generator

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func smallConfig() Config {
	return Config{QuestionCount: 2, ChoiceCount: 4, MaxTokens: 512, Temperature: 0.7}
}

func validQuestion(n int) GeneratedQuestion {
	return GeneratedQuestion{
		QuestionText:  fmt.Sprintf("What is %d + %d?", n, n),
		AnswerChoices: []string{fmt.Sprintf("%d", 2*n), fmt.Sprintf("%d", 2*n+1), fmt.Sprintf("%d", 2*n+2), fmt.Sprintf("%d", 2*n+3)},
		Answer:        fmt.Sprintf("%d", 2*n),
		Explanation:   "Add the two values.",
	}
}

func validSection() *GeneratedSection {
	return &GeneratedSection{
		Title:     "Arithmetic Basics",
		Questions: []GeneratedQuestion{validQuestion(1), validQuestion(2)},
	}
}

func TestValidateSection_Valid(t *testing.T) {
	if err := validateSection(validSection(), smallConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateSection_EmptyTitle(t *testing.T) {
	sec := validSection()
	sec.Title = "   "
	assertRejected(t, validateSection(sec, smallConfig()), "title")
}

func TestValidateSection_WrongQuestionCount(t *testing.T) {
	sec := validSection()
	sec.Questions = sec.Questions[:1]
	assertRejected(t, validateSection(sec, smallConfig()), "questions")
}

func TestValidateSection_AnswerNotInChoices(t *testing.T) {
	sec := validSection()
	sec.Questions[1].Answer = "not a choice"
	assertRejected(t, validateSection(sec, smallConfig()), "questions[1]")
}

func TestValidateSection_AnswerMatchIsExact(t *testing.T) {
	sec := validSection()
	// Case differs from every choice, so this must be rejected even
	// though a case-insensitive match exists.
	sec.Questions[0].AnswerChoices = []string{"Paris", "London", "Rome", "Berlin"}
	sec.Questions[0].Answer = "paris"
	assertRejected(t, validateSection(sec, smallConfig()), "questions[0]")
}

func TestValidateSection_WrongChoiceCount(t *testing.T) {
	sec := validSection()
	sec.Questions[0].AnswerChoices = sec.Questions[0].AnswerChoices[:3]
	assertRejected(t, validateSection(sec, smallConfig()), "questions[0]")
}

func TestValidateSection_DuplicateChoices(t *testing.T) {
	sec := validSection()
	sec.Questions[0].AnswerChoices = []string{"4", "4", "5", "6"}
	assertRejected(t, validateSection(sec, smallConfig()), "questions[0]")
}

func TestValidateSection_EmptyChoice(t *testing.T) {
	sec := validSection()
	sec.Questions[0].AnswerChoices = []string{"4", "  ", "5", "6"}
	assertRejected(t, validateSection(sec, smallConfig()), "questions[0]")
}

func TestValidateSection_EmptyQuestionText(t *testing.T) {
	sec := validSection()
	sec.Questions[0].QuestionText = ""
	assertRejected(t, validateSection(sec, smallConfig()), "questions[0]")
}

func TestValidateFollowUp_Valid(t *testing.T) {
	f := &GeneratedFollowUp{
		FollowUpContent: "What is 3 + 3?",
		AnswerChoices:   []string{"5", "6", "7", "8"},
		CorrectAnswer:   "6",
		Explanation:     "Add the two values.",
	}
	if err := validateFollowUp(f, smallConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateFollowUp_AnswerNotInChoices(t *testing.T) {
	f := &GeneratedFollowUp{
		FollowUpContent: "What is 3 + 3?",
		AnswerChoices:   []string{"5", "6", "7", "8"},
		CorrectAnswer:   "9",
		Explanation:     "Add the two values.",
	}
	assertRejected(t, validateFollowUp(f, smallConfig()), "correct_answer")
}

func TestValidateFollowUp_WrongChoiceCount(t *testing.T) {
	f := &GeneratedFollowUp{
		FollowUpContent: "What is 3 + 3?",
		AnswerChoices:   []string{"5", "6"},
		CorrectAnswer:   "6",
	}
	assertRejected(t, validateFollowUp(f, smallConfig()), "answer_choices")
}

func assertRejected(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if !strings.HasPrefix(vErr.Field, field) {
		t.Fatalf("expected field %q, got %q", field, vErr.Field)
	}
}
