package generator

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an SAT test-preparation content writer creating realistic practice questions.

Rules:
- Write questions at genuine SAT difficulty, in the style of the official digital SAT.
- Use plain text only. No LaTeX, no markdown, no Unicode math symbols. Use / for fractions and ^ for exponents.
- Every question is multiple choice. Provide the exact number of answer choices requested, with exactly one correct choice.
- The "answer" field must be copied character-for-character from one of the answer_choices entries.
- Distractors should reflect plausible mistakes, not random values.
- Each explanation should walk through the solution so a student who missed the question can learn from it.
- Do not number the questions or the choices; ordering is handled by the caller.`

// sectionTypeLabel maps the stored enum to the wording used in prompts.
func sectionTypeLabel(sectionType string) string {
	switch sectionType {
	case "math":
		return "Math"
	case "reading":
		return "Reading"
	case "writing":
		return "Writing and Language"
	}
	return sectionType
}

// buildSectionPrompt constructs the user message for a section request.
func buildSectionPrompt(sectionType, category string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate an SAT %s practice section with exactly %d questions.\n",
		sectionTypeLabel(sectionType), cfg.QuestionCount)
	fmt.Fprintf(&b, "Each question must have exactly %d answer choices.\n", cfg.ChoiceCount)

	if category != "" {
		fmt.Fprintf(&b, "Focus every question on this topic: %s.\n", category)
	} else {
		b.WriteString("Cover a representative mix of topics for this section type.\n")
	}

	b.WriteString("Give the section a short descriptive title.")

	return b.String()
}

// buildFollowUpPrompt constructs the user message for a follow-up
// question derived from a primary question.
func buildFollowUpPrompt(questionText, answer string, cfg Config) string {
	var b strings.Builder

	b.WriteString("A student just reviewed this SAT question:\n\n")
	fmt.Fprintf(&b, "Question: %s\n", questionText)
	fmt.Fprintf(&b, "Correct answer: %s\n\n", answer)
	fmt.Fprintf(&b, "Write ONE follow-up question that probes the same underlying concept from a different angle, with exactly %d answer choices.", cfg.ChoiceCount)

	return b.String()
}
