package generator

// GeneratedQuestion is one question as returned by the model, before
// persistence.
type GeneratedQuestion struct {
	QuestionText  string   `json:"question_text"`
	AnswerChoices []string `json:"answer_choices"`
	Answer        string   `json:"answer"`
	Explanation   string   `json:"explanation"`
}

// GeneratedSection is the full structured output of one generation call.
type GeneratedSection struct {
	Title     string              `json:"title"`
	Questions []GeneratedQuestion `json:"questions"`
}

// GeneratedFollowUp is the structured output of a follow-up generation
// call for a single primary question.
type GeneratedFollowUp struct {
	FollowUpContent string   `json:"follow_up_content"`
	AnswerChoices   []string `json:"answer_choices"`
	CorrectAnswer   string   `json:"correct_answer"`
	Explanation     string   `json:"explanation"`
}

// Config tunes generation.
type Config struct {
	// QuestionCount is the exact number of questions per section.
	QuestionCount int

	// ChoiceCount is the exact number of answer choices per question.
	ChoiceCount int

	// MaxTokens bounds the model response.
	MaxTokens int

	// Temperature for the model, 0.0 - 1.0.
	Temperature float64
}

// DefaultConfig matches the standard ten-question, four-choice SAT
// practice section.
func DefaultConfig() Config {
	return Config{
		QuestionCount: 10,
		ChoiceCount:   4,
		MaxTokens:     4096,
		Temperature:   0.7,
	}
}
