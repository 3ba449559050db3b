package generator

import "sat_prep_backend/internal/llm"

// SectionSchema is the JSON schema for a generated practice section.
// The question count and choice count are enforced again by the
// validators, so the schema keeps loose bounds.
var SectionSchema = &llm.Schema{
	Name:        "sat-practice-section",
	Description: "A full SAT practice section: a title and a list of multiple-choice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short human-readable title for the section",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question stem shown to the student, plain text",
						},
						"answer_choices": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    2,
							"description": "The answer options, in display order",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct answer. Must be copied verbatim from answer_choices.",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A worked explanation of why the answer is correct",
						},
					},
					"required":             []any{"question_text", "answer_choices", "answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "questions"},
		"additionalProperties": false,
	},
}

// FollowUpSchema is the JSON schema for a generated follow-up question.
var FollowUpSchema = &llm.Schema{
	Name:        "sat-follow-up-question",
	Description: "A supplementary question probing the same concept as a primary question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"follow_up_content": map[string]any{
				"type":        "string",
				"description": "The follow-up question stem, plain text",
			},
			"answer_choices": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 2,
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "Must be copied verbatim from answer_choices.",
			},
			"explanation": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"follow_up_content", "answer_choices", "correct_answer", "explanation"},
		"additionalProperties": false,
	},
}
