package generation

import "github.com/abhisek/lingo/internal/llm"

// BatchSchema defines the JSON schema for LLM question-batch responses.
var BatchSchema = &llm.Schema{
	Name:        "practice-questions",
	Description: "A batch of language practice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":  "array",
				"items": questionDefinition,
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

var questionDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"type": map[string]any{
			"type": "string",
			"enum": []any{"multiple_choice", "fill_blank", "translation",
				"reading", "listening", "speaking", "sentence_order"},
			"description": "The exercise modality",
		},
		"target_skill": map[string]any{
			"type": "string",
			"enum": []any{"grammar", "vocabulary", "reading", "listening",
				"speaking", "writing", "comprehension"},
			"description": "The primary skill this question exercises",
		},
		"difficulty_label": map[string]any{
			"type":        "string",
			"enum":        []any{"A1", "A2", "B1", "B2", "C1", "C2"},
			"description": "CEFR level of the question",
		},
		"question": map[string]any{
			"type":        "string",
			"description": "The question prompt shown to the learner, in the content language",
		},
		"passage": map[string]any{
			"type":        "string",
			"description": "Supporting text for reading questions, empty otherwise",
		},
		"correct_answer": map[string]any{
			"type":        "string",
			"description": "The correct answer. For multiple_choice: the text of the correct option. For speaking: the target sentence to shadow.",
		},
		"options": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Exactly 4 options for multiple_choice, empty otherwise",
		},
		"translation": map[string]any{
			"type":        "string",
			"description": "Translation of the question into the learner's interface language",
		},
		"grammar_tags": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Grammar points exercised, e.g. \"past tense\", \"conditional\"",
		},
		"vocab_tags": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Vocabulary domains exercised, e.g. \"food\", \"travel\"",
		},
		"topic_tags": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Subject-matter topics, e.g. \"cooking\", \"history\"",
		},
	},
	"required": []any{"type", "target_skill", "difficulty_label", "question",
		"passage", "correct_answer", "options", "translation",
		"grammar_tags", "vocab_tags", "topic_tags"},
	"additionalProperties": false,
}
