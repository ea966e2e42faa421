package quizgen

import "github.com/quizhive/quizgen/internal/llm"

// QuestionSchema defines the JSON shape requested from the model on the
// structured output path.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single multiple-choice quiz question with four labeled options",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question stem shown to the quiz taker",
			},
			"options": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"A": map[string]any{"type": "string"},
					"B": map[string]any{"type": "string"},
					"C": map[string]any{"type": "string"},
					"D": map[string]any{"type": "string"},
				},
				"required":             []any{"A", "B", "C", "D"},
				"additionalProperties": false,
				"description":          "Exactly 4 answer options keyed by label",
			},
			"correct": map[string]any{
				"type":        "string",
				"enum":        []any{"A", "B", "C", "D"},
				"description": "The label of the single correct option",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A short explanation of why the correct option is right",
			},
		},
		"required":             []any{"question", "options", "correct", "explanation"},
		"additionalProperties": false,
	},
}

// structuredOutput mirrors QuestionSchema for decoding.
type structuredOutput struct {
	Question    string            `json:"question"`
	Options     map[string]string `json:"options"`
	Correct     string            `json:"correct"`
	Explanation string            `json:"explanation"`
}
