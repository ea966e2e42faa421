package quizgen

import (
	"fmt"
	"strings"
)

const questionSystemPrompt = `You are a quiz author writing multiple-choice questions for technical topics.

Rules:
- Write a single self-contained question for the given topic, concept, level, and question type.
- Provide exactly 4 options labeled A), B), C), D), each on its own line.
- Exactly one option is correct. Distractors should be plausible but wrong.
- After the options, state the correct answer on its own line as "Correct answer: <letter>".
- Plain text only. No markdown, no numbering besides the option letters.`

// buildQuestionPrompt constructs the user message for the question call.
func buildQuestionPrompt(req Request, category Category, concept string) string {
	goal := "test fundamental knowledge"
	if category == CategoryVariable {
		goal = "test application and problem-solving skills"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %s level %s multiple choice question about %s in %s. ", req.Level, category, concept, req.Topic)
	fmt.Fprintf(&b, "The question should %s. ", goal)
	b.WriteString("Provide 4 options (A, B, C, D) and indicate the correct answer.")

	if len(req.Keywords) > 0 {
		fmt.Fprintf(&b, "\nFocus on: %s.", strings.Join(req.Keywords, ", "))
	}
	return b.String()
}

// buildExplanationPrompt constructs the user message for the follow-up
// explanation call. The concept, topic, and level are threaded in explicitly
// so the explanation can reference the question's actual subject.
func buildExplanationPrompt(label, concept, topic string, level Level) string {
	return fmt.Sprintf(
		"Explain in 2-3 sentences why %s is the correct answer for this %s question about %s at %s level.",
		label, concept, topic, level,
	)
}
