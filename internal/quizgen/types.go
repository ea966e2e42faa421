package quizgen

import "fmt"

// Level is the requested difficulty of a quiz.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Levels lists all supported difficulty levels in display order.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// Valid reports whether l is one of the supported levels.
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Category classifies a question as recall ("baseline") or applied
// problem-solving ("variable").
type Category string

const (
	CategoryBaseline Category = "baseline"
	CategoryVariable Category = "variable"
)

// Valid reports whether c is one of the supported categories.
func (c Category) Valid() bool {
	return c == CategoryBaseline || c == CategoryVariable
}

// MaxQuestions is the largest batch a single request may ask for.
const MaxQuestions = 50

// Request describes one question-generation batch. A Request is built once
// per API call and is not mutated by the pipeline.
type Request struct {
	// Topic is free text, e.g. "Python" or "AWS networking".
	Topic string

	// Level selects the difficulty and the baseline/variable split.
	Level Level

	// Count is the number of questions to generate. Must be in [1, MaxQuestions].
	Count int

	// Category, when set, applies to every question in the batch and
	// bypasses the distribution policy.
	Category Category

	// Keywords optionally focus generation on specific terms. They are
	// passed through to the AI prompt; the template path ignores them.
	Keywords []string
}

// Validate checks the request against the enumerated sets and count bounds.
func (r Request) Validate() error {
	if r.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	if !r.Level.Valid() {
		return fmt.Errorf("level must be one of: beginner, intermediate, advanced")
	}
	if r.Count < 1 || r.Count > MaxQuestions {
		return fmt.Errorf("count must be between 1 and %d", MaxQuestions)
	}
	if r.Category != "" && !r.Category.Valid() {
		return fmt.Errorf("category must be one of: baseline, variable")
	}
	return nil
}

// OptionLabels is the closed label set for answer options, in order.
var OptionLabels = [4]string{"A", "B", "C", "D"}

// Options maps a label in {A,B,C,D} to its answer text. A well-formed set
// has exactly 4 entries; use the Validate method to enforce that after
// construction from untrusted input.
type Options map[string]string

// Validate checks the exactly-4-labels invariant.
func (o Options) Validate() error {
	if len(o) != len(OptionLabels) {
		return fmt.Errorf("options must have exactly %d entries, got %d", len(OptionLabels), len(o))
	}
	for _, label := range OptionLabels {
		if _, ok := o[label]; !ok {
			return fmt.Errorf("options missing label %q", label)
		}
	}
	return nil
}

// Question is one generated multiple-choice question.
// The JSON field names match the QuizHive wire format.
type Question struct {
	ID          string   `json:"id"`
	Category    Category `json:"core_type"`
	Level       Level    `json:"level"`
	Topic       string   `json:"topic"`
	Text        string   `json:"question"`
	Options     Options  `json:"options"`
	Correct     string   `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Validate checks the structural invariants: exactly 4 labeled options and
// a correct label that is present among them.
func (q *Question) Validate() error {
	if err := q.Options.Validate(); err != nil {
		return err
	}
	if _, ok := q.Options[q.Correct]; !ok {
		return fmt.Errorf("correct label %q not present in options", q.Correct)
	}
	return nil
}
