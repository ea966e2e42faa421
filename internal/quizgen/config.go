package quizgen

import "time"

// OutputMode selects how the AI path asks the model for a question.
type OutputMode string

const (
	// OutputText requests free-form text and recovers the question with
	// the heuristic parser. This is the default.
	OutputText OutputMode = "text"

	// OutputStructured requests schema-conforming JSON from providers that
	// support structured output. Parse failures still fall back to the
	// template path.
	OutputStructured OutputMode = "structured"
)

// Config controls the question pipeline.
type Config struct {
	// MaxTokens is the token budget for the question call.
	MaxTokens int

	// ExplanationMaxTokens is the token budget for the follow-up
	// explanation call on the text output path.
	ExplanationMaxTokens int

	// Temperature for the question call (0.0-1.0).
	Temperature float64

	// ExplanationTemperature for the explanation call.
	ExplanationTemperature float64

	// AITimeout bounds one AI question attempt (question plus explanation
	// call). On expiry the question falls back to the template path.
	AITimeout time.Duration

	// OutputMode selects free-form text parsing or structured output.
	OutputMode OutputMode

	// Seed seeds the pipeline's randomness source. Zero means seed from
	// the clock; a fixed value makes shuffles and template picks
	// reproducible for tests and the generate command.
	Seed uint64
}

// DefaultConfig returns the recommended pipeline settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:              300,
		ExplanationMaxTokens:   150,
		Temperature:            0.8,
		ExplanationTemperature: 0.7,
		AITimeout:              20 * time.Second,
		OutputMode:             OutputText,
	}
}
