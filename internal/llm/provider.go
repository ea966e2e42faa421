package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over generative model backends. The question
// pipeline calls Generate for free-form question text, for follow-up
// explanations, and (in structured mode) for schema-conforming JSON.
type Provider interface {
	// Generate sends a prompt to the model and returns its output. When
	// the request's Schema is set, the provider uses its native structured
	// output mechanism and the response Content is the validated JSON.
	// When Schema is nil, Content carries raw text; read it with
	// Response.Text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Messages is the conversation. Question generation is single-turn,
	// so this is normally one user message.
	Messages []Message

	// Schema, when set, requests JSON conforming to that schema via the
	// provider's structured output support. Nil means free-form text.
	Schema *Schema

	// MaxTokens is the response token budget.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message is a single conversation message.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model. Name is used
// as the tool or schema name where the provider requires one; Definition is
// a JSON Schema document as a map.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output: validated JSON when a Schema was
	// requested, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Text returns the response content as plain text. Content that is a JSON
// string is unwrapped; anything else is returned verbatim.
func (r *Response) Text() string {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s
	}
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
