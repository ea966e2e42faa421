package store

import (
	"context"
	"time"
)

// LLMEventData is the payload recorded for one model call.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a persisted model call.
type LLMEvent struct {
	ID        int64
	CreatedAt time.Time
	LLMEventData
}

// GenerationEventData is the payload recorded for one question batch.
type GenerationEventData struct {
	BatchID     string
	Topic       string
	Level       string
	Requested   int
	AIGenerated int
	Templated   int
	DurationMs  int64
}

// GenerationEvent is a persisted question batch record.
type GenerationEvent struct {
	ID        int64
	CreatedAt time.Time
	GenerationEventData
}

// QueryOpts filters event listings.
type QueryOpts struct {
	// Limit caps the number of rows returned. Zero means no limit.
	Limit int
	// Purpose filters model calls by purpose when non-empty.
	Purpose string
}

// LLMUsage aggregates model calls grouped by purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates model calls grouped by model.
type ModelUsage struct {
	Provider     string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// GenerationTotals summarizes all recorded batches.
type GenerationTotals struct {
	Batches     int
	Questions   int
	AIGenerated int
	Templated   int
}

// EventRepo records and queries generation history.
type EventRepo interface {
	AppendLLMEvent(ctx context.Context, data LLMEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
	GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	AppendGeneration(ctx context.Context, data GenerationEventData) error
	QueryGenerations(ctx context.Context, opts QueryOpts) ([]GenerationEvent, error)
	Totals(ctx context.Context) (*GenerationTotals, error)
}
