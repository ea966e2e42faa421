package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "quizgen.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_OpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "quizgen.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open with missing parent dir: %v", err)
	}
	defer s.Close()

	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestEventRepo_LLMEventRoundTrip(t *testing.T) {
	repo := testStore(t).Events()
	ctx := context.Background()

	data := LLMEventData{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "question-gen",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    450,
		Success:      true,
		RequestBody:  "[user]\nwrite a question",
		ResponseBody: "A) yes B) no",
	}
	if err := repo.AppendLLMEvent(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.Provider != "openai" || ev.Model != "gpt-4o-mini" || ev.Purpose != "question-gen" {
		t.Errorf("identity fields lost: %+v", ev)
	}
	if ev.InputTokens != 120 || ev.OutputTokens != 80 || ev.LatencyMs != 450 {
		t.Errorf("numeric fields lost: %+v", ev)
	}
	if !ev.Success {
		t.Error("success flag lost")
	}

	got, err := repo.GetLLMEvent(ctx, ev.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.RequestBody != data.RequestBody || got.ResponseBody != data.ResponseBody {
		t.Errorf("bodies lost: %+v", got)
	}
}

func TestEventRepo_GetLLMEventNotFound(t *testing.T) {
	repo := testStore(t).Events()

	_, err := repo.GetLLMEvent(context.Background(), 12345)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEventRepo_QueryFilters(t *testing.T) {
	repo := testStore(t).Events()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.AppendLLMEvent(ctx, LLMEventData{Provider: "mock", Model: "mock", Purpose: "question-gen", Success: true}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := repo.AppendLLMEvent(ctx, LLMEventData{Provider: "mock", Model: "mock", Purpose: "explanation", Success: true}); err != nil {
		t.Fatalf("append: %v", err)
	}

	byPurpose, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "explanation"})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Errorf("expected 1 explanation event, got %d", len(byPurpose))
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 events with limit, got %d", len(limited))
	}
	// Newest first.
	if limited[0].ID <= limited[1].ID {
		t.Errorf("expected descending id order, got %d then %d", limited[0].ID, limited[1].ID)
	}
}

func TestEventRepo_UsageAggregation(t *testing.T) {
	repo := testStore(t).Events()
	ctx := context.Background()

	events := []LLMEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "explanation", InputTokens: 30, OutputTokens: 40, LatencyMs: 100, Success: true},
	}
	for _, ev := range events {
		if err := repo.AppendLLMEvent(ctx, ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purpose groups, got %d", len(byPurpose))
	}
	// Sorted by call count, question-gen first.
	if byPurpose[0].Purpose != "question-gen" || byPurpose[0].Calls != 2 {
		t.Errorf("unexpected top purpose group: %+v", byPurpose[0])
	}
	if byPurpose[0].InputTokens != 200 || byPurpose[0].OutputTokens != 100 {
		t.Errorf("token sums wrong: %+v", byPurpose[0])
	}
	if byPurpose[0].AvgLatencyMs != 300 {
		t.Errorf("expected avg latency 300, got %d", byPurpose[0].AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Calls != 3 {
		t.Errorf("unexpected model grouping: %+v", byModel)
	}
}

func TestEventRepo_GenerationEvents(t *testing.T) {
	repo := testStore(t).Events()
	ctx := context.Background()

	batches := []GenerationEventData{
		{BatchID: "b1", Topic: "python", Level: "beginner", Requested: 5, AIGenerated: 3, Templated: 2, DurationMs: 800},
		{BatchID: "b2", Topic: "aws", Level: "advanced", Requested: 3, AIGenerated: 0, Templated: 3, DurationMs: 12},
	}
	for _, b := range batches {
		if err := repo.AppendGeneration(ctx, b); err != nil {
			t.Fatalf("append generation: %v", err)
		}
	}

	events, err := repo.QueryGenerations(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query generations: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(events))
	}
	if events[0].BatchID != "b2" {
		t.Errorf("expected newest batch first, got %q", events[0].BatchID)
	}

	totals, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.Batches != 2 || totals.Questions != 8 {
		t.Errorf("unexpected totals: %+v", totals)
	}
	if totals.AIGenerated != 3 || totals.Templated != 5 {
		t.Errorf("unexpected path split: %+v", totals)
	}
}

func TestEventRepo_TotalsEmpty(t *testing.T) {
	repo := testStore(t).Events()

	totals, err := repo.Totals(context.Background())
	if err != nil {
		t.Fatalf("totals on empty store: %v", err)
	}
	if totals.Batches != 0 || totals.Questions != 0 {
		t.Errorf("expected zero totals, got %+v", totals)
	}
}
