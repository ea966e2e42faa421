package quizgen

import "testing"

func validRecord() map[string]any {
	return map[string]any{
		"id":        "AI_GEN_1000",
		"core_type": "baseline",
		"level":     "beginner",
		"topic":     "python",
		"question":  "What is a list?",
		"options": map[string]any{
			"A": "a", "B": "b", "C": "c", "D": "d",
		},
		"correct":     "A",
		"explanation": "Because.",
	}
}

func hasIssue(result RecordResult, issue string) bool {
	for _, i := range result.Issues {
		if i == issue {
			return true
		}
	}
	return false
}

func TestValidateRecords_Valid(t *testing.T) {
	results := ValidateRecords([]map[string]any{validRecord()})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !results[0].Valid {
		t.Errorf("expected valid, issues: %v", results[0].Issues)
	}
	if results[0].ID != "AI_GEN_1000" {
		t.Errorf("unexpected id: %q", results[0].ID)
	}
}

func TestValidateRecords_MissingField(t *testing.T) {
	record := validRecord()
	delete(record, "explanation")

	result := ValidateRecords([]map[string]any{record})[0]
	if result.Valid {
		t.Fatal("expected invalid")
	}
	if !hasIssue(result, "Missing required field: explanation") {
		t.Errorf("missing field message absent, issues: %v", result.Issues)
	}
}

func TestValidateRecords_WrongOptionCount(t *testing.T) {
	record := validRecord()
	record["options"] = map[string]any{"A": "a", "B": "b"}

	result := ValidateRecords([]map[string]any{record})[0]
	if !hasIssue(result, "Must have exactly 4 options") {
		t.Errorf("option count message absent, issues: %v", result.Issues)
	}
}

func TestValidateRecords_OptionsNotObject(t *testing.T) {
	record := validRecord()
	record["options"] = []any{"a", "b", "c", "d"}

	result := ValidateRecords([]map[string]any{record})[0]
	if !hasIssue(result, "Options must be a dictionary") {
		t.Errorf("options type message absent, issues: %v", result.Issues)
	}
}

func TestValidateRecords_CorrectLabelAbsent(t *testing.T) {
	record := validRecord()
	record["correct"] = "E"

	result := ValidateRecords([]map[string]any{record})[0]
	if !hasIssue(result, "Correct answer 'E' not found in options") {
		t.Errorf("correct label message absent, issues: %v", result.Issues)
	}
}

func TestValidateRecords_BadEnums(t *testing.T) {
	record := validRecord()
	record["core_type"] = "hybrid"
	record["level"] = "expert"

	result := ValidateRecords([]map[string]any{record})[0]
	if !hasIssue(result, "Core type must be 'baseline' or 'variable'") {
		t.Errorf("core type message absent, issues: %v", result.Issues)
	}
	if !hasIssue(result, "Level must be 'beginner', 'intermediate', or 'advanced'") {
		t.Errorf("level message absent, issues: %v", result.Issues)
	}
}

func TestValidateRecords_FallbackID(t *testing.T) {
	record := validRecord()
	delete(record, "id")

	results := ValidateRecords([]map[string]any{validRecord(), record})
	if results[1].ID != "question_1" {
		t.Errorf("expected positional fallback id, got %q", results[1].ID)
	}
}

func TestValidateRecords_Empty(t *testing.T) {
	if results := ValidateRecords(nil); len(results) != 0 {
		t.Errorf("expected no results for empty input, got %d", len(results))
	}
}
