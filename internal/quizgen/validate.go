package quizgen

import "fmt"

// requiredRecordFields are the fields every question record must carry, in
// report order.
var requiredRecordFields = []string{
	"id", "core_type", "level", "topic", "question", "options", "correct", "explanation",
}

// RecordResult reports the validation outcome for one caller-supplied
// question record.
type RecordResult struct {
	Index  int      `json:"question_index"`
	ID     string   `json:"question_id"`
	Valid  bool     `json:"is_valid"`
	Issues []string `json:"issues"`
}

// ValidateRecords checks raw question objects (as decoded JSON) against the
// structural rules: required fields present, exactly 4 options, correct
// label present among the options, category and level within their
// enumerated sets. It reports issues per record and never rejects the whole
// batch.
func ValidateRecords(records []map[string]any) []RecordResult {
	results := make([]RecordResult, 0, len(records))
	for i, record := range records {
		results = append(results, validateRecord(i, record))
	}
	return results
}

func validateRecord(index int, record map[string]any) RecordResult {
	issues := []string{}

	for _, field := range requiredRecordFields {
		if _, ok := record[field]; !ok {
			issues = append(issues, fmt.Sprintf("Missing required field: %s", field))
		}
	}

	if raw, ok := record["options"]; ok {
		options, isMap := raw.(map[string]any)
		switch {
		case !isMap:
			issues = append(issues, "Options must be a dictionary")
		case len(options) != 4:
			issues = append(issues, "Must have exactly 4 options")
		default:
			if correct, ok := record["correct"].(string); ok && correct != "" {
				if _, present := options[correct]; !present {
					issues = append(issues, fmt.Sprintf("Correct answer '%s' not found in options", correct))
				}
			}
		}
	}

	if raw, ok := record["core_type"]; ok {
		if category, isString := raw.(string); !isString || !Category(category).Valid() {
			issues = append(issues, "Core type must be 'baseline' or 'variable'")
		}
	}

	if raw, ok := record["level"]; ok {
		if level, isString := raw.(string); !isString || !Level(level).Valid() {
			issues = append(issues, "Level must be 'beginner', 'intermediate', or 'advanced'")
		}
	}

	id, _ := record["id"].(string)
	if id == "" {
		id = fmt.Sprintf("question_%d", index)
	}

	return RecordResult{
		Index:  index,
		ID:     id,
		Valid:  len(issues) == 0,
		Issues: issues,
	}
}
