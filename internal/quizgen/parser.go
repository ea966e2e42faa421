package quizgen

import (
	"regexp"
	"strings"
)

// ParsedOption is one lettered option recovered from model output, in
// recovery order.
type ParsedOption struct {
	Label string
	Text  string
}

// ParsedQuestion is the structured result of parsing free-form model output.
// Options holds between 2 and 4 entries with unique labels; Correct is
// always one of the standard labels but is not guaranteed to be among the
// recovered options.
type ParsedQuestion struct {
	Text    string
	Options []ParsedOption
	Correct string
}

// optionMarker matches a lettered option marker like "A)" or "B.".
var optionMarker = regexp.MustCompile(`[A-D][.)]`)

// answerPhrase matches a declaration of the correct answer, e.g.
// "Correct answer: B" or "answer: c", in any case.
var answerPhrase = regexp.MustCompile(`(?i)(?:correct\s+answer|correct|answer)\s*:?\s*([A-D])\b`)

// answerSuffix matches an answer declaration at the end of the input, where
// no option marker follows and the phrase would otherwise be absorbed into
// the final option's text.
var answerSuffix = regexp.MustCompile(`(?i)(?:correct\s+answer|correct|answer)\s*:?\s*[A-D]\b[.)]?\s*$`)

// ParseModelOutput extracts a question stem, a lettered option set, and a
// correct-answer label from free-form model output. Model output format is
// not guaranteed, so every step is a best-effort heuristic; the second
// return value is false when no usable question could be recovered (no stem
// before the first option marker, or fewer than 2 distinct options). It
// never panics on malformed input.
func ParseModelOutput(raw string) (*ParsedQuestion, bool) {
	stem, ok := extractStem(raw)
	if !ok {
		return nil, false
	}

	options := extractOptions(raw)
	if len(options) < 2 {
		return nil, false
	}

	return &ParsedQuestion{
		Text:    stem,
		Options: options,
		Correct: extractCorrectLabel(raw, options),
	}, true
}

// extractStem returns the text preceding the first lettered option marker.
// Fails when there is no marker or no text before it.
func extractStem(raw string) (string, bool) {
	loc := optionMarker.FindStringIndex(raw)
	if loc == nil {
		return "", false
	}
	stem := strings.TrimSpace(raw[:loc[0]])
	if stem == "" {
		return "", false
	}
	return stem, true
}

// extractOptions recovers lettered options by slicing the text between
// consecutive option markers (or end of input). Only the first occurrence
// of each letter is kept; empty option texts are dropped.
func extractOptions(raw string) []ParsedOption {
	locs := optionMarker.FindAllStringIndex(raw, -1)

	var options []ParsedOption
	seen := make(map[string]bool)
	for i, loc := range locs {
		label := raw[loc[0] : loc[0]+1]
		if seen[label] {
			continue
		}

		end := len(raw)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		text := raw[loc[1]:end]
		if end == len(raw) {
			text = answerSuffix.ReplaceAllString(text, "")
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		seen[label] = true
		options = append(options, ParsedOption{Label: label, Text: text})
	}
	return options
}

// extractCorrectLabel searches for an answer declaration phrase and returns
// its letter uppercased. Without one, the first recovered label is the
// default. options must be non-empty.
func extractCorrectLabel(raw string, options []ParsedOption) string {
	if m := answerPhrase.FindStringSubmatch(raw); m != nil {
		return strings.ToUpper(m[1])
	}
	return options[0].Label
}
