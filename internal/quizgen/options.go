package quizgen

import (
	"fmt"
	"math/rand/v2"
)

// correctStatement phrases the single correct option for a concept/topic
// pair. The phrasing depends on the question category.
func correctStatement(category Category, concept, topic string) string {
	if category == CategoryVariable {
		return fmt.Sprintf("An advanced application of %s that solves complex %s problems efficiently", concept, topic)
	}
	return fmt.Sprintf("A fundamental %s concept in %s that provides essential functionality", concept, topic)
}

// distractors returns the three plausible-but-wrong statements for a
// concept/topic pair. The pools are fixed per category.
func distractors(category Category, concept, topic string) []string {
	if category == CategoryVariable {
		return []string{
			fmt.Sprintf("A basic %s implementation that only handles simple %s cases", concept, topic),
			fmt.Sprintf("A %s workaround that provides temporary %s functionality", concept, topic),
			fmt.Sprintf("A theoretical %s approach with no practical %s applications", concept, topic),
		}
	}
	return []string{
		fmt.Sprintf("An advanced %s technique only used in complex %s applications", concept, topic),
		fmt.Sprintf("A deprecated %s method that should no longer be used in %s", concept, topic),
		fmt.Sprintf("An external %s library not part of core %s", concept, topic),
	}
}

// SynthesizeOptions produces a 4-way labeled option set for a question about
// concept in topic, with exactly one correct entry, and returns the label
// holding the correct statement.
func SynthesizeOptions(rng *rand.Rand, category Category, concept, topic string) (Options, string) {
	return buildOptionSet(rng, correctStatement(category, concept, topic), distractors(category, concept, topic))
}

// buildOptionSet shuffles [correct, incorrect...] into labels A-D and scans
// the result for the correct statement's exact text. If a text collision
// makes the correct entry ambiguous, or the scan comes up empty, label "A"
// is used. The set always has exactly 4 entries; distractor lists shorter
// than 3 are rejected by construction elsewhere.
func buildOptionSet(rng *rand.Rand, correct string, incorrect []string) (Options, string) {
	texts := append([]string{correct}, incorrect...)
	rng.Shuffle(len(texts), func(i, j int) {
		texts[i], texts[j] = texts[j], texts[i]
	})

	options := make(Options, len(OptionLabels))
	for i, label := range OptionLabels {
		options[label] = texts[i]
	}

	correctLabel := ""
	matches := 0
	for _, label := range OptionLabels {
		if options[label] == correct {
			matches++
			if correctLabel == "" {
				correctLabel = label
			}
		}
	}
	// A duplicate text makes the scan ambiguous; so does a missing correct
	// entry. Both default to the first label.
	if correctLabel == "" || matches > 1 {
		correctLabel = OptionLabels[0]
	}
	return options, correctLabel
}
