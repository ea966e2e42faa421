package quizgen

import (
	"math/rand/v2"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(42, 43))
}

func TestSynthesizeOptions_RoundTrip(t *testing.T) {
	rng := testRNG()

	for i := 0; i < 100; i++ {
		options, correct := SynthesizeOptions(rng, CategoryBaseline, "loops", "Python")

		if err := options.Validate(); err != nil {
			t.Fatalf("options invalid: %v", err)
		}
		want := correctStatement(CategoryBaseline, "loops", "Python")
		if options[correct] != want {
			t.Fatalf("label %s holds %q, want the correct statement", correct, options[correct])
		}
	}
}

func TestSynthesizeOptions_VariableCategory(t *testing.T) {
	options, correct := SynthesizeOptions(testRNG(), CategoryVariable, "closures", "JavaScript")

	if len(options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(options))
	}
	if options[correct] != correctStatement(CategoryVariable, "closures", "JavaScript") {
		t.Errorf("correct label does not hold the variable-category statement")
	}
}

func TestBuildOptionSet_DuplicateTextDefaultsToA(t *testing.T) {
	// Two entries carry the correct text, so the scan is ambiguous.
	options, correct := buildOptionSet(testRNG(), "same", []string{"same", "other", "else"})

	if correct != "A" {
		t.Errorf("ambiguous scan must default to A, got %s", correct)
	}
	if len(options) != 4 {
		t.Errorf("expected 4 options, got %d", len(options))
	}
}

func TestDistractors_ThreePerCategory(t *testing.T) {
	for _, category := range []Category{CategoryBaseline, CategoryVariable} {
		if got := distractors(category, "x", "y"); len(got) != 3 {
			t.Errorf("%s: expected 3 distractors, got %d", category, len(got))
		}
	}
}
