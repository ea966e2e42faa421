package quizgen

import (
	"math"
	"testing"
)

func TestBaselineCount(t *testing.T) {
	tests := []struct {
		level Level
		total int
		want  int
	}{
		{LevelBeginner, 10, 6},
		{LevelIntermediate, 10, 5},
		{LevelAdvanced, 10, 4},
		{LevelBeginner, 8, 4},
		{LevelIntermediate, 5, 2},
		{LevelAdvanced, 5, 2},
		{LevelBeginner, 1, 0},
		{Level("unknown"), 10, 6},
	}

	for _, tt := range tests {
		if got := BaselineCount(tt.level, tt.total); got != tt.want {
			t.Errorf("BaselineCount(%s, %d) = %d, want %d", tt.level, tt.total, got, tt.want)
		}
	}
}

func TestCategoryFor_FullRange(t *testing.T) {
	shares := map[Level]float64{
		LevelBeginner:     0.6,
		LevelIntermediate: 0.5,
		LevelAdvanced:     0.4,
	}
	for level, share := range shares {
		for total := 1; total <= MaxQuestions; total++ {
			want := int(math.Floor(float64(total) * share))
			baseline := 0
			for i := 0; i < total; i++ {
				if CategoryFor(level, i, total) == CategoryBaseline {
					baseline++
					if i >= want {
						t.Fatalf("%s total=%d: baseline at index %d past the split %d", level, total, i, want)
					}
				}
			}
			if baseline != want {
				t.Errorf("%s total=%d: %d baseline questions, want %d", level, total, baseline, want)
			}
		}
	}
}

func TestCategoryFor_SplitsBatch(t *testing.T) {
	// 10 intermediate questions: indices 0-4 baseline, 5-9 variable.
	for i := 0; i < 10; i++ {
		got := CategoryFor(LevelIntermediate, i, 10)
		want := CategoryBaseline
		if i >= 5 {
			want = CategoryVariable
		}
		if got != want {
			t.Errorf("index %d: got %s, want %s", i, got, want)
		}
	}
}

func TestCategoryFor_Deterministic(t *testing.T) {
	for i := 0; i < 50; i++ {
		a := CategoryFor(LevelAdvanced, i, 50)
		b := CategoryFor(LevelAdvanced, i, 50)
		if a != b {
			t.Fatalf("assignment at index %d not deterministic", i)
		}
	}
}

func TestCategoryFor_SingleQuestion(t *testing.T) {
	// floor(1*0.6) = 0, so a single beginner question is variable.
	if got := CategoryFor(LevelBeginner, 0, 1); got != CategoryVariable {
		t.Errorf("single beginner question: got %s, want variable", got)
	}
}
