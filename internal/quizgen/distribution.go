package quizgen

// baselineShares maps each level to the fraction of a batch that should be
// baseline (recall) questions. The remainder is variable (applied).
var baselineShares = map[Level]float64{
	LevelBeginner:     0.6,
	LevelIntermediate: 0.5,
	LevelAdvanced:     0.4,
}

// defaultBaselineShare applies when the level is not in the table.
const defaultBaselineShare = 0.6

// BaselineCount returns floor(total * share) for the level's baseline share.
func BaselineCount(level Level, total int) int {
	share, ok := baselineShares[level]
	if !ok {
		share = defaultBaselineShare
	}
	return int(float64(total) * share)
}

// CategoryFor assigns a category to the question at the given index of a
// batch. Indices [0, BaselineCount) are baseline, the rest variable. The
// assignment is deterministic in (level, index, total) and does not consume
// randomness.
func CategoryFor(level Level, index, total int) Category {
	if index < BaselineCount(level, total) {
		return CategoryBaseline
	}
	return CategoryVariable
}
