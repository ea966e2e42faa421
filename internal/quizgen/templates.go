package quizgen

import (
	"math/rand/v2"
	"strings"
)

// stemTemplates holds the question-stem pools, keyed by category. Each pool
// has 5 variants with {concept} and {topic} placeholders.
var stemTemplates = map[Category][]string{
	CategoryBaseline: {
		"What is the purpose of {concept} in {topic}?",
		"How do you use {concept} in {topic} programming?",
		"Which statement best describes {concept} in {topic}?",
		"What are the benefits of using {concept} in {topic}?",
		"When would you implement {concept} in {topic}?",
	},
	CategoryVariable: {
		"How would you solve a problem using {concept} in {topic}?",
		"What is the best approach for implementing {concept} in {topic}?",
		"Which method would you choose for {concept} in {topic} and why?",
		"How do you optimize {concept} usage in {topic} applications?",
		"What are the trade-offs when using {concept} in {topic}?",
	},
}

// ComposeStem picks a stem template uniformly at random from the category's
// pool and substitutes the concept and topic placeholders. Unknown
// categories use the baseline pool. Substitution is plain text replacement;
// no other placeholders exist on this path.
func ComposeStem(rng *rand.Rand, category Category, concept, topic string) string {
	pool, ok := stemTemplates[category]
	if !ok {
		pool = stemTemplates[CategoryBaseline]
	}
	stem := pool[rng.IntN(len(pool))]
	stem = strings.ReplaceAll(stem, "{concept}", concept)
	stem = strings.ReplaceAll(stem, "{topic}", topic)
	return stem
}
