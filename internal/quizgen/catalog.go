package quizgen

import "strings"

// ConceptCatalog maps (topic, level) to an ordered list of candidate
// concepts. Topics are matched case-insensitively by substring in catalog
// order; unknown topics fall back to a per-level universal list.
type ConceptCatalog struct {
	topics    []topicEntry
	universal map[Level][]string
}

type topicEntry struct {
	key      string
	concepts map[Level][]string
}

// NewConceptCatalog builds the fixed catalog of known topics.
func NewConceptCatalog() *ConceptCatalog {
	return &ConceptCatalog{
		topics: []topicEntry{
			{
				key: "programming",
				concepts: map[Level][]string{
					LevelBeginner:     {"variables", "loops", "functions", "conditionals", "arrays", "strings"},
					LevelIntermediate: {"classes", "inheritance", "polymorphism", "encapsulation", "recursion"},
					LevelAdvanced:     {"design patterns", "memory management", "concurrency", "performance optimization"},
				},
			},
			{
				key: "python",
				concepts: map[Level][]string{
					LevelBeginner:     {"lists", "dictionaries", "functions", "loops", "conditionals", "strings"},
					LevelIntermediate: {"classes", "decorators", "generators", "context managers", "modules"},
					LevelAdvanced:     {"metaclasses", "async programming", "memory management", "C extensions"},
				},
			},
			{
				key: "javascript",
				concepts: map[Level][]string{
					LevelBeginner:     {"variables", "functions", "arrays", "objects", "DOM manipulation"},
					LevelIntermediate: {"closures", "promises", "async/await", "prototypes", "modules"},
					LevelAdvanced:     {"event loop", "performance optimization", "design patterns", "frameworks"},
				},
			},
			{
				key: "aws",
				concepts: map[Level][]string{
					LevelBeginner:     {"EC2", "S3", "IAM", "VPC", "regions and availability zones"},
					LevelIntermediate: {"Lambda", "RDS", "CloudFormation", "API Gateway", "SQS"},
					LevelAdvanced:     {"high availability", "cost optimization", "cross-region replication", "serverless architecture"},
				},
			},
			{
				key: "docker",
				concepts: map[Level][]string{
					LevelBeginner:     {"containers", "images", "Dockerfile", "volumes", "docker run"},
					LevelIntermediate: {"networks", "docker-compose", "multi-stage builds", "registries"},
					LevelAdvanced:     {"container orchestration", "image layer caching", "security scanning", "resource limits"},
				},
			},
		},
		universal: map[Level][]string{
			LevelBeginner: {
				"basic concepts", "fundamentals", "introduction", "getting started",
				"syntax", "variables", "data types", "operators", "control flow",
			},
			LevelIntermediate: {
				"functions", "methods", "classes", "objects", "modules", "packages",
				"error handling", "file operations", "algorithms", "data structures",
			},
			LevelAdvanced: {
				"optimization", "performance", "architecture", "design patterns",
				"advanced techniques", "best practices", "scalability", "security",
			},
		},
	}
}

// ConceptsFor returns the concept list for the topic and level. The topic is
// normalized and matched by substring against catalog keys in catalog order;
// the first match wins. Unknown topics get the level's universal list.
// The returned slice is a copy and safe to mutate.
func (c *ConceptCatalog) ConceptsFor(topic string, level Level) []string {
	normalized := strings.ToLower(strings.TrimSpace(topic))
	if normalized == "" {
		return c.Universal(level)
	}

	for _, entry := range c.topics {
		if strings.Contains(normalized, entry.key) || strings.Contains(entry.key, normalized) {
			if concepts, ok := entry.concepts[level]; ok {
				return append([]string(nil), concepts...)
			}
			return c.Universal(level)
		}
	}
	return c.Universal(level)
}

// Universal returns the level's universal fallback concepts as a copy.
// Unknown levels get the beginner list.
func (c *ConceptCatalog) Universal(level Level) []string {
	concepts, ok := c.universal[level]
	if !ok {
		concepts = c.universal[LevelBeginner]
	}
	return append([]string(nil), concepts...)
}

// Topics returns the known topic keys in catalog order.
func (c *ConceptCatalog) Topics() []string {
	keys := make([]string, 0, len(c.topics))
	for _, entry := range c.topics {
		keys = append(keys, entry.key)
	}
	return keys
}
