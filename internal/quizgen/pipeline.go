package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/quizhive/quizgen/internal/llm"
)

// idSeed is the starting value of the question id counter.
const idSeed = 1000

// Pipeline generates question batches. It owns its id counter and randomness
// source and is safe for concurrent Generate calls. The AI path is enabled
// once at construction by passing a non-nil provider; there is no mid-session
// retry of a backend that failed to initialize.
type Pipeline struct {
	catalog  *ConceptCatalog
	provider llm.Provider
	cfg      Config
	log      *zap.Logger

	nextID atomic.Int64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewPipeline creates a Pipeline. provider may be nil, in which case every
// question takes the deterministic template path.
func NewPipeline(cfg Config, provider llm.Provider, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	p := &Pipeline{
		catalog:  NewConceptCatalog(),
		provider: provider,
		cfg:      cfg,
		log:      logger,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	p.nextID.Store(idSeed)
	return p
}

// AIEnabled reports whether the generation backend was initialized.
func (p *Pipeline) AIEnabled() bool { return p.provider != nil }

// Catalog exposes the concept catalog (for the topics endpoint and CLI).
func (p *Pipeline) Catalog() *ConceptCatalog { return p.catalog }

// BatchResult is a generated batch plus path accounting.
type BatchResult struct {
	Questions   []Question
	AIGenerated int
	Templated   int
}

// Generate produces exactly req.Count questions in index order. Individual
// AI-path failures fall back to the template path; the batch never comes up
// short. The only error returns are request validation failures.
func (p *Pipeline) Generate(ctx context.Context, req Request) ([]Question, error) {
	res, err := p.GenerateBatch(ctx, req)
	if err != nil {
		return nil, err
	}
	return res.Questions, nil
}

// GenerateBatch is Generate with per-path counts, for callers that record
// generation history.
func (p *Pipeline) GenerateBatch(ctx context.Context, req Request) (*BatchResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	concepts := p.catalog.ConceptsFor(req.Topic, req.Level)
	if len(concepts) < req.Count {
		concepts = append(concepts, p.catalog.Universal(req.Level)...)
	}
	p.shuffle(concepts)

	res := &BatchResult{Questions: make([]Question, 0, req.Count)}
	for i := 0; i < req.Count; i++ {
		// Concept assignment wraps once the list is exhausted. Repetition
		// under pressure is accepted, not an error.
		concept := concepts[i%len(concepts)]

		category := req.Category
		if category == "" {
			category = CategoryFor(req.Level, i, req.Count)
		}

		q, ai := p.generateOne(ctx, req, category, concept)
		q.ID = fmt.Sprintf("AI_GEN_%d", p.nextID.Add(1)-1)
		res.Questions = append(res.Questions, q)
		if ai {
			res.AIGenerated++
		} else {
			res.Templated++
		}
	}
	return res, nil
}

// generateOne produces a single question, attempting the AI path first when
// the backend is ready. Any backend or parse failure is logged and recovered
// via the template path; it never aborts the batch. The second return value
// reports whether the AI path produced the question.
func (p *Pipeline) generateOne(ctx context.Context, req Request, category Category, concept string) (Question, bool) {
	if p.AIEnabled() {
		q, err := p.generateAI(ctx, req, category, concept)
		if err == nil {
			return q, true
		}
		p.log.Warn("AI generation failed, using template path",
			zap.String("topic", req.Topic),
			zap.String("concept", concept),
			zap.Error(err))
	}
	return p.templateQuestion(req, category, concept), false
}

// templateQuestion builds a question deterministically from the stem
// templates and option pools. It cannot fail.
func (p *Pipeline) templateQuestion(req Request, category Category, concept string) Question {
	p.mu.Lock()
	stem := ComposeStem(p.rng, category, concept, req.Topic)
	options, correct := SynthesizeOptions(p.rng, category, concept, req.Topic)
	p.mu.Unlock()

	return Question{
		Category: category,
		Level:    req.Level,
		Topic:    req.Topic,
		Text:     stem,
		Options:  options,
		Correct:  correct,
		Explanation: fmt.Sprintf(
			"The correct answer demonstrates proper understanding of %s in %s at %s level.",
			concept, req.Topic, req.Level),
	}
}

// generateAI runs one AI question attempt under the configured timeout.
func (p *Pipeline) generateAI(ctx context.Context, req Request, category Category, concept string) (Question, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.AITimeout)
	defer cancel()

	if p.cfg.OutputMode == OutputStructured {
		return p.generateStructured(ctx, req, category, concept)
	}
	return p.generateText(ctx, req, category, concept)
}

// generateText asks the model for free-form output and recovers the
// question with the heuristic parser, then issues a second call for the
// explanation.
func (p *Pipeline) generateText(ctx context.Context, req Request, category Category, concept string) (Question, error) {
	resp, err := p.provider.Generate(llm.WithPurpose(ctx, "question-gen"), llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionPrompt(req, category, concept)},
		},
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	})
	if err != nil {
		return Question{}, fmt.Errorf("question call: %w", err)
	}

	parsed, ok := ParseModelOutput(resp.Text())
	if !ok {
		return Question{}, fmt.Errorf("unparsable model output")
	}

	options, correct := p.assembleOptions(parsed, category, concept, req.Topic)

	explanation, err := p.explain(ctx, correct, concept, req.Topic, req.Level)
	if err != nil {
		return Question{}, err
	}

	return Question{
		Category:    category,
		Level:       req.Level,
		Topic:       req.Topic,
		Text:        parsed.Text,
		Options:     options,
		Correct:     correct,
		Explanation: explanation,
	}, nil
}

// assembleOptions turns a parsed option set (2-4 entries) into a full
// 4-label set. Recovered options keep their letters; missing labels are
// filled from the distractor pool so the exactly-4 invariant always holds.
func (p *Pipeline) assembleOptions(parsed *ParsedQuestion, category Category, concept, topic string) (Options, string) {
	options := make(Options, len(OptionLabels))
	used := make(map[string]bool)
	for _, opt := range parsed.Options {
		options[opt.Label] = opt.Text
		used[opt.Text] = true
	}

	fillers := distractors(category, concept, topic)
	next := 0
	for _, label := range OptionLabels {
		if _, ok := options[label]; ok {
			continue
		}
		for next < len(fillers) && used[fillers[next]] {
			next++
		}
		if next < len(fillers) {
			options[label] = fillers[next]
			used[fillers[next]] = true
			next++
		} else {
			options[label] = fmt.Sprintf("An unrelated capability not connected to %s in %s", concept, topic)
		}
	}

	// After filling, every label exists, so the parsed correct label (or
	// its first-option default) is always present.
	return options, parsed.Correct
}

// explain issues the follow-up free-text call for the explanation. The
// response is taken verbatim, trimmed, with no further validation.
func (p *Pipeline) explain(ctx context.Context, label, concept, topic string, level Level) (string, error) {
	resp, err := p.provider.Generate(llm.WithPurpose(ctx, "explanation"), llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplanationPrompt(label, concept, topic, level)},
		},
		MaxTokens:   p.cfg.ExplanationMaxTokens,
		Temperature: p.cfg.ExplanationTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("explanation call: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

// generateStructured asks the model for schema-conforming JSON. The
// explanation comes back in the same call, so no follow-up request is made.
func (p *Pipeline) generateStructured(ctx context.Context, req Request, category Category, concept string) (Question, error) {
	resp, err := p.provider.Generate(llm.WithPurpose(ctx, "question-gen"), llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionPrompt(req, category, concept)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	})
	if err != nil {
		return Question{}, fmt.Errorf("question call: %w", err)
	}

	var out structuredOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Question{}, fmt.Errorf("decode structured output: %w", err)
	}
	if out.Question == "" {
		return Question{}, fmt.Errorf("structured output has empty question")
	}

	q := Question{
		Category:    category,
		Level:       req.Level,
		Topic:       req.Topic,
		Text:        out.Question,
		Options:     Options(out.Options),
		Correct:     out.Correct,
		Explanation: strings.TrimSpace(out.Explanation),
	}
	if err := q.Validate(); err != nil {
		return Question{}, fmt.Errorf("structured output invalid: %w", err)
	}
	return q, nil
}

// shuffle permutes s under the pipeline's randomness source.
func (p *Pipeline) shuffle(s []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
