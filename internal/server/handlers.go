package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quizhive/quizgen/internal/quizgen"
	"github.com/quizhive/quizgen/internal/store"
)

// generationRequest is the wire shape of both generation endpoints.
type generationRequest struct {
	Topic        string   `json:"topic"`
	Level        string   `json:"level"`
	NumQuestions int      `json:"num_questions"`
	CoreType     string   `json:"core_type,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
}

func (g generationRequest) toRequest() quizgen.Request {
	return quizgen.Request{
		Topic:    g.Topic,
		Level:    quizgen.Level(g.Level),
		Count:    g.NumQuestions,
		Category: quizgen.Category(g.CoreType),
		Keywords: g.Keywords,
	}
}

// quizResponse is the payload of POST /generate-questions.
type quizResponse struct {
	Topic            string             `json:"topic"`
	Level            string             `json:"level"`
	TotalQuestions   int                `json:"total_questions"`
	GeneratedAt      string             `json:"generated_at"`
	Questions        []quizgen.Question `json:"questions"`
	GenerationTimeMs int64              `json:"generation_time_ms"`
}

// quizOnlyResponse is the POST /generate-quiz payload, which omits the
// timing field.
type quizOnlyResponse struct {
	Topic          string             `json:"topic"`
	Level          string             `json:"level"`
	TotalQuestions int                `json:"total_questions"`
	GeneratedAt    string             `json:"generated_at"`
	Questions      []quizgen.Question `json:"questions"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "AI Question Generator API",
		"version": s.version,
		"status":  "running",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if !s.ready() {
		status = "initializing"
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":          status,
		"generator_ready": s.ready(),
		"version":         s.version,
		"uptime_seconds":  s.uptime(),
	})
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	if !s.ready() {
		s.writeError(w, http.StatusServiceUnavailable, "Question generator not ready")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"topics": s.pipeline.Catalog().Topics(),
		"levels": quizgen.Levels,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if !s.ready() {
		s.writeError(w, http.StatusServiceUnavailable, "Question generator not ready")
		return
	}

	generatorType := "template-only"
	if s.pipeline.AIEnabled() {
		generatorType = "AI-powered with fallback templates"
	}

	stats := map[string]any{
		"uptime_seconds":            s.uptime(),
		"generator_ready":           s.ready(),
		"available_topics":          s.pipeline.Catalog().Topics(),
		"supported_levels":          quizgen.Levels,
		"max_questions_per_request": quizgen.MaxQuestions,
		"generator_type":            generatorType,
		"ai_backend_ready":          s.pipeline.AIEnabled(),
	}

	if s.events != nil {
		totals, err := s.events.Totals(r.Context())
		if err != nil {
			s.log.Warn("failed to load generation totals", zap.Error(err))
		} else {
			stats["batches_served"] = totals.Batches
			stats["questions_generated"] = totals.Questions
			stats["ai_generated"] = totals.AIGenerated
			stats["template_generated"] = totals.Templated
		}
	}

	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	questions, req, ok := s.generate(w, r)
	if !ok {
		return
	}

	s.writeJSON(w, http.StatusOK, quizResponse{
		Topic:            req.Topic,
		Level:            string(req.Level),
		TotalQuestions:   len(questions),
		GeneratedAt:      time.Now().UTC().Format(time.RFC3339),
		Questions:        questions,
		GenerationTimeMs: time.Since(start).Milliseconds(),
	})
}

func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	questions, req, ok := s.generate(w, r)
	if !ok {
		return
	}

	s.writeJSON(w, http.StatusOK, quizOnlyResponse{
		Topic:          req.Topic,
		Level:          string(req.Level),
		TotalQuestions: len(questions),
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		Questions:      questions,
	})
}

// generate runs the shared decode/validate/generate/record sequence for both
// generation endpoints. It writes the error response itself and reports
// success via the bool.
func (s *Server) generate(w http.ResponseWriter, r *http.Request) ([]quizgen.Question, quizgen.Request, bool) {
	if !s.ready() {
		s.writeError(w, http.StatusServiceUnavailable, "Question generator not ready")
		return nil, quizgen.Request{}, false
	}

	var body generationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return nil, quizgen.Request{}, false
	}

	req := body.toRequest()
	if err := req.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return nil, quizgen.Request{}, false
	}

	start := time.Now()
	res, err := s.pipeline.GenerateBatch(r.Context(), req)
	if err != nil {
		s.log.Error("question generation failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "Error generating questions: "+err.Error())
		return nil, quizgen.Request{}, false
	}

	s.recordBatch(r, req, res, time.Since(start))
	return res.Questions, req, true
}

// recordBatch persists one generation event. Failures are logged, never
// surfaced to the client.
func (s *Server) recordBatch(r *http.Request, req quizgen.Request, res *quizgen.BatchResult, took time.Duration) {
	if s.events == nil {
		return
	}
	err := s.events.AppendGeneration(r.Context(), store.GenerationEventData{
		BatchID:     uuid.NewString(),
		Topic:       req.Topic,
		Level:       string(req.Level),
		Requested:   req.Count,
		AIGenerated: res.AIGenerated,
		Templated:   res.Templated,
		DurationMs:  took.Milliseconds(),
	})
	if err != nil {
		s.log.Warn("failed to record generation event", zap.Error(err))
	}
}

func (s *Server) handleValidateQuestions(w http.ResponseWriter, r *http.Request) {
	if !s.ready() {
		s.writeError(w, http.StatusServiceUnavailable, "Question generator not ready")
		return
	}

	var records []map[string]any
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	results := quizgen.ValidateRecords(records)
	valid := 0
	for _, res := range results {
		if res.Valid {
			valid++
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"total_questions":    len(records),
		"valid_questions":    valid,
		"validation_results": results,
	})
}
