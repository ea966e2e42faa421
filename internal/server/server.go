// Package server exposes the question generation pipeline over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/quizhive/quizgen/internal/quizgen"
	"github.com/quizhive/quizgen/internal/store"
)

// Server wires the pipeline, event store and router together.
type Server struct {
	pipeline *quizgen.Pipeline
	events   store.EventRepo
	log      *zap.Logger
	opts     Options
	version  string
	started  time.Time
}

// Options configures a Server.
type Options struct {
	// CORSOrigins is the allowed origin list. Empty means allow all.
	CORSOrigins []string
	// RequestTimeout bounds each request. Zero uses a 60s default.
	RequestTimeout time.Duration
	// Version is reported by the health and root endpoints.
	Version string
}

// New creates a Server. events may be nil, in which case the stats endpoint
// reports only in-process information and batches are not recorded.
func New(pipeline *quizgen.Pipeline, events store.EventRepo, log *zap.Logger, opts Options) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	version := opts.Version
	if version == "" {
		version = "dev"
	}
	return &Server{
		pipeline: pipeline,
		events:   events,
		log:      log,
		opts:     opts,
		version:  version,
		started:  time.Now(),
	}
}

// Handler builds the chi router with the full route table.
func (s *Server) Handler() http.Handler {
	timeout := s.opts.RequestTimeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	origins := s.opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Get("/topics", s.handleTopics)
	r.Get("/stats", s.handleStats)
	r.Post("/generate-questions", s.handleGenerateQuestions)
	r.Post("/generate-quiz", s.handleGenerateQuiz)
	r.Post("/validate-questions", s.handleValidateQuestions)

	return r
}

func (s *Server) ready() bool {
	return s.pipeline != nil
}

func (s *Server) uptime() float64 {
	return time.Since(s.started).Seconds()
}
