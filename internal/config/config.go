// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/quizhive/quizgen/internal/store"
)

// Config holds HTTP service settings. Model provider settings live in the
// llm package; this covers everything else.
type Config struct {
	HTTPAddr    string
	CORSOrigins []string

	DBPath string

	// OutputMode selects how AI questions come back: "text" for free-form
	// output plus heuristic parsing, "structured" for schema-constrained JSON.
	OutputMode string

	// Seed fixes the randomness source when non-zero, for reproducible
	// template batches.
	Seed uint64

	// Development switches logging to the human-readable console encoder.
	Development bool

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// FromEnv builds a Config from environment variables with defaults suitable
// for local development.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOr("QUIZGEN_HTTP_ADDR", ":8000"),
		CORSOrigins:     csvOr("QUIZGEN_CORS_ORIGINS", "*"),
		DBPath:          envOr("QUIZGEN_DB", store.DefaultDBPath()),
		OutputMode:      envOr("QUIZGEN_OUTPUT_MODE", "text"),
		Seed:            envUint("QUIZGEN_SEED", 0),
		Development:     envBool("QUIZGEN_DEV", false),
		RequestTimeout:  envDuration("QUIZGEN_REQUEST_TIMEOUT", 60*time.Second),
		ShutdownTimeout: envDuration("QUIZGEN_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envUint(k string, def uint64) uint64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
