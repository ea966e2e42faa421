// Package logging builds the process-wide zap logger.
package logging

import "go.uber.org/zap"

// New returns a configured logger. Development mode uses the console
// encoder with debug level; production mode emits JSON at info level.
func New(development bool) (*zap.Logger, error) {
	if development {
		cfg := zap.NewDevelopmentConfig()
		return cfg.Build()
	}
	cfg := zap.NewProductionConfig()
	return cfg.Build()
}
