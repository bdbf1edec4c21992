// Package logging builds the process-wide zap logger.
package logging

import (
	"strings"

	"go.uber.org/zap"
)

// New constructs a logger for the given mode. "prod"/"production" gets
// JSON output at info level; anything else gets the console development
// config at debug level.
func New(mode string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
