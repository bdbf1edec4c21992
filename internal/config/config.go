// Package config loads the service configuration from lingo.yaml and
// LINGO_-prefixed environment variables; the environment wins.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the full service configuration.
type Config struct {
	// Mode selects the logger profile: "dev" or "prod".
	Mode string `koanf:"mode"`

	HTTP    HTTPConfig    `koanf:"http"`
	DB      DBConfig      `koanf:"db"`
	LLM     LLMConfig     `koanf:"llm"`
	Auth    AuthConfig    `koanf:"auth"`
	Pool    PoolConfig    `koanf:"pool"`
	Cleanup CleanupConfig `koanf:"cleanup"`
}

// HTTPConfig configures the gin server.
type HTTPConfig struct {
	Addr    string   `koanf:"addr"`
	Origins []string `koanf:"origins"`
}

// DBConfig configures the sqlite store.
type DBConfig struct {
	// Path is the database file. Empty means the default per-user data
	// directory.
	Path string `koanf:"path"`
}

// LLMConfig selects the generation/grading provider.
type LLMConfig struct {
	// Provider is one of anthropic, openai, gemini, openrouter, mock.
	Provider string `koanf:"provider"`

	// Model overrides the provider's default model. Optional.
	Model string `koanf:"model"`

	// Retries is the retry budget for transient provider failures.
	Retries int `koanf:"retries"`
}

// AuthConfig configures bearer-token verification.
type AuthConfig struct {
	// Secret signs and verifies the HS256 session tokens.
	Secret string `koanf:"secret"`
}

// PoolConfig exposes the pool scorer tunables.
type PoolConfig struct {
	// Calibration is the response count at which a question's empirical
	// IRT parameters take over from its authored label.
	Calibration int `koanf:"calibration"`

	// Exploration is the scoring bonus for uncalibrated questions.
	Exploration float64 `koanf:"exploration"`
}

// CleanupConfig configures the staleness sweep.
type CleanupConfig struct {
	Interval time.Duration `koanf:"interval"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		Mode: "dev",
		HTTP: HTTPConfig{
			Addr:    ":8080",
			Origins: []string{"*"},
		},
		LLM: LLMConfig{
			Provider: "anthropic",
			Retries:  3,
		},
		Pool: PoolConfig{
			Calibration: 20,
			Exploration: 0.15,
		},
		Cleanup: CleanupConfig{
			Interval: 15 * time.Minute,
		},
	}
}

// Load reads the config file (when it exists) and applies LINGO_
// environment overrides on top of the defaults. LINGO_HTTP_ADDR maps to
// http.addr, and so on.
func Load(path string) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return cfg, fmt.Errorf("loading config file %s: %w", path, err)
			}
		}
	}

	err := k.Load(env.Provider("LINGO_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "LINGO_")), "_", ".")
	}), nil)
	if err != nil {
		return cfg, fmt.Errorf("loading environment: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
