// Package app wires the service together: configuration, storage, the
// LLM provider, the practice engine and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/lingo/internal/config"
	"github.com/abhisek/lingo/internal/generation"
	"github.com/abhisek/lingo/internal/grading"
	"github.com/abhisek/lingo/internal/learner"
	"github.com/abhisek/lingo/internal/llm"
	"github.com/abhisek/lingo/internal/pool"
	"github.com/abhisek/lingo/internal/scheduler"
	"github.com/abhisek/lingo/internal/server"
	"github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/store"
)

// shutdownGrace bounds the drain of in-flight requests on shutdown.
const shutdownGrace = 10 * time.Second

// App is the assembled service.
type App struct {
	cfg config.Config
	log *zap.Logger

	store      *store.Store
	prefetcher *session.Prefetcher
	lifecycle  *session.Lifecycle
	sweeper    *scheduler.Scheduler
	srv        *http.Server
}

// New builds the full dependency graph from configuration.
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("auth.secret is required (set LINGO_AUTH_SECRET)")
	}

	dbPath := cfg.DB.Path
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolving database path: %w", err)
		}
	} else if err := store.EnsureDir(dbPath); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	provider, err := newProvider(ctx, cfg.LLM, log)
	if err != nil {
		st.Close()
		return nil, err
	}

	gen := generation.New(provider, generation.DefaultConfig(), log)
	grader := grading.NewLLMGrader(provider)

	poolCfg := pool.DefaultConfig()
	if cfg.Pool.Calibration > 0 {
		poolCfg.CalibrationThreshold = cfg.Pool.Calibration
	}
	if cfg.Pool.Exploration > 0 {
		poolCfg.ExplorationBonus = cfg.Pool.Exploration
	}

	sessions := st.SessionRepo()
	poolRepo := st.PoolRepo()
	exposure := st.ExposureRepo()
	learners := st.LearnerRepo()

	sessCfg := session.DefaultConfig()
	lifecycle := session.NewLifecycle(sessions, sessCfg, log)
	searcher := pool.NewSearcher(poolRepo, exposure, poolCfg, log)
	prefetcher := session.NewPrefetcher(lifecycle, learners, poolRepo, exposure, searcher, gen, sessCfg, log)
	extender := session.NewExtender(gen, poolRepo, exposure, log)
	runner := session.NewRunner(sessions, poolRepo, grader, grader, extender, log)
	updater := learner.NewUpdater(learners, lifecycle, prefetcher, log)

	handler := server.NewPracticeHandler(lifecycle, prefetcher, runner, extender, updater, sessions, log)
	router := server.NewRouter(server.Config{
		Mode:       cfg.Mode,
		Origins:    cfg.HTTP.Origins,
		AuthSecret: cfg.Auth.Secret,
	}, handler)

	return &App{
		cfg:        cfg,
		log:        log,
		store:      st,
		prefetcher: prefetcher,
		lifecycle:  lifecycle,
		sweeper:    scheduler.New(lifecycle, cfg.Cleanup.Interval, log),
		srv: &http.Server{
			Addr:    cfg.HTTP.Addr,
			Handler: router,
		},
	}, nil
}

// Run serves HTTP until ctx is cancelled, then drains in-flight
// requests and background prefetch before closing the store.
func (a *App) Run(ctx context.Context) error {
	if err := a.sweeper.Start(); err != nil {
		return fmt.Errorf("starting cleanup scheduler: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("listening", zap.String("addr", a.srv.Addr))
		if err := a.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		a.shutdown()
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	drainCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := a.srv.Shutdown(drainCtx); err != nil {
		a.log.Warn("server shutdown", zap.Error(err))
	}
	a.shutdown()
	return <-errCh
}

func (a *App) shutdown() {
	a.sweeper.Stop()
	a.prefetcher.Wait()
	if err := a.store.Close(); err != nil {
		a.log.Warn("closing store", zap.Error(err))
	}
}

// Cleanup runs one staleness sweep, for the maintenance CLI.
func (a *App) Cleanup(ctx context.Context) (int, error) {
	return a.lifecycle.CleanupStale(ctx)
}

// Close releases the app's resources without serving.
func (a *App) Close() error {
	return a.store.Close()
}

// newProvider maps the service LLM settings onto the provider factory,
// picking API keys up from the environment.
func newProvider(ctx context.Context, cfg config.LLMConfig, log *zap.Logger) (llm.Provider, error) {
	llmCfg := llm.ConfigFromEnv()
	if cfg.Provider != "" {
		llmCfg.Provider = cfg.Provider
	}
	if cfg.Retries > 0 {
		llmCfg.Retry.MaxAttempts = cfg.Retries
	}
	if cfg.Model != "" {
		switch llmCfg.Provider {
		case "anthropic":
			llmCfg.Anthropic.Model = cfg.Model
		case "openai":
			llmCfg.OpenAI.Model = cfg.Model
		case "gemini":
			llmCfg.Gemini.Model = cfg.Model
		case "openrouter":
			llmCfg.OpenRouter.Model = cfg.Model
		}
	}
	if err := llmCfg.Validate(); err != nil {
		return nil, err
	}
	provider, err := llm.NewProvider(ctx, llmCfg, log)
	if err != nil {
		return nil, fmt.Errorf("initializing LLM provider: %w", err)
	}
	return provider, nil
}
