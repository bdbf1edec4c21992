package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider is a decorator that logs every LLM request with its
// purpose, latency and token usage.
type LoggingProvider struct {
	inner Provider
	log   *zap.Logger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log *zap.Logger) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("provider_model", l.inner.ModelID()),
		zap.String("purpose", purpose),
		zap.Duration("latency", time.Since(start)),
	}
	if resp != nil {
		fields = append(fields,
			zap.String("model", resp.Model),
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens),
		)
	}

	if err != nil {
		l.log.Warn("llm request failed", append(fields, zap.Error(err))...)
		return resp, err
	}

	l.log.Debug("llm request completed", fields...)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
