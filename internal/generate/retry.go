// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/pdiddy/itinerary-engine/pkg/types"
)

const (
	defaultMaxAttempts = 5
	defaultBaseDelay   = 2 * time.Second
	defaultMaxDelay    = 30 * time.Second
	defaultJitter      = 0.25
)

// Orchestrator wraps a Backend with classification-aware retries.
//
// Each call moves through ATTEMPT -> DONE on success, ATTEMPT -> BACKOFF ->
// ATTEMPT on a retryable error, and ATTEMPT -> FAILED on an invalid request
// or an exhausted budget.
type Orchestrator struct {
	backend Backend
	cfg     types.RetryConfig
	limiter *rate.Limiter
	logger  *slog.Logger

	// sleep waits for d or until ctx is done. randFloat returns a value in
	// [0,1) for jitter. Tests replace both.
	sleep     func(ctx context.Context, d time.Duration) error
	randFloat func() float64
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// WithLimiter makes every attempt wait on l first. Sharing one limiter
// between orchestrators spreads their calls against the same upstream.
func WithLimiter(l *rate.Limiter) Option {
	return func(o *Orchestrator) { o.limiter = l }
}

// NewOrchestrator returns an orchestrator with cfg's zero fields replaced by
// defaults: 5 attempts, 2s base delay, 30s cap, 25% jitter.
func NewOrchestrator(backend Backend, cfg types.RetryConfig, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		backend:   backend,
		cfg:       normalizeRetry(cfg),
		logger:    slog.Default(),
		sleep:     sleepContext,
		randFloat: rand.Float64,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewSharedLimiter returns a limiter allowing requestsPerMinute calls with a
// burst of one, or nil when requestsPerMinute is not positive.
func NewSharedLimiter(requestsPerMinute float64) *rate.Limiter {
	if requestsPerMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(requestsPerMinute/60), 1)
}

func normalizeRetry(cfg types.RetryConfig) types.RetryConfig {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = defaultBaseDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = defaultMaxDelay
	}
	if cfg.MaxDelay < cfg.BaseDelay {
		cfg.MaxDelay = cfg.BaseDelay
	}
	switch {
	case cfg.Jitter == 0:
		cfg.Jitter = defaultJitter
	case cfg.Jitter < 0:
		cfg.Jitter = 0
	case cfg.Jitter >= 1:
		cfg.Jitter = 0.99
	}
	return cfg
}

// Config returns the effective retry settings.
func (o *Orchestrator) Config() types.RetryConfig {
	return o.cfg
}

// Generate calls the backend until it succeeds, reports an invalid request,
// or the attempt budget runs out.
//
// An InvalidRequestError is returned at once as *UpstreamFatalError. When
// every attempt fails with a retryable error the result is
// *ServiceBusyError. Cancelling ctx during a backoff wait returns ctx.Err().
// The returned GenerationResult records the attempts and delays taken even
// on failure.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (types.GenerationResult, error) {
	res := types.GenerationResult{RequestID: uuid.NewString()}
	var lastErr error

	for attempt := 1; attempt <= o.cfg.MaxAttempts; attempt++ {
		if o.limiter != nil {
			if err := o.limiter.Wait(ctx); err != nil {
				return res, err
			}
		}

		res.Attempts = attempt
		text, err := o.backend.Complete(ctx, req)
		if err == nil {
			res.Text = text
			return res, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, ctxErr
		}

		lastErr = err
		if !IsRetryable(err) {
			o.logger.Warn("generation request rejected",
				"request_id", res.RequestID,
				"attempt", attempt,
				"error", err)
			return res, &UpstreamFatalError{Err: err}
		}
		if attempt == o.cfg.MaxAttempts {
			break
		}

		delay := o.Backoff(attempt)
		o.logger.Debug("generation failed, retrying",
			"request_id", res.RequestID,
			"attempt", attempt,
			"max_attempts", o.cfg.MaxAttempts,
			"backoff", delay,
			"error", err)
		res.Delays = append(res.Delays, delay)

		if err := o.sleep(ctx, delay); err != nil {
			return res, err
		}
	}

	o.logger.Warn("generation retry budget exhausted",
		"request_id", res.RequestID,
		"attempts", res.Attempts,
		"error", lastErr)
	return res, &ServiceBusyError{Attempts: res.Attempts, Err: lastErr}
}

// Backoff returns the wait after the given 1-based attempt:
// BaseDelay * 2^(attempt-1), capped at MaxDelay, then shifted by up to
// +/- Jitter of itself.
func (o *Orchestrator) Backoff(attempt int) time.Duration {
	d := o.cfg.BaseDelay
	for i := 1; i < attempt && d < o.cfg.MaxDelay; i++ {
		d *= 2
	}
	if d > o.cfg.MaxDelay {
		d = o.cfg.MaxDelay
	}

	jitter := float64(d) * o.cfg.Jitter * (o.randFloat()*2 - 1)
	d += time.Duration(jitter)
	if d < 0 {
		d = 0
	}
	return d
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
