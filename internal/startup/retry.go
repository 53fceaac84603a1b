// Package startup holds helpers for bringing the service up while its
// upstream dependencies may still be unreachable.
package startup

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

// RetryConfig describes an exponential backoff.
type RetryConfig struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
	MaxAttempts  int
	Multiplier   float64
	// Retryable decides whether an error is worth another attempt.
	// Nil means IsNetworkError.
	Retryable func(error) bool
}

// DefaultRetryConfig is the backoff used for the startup catalog check:
// 2s, 4s, 8s, 16s between five attempts.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		InitialDelay: 2 * time.Second,
		MaxDelay:     time.Minute,
		MaxAttempts:  5,
		Multiplier:   2,
	}
}

// delay returns the wait after the given failed attempt, counted from 1.
func (c RetryConfig) delay(attempt int) time.Duration {
	d := c.InitialDelay
	for range attempt - 1 {
		d = time.Duration(float64(d) * c.Multiplier)
		if d >= c.MaxDelay {
			return c.MaxDelay
		}
	}
	return min(d, c.MaxDelay)
}

// Connection failures that do not surface as a net.Error on every platform.
var transientMessages = []string{
	"connection refused",
	"connection reset",
	"no such host",
	"network is unreachable",
	"no route to host",
	"i/o timeout",
	"timeout",
	"temporary failure in name resolution",
}

// IsNetworkError reports whether err looks like the network or DNS is not up yet.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, m := range transientMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// WithRetry calls fn until it succeeds, returns a non-retryable error, or
// MaxAttempts is reached. The wait between attempts is cut short when ctx ends.
func WithRetry(ctx context.Context, name string, cfg RetryConfig, fn func(context.Context) error, logger zerolog.Logger) error {
	retryable := cfg.Retryable
	if retryable == nil {
		retryable = IsNetworkError
	}
	log := logger.With().Str("operation", name).Logger()

	var err error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err = fn(ctx); err == nil {
			if attempt > 1 {
				log.Info().Int("attempt", attempt).Msg("Succeeded after retry")
			}
			return nil
		}

		if !retryable(err) {
			log.Error().Err(err).Msg("Non-retryable error, giving up")
			return err
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		wait := cfg.delay(attempt)
		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("maxAttempts", cfg.MaxAttempts).
			Dur("retryIn", wait).
			Msg("Retrying")

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	log.Error().Err(err).Int("attempts", cfg.MaxAttempts).Msg("Failed after all retries")
	return err
}
