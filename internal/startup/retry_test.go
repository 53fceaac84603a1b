package startup

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		MaxAttempts:  4,
		Multiplier:   2,
	}
}

func TestIsNetworkError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("invalid API key"), false},
		{fmt.Errorf("request failed: %w", &net.DNSError{Err: "no such host", Name: "api.themoviedb.org"}), true},
		{errors.New("dial tcp 1.2.3.4:443: connect: connection refused"), true},
		{errors.New("context deadline exceeded (Client.Timeout exceeded while awaiting headers)"), true},
		{fmt.Errorf("check: %w", syscall.ECONNREFUSED), true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNetworkError(tt.err), "%v", tt.err)
	}
}

func TestRetryConfig_Delay(t *testing.T) {
	cfg := DefaultRetryConfig()

	assert.Equal(t, 2*time.Second, cfg.delay(1))
	assert.Equal(t, 4*time.Second, cfg.delay(2))
	assert.Equal(t, 16*time.Second, cfg.delay(4))
	assert.Equal(t, time.Minute, cfg.delay(10))
}

func TestWithRetry_SucceedsAfterNetworkErrors(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), "catalog check", fastRetry(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	}, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_StopsOnNonRetryable(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), "catalog check", fastRetry(), func(context.Context) error {
		calls++
		return errors.New("invalid API key")
	}, zerolog.Nop())

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_CustomRetryable(t *testing.T) {
	errBusy := errors.New("rate limited")
	cfg := fastRetry()
	cfg.Retryable = func(err error) bool { return errors.Is(err, errBusy) }

	calls := 0
	err := WithRetry(context.Background(), "catalog check", cfg, func(context.Context) error {
		calls++
		return errBusy
	}, zerolog.Nop())

	require.ErrorIs(t, err, errBusy)
	assert.Equal(t, 4, calls)
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastRetry()
	cfg.InitialDelay = time.Hour

	err := WithRetry(ctx, "catalog check", cfg, func(context.Context) error {
		cancel()
		return errors.New("connection refused")
	}, zerolog.Nop())

	assert.ErrorIs(t, err, context.Canceled)
}
