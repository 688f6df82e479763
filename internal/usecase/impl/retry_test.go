package impl

import (
	"context"
	"io"
	"net"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/errors"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errorClass
	}{
		{name: "nil", err: nil, want: errorClassUnknown},
		{name: "network error", err: domainerrors.NewNetworkError("login", io.EOF), want: errorClassTransient},
		{name: "wrapped network error", err: errors.Wrap(domainerrors.NewNetworkError("login", nil), "login"), want: errorClassTransient},
		{name: "unexpected eof", err: io.ErrUnexpectedEOF, want: errorClassTransient},
		{name: "connection reset", err: &net.OpError{Op: "read", Err: syscall.ECONNRESET}, want: errorClassTransient},
		{name: "connection refused", err: errors.Wrap(syscall.ECONNREFUSED, "dial"), want: errorClassTransient},
		{name: "message marker", err: errors.New("fetch failed"), want: errorClassTransient},
		{name: "rate limited", err: domainerrors.NewRateLimitError(time.Minute, -1), want: errorClassRateLimited},
		{name: "invalid refresh sentinel", err: errors.WithStack(domainerrors.ErrRefreshTokenInvalid), want: errorClassInvalidRefresh},
		{name: "expired session", err: domainerrors.ErrSessionExpired.WithDetails("revoked"), want: errorClassInvalidRefresh},
		{name: "invalid refresh message", err: errors.New("Invalid Refresh Token: Already Used"), want: errorClassInvalidRefresh},
		{name: "provider code", err: domainerrors.NewProviderError(400, "refresh_token_not_found", "gone"), want: errorClassInvalidRefresh},
		{name: "canceled", err: context.Canceled, want: errorClassUnknown},
		{name: "deadline wrapped in network error", err: domainerrors.NewNetworkError("login", context.DeadlineExceeded), want: errorClassUnknown},
		{name: "credentials", err: domainerrors.ErrInvalidCredentials, want: errorClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyError(tt.err), tt.want.String())
		})
	}
}

func TestWithRetry(t *testing.T) {
	logger := newDiscardLogger()
	transient := domainerrors.NewNetworkError("op", io.ErrUnexpectedEOF)

	t.Run("retries a transient failure once", func(t *testing.T) {
		calls := 0
		got, err := withRetry(context.Background(), retryPolicy{retries: 1}, logger, "op", func(context.Context) (string, error) {
			calls++
			if calls == 1 {
				return "", transient
			}

			return "ok", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 2, calls)
	})

	t.Run("gives up after the configured retries", func(t *testing.T) {
		calls := 0
		err := withRetryErr(context.Background(), retryPolicy{retries: 1}, logger, "op", func(context.Context) error {
			calls++

			return transient
		})

		assert.ErrorIs(t, err, transient)
		assert.Equal(t, 2, calls)
	})

	t.Run("does not retry other failures", func(t *testing.T) {
		calls := 0
		err := withRetryErr(context.Background(), retryPolicy{retries: 3}, logger, "op", func(context.Context) error {
			calls++

			return domainerrors.ErrInvalidCredentials
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero retries makes a single attempt", func(t *testing.T) {
		calls := 0
		err := withRetryErr(context.Background(), retryPolicy{}, logger, "op", func(context.Context) error {
			calls++

			return transient
		})

		assert.ErrorIs(t, err, transient)
		assert.Equal(t, 1, calls)
	})

	t.Run("waits for the delay on the session clock", func(t *testing.T) {
		fakeClock := clockwork.NewFakeClockAt(testEpoch)
		var calls atomic.Int32

		done := make(chan error, 1)
		go func() {
			done <- withRetryErr(context.Background(), retryPolicy{retries: 1, delay: 2 * time.Second, clock: fakeClock}, logger, "op",
				func(context.Context) error {
					if calls.Add(1) == 1 {
						return transient
					}

					return nil
				})
		}()

		waitForTimers(t, fakeClock, 1)
		assert.Equal(t, int32(1), calls.Load())

		fakeClock.Advance(2 * time.Second)

		require.NoError(t, <-done)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("stops waiting when the caller cancels", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := withRetryErr(ctx, retryPolicy{retries: 1, delay: time.Hour}, logger, "op", func(context.Context) error {
			calls++
			cancel()

			return transient
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, transient)
		assert.Equal(t, 1, calls)
	})
}
