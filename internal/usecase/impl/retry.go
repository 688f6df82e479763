package impl

import (
	"context"
	"io"
	"log/slog"
	"net"
	"strings"
	"syscall"
	"time"

	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/errors"

	"github.com/cenkalti/backoff/v5"
	"github.com/jonboulle/clockwork"
)

type errorClass int

const (
	errorClassUnknown errorClass = iota
	errorClassTransient
	errorClassInvalidRefresh
	errorClassRateLimited
)

func (c errorClass) String() string {
	switch c {
	case errorClassTransient:
		return "transient"
	case errorClassInvalidRefresh:
		return "invalid_refresh"
	case errorClassRateLimited:
		return "rate_limited"
	default:
		return "unknown"
	}
}

var (
	invalidRefreshMarkers = []string{
		"invalid refresh token",
		"refresh token not found",
		"refresh_token_not_found",
		"refresh token has expired",
		"refresh_token_already_used",
	}
	transientMarkers = []string{
		"network error",
		"connection reset",
		"connection refused",
		"fetch failed",
		"i/o timeout",
	}
)

// classifyError decides how provider failures are handled. Cancellation by
// the caller is never retried.
func classifyError(err error) errorClass {
	if err == nil {
		return errorClassUnknown
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errorClassUnknown
	}
	if _, ok := errors.AsType[*domainerrors.RateLimitError](err); ok {
		return errorClassRateLimited
	}
	if _, ok := errors.AsType[*domainerrors.NetworkError](err); ok {
		return errorClassTransient
	}
	if errors.Is(err, domainerrors.ErrRefreshTokenInvalid) || errors.Is(err, domainerrors.ErrSessionExpired) {
		return errorClassInvalidRefresh
	}
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		switch appErr.ErrorCode() {
		case domainerrors.CodeRefreshTokenInvalid, domainerrors.CodeSessionExpired:
			return errorClassInvalidRefresh
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) {
		return errorClassTransient
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range invalidRefreshMarkers {
		if strings.Contains(msg, marker) {
			return errorClassInvalidRefresh
		}
	}
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return errorClassTransient
		}
	}

	return errorClassUnknown
}

// retryPolicy retries transient failures sequentially. The delay between
// attempts is measured on clock.
type retryPolicy struct {
	retries int
	delay   time.Duration
	clock   clockwork.Clock
}

func withRetry[T any](ctx context.Context, policy retryPolicy, logger *slog.Logger, op string, fn func(context.Context) (T, error)) (T, error) {
	var (
		zero    T
		attempt int
		lastErr error
	)

	operation := func() (T, error) {
		if attempt > 0 {
			if err := policy.wait(ctx); err != nil {
				return zero, backoff.Permanent(errors.Wrap(lastErr, err.Error()))
			}
		}
		attempt++

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if classifyError(err) != errorClassTransient {
			return zero, backoff.Permanent(err)
		}

		return zero, err
	}

	result, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxTries(uint(max(policy.retries, 0))+1),
		backoff.WithNotify(func(err error, _ time.Duration) {
			logger.Debug("Retrying provider call after transient error",
				slog.String("operation", op),
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)
		}),
	)
	if err == nil {
		return result, nil
	}
	if permanent, ok := errors.AsType[*backoff.PermanentError](err); ok {
		return zero, permanent.Unwrap()
	}
	if ctxErr := ctx.Err(); ctxErr != nil && lastErr != nil && !errors.Is(lastErr, ctxErr) {
		return zero, errors.Wrap(lastErr, ctxErr.Error())
	}

	return zero, err
}

func (p retryPolicy) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return nil
	}

	clk := p.clock
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	timer := clk.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.Chan():
		return nil
	}
}

func withRetryErr(ctx context.Context, policy retryPolicy, logger *slog.Logger, op string, fn func(context.Context) error) error {
	_, err := withRetry(ctx, policy, logger, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})

	return err
}
