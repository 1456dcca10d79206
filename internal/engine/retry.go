package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// RetryConfig bounds a retry loop.
type RetryConfig struct {
	MaxRetries  int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig covers the short side calls (NER, cache refills).
// The JSearch client carries its own backoff policy.
var DefaultRetryConfig = RetryConfig{
	MaxRetries:  2,
	InitialWait: 500 * time.Millisecond,
	MaxWait:     5 * time.Second,
	Multiplier:  2.0,
}

// RetryDo runs fn with exponential backoff. Non-retryable errors and
// context cancellation stop the loop immediately.
func RetryDo[T any](ctx context.Context, rc RetryConfig, fn func() (T, error)) (T, error) {
	var zero T

	wait := rc.InitialWait
	for attempt := 0; ; attempt++ {
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !isRetryable(err) || attempt >= rc.MaxRetries {
			return zero, err
		}

		slog.Debug("retrying",
			slog.Int("attempt", attempt+1),
			slog.Duration("wait", wait),
			slog.Any("error", err))
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
		wait = min(time.Duration(float64(wait)*rc.Multiplier), rc.MaxWait)
	}
}

// RetryHTTP wraps RetryDo for HTTP calls: retryable status codes are
// converted to errors so the loop can spin on them.
func RetryHTTP(ctx context.Context, rc RetryConfig, fn func() (*http.Response, error)) (*http.Response, error) {
	return RetryDo(ctx, rc, func() (*http.Response, error) {
		resp, err := fn()
		if err != nil {
			return nil, err
		}
		if IsRetryableStatus(resp.StatusCode) {
			resp.Body.Close()
			return nil, &httpStatusError{StatusCode: resp.StatusCode}
		}
		return resp, nil
	})
}

type httpStatusError struct {
	StatusCode int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("http %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// isRetryable marks transient failures: statuses pre-filtered by
// IsRetryableStatus, connection and DNS failures, and timeouts.
func isRetryable(err error) bool {
	var httpErr *httpStatusError
	var opErr *net.OpError
	var dnsErr *net.DNSError
	switch {
	case errors.As(err, &httpErr), errors.As(err, &opErr), errors.As(err, &dnsErr):
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// IsRetryableStatus reports whether an HTTP status is worth retrying.
func IsRetryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
