package pageblade

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy decides which failed attempts are sent again.
//
// An attempt is retried only when the response status is in StatusCodes and
// the request verb is in Methods. Failures without a response are never
// retried.
type RetryPolicy struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Methods         []string
	StatusCodes     []int
}

// DefaultRetryPolicy retries 429 responses twice for every verb
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:      2,
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		Methods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
		StatusCodes: []int{http.StatusTooManyRequests},
	}
}

func (p RetryPolicy) validate() error {
	if p.MaxRetries < 0 {
		return fmt.Errorf("retry: max retries must not be negative, got %d", p.MaxRetries)
	}
	if p.MaxRetries > 0 && p.InitialInterval <= 0 {
		return fmt.Errorf("retry: initial interval must be positive, got %s", p.InitialInterval)
	}
	return nil
}

// retryable reports whether err from a method call should be attempted again
func (p RetryPolicy) retryable(method string, err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) || !apiErr.HasResponse() {
		return false
	}
	return slices.Contains(p.StatusCodes, apiErr.Code) && slices.Contains(p.Methods, method)
}

// newBackOff builds the delay schedule for one call
func (p RetryPolicy) newBackOff(ctx context.Context) (backoff.BackOffContext, *retryAfterBackOff) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.InitialInterval
	exp.Multiplier = 2
	exp.RandomizationFactor = 0.1
	exp.MaxElapsedTime = 0
	if p.MaxInterval > 0 {
		exp.MaxInterval = p.MaxInterval
	}
	exp.Reset()

	hinted := &retryAfterBackOff{BackOff: exp, maxInterval: exp.MaxInterval}
	return backoff.WithContext(backoff.WithMaxRetries(hinted, uint64(p.MaxRetries)), ctx), hinted
}

// retryAfterBackOff stretches the next delay to the server's Retry-After hint
type retryAfterBackOff struct {
	backoff.BackOff
	maxInterval time.Duration
	hint        time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.BackOff.NextBackOff()
	if next == backoff.Stop {
		return next
	}
	if b.hint > next {
		next = b.hint
		if next > b.maxInterval {
			next = b.maxInterval
		}
	}
	b.hint = 0
	return next
}

func (b *retryAfterBackOff) Reset() {
	b.hint = 0
	b.BackOff.Reset()
}

// parseRetryAfter parses the Retry-After header value.
// It supports both seconds and HTTP-date formats and returns 0 when the value
// is missing or unparseable.
func parseRetryAfter(val string) time.Duration {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}

	if secs, err := strconv.ParseFloat(val, 64); err == nil && secs >= 0 {
		return time.Duration(math.Ceil(secs)) * time.Second
	}

	if t, err := http.ParseTime(val); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
