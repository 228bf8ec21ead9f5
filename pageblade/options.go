package pageblade

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL            string
	apiKey             string
	defaultTenant      string
	userAgent          string
	timeout            time.Duration
	httpClient         *http.Client
	insecureSkipVerify bool
	tracing            bool
	retry              RetryPolicy
	logger             zerolog.Logger
	env                *Environment
}

func defaultClientOptions() *clientOptions {
	return &clientOptions{
		timeout: 30 * time.Second,
		retry:   DefaultRetryPolicy(),
		logger:  zerolog.Nop(),
	}
}

// WithBaseURL sets the API root, taking precedence over PAGEBLADE_URL.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithAPIKey sets the API key, taking precedence over PAGEBLADE_API_KEY.
func WithAPIKey(apiKey string) Option {
	return func(o *clientOptions) {
		o.apiKey = apiKey
	}
}

// WithDefaultTenant sets the tenant used when a call does not pass WithTenant.
func WithDefaultTenant(tenantID string) Option {
	return func(o *clientOptions) {
		o.defaultTenant = tenantID
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithTimeout sets the HTTP client timeout for a single attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient sets a custom underlying *http.Client.
// WithTimeout and WithInsecureSkipVerify are ignored when it is used.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}

// WithInsecureSkipVerify disables certificate verification.
// Use with caution and only for hosts presenting a non-standard chain.
func WithInsecureSkipVerify() Option {
	return func(o *clientOptions) {
		o.insecureSkipVerify = true
	}
}

// WithTracing wraps the transport so every attempt produces a client span
// on the global OpenTelemetry tracer provider.
func WithTracing() Option {
	return func(o *clientOptions) {
		o.tracing = true
	}
}

// WithRetry sets the maximum number of 429 retries and the initial backoff.
func WithRetry(maxRetries int, initialInterval time.Duration) Option {
	return func(o *clientOptions) {
		if maxRetries >= 0 {
			o.retry.MaxRetries = maxRetries
		}
		if initialInterval > 0 {
			o.retry.InitialInterval = initialInterval
		}
	}
}

// WithRetryPolicy replaces the whole retry policy.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(o *clientOptions) {
		o.retry = policy
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithEnvironment replaces the process environment as the source of
// PAGEBLADE_URL and PAGEBLADE_API_KEY fallbacks.
func WithEnvironment(env Environment) Option {
	return func(o *clientOptions) {
		o.env = &env
	}
}

// CallOption configures a single operation.
type CallOption func(*callOptions)

type callOptions struct {
	tenantID string
}

// WithTenant scopes one call to tenantID, overriding the client default.
func WithTenant(tenantID string) CallOption {
	return func(o *callOptions) {
		o.tenantID = tenantID
	}
}

func applyCallOptions(opts []CallOption) callOptions {
	var co callOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&co)
		}
	}
	return co
}
