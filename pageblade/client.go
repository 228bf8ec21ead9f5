package pageblade

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client represents a PageBlade API client. It holds only immutable
// configuration and is safe for concurrent use.
type Client struct {
	baseURL       string
	apiKey        string
	defaultTenant string
	userAgent     string
	httpClient    *http.Client
	retry         RetryPolicy
	logger        zerolog.Logger
	metrics       *clientMetrics
}

// NewClient creates a new PageBlade client
func NewClient(opts ...Option) (*Client, error) {
	o := defaultClientOptions()
	for _, opt := range opts {
		opt(o)
	}

	env := LookupEnvironment()
	if o.env != nil {
		env = *o.env
	}

	baseURL := ResolveBaseURL(o.baseURL, env)
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base URL %q: %v", ErrInvalidConfig, baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: base URL %q must use http or https", ErrInvalidConfig, baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q has no host", ErrInvalidConfig, baseURL)
	}

	if err := o.retry.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	metrics, err := newClientMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to create client metrics: %w", err)
	}

	client := &Client{
		baseURL:       baseURL,
		apiKey:        ResolveAPIKey(o.apiKey, env),
		defaultTenant: o.defaultTenant,
		userAgent:     o.userAgent,
		httpClient:    buildHTTPClient(o),
		retry:         o.retry,
		logger:        o.logger,
		metrics:       metrics,
	}

	if client.apiKey == "" {
		client.logger.Warn().Msg("No PageBlade API key configured, requests will be unauthenticated")
	}
	if o.insecureSkipVerify && o.httpClient == nil {
		client.logger.Warn().Str("base_url", baseURL).Msg("TLS certificate verification is disabled")
	}

	return client, nil
}

// BaseURL returns the resolved API root
func (c *Client) BaseURL() string {
	return c.baseURL
}

// buildHTTPClient assembles the transport from the options
func buildHTTPClient(o *clientOptions) *http.Client {
	if o.httpClient != nil {
		if !o.tracing {
			return o.httpClient
		}
		hc := *o.httpClient
		base := hc.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		hc.Transport = otelhttp.NewTransport(base)
		return &hc
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if o.insecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	var rt http.RoundTripper = transport
	if o.tracing {
		rt = otelhttp.NewTransport(rt)
	}

	return &http.Client{
		Timeout:   o.timeout,
		Transport: rt,
	}
}
