package pageblade

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const contentTypeJSON = "application/json"

// request describes one logical API call before it is encoded
type request struct {
	method   string
	path     string
	query    any
	body     any
	tenantID string
	upload   *upload
}

// upload marks the body as a raw payload sent with its own content type
type upload struct {
	filename    string
	contentType string
}

// preparedRequest is the encoded, replayable form of a request
type preparedRequest struct {
	method string
	url    string
	header http.Header
	body   []byte
}

// do dispatches req and decodes a successful response into out.
// Every error it returns is an *Error.
func (c *Client) do(ctx context.Context, req request, out any) error {
	logger := c.logger.With().
		Str("call_id", uuid.NewString()).
		Str("method", req.method).
		Str("path", req.path).
		Logger()

	prepared, err := c.prepare(req)
	if err != nil {
		return err
	}

	status, body, err := c.execute(ctx, prepared, logger)
	if err != nil {
		c.metrics.failure(ctx, req.method, status)
		logger.Debug().Err(err).Msg("PageBlade call failed")
		return err
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.metrics.failure(ctx, req.method, status)
		return &Error{Code: status, Body: body, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// prepare builds the URL, headers and body bytes for req
func (c *Client) prepare(req request) (*preparedRequest, error) {
	path := strings.TrimLeft(strings.TrimSpace(req.path), "/")
	if path == "" {
		return nil, &Error{Err: ErrEmptyPath}
	}

	target := c.baseURL + "/" + path
	if req.method == http.MethodGet && !isNil(req.query) {
		values, err := query.Values(req.query)
		if err != nil {
			return nil, &Error{Err: fmt.Errorf("encode query: %w", err)}
		}
		if encoded := values.Encode(); encoded != "" {
			target += "?" + encoded
		}
	}

	body, err := encodeBody(req)
	if err != nil {
		return nil, &Error{Err: err}
	}

	return &preparedRequest{
		method: req.method,
		url:    target,
		header: c.headers(req),
		body:   body,
	}, nil
}

// headers attaches auth, tenant and content negotiation headers
func (c *Client) headers(req request) http.Header {
	h := make(http.Header)
	h.Set("Accept", contentTypeJSON)

	if c.apiKey != "" {
		h.Set(HeaderAPIKey, c.apiKey)
	}
	if tenant := ResolveTenant(req.tenantID, c.defaultTenant); tenant != "" {
		h.Set(HeaderTenantID, tenant)
	}

	contentType := contentTypeJSON
	if req.upload != nil {
		contentType = req.upload.contentType
	}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}

	if c.userAgent != "" {
		h.Set("User-Agent", c.userAgent)
	}
	return h
}

// encodeBody returns the payload bytes. Only POST and PUT carry a body;
// uploads are sent as-is and everything else is JSON.
func encodeBody(req request) ([]byte, error) {
	if req.method != http.MethodPost && req.method != http.MethodPut {
		return nil, nil
	}
	if isNil(req.body) {
		return nil, nil
	}

	if req.upload != nil {
		return readPayload(req.body)
	}

	data, err := json.Marshal(req.body)
	if err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	return data, nil
}

// readPayload buffers an upload so every retry can resend it
func readPayload(payload any) ([]byte, error) {
	switch p := payload.(type) {
	case []byte:
		return p, nil
	case string:
		return []byte(p), nil
	case io.Reader:
		data, err := io.ReadAll(p)
		if err != nil {
			return nil, fmt.Errorf("read upload payload: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported upload payload type %T", payload)
	}
}

// execute runs the attempt loop, retrying as the policy allows
func (c *Client) execute(ctx context.Context, pr *preparedRequest, logger zerolog.Logger) (int, []byte, error) {
	var (
		attempt int
		status  int
		result  []byte
	)

	b, hinted := c.retry.newBackOff(ctx)

	operation := func() error {
		attempt++
		code, body, err := c.attempt(ctx, pr, attempt, logger)
		if err == nil {
			status, result = code, body
			return nil
		}
		if !c.retry.retryable(pr.method, err) {
			return backoff.Permanent(err)
		}
		if apiErr, ok := AsError(err); ok {
			hinted.hint = apiErr.retryAfter
		}
		return err
	}

	notify := func(err error, delay time.Duration) {
		c.metrics.retry(ctx, pr.method)
		logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("delay", delay).
			Msg("Rate limited by PageBlade, retrying")
	}

	if err := backoff.RetryNotify(operation, b, notify); err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return apiErr.Code, nil, apiErr
		}
		// Context cancellation while waiting between attempts.
		return 0, nil, &Error{Err: err}
	}

	return status, result, nil
}

// attempt performs a single HTTP round trip
func (c *Client) attempt(ctx context.Context, pr *preparedRequest, n int, logger zerolog.Logger) (int, []byte, error) {
	var body io.Reader
	if pr.body != nil {
		body = bytes.NewReader(pr.body)
	}

	req, err := http.NewRequestWithContext(ctx, pr.method, pr.url, body)
	if err != nil {
		return 0, nil, &Error{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header = pr.header.Clone()

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.attempt(ctx, pr.method, 0)
		logger.Debug().
			Err(err).
			Int("attempt", n).
			Dur("duration", time.Since(start)).
			Msg("PageBlade request failed before a response")
		return 0, nil, &Error{Err: err}
	}
	defer resp.Body.Close()

	c.metrics.attempt(ctx, pr.method, resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &Error{
			Code: resp.StatusCode,
			Err:  fmt.Errorf("read response body: %w", err),
		}
	}

	logger.Debug().
		Int("attempt", n).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("PageBlade request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newResponseError(resp.StatusCode, respBody)
		apiErr.retryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
		return resp.StatusCode, nil, apiErr
	}

	return resp.StatusCode, respBody, nil
}

// isNil reports whether v is nil or a typed nil pointer, map or slice
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
