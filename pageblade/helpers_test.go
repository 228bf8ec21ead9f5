package pageblade

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// recordedRequest is what the test server saw for one attempt
type recordedRequest struct {
	Method  string
	Path    string
	Query   url.Values
	Header  http.Header
	Body    []byte
	HasBody bool
}

type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (r *recorder) add(req recordedRequest) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	return len(r.requests)
}

func (r *recorder) all() []recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedRequest(nil), r.requests...)
}

func (r *recorder) last(t *testing.T) recordedRequest {
	t.Helper()
	all := r.all()
	require.NotEmpty(t, all, "no request reached the server")
	return all[len(all)-1]
}

// attemptHandler answers the n-th attempt (1-based) received by the server
type attemptHandler func(w http.ResponseWriter, r *http.Request, n int)

func newTestServer(t *testing.T, handler attemptHandler) (*httptest.Server, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		n := rec.add(recordedRequest{
			Method:  r.Method,
			Path:    r.URL.EscapedPath(),
			Query:   r.URL.Query(),
			Header:  r.Header.Clone(),
			Body:    body,
			HasBody: len(body) > 0,
		})
		if handler == nil {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
			return
		}
		handler(w, r, n)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func jsonResponse(status int, body string) attemptHandler {
	return func(w http.ResponseWriter, _ *http.Request, _ int) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func newTestClient(t *testing.T, srv *httptest.Server, opts ...Option) *Client {
	t.Helper()
	base := []Option{
		WithEnvironment(Environment{BaseURL: srv.URL}),
		WithRetry(2, time.Millisecond),
	}
	client, err := NewClient(append(base, opts...)...)
	require.NoError(t, err)
	return client
}
