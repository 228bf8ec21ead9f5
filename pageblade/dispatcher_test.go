package pageblade

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyHeader(t *testing.T) {
	ctx := context.Background()

	t.Run("option beats environment", func(t *testing.T) {
		srv, rec := newTestServer(t, nil)
		client := newTestClient(t, srv,
			WithEnvironment(Environment{BaseURL: srv.URL, APIKey: "env-key"}),
			WithAPIKey("option-key"),
		)

		_, err := client.GetWebsite(ctx, "w1")
		require.NoError(t, err)
		assert.Equal(t, "option-key", rec.last(t).Header.Get(HeaderAPIKey))
	})

	t.Run("environment fallback", func(t *testing.T) {
		srv, rec := newTestServer(t, nil)
		client := newTestClient(t, srv, WithEnvironment(Environment{BaseURL: srv.URL, APIKey: "env-key"}))

		_, err := client.GetWebsite(ctx, "w1")
		require.NoError(t, err)
		assert.Equal(t, "env-key", rec.last(t).Header.Get(HeaderAPIKey))
	})

	t.Run("absent when unset", func(t *testing.T) {
		srv, rec := newTestServer(t, nil)
		client := newTestClient(t, srv)

		_, err := client.GetWebsite(ctx, "w1")
		require.NoError(t, err)
		_, present := rec.last(t).Header[http.CanonicalHeaderKey(HeaderAPIKey)]
		assert.False(t, present)
	})
}

func TestRequestBody(t *testing.T) {
	ctx := context.Background()

	t.Run("get never sends a body", func(t *testing.T) {
		srv, rec := newTestServer(t, nil)
		client := newTestClient(t, srv)

		_, err := client.ListWebsites(ctx, &WebsiteListRequest{})
		require.NoError(t, err)
		assert.False(t, rec.last(t).HasBody)
	})

	t.Run("delete never sends a body", func(t *testing.T) {
		srv, rec := newTestServer(t, nil)
		client := newTestClient(t, srv)

		require.NoError(t, client.DeleteWebpage(ctx, "p1"))
		assert.False(t, rec.last(t).HasBody)
	})

	t.Run("nil payload sends no body", func(t *testing.T) {
		srv, rec := newTestServer(t, nil)
		client := newTestClient(t, srv)

		_, err := client.CreateWebsite(ctx, nil)
		require.NoError(t, err)
		assert.False(t, rec.last(t).HasBody)
	})

	t.Run("put sends JSON", func(t *testing.T) {
		srv, rec := newTestServer(t, nil)
		client := newTestClient(t, srv)

		_, err := client.UpdateWebpage(ctx, "p1", &WebpageUpdateRequest{
			Publish:   Bool(true),
			DraftHTML: String("<h1>Hi</h1>"),
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"publish":true,"draftHtml":"<h1>Hi</h1>"}`, string(rec.last(t).Body))
	})

	t.Run("upload sends raw bytes with its content type", func(t *testing.T) {
		srv, rec := newTestServer(t, nil)
		client := newTestClient(t, srv)

		payload := "\x89PNG\r\n\x1a\nraw"
		_, err := client.UploadAsset(ctx, "w1", strings.NewReader(payload), "logo.png", "image/png")
		require.NoError(t, err)

		req := rec.last(t)
		assert.Equal(t, payload, string(req.Body))
		assert.Equal(t, "image/png", req.Header.Get("Content-Type"))
	})
}

func TestListQueryParameters(t *testing.T) {
	srv, rec := newTestServer(t, jsonResponse(http.StatusOK, `{
		"rows": [{"id": "w1"}, {"id": "w2"}],
		"pageIndex": 0,
		"pageSize": 2,
		"totalPagesCount": 3,
		"totalRowsCount": 6,
		"nextPageUrl": "/websites?pageIndex=1"
	}`))
	client := newTestClient(t, srv)

	page, err := client.ListWebsites(context.Background(), &WebsiteListRequest{
		ListOptions: ListOptions{
			PageIndex:      Int(0),
			PageSize:       Int(2),
			Keyword:        "blog",
			OrderDirection: OrderDesc,
		},
		OrderBy: WebsiteOrderByWhenCreated,
	})
	require.NoError(t, err)

	q := rec.last(t).Query
	assert.Equal(t, "0", q.Get("pageIndex"))
	assert.Equal(t, "2", q.Get("pageSize"))
	assert.Equal(t, "blog", q.Get("keyword"))
	assert.Equal(t, "desc", q.Get("orderDirection"))
	assert.Equal(t, "whenCreated", q.Get("orderBy"))

	require.Len(t, page.Rows, 2)
	assert.Equal(t, "w2", page.Rows[1].ID)
	assert.Equal(t, 6, page.TotalRowsCount)
	assert.True(t, page.HasNextPage())
}

func TestListOmitsUnsetParameters(t *testing.T) {
	srv, rec := newTestServer(t, nil)
	client := newTestClient(t, srv)

	_, err := client.ListWebpages(context.Background(), &WebpageListRequest{WebsiteID: "w1"})
	require.NoError(t, err)

	q := rec.last(t).Query
	assert.Equal(t, "w1", q.Get("websiteId"))
	assert.Len(t, q, 1)
}

func rateLimitThenOK(limited int) attemptHandler {
	return func(w http.ResponseWriter, _ *http.Request, n int) {
		w.Header().Set("Content-Type", "application/json")
		if n <= limited {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"message":"slow down"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"ok"}`))
	}
}

func TestRetryOnRateLimit(t *testing.T) {
	ctx := context.Background()

	calls := map[string]func(c *Client) error{
		http.MethodGet: func(c *Client) error {
			_, err := c.GetWebsite(ctx, "w1")
			return err
		},
		http.MethodPost: func(c *Client) error {
			_, err := c.CreateWebsite(ctx, &WebsiteCreateRequest{Name: String("Demo")})
			return err
		},
		http.MethodPut: func(c *Client) error {
			_, err := c.UpdateWebsite(ctx, "w1", &WebsiteUpdateRequest{Name: String("Demo")})
			return err
		},
		http.MethodDelete: func(c *Client) error {
			return c.DeleteWebsite(ctx, "w1")
		},
	}

	for method, call := range calls {
		t.Run(method, func(t *testing.T) {
			srv, rec := newTestServer(t, rateLimitThenOK(1))
			client := newTestClient(t, srv)

			require.NoError(t, call(client))

			reqs := rec.all()
			require.Len(t, reqs, 2)
			assert.Equal(t, method, reqs[1].Method)
			assert.Equal(t, reqs[0].Body, reqs[1].Body)
		})
	}
}

func TestRetryReplaysUpload(t *testing.T) {
	srv, rec := newTestServer(t, rateLimitThenOK(1))
	client := newTestClient(t, srv)

	_, err := client.UploadAsset(context.Background(), "w1", strings.NewReader("payload"), "a.txt", "text/plain")
	require.NoError(t, err)

	reqs := rec.all()
	require.Len(t, reqs, 2)
	assert.Equal(t, "payload", string(reqs[0].Body))
	assert.Equal(t, "payload", string(reqs[1].Body))
}

func TestRetryExhausted(t *testing.T) {
	srv, rec := newTestServer(t, jsonResponse(http.StatusTooManyRequests, `{"message":"slow down"}`))
	client := newTestClient(t, srv, WithRetry(3, time.Millisecond))

	_, err := client.GetWebsite(context.Background(), "w1")
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Code)
	assert.True(t, apiErr.IsRateLimited())
	assert.Equal(t, "slow down", apiErr.Message)
	assert.Len(t, rec.all(), 4)
}

func TestRetryDisabled(t *testing.T) {
	srv, rec := newTestServer(t, jsonResponse(http.StatusTooManyRequests, `{}`))
	client := newTestClient(t, srv, WithRetry(0, 0))

	_, err := client.GetWebsite(context.Background(), "w1")
	require.Error(t, err)
	assert.Len(t, rec.all(), 1)
}

func TestServerErrorsAreNotRetried(t *testing.T) {
	for _, status := range []int{http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv, rec := newTestServer(t, jsonResponse(status, `{"message":"boom"}`))
			client := newTestClient(t, srv)

			_, err := client.GetWebsite(context.Background(), "w1")
			require.Error(t, err)

			apiErr, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, status, apiErr.Code)
			assert.Len(t, rec.all(), 1)
		})
	}
}

// A POST retried after a 429 reaches the server twice. The API offers no
// idempotency key, so a create that was executed before the 429 was sent
// can be duplicated.
func TestRetriedPostReachesServerTwice(t *testing.T) {
	srv, rec := newTestServer(t, rateLimitThenOK(1))
	client := newTestClient(t, srv)

	_, err := client.DuplicateWebsite(context.Background(), "w1")
	require.NoError(t, err)

	reqs := rec.all()
	require.Len(t, reqs, 2)
	for _, r := range reqs {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/website/w1", r.Path)
	}
}

func TestRetryAfterIsHonoured(t *testing.T) {
	srv, rec := newTestServer(t, func(w http.ResponseWriter, _ *http.Request, n int) {
		if n == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	})
	client := newTestClient(t, srv)

	start := time.Now()
	_, err := client.GetWebsite(context.Background(), "w1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 900*time.Millisecond)
	assert.Len(t, rec.all(), 2)
}

func TestContextCancelledDuringBackoff(t *testing.T) {
	srv, rec := newTestServer(t, jsonResponse(http.StatusTooManyRequests, `{}`))
	client := newTestClient(t, srv, WithRetry(5, time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.GetWebsite(ctx, "w1")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 10*time.Second)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	_, ok := AsError(err)
	assert.True(t, ok)
	assert.Len(t, rec.all(), 1)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		check       func(t *testing.T, e *Error)
	}{
		{
			name:        "not found",
			status:      http.StatusNotFound,
			body:        `{"message":"not found"}`,
			wantMessage: "not found",
			check: func(t *testing.T, e *Error) {
				assert.True(t, e.IsNotFound())
			},
		},
		{
			name:        "validation messages",
			status:      http.StatusBadRequest,
			body:        `{"message":["name must be a string","slug is required"]}`,
			wantMessage: "name must be a string; slug is required",
		},
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			body:   `{"message":"invalid api key"}`,
			check: func(t *testing.T, e *Error) {
				assert.True(t, e.IsUnauthorized())
			},
			wantMessage: "invalid api key",
		},
		{
			name:   "non-JSON body",
			status: http.StatusBadGateway,
			body:   `<html>bad gateway</html>`,
			check: func(t *testing.T, e *Error) {
				assert.Equal(t, "<html>bad gateway</html>", string(e.Body))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, jsonResponse(tt.status, tt.body))
			client := newTestClient(t, srv)

			_, err := client.GetWebpage(context.Background(), "p1")
			require.Error(t, err)

			apiErr, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, apiErr.Code)
			assert.True(t, apiErr.HasResponse())
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			if tt.check != nil {
				tt.check(t, apiErr)
			}
		})
	}
}

func TestTransportFailureHasNoStatus(t *testing.T) {
	srv, rec := newTestServer(t, nil)
	client := newTestClient(t, srv)
	srv.Close()

	_, err := client.GetWebsite(context.Background(), "w1")
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.Code)
	assert.False(t, apiErr.HasResponse())
	assert.NotNil(t, apiErr.Unwrap())
	assert.Empty(t, rec.all())
}

func TestDecodeFailure(t *testing.T) {
	srv, _ := newTestServer(t, jsonResponse(http.StatusOK, `{"id": 42`))
	client := newTestClient(t, srv)

	_, err := client.GetWebsite(context.Background(), "w1")
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, apiErr.Code)
	assert.Contains(t, apiErr.Error(), "decode response")
}

func TestEmptyPath(t *testing.T) {
	srv, rec := newTestServer(t, nil)
	client := newTestClient(t, srv)

	err := client.do(context.Background(), request{method: http.MethodGet, path: "  "}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyPath))
	assert.Empty(t, rec.all())
}

func TestEmptySuccessBody(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, _ *http.Request, _ int) {
		w.WriteHeader(http.StatusNoContent)
	})
	client := newTestClient(t, srv)

	require.NoError(t, client.DeleteAsset(context.Background(), "a1"))
}

func TestDeleteAssetNotFound(t *testing.T) {
	srv, rec := newTestServer(t, jsonResponse(http.StatusNotFound, `{"message":"not found"}`))
	client := newTestClient(t, srv)

	err := client.DeleteAsset(context.Background(), "asset-9")
	require.Error(t, err)

	req := rec.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/asset/asset-9", req.Path)
	assert.False(t, req.HasBody)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
	assert.Equal(t, "not found", apiErr.Message)
	assert.Len(t, rec.all(), 1)
}
