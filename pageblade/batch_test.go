package pageblade

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteWebsitesPartialFailure(t *testing.T) {
	srv, rec := newTestServer(t, func(w http.ResponseWriter, r *http.Request, _ int) {
		if strings.HasSuffix(r.URL.Path, "/missing") {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"website not found"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	client := newTestClient(t, srv)

	result := client.DeleteWebsites(context.Background(), []string{"w1", "missing", "w2"}, WithConcurrency(2))

	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, []string{"w1", "w2"}, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "missing", result.Failed[0].ID)

	apiErr, ok := AsError(result.Failed[0])
	require.True(t, ok)
	assert.True(t, apiErr.IsNotFound())

	require.Error(t, result.Err())
	assert.Contains(t, result.Err().Error(), "website not found")
	assert.Len(t, rec.all(), 3)
}

func TestBatchEmpty(t *testing.T) {
	srv, rec := newTestServer(t, nil)
	client := newTestClient(t, srv)

	result := client.DeleteAssets(context.Background(), nil)
	assert.Equal(t, 0, result.Requested)
	assert.NoError(t, result.Err())
	assert.Empty(t, rec.all())
}

func TestBatchCallOptions(t *testing.T) {
	srv, rec := newTestServer(t, nil)
	client := newTestClient(t, srv)

	result := client.DeleteWebpages(context.Background(), []string{"p1", "p2"}, WithCallOptions(WithTenant("t1")))
	require.NoError(t, result.Err())

	for _, r := range rec.all() {
		assert.Equal(t, "t1", r.Header.Get(HeaderTenantID))
	}
}

func TestUploadAssets(t *testing.T) {
	srv, rec := newTestServer(t, func(w http.ResponseWriter, r *http.Request, _ int) {
		if strings.HasSuffix(r.URL.Path, "/bad.bin") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		name := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		_, _ = w.Write([]byte(`{"id":"a-` + name + `","filename":"` + name + `"}`))
	})
	client := newTestClient(t, srv)

	files := []UploadFile{
		{Filename: "a.css", ContentType: "text/css", Data: strings.NewReader("body{}")},
		{Filename: "bad.bin", ContentType: "application/octet-stream", Data: strings.NewReader("x")},
		{Filename: "b.js", ContentType: "text/javascript", Data: strings.NewReader("1")},
	}

	assets, result := client.UploadAssets(context.Background(), "w1", files)

	require.Len(t, assets, 3)
	assert.Equal(t, "a-a.css", assets[0].ID)
	assert.Nil(t, assets[1])
	assert.Equal(t, "b.js", assets[2].Filename)

	assert.Equal(t, []string{"a.css", "b.js"}, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "bad.bin", result.Failed[0].ID)
	assert.Len(t, rec.all(), 3)
}
