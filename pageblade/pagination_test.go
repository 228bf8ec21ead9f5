package pageblade

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectAll(t *testing.T) {
	pages := map[int]*Page[int]{
		0: {Rows: []int{1, 2}, NextPageURL: "next"},
		1: {Rows: []int{3, 4}, NextPageURL: "next"},
		2: {Rows: []int{5}},
	}

	var fetched []int
	all, err := CollectAll(context.Background(), 0, func(_ context.Context, index int) (*Page[int], error) {
		fetched = append(fetched, index)
		return pages[index], nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, all)
	assert.Equal(t, []int{0, 1, 2}, fetched)
}

func TestCollectAllStopsOnEmptyPage(t *testing.T) {
	calls := 0
	all, err := CollectAll(context.Background(), 3, func(_ context.Context, index int) (*Page[string], error) {
		calls++
		assert.Equal(t, 3, index)
		return &Page[string]{NextPageURL: "still advertised"}, nil
	})
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Equal(t, 1, calls)
}

func TestCollectAllReturnsPartialRowsOnError(t *testing.T) {
	boom := errors.New("boom")
	all, err := CollectAll(context.Background(), 0, func(_ context.Context, index int) (*Page[int], error) {
		if index == 1 {
			return nil, boom
		}
		return &Page[int]{Rows: []int{index}, NextPageURL: "next"}, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{0}, all)
}

func TestAllWebsites(t *testing.T) {
	srv, rec := newTestServer(t, func(w http.ResponseWriter, r *http.Request, _ int) {
		index, _ := strconv.Atoi(r.URL.Query().Get("pageIndex"))
		next := ""
		if index < 2 {
			next = fmt.Sprintf("/websites?pageIndex=%d", index+1)
		}
		fmt.Fprintf(w, `{"rows":[{"id":"w%d"}],"pageIndex":%d,"nextPageUrl":%q}`, index, index, next)
	})
	client := newTestClient(t, srv)

	websites, err := client.AllWebsites(context.Background(), WebsiteListRequest{
		ListOptions: ListOptions{PageSize: Int(1), Keyword: "blog"},
	})
	require.NoError(t, err)
	require.Len(t, websites, 3)
	assert.Equal(t, "w2", websites[2].ID)

	reqs := rec.all()
	require.Len(t, reqs, 3)
	for i, r := range reqs {
		assert.Equal(t, strconv.Itoa(i), r.Query.Get("pageIndex"))
		assert.Equal(t, "blog", r.Query.Get("keyword"))
	}
}
