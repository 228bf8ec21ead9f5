package pageblade

import "context"

// PageFetcher retrieves the page with the given zero-based index
type PageFetcher[T any] func(ctx context.Context, pageIndex int) (*Page[T], error)

// CollectAll walks pages starting at start until the server reports no next
// page or returns an empty page, and concatenates their rows.
func CollectAll[T any](ctx context.Context, start int, fetch PageFetcher[T]) ([]T, error) {
	var all []T
	for index := start; ; index++ {
		if err := ctx.Err(); err != nil {
			return all, &Error{Err: err}
		}

		page, err := fetch(ctx, index)
		if err != nil {
			return all, err
		}
		all = append(all, page.Rows...)

		if len(page.Rows) == 0 || !page.HasNextPage() {
			return all, nil
		}
	}
}

// pageStart returns the requested starting index, defaulting to the first page
func pageStart(opts ListOptions) int {
	if opts.PageIndex != nil {
		return *opts.PageIndex
	}
	return 0
}

// AllWebsites lists every website matching req across all pages
func (c *Client) AllWebsites(ctx context.Context, req WebsiteListRequest, opts ...CallOption) ([]Website, error) {
	return CollectAll(ctx, pageStart(req.ListOptions), func(ctx context.Context, pageIndex int) (*Page[Website], error) {
		r := req
		r.PageIndex = Int(pageIndex)
		return c.ListWebsites(ctx, &r, opts...)
	})
}

// AllWebpages lists every webpage matching req across all pages
func (c *Client) AllWebpages(ctx context.Context, req WebpageListRequest, opts ...CallOption) ([]Webpage, error) {
	return CollectAll(ctx, pageStart(req.ListOptions), func(ctx context.Context, pageIndex int) (*Page[Webpage], error) {
		r := req
		r.PageIndex = Int(pageIndex)
		return c.ListWebpages(ctx, &r, opts...)
	})
}

// AllAssets lists every asset matching req across all pages
func (c *Client) AllAssets(ctx context.Context, req AssetListRequest, opts ...CallOption) ([]Asset, error) {
	return CollectAll(ctx, pageStart(req.ListOptions), func(ctx context.Context, pageIndex int) (*Page[Asset], error) {
		r := req
		r.PageIndex = Int(pageIndex)
		return c.ListAssets(ctx, &r, opts...)
	})
}

// AllTenants lists every tenant matching req across all pages
func (c *Client) AllTenants(ctx context.Context, req TenantListRequest) ([]Tenant, error) {
	return CollectAll(ctx, pageStart(req.ListOptions), func(ctx context.Context, pageIndex int) (*Page[Tenant], error) {
		r := req
		r.PageIndex = Int(pageIndex)
		return c.ListTenants(ctx, &r)
	})
}
