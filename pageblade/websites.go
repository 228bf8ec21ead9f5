package pageblade

import (
	"context"
	"net/http"
	"net/url"
)

// CreateWebsite creates a website
func (c *Client) CreateWebsite(ctx context.Context, website *WebsiteCreateRequest, opts ...CallOption) (*Website, error) {
	co := applyCallOptions(opts)
	var out Website
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "website",
		body:     website,
		tenantID: co.tenantID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateWebsite updates the website with the given ID
func (c *Client) UpdateWebsite(ctx context.Context, websiteID string, website *WebsiteUpdateRequest, opts ...CallOption) (*Website, error) {
	co := applyCallOptions(opts)
	var out Website
	err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     "website/" + url.PathEscape(websiteID),
		body:     website,
		tenantID: co.tenantID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DuplicateWebsite creates a copy of a website and returns the copy.
// The call is a POST and may run twice if retried after a 429.
func (c *Client) DuplicateWebsite(ctx context.Context, websiteID string, opts ...CallOption) (*Website, error) {
	co := applyCallOptions(opts)
	var out Website
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "website/" + url.PathEscape(websiteID),
		tenantID: co.tenantID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteWebsite deletes a website
func (c *Client) DeleteWebsite(ctx context.Context, websiteID string, opts ...CallOption) error {
	co := applyCallOptions(opts)
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     "website/" + url.PathEscape(websiteID),
		tenantID: co.tenantID,
	}, nil)
}

// GetWebsite retrieves a website by ID
func (c *Client) GetWebsite(ctx context.Context, websiteID string, opts ...CallOption) (*Website, error) {
	co := applyCallOptions(opts)
	var out Website
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "website/" + url.PathEscape(websiteID),
		tenantID: co.tenantID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListWebsites retrieves one page of websites. A nil request sends no
// query parameters.
func (c *Client) ListWebsites(ctx context.Context, req *WebsiteListRequest, opts ...CallOption) (*Page[Website], error) {
	co := applyCallOptions(opts)
	var out Page[Website]
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "websites",
		query:    req,
		tenantID: co.tenantID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadWebsite requests an archive of a website
func (c *Client) DownloadWebsite(ctx context.Context, websiteID string, opts ...CallOption) (*Download, error) {
	co := applyCallOptions(opts)
	var out Download
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "website/download/" + url.PathEscape(websiteID),
		tenantID: co.tenantID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
