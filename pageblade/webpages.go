package pageblade

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateWebpage creates a webpage
func (c *Client) CreateWebpage(ctx context.Context, webpage *WebpageCreateRequest, opts ...CallOption) (*Webpage, error) {
	return c.webpageCall(ctx, http.MethodPost, "webpage", webpage, opts)
}

// UpdateWebpage updates the webpage with the given ID
func (c *Client) UpdateWebpage(ctx context.Context, webpageID string, webpage *WebpageUpdateRequest, opts ...CallOption) (*Webpage, error) {
	return c.webpageCall(ctx, http.MethodPut, "webpage/"+url.PathEscape(webpageID), webpage, opts)
}

// PublishDraft publishes the current draft of a webpage as a new version
func (c *Client) PublishDraft(ctx context.Context, webpageID string, opts ...CallOption) (*Webpage, error) {
	return c.webpageCall(ctx, http.MethodPost, "webpage/publish/"+url.PathEscape(webpageID), nil, opts)
}

// PublishVersion makes a previously published version live again
func (c *Client) PublishVersion(ctx context.Context, webpageID string, version int, opts ...CallOption) (*Webpage, error) {
	path := fmt.Sprintf("webpage/publish/%s/version/%d", url.PathEscape(webpageID), version)
	return c.webpageCall(ctx, http.MethodPost, path, nil, opts)
}

// DuplicateWebpage creates a copy of a webpage
func (c *Client) DuplicateWebpage(ctx context.Context, webpageID string, opts ...CallOption) (*Webpage, error) {
	return c.webpageCall(ctx, http.MethodPost, "webpage/"+url.PathEscape(webpageID), nil, opts)
}

// DeleteWebpage deletes a webpage
func (c *Client) DeleteWebpage(ctx context.Context, webpageID string, opts ...CallOption) error {
	co := applyCallOptions(opts)
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     "webpage/" + url.PathEscape(webpageID),
		tenantID: co.tenantID,
	}, nil)
}

// GetWebpage retrieves a webpage by ID
func (c *Client) GetWebpage(ctx context.Context, webpageID string, opts ...CallOption) (*Webpage, error) {
	return c.webpageCall(ctx, http.MethodGet, "webpage/"+url.PathEscape(webpageID), nil, opts)
}

// ListWebpages retrieves one page of webpages
func (c *Client) ListWebpages(ctx context.Context, req *WebpageListRequest, opts ...CallOption) (*Page[Webpage], error) {
	co := applyCallOptions(opts)
	var out Page[Webpage]
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "webpages",
		query:    req,
		tenantID: co.tenantID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWebpageDraftHTML retrieves the draft HTML of a webpage
func (c *Client) GetWebpageDraftHTML(ctx context.Context, webpageID string, opts ...CallOption) (*HTMLDocument, error) {
	return c.htmlCall(ctx, "webpage/html/draft/"+url.PathEscape(webpageID), opts)
}

// GetWebpagePublishedHTML retrieves the live HTML of a webpage
func (c *Client) GetWebpagePublishedHTML(ctx context.Context, webpageID string, opts ...CallOption) (*HTMLDocument, error) {
	return c.htmlCall(ctx, "webpage/html/published/"+url.PathEscape(webpageID), opts)
}

// GetWebpagePublishedVersionHTML retrieves the HTML of one published version
func (c *Client) GetWebpagePublishedVersionHTML(ctx context.Context, webpageID string, version int, opts ...CallOption) (*HTMLDocument, error) {
	path := fmt.Sprintf("webpage/html/published/%s/version/%d", url.PathEscape(webpageID), version)
	return c.htmlCall(ctx, path, opts)
}

func (c *Client) webpageCall(ctx context.Context, method, path string, body any, opts []CallOption) (*Webpage, error) {
	co := applyCallOptions(opts)
	var out Webpage
	err := c.do(ctx, request{
		method:   method,
		path:     path,
		body:     body,
		tenantID: co.tenantID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) htmlCall(ctx context.Context, path string, opts []CallOption) (*HTMLDocument, error) {
	co := applyCallOptions(opts)
	var out HTMLDocument
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     path,
		tenantID: co.tenantID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
