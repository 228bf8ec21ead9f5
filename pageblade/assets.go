package pageblade

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// UploadAsset uploads data as a file of the website. The payload is sent
// unmodified with contentType as its Content-Type.
func (c *Client) UploadAsset(ctx context.Context, websiteID string, data io.Reader, filename, contentType string, opts ...CallOption) (*Asset, error) {
	co := applyCallOptions(opts)
	var body any
	if data != nil {
		body = data
	}

	var out Asset
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "asset/" + url.PathEscape(websiteID) + "/" + url.PathEscape(filename),
		body:     body,
		tenantID: co.tenantID,
		upload: &upload{
			filename:    filename,
			contentType: contentType,
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAsset retrieves an asset by ID
func (c *Client) GetAsset(ctx context.Context, assetID string, opts ...CallOption) (*Asset, error) {
	co := applyCallOptions(opts)
	var out Asset
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "asset/" + url.PathEscape(assetID),
		tenantID: co.tenantID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAssets retrieves one page of assets
func (c *Client) ListAssets(ctx context.Context, req *AssetListRequest, opts ...CallOption) (*Page[Asset], error) {
	co := applyCallOptions(opts)
	var out Page[Asset]
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "assets",
		query:    req,
		tenantID: co.tenantID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAsset deletes an asset
func (c *Client) DeleteAsset(ctx context.Context, assetID string, opts ...CallOption) error {
	co := applyCallOptions(opts)
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     "asset/" + url.PathEscape(assetID),
		tenantID: co.tenantID,
	}, nil)
}
