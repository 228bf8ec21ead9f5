package pageblade

import (
	"context"
	"io"
)

// API defines every PageBlade operation exposed by Client
type API interface {
	// Websites
	CreateWebsite(ctx context.Context, website *WebsiteCreateRequest, opts ...CallOption) (*Website, error)
	UpdateWebsite(ctx context.Context, websiteID string, website *WebsiteUpdateRequest, opts ...CallOption) (*Website, error)
	DuplicateWebsite(ctx context.Context, websiteID string, opts ...CallOption) (*Website, error)
	DeleteWebsite(ctx context.Context, websiteID string, opts ...CallOption) error
	GetWebsite(ctx context.Context, websiteID string, opts ...CallOption) (*Website, error)
	ListWebsites(ctx context.Context, req *WebsiteListRequest, opts ...CallOption) (*Page[Website], error)
	DownloadWebsite(ctx context.Context, websiteID string, opts ...CallOption) (*Download, error)

	// Webpages
	CreateWebpage(ctx context.Context, webpage *WebpageCreateRequest, opts ...CallOption) (*Webpage, error)
	UpdateWebpage(ctx context.Context, webpageID string, webpage *WebpageUpdateRequest, opts ...CallOption) (*Webpage, error)
	PublishDraft(ctx context.Context, webpageID string, opts ...CallOption) (*Webpage, error)
	PublishVersion(ctx context.Context, webpageID string, version int, opts ...CallOption) (*Webpage, error)
	DuplicateWebpage(ctx context.Context, webpageID string, opts ...CallOption) (*Webpage, error)
	DeleteWebpage(ctx context.Context, webpageID string, opts ...CallOption) error
	GetWebpage(ctx context.Context, webpageID string, opts ...CallOption) (*Webpage, error)
	ListWebpages(ctx context.Context, req *WebpageListRequest, opts ...CallOption) (*Page[Webpage], error)
	GetWebpageDraftHTML(ctx context.Context, webpageID string, opts ...CallOption) (*HTMLDocument, error)
	GetWebpagePublishedHTML(ctx context.Context, webpageID string, opts ...CallOption) (*HTMLDocument, error)
	GetWebpagePublishedVersionHTML(ctx context.Context, webpageID string, version int, opts ...CallOption) (*HTMLDocument, error)

	// Assets
	UploadAsset(ctx context.Context, websiteID string, data io.Reader, filename, contentType string, opts ...CallOption) (*Asset, error)
	GetAsset(ctx context.Context, assetID string, opts ...CallOption) (*Asset, error)
	ListAssets(ctx context.Context, req *AssetListRequest, opts ...CallOption) (*Page[Asset], error)
	DeleteAsset(ctx context.Context, assetID string, opts ...CallOption) error

	// Tenants
	ListTenants(ctx context.Context, req *TenantListRequest) (*Page[Tenant], error)
	GetTenant(ctx context.Context, tenantID string) (*Tenant, error)
	CreateTenant(ctx context.Context, tenant *TenantCreateRequest) (*Tenant, error)
	UpdateTenant(ctx context.Context, tenant *TenantUpdateRequest, opts ...CallOption) (*Tenant, error)
	DeleteTenant(ctx context.Context, tenantID string) error

	// Statistics
	GetStatistics(ctx context.Context, opts ...CallOption) (*Statistics, error)
}

// Ensure Client implements API
var _ API = (*Client)(nil)
