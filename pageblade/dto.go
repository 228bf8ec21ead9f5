package pageblade

// OrderDirection sorts list results
type OrderDirection string

const (
	// OrderAsc sorts ascending
	OrderAsc OrderDirection = "asc"
	// OrderDesc sorts descending
	OrderDesc OrderDirection = "desc"
)

// Sort keys accepted by each list operation
type (
	WebsiteOrderBy string
	WebpageOrderBy string
	AssetOrderBy   string
	TenantOrderBy  string
)

const (
	WebsiteOrderByWhenCreated WebsiteOrderBy = "whenCreated"
	WebsiteOrderByWhenUpdated WebsiteOrderBy = "whenUpdated"

	WebpageOrderByWhenCreated   WebpageOrderBy = "whenCreated"
	WebpageOrderByWhenUpdated   WebpageOrderBy = "whenUpdated"
	WebpageOrderByWhenPublished WebpageOrderBy = "whenPublished"
	WebpageOrderBySlug          WebpageOrderBy = "slug"
	WebpageOrderByRedirectURL   WebpageOrderBy = "redirectUrl"

	AssetOrderByWhenCreated AssetOrderBy = "whenCreated"
	AssetOrderBySlug        AssetOrderBy = "slug"
	AssetOrderBySize        AssetOrderBy = "size"
	AssetOrderByFilename    AssetOrderBy = "filename"

	TenantOrderByWhenCreated TenantOrderBy = "whenCreated"
)

// ListOptions holds the pagination parameters shared by list operations.
// They are sent as query parameters; unset fields are omitted.
type ListOptions struct {
	PageIndex      *int           `url:"pageIndex,omitempty" json:"pageIndex,omitempty"`
	PageSize       *int           `url:"pageSize,omitempty" json:"pageSize,omitempty"`
	Keyword        string         `url:"keyword,omitempty" json:"keyword,omitempty"`
	OrderDirection OrderDirection `url:"orderDirection,omitempty" json:"orderDirection,omitempty"`
}

// WebsiteListRequest filters ListWebsites
type WebsiteListRequest struct {
	ListOptions
	OrderBy WebsiteOrderBy `url:"orderBy,omitempty" json:"orderBy,omitempty"`
}

// WebpageListRequest filters ListWebpages
type WebpageListRequest struct {
	ListOptions
	WebsiteID string         `url:"websiteId,omitempty" json:"websiteId,omitempty"`
	OrderBy   WebpageOrderBy `url:"orderBy,omitempty" json:"orderBy,omitempty"`
}

// AssetListRequest filters ListAssets
type AssetListRequest struct {
	ListOptions
	WebsiteID string       `url:"websiteId,omitempty" json:"websiteId,omitempty"`
	OrderBy   AssetOrderBy `url:"orderBy,omitempty" json:"orderBy,omitempty"`
}

// TenantListRequest filters ListTenants
type TenantListRequest struct {
	ListOptions
	OrderBy TenantOrderBy `url:"orderBy,omitempty" json:"orderBy,omitempty"`
}

// WebsiteCreateRequest is the payload of CreateWebsite. Every field is
// optional and nil fields are not sent.
type WebsiteCreateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Enabled     *bool   `json:"enabled,omitempty"`
	Subdomain   *string `json:"subdomain,omitempty"`
	Domain      *string `json:"domain,omitempty"`
}

// WebsiteUpdateRequest is the payload of UpdateWebsite
type WebsiteUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Enabled     *bool   `json:"enabled,omitempty"`
	Subdomain   *string `json:"subdomain,omitempty"`
	Domain      *string `json:"domain,omitempty"`
}

// WebpageCreateRequest is the payload of CreateWebpage
type WebpageCreateRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	WebsiteID   string  `json:"websiteId"`
	Publish     *bool   `json:"publish,omitempty"`
	RedirectURL *string `json:"redirectUrl,omitempty"`
	DraftHTML   *string `json:"draftHtml,omitempty"`
	PreviewHTML *string `json:"previewHtml,omitempty"`
}

// WebpageUpdateRequest is the payload of UpdateWebpage
type WebpageUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	WebsiteID   *string `json:"websiteId,omitempty"`
	Publish     *bool   `json:"publish,omitempty"`
	RedirectURL *string `json:"redirectUrl,omitempty"`
	DraftHTML   *string `json:"draftHtml,omitempty"`
	PreviewHTML *string `json:"previewHtml,omitempty"`
}

// TenantCreateRequest is the payload of CreateTenant
type TenantCreateRequest struct {
	Name               string `json:"name"`
	BandwidthLimitMb   *int   `json:"bandwidthLimitMb,omitempty"`
	StorageLimitMb     *int   `json:"storageLimitMb,omitempty"`
	WebsitesLimit      *int   `json:"websitesLimit,omitempty"`
	WebsitePagesLimit  *int   `json:"websitePagesLimit,omitempty"`
	WebsiteAssetsLimit *int   `json:"websiteAssetsLimit,omitempty"`
	CustomDomains      *bool  `json:"customDomains,omitempty"`
}

// TenantUpdateRequest is the payload of UpdateTenant
type TenantUpdateRequest struct {
	Name               *string `json:"name,omitempty"`
	BandwidthLimitMb   *int    `json:"bandwidthLimitMb,omitempty"`
	StorageLimitMb     *int    `json:"storageLimitMb,omitempty"`
	WebsitesLimit      *int    `json:"websitesLimit,omitempty"`
	WebsitePagesLimit  *int    `json:"websitePagesLimit,omitempty"`
	WebsiteAssetsLimit *int    `json:"websiteAssetsLimit,omitempty"`
	CustomDomains      *bool   `json:"customDomains,omitempty"`
}

// String returns a pointer to v
func String(v string) *string { return &v }

// Int returns a pointer to v
func Int(v int) *int { return &v }

// Bool returns a pointer to v
func Bool(v bool) *bool { return &v }
