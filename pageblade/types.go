package pageblade

import "time"

// Timestamp is a point in time expressed in Unix milliseconds, as the API
// reports it.
type Timestamp int64

// Time converts the timestamp to a time.Time
func (t Timestamp) Time() time.Time {
	return time.UnixMilli(int64(t))
}

// IsZero reports whether the timestamp is unset
func (t Timestamp) IsZero() bool {
	return t == 0
}

// DomainVerificationStatus represents the state of a custom domain check
type DomainVerificationStatus string

const (
	// DomainVerificationPending indicates the check has not completed
	DomainVerificationPending DomainVerificationStatus = "PENDING"
	// DomainVerificationVerified indicates the domain points at PageBlade
	DomainVerificationVerified DomainVerificationStatus = "VERIFIED"
	// DomainVerificationFailed indicates the last check failed
	DomainVerificationFailed DomainVerificationStatus = "FAILED"
)

// Tenant represents a PageBlade tenant and its consumption limits
type Tenant struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	BandwidthLimitMb   int       `json:"bandwidthLimitMb"`
	StorageLimitMb     int       `json:"storageLimitMb"`
	WebsitesLimit      int       `json:"websitesLimit"`
	WebsitePagesLimit  int       `json:"websitePagesLimit"`
	WebsiteAssetsLimit int       `json:"websiteAssetsLimit"`
	CustomDomains      bool      `json:"customDomains"`
	WhenCreated        Timestamp `json:"whenCreated"`
	WhenUpdated        Timestamp `json:"whenUpdated"`
}

// Website represents a hosted website
type Website struct {
	ID                              string                   `json:"id"`
	Name                            string                   `json:"name"`
	Description                     string                   `json:"description"`
	Domain                          string                   `json:"domain"`
	Subdomain                       string                   `json:"subdomain"`
	CNAME                           string                   `json:"cname"`
	HostedURL                       string                   `json:"hostedUrl"`
	DomainVerificationKey           string                   `json:"domainVerificationKey"`
	DomainVerificationStatus        DomainVerificationStatus `json:"domainVerificationStatus"`
	Enabled                         bool                     `json:"enabled"`
	TenantID                        string                   `json:"tenantId"`
	WhenCreated                     Timestamp                `json:"whenCreated"`
	WhenUpdated                     Timestamp                `json:"whenUpdated"`
	WhenDomainVerificationAttempted Timestamp                `json:"whenDomainVerificationAttempted"`
}

// IsDomainVerified checks if the custom domain passed verification
func (w *Website) IsDomainVerified() bool {
	return w.DomainVerificationStatus == DomainVerificationVerified
}

// Webpage represents a page of a website and its publishing state
type Webpage struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Slug                 string    `json:"slug"`
	RedirectURL          string    `json:"redirectUrl"`
	DraftURL             string    `json:"draftUrl"`
	PreviewURL           string    `json:"previewUrl"`
	PublishedURL         string    `json:"publishedUrl"`
	PublishedVersions    []int     `json:"publishedVersions"`
	WebsiteID            string    `json:"websiteId"`
	TenantID             string    `json:"tenantId"`
	WhenCreated          Timestamp `json:"whenCreated"`
	WhenUpdated          Timestamp `json:"whenUpdated"`
	WhenDraftSaved       Timestamp `json:"whenDraftSaved"`
	WhenPreviewPublished Timestamp `json:"whenPreviewPublished"`
	WhenPublished        Timestamp `json:"whenPublished"`
}

// LatestVersion returns the highest published version, or 0 if none
func (w *Webpage) LatestVersion() int {
	latest := 0
	for _, v := range w.PublishedVersions {
		if v > latest {
			latest = v
		}
	}
	return latest
}

// Asset represents an uploaded file served from a website
type Asset struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	Slug        string    `json:"slug"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	URL         string    `json:"url"`
	WebsiteID   string    `json:"websiteId"`
	TenantID    string    `json:"tenantId"`
	WhenCreated Timestamp `json:"whenCreated"`
	WhenUpdated Timestamp `json:"whenUpdated"`
}

// StorageUsage is a usage triple measured in megabytes
type StorageUsage struct {
	LimitMb     float64 `json:"limitMb"`
	UsedMb      float64 `json:"usedMb"`
	RemainingMb float64 `json:"remainingMb"`
}

// CountUsage is a usage triple measured in items
type CountUsage struct {
	Limit     int `json:"limit"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

// Statistics reports usage against limits. Tenants is only present on
// tenant-scoped queries.
type Statistics struct {
	TenantID  string       `json:"tenantId,omitempty"`
	Bandwidth StorageUsage `json:"bandwidth"`
	Storage   StorageUsage `json:"storage"`
	Websites  CountUsage   `json:"websites"`
	Tenants   *CountUsage  `json:"tenants,omitempty"`
}

// HTMLDocument is the rendered HTML of a webpage
type HTMLDocument struct {
	HTML string `json:"html"`
}

// Download points at an archive of a website
type Download struct {
	URL string `json:"url"`
}

// Page is the paginated envelope returned by list operations
type Page[T any] struct {
	Rows            []T    `json:"rows"`
	PageIndex       int    `json:"pageIndex"`
	PageSize        int    `json:"pageSize"`
	TotalPagesCount int    `json:"totalPagesCount"`
	TotalRowsCount  int    `json:"totalRowsCount"`
	OrderBy         string `json:"orderBy"`
	NextPageURL     string `json:"nextPageUrl"`
}

// HasNextPage checks if the server advertised a continuation
func (p *Page[T]) HasNextPage() bool {
	return p.NextPageURL != ""
}
