package pageblade

import (
	"context"
	"net/http"
)

// Tenant operations address the tenant through the x-tenant-id header rather
// than the path.

// ListTenants retrieves one page of tenants
func (c *Client) ListTenants(ctx context.Context, req *TenantListRequest) (*Page[Tenant], error) {
	var out Page[Tenant]
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "tenants",
		query:  req,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTenant retrieves a tenant by ID
func (c *Client) GetTenant(ctx context.Context, tenantID string) (*Tenant, error) {
	var out Tenant
	err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "tenant",
		tenantID: tenantID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTenant creates a tenant
func (c *Client) CreateTenant(ctx context.Context, tenant *TenantCreateRequest) (*Tenant, error) {
	var out Tenant
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "tenant",
		body:   tenant,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTenant updates the tenant selected by WithTenant or the default tenant
func (c *Client) UpdateTenant(ctx context.Context, tenant *TenantUpdateRequest, opts ...CallOption) (*Tenant, error) {
	co := applyCallOptions(opts)
	var out Tenant
	err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     "tenant",
		body:     tenant,
		tenantID: co.tenantID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTenant deletes a tenant
func (c *Client) DeleteTenant(ctx context.Context, tenantID string) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     "tenant",
		tenantID: tenantID,
	}, nil)
}
