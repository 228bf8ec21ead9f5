package pageblade

import (
	"context"
	"net/http"
)

// GetStatistics retrieves usage statistics. With WithTenant the tenant-scoped
// endpoint is queried, otherwise the account-wide one.
func (c *Client) GetStatistics(ctx context.Context, opts ...CallOption) (*Statistics, error) {
	co := applyCallOptions(opts)

	path := "statistics"
	if co.tenantID != "" {
		path = "statistics/tenant"
	}

	var out Statistics
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
