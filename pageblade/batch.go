package pageblade

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency is the number of calls a batch keeps in flight
const DefaultBatchConcurrency = 5

// BatchResult contains the results of a batch operation
type BatchResult struct {
	Requested int
	Succeeded []string
	Failed    []BatchError
}

// Err aggregates the failures, or returns nil when every item succeeded
func (r BatchResult) Err() error {
	var result *multierror.Error
	for _, f := range r.Failed {
		result = multierror.Append(result, f)
	}
	return result.ErrorOrNil()
}

// BatchError contains information about one failed item
type BatchError struct {
	ID  string
	Err error
}

// Error implements the error interface
func (e BatchError) Error() string {
	return fmt.Sprintf("%s: %v", e.ID, e.Err)
}

// Unwrap returns the underlying error
func (e BatchError) Unwrap() error {
	return e.Err
}

// BatchOption configures a batch call
type BatchOption func(*batchOptions)

type batchOptions struct {
	concurrency int
	call        []CallOption
}

// WithConcurrency caps the number of calls in flight
func WithConcurrency(n int) BatchOption {
	return func(o *batchOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithCallOptions applies opts to every call of the batch
func WithCallOptions(opts ...CallOption) BatchOption {
	return func(o *batchOptions) {
		o.call = append(o.call, opts...)
	}
}

func applyBatchOptions(opts []BatchOption) batchOptions {
	o := batchOptions{concurrency: DefaultBatchConcurrency}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// runBatch calls fn for every id and records the outcome in input order.
// A failed item never stops the others.
func runBatch(ctx context.Context, ids []string, o batchOptions, fn func(ctx context.Context, i int) error) BatchResult {
	result := BatchResult{Requested: len(ids)}
	if len(ids) == 0 {
		return result
	}

	errs := make([]error, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i := range ids {
		g.Go(func() error {
			errs[i] = fn(ctx, i)
			return nil
		})
	}
	_ = g.Wait()

	for i, id := range ids {
		if errs[i] != nil {
			result.Failed = append(result.Failed, BatchError{ID: id, Err: errs[i]})
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}
	return result
}

// DeleteWebsites deletes websites concurrently
func (c *Client) DeleteWebsites(ctx context.Context, websiteIDs []string, opts ...BatchOption) BatchResult {
	o := applyBatchOptions(opts)
	result := runBatch(ctx, websiteIDs, o, func(ctx context.Context, i int) error {
		return c.DeleteWebsite(ctx, websiteIDs[i], o.call...)
	})
	c.logBatch("delete websites", result)
	return result
}

// DeleteWebpages deletes webpages concurrently
func (c *Client) DeleteWebpages(ctx context.Context, webpageIDs []string, opts ...BatchOption) BatchResult {
	o := applyBatchOptions(opts)
	result := runBatch(ctx, webpageIDs, o, func(ctx context.Context, i int) error {
		return c.DeleteWebpage(ctx, webpageIDs[i], o.call...)
	})
	c.logBatch("delete webpages", result)
	return result
}

// DeleteAssets deletes assets concurrently
func (c *Client) DeleteAssets(ctx context.Context, assetIDs []string, opts ...BatchOption) BatchResult {
	o := applyBatchOptions(opts)
	result := runBatch(ctx, assetIDs, o, func(ctx context.Context, i int) error {
		return c.DeleteAsset(ctx, assetIDs[i], o.call...)
	})
	c.logBatch("delete assets", result)
	return result
}

// UploadFile is one file of an UploadAssets batch
type UploadFile struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

// UploadAssets uploads files to a website concurrently. The returned slice
// is aligned with files and holds nil for every failed upload. Results are
// keyed by filename.
func (c *Client) UploadAssets(ctx context.Context, websiteID string, files []UploadFile, opts ...BatchOption) ([]*Asset, BatchResult) {
	o := applyBatchOptions(opts)

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Filename
	}

	assets := make([]*Asset, len(files))
	result := runBatch(ctx, names, o, func(ctx context.Context, i int) error {
		f := files[i]
		asset, err := c.UploadAsset(ctx, websiteID, f.Data, f.Filename, f.ContentType, o.call...)
		if err != nil {
			return err
		}
		assets[i] = asset
		return nil
	})
	c.logBatch("upload assets", result)
	return assets, result
}

func (c *Client) logBatch(op string, result BatchResult) {
	if len(result.Failed) == 0 {
		c.logger.Debug().
			Str("operation", op).
			Int("requested", result.Requested).
			Msg("Batch completed")
		return
	}
	c.logger.Warn().
		Str("operation", op).
		Int("requested", result.Requested).
		Int("failed", len(result.Failed)).
		Msg("Batch completed with failures")
}
