// Package pageblade provides a client for the PageBlade multi-tenant content
// hosting API.
//
// Every exported method on Client maps to exactly one remote operation on
// websites, webpages, assets, tenants or statistics. All of them funnel into a
// single dispatch routine that builds the request, attaches authentication and
// tenant headers, encodes the payload, retries on rate limiting and converts
// failures into *Error.
//
// # Usage
//
//	client, err := pageblade.NewClient(
//		pageblade.WithAPIKey("your-api-key"),
//		pageblade.WithDefaultTenant("tenant-1"),
//		pageblade.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	site, err := client.CreateWebsite(ctx, &pageblade.WebsiteCreateRequest{
//		Name: pageblade.String("Demo"),
//	})
//
// # Configuration precedence
//
// The base URL and API key fall back to the PAGEBLADE_URL and
// PAGEBLADE_API_KEY environment variables when no option sets them. The base
// URL finally falls back to DefaultBaseURL. The x-tenant-id header is taken
// from WithTenant on the call, then from WithDefaultTenant, and is omitted
// when neither is set.
//
// # Retries
//
// A response with status 429 is retried with exponential backoff for every
// verb, honouring Retry-After. Nothing else is retried: 5xx responses,
// timeouts and connection errors are returned immediately. There is no
// idempotency key, so a POST such as DuplicateWebsite or PublishDraft that the
// server applied before answering 429 may run twice.
//
// # Error Handling
//
// Every failure is returned as *Error. Code is the HTTP status, or 0 when no
// response was received, and Message is the "message" field of the response
// body when present:
//
//	if apiErr, ok := pageblade.AsError(err); ok && apiErr.IsNotFound() {
//		// Handle missing resource
//	}
package pageblade
