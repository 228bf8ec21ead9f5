package pageblade

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/s0up4200/pageblade"

// clientMetrics holds the instruments recorded by the dispatcher. They report
// to the global meter provider, which is a no-op until the host sets one.
type clientMetrics struct {
	attempts metric.Int64Counter
	retries  metric.Int64Counter
	failures metric.Int64Counter
}

func newClientMetrics() (*clientMetrics, error) {
	meter := otel.Meter(meterName)
	m := &clientMetrics{}
	var err error

	m.attempts, err = meter.Int64Counter("pageblade.client.attempts",
		metric.WithDescription("Number of HTTP attempts sent to the PageBlade API"))
	if err != nil {
		return nil, err
	}

	m.retries, err = meter.Int64Counter("pageblade.client.retries",
		metric.WithDescription("Number of attempts retried after a rate limit response"))
	if err != nil {
		return nil, err
	}

	m.failures, err = meter.Int64Counter("pageblade.client.failures",
		metric.WithDescription("Number of calls that settled with an error"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *clientMetrics) attempt(ctx context.Context, method string, status int) {
	m.attempts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.Int("http.response.status_code", status),
	))
}

func (m *clientMetrics) retry(ctx context.Context, method string) {
	m.retries.Add(ctx, 1, metric.WithAttributes(attribute.String("http.request.method", method)))
}

func (m *clientMetrics) failure(ctx context.Context, method string, status int) {
	m.failures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.Int("http.response.status_code", status),
	))
}
