package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// InitMeter initializes the OpenTelemetry meter provider and installs it globally.
// The returned provider should be shut down on exit.
func InitMeter(ctx context.Context, config Config) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded for each outbound API request.
type Metrics struct {
	requestTotal    metric.Int64Counter
	requestDuration metric.Float64Histogram
	errorTotal      metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	requestTotal, err := meter.Int64Counter("monzo.client.requests",
		metric.WithDescription("Total number of API requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating monzo.client.requests counter: %w", err)
	}

	requestDuration, err := meter.Float64Histogram("monzo.client.duration",
		metric.WithDescription("Duration of API requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating monzo.client.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("monzo.client.errors",
		metric.WithDescription("Transport errors by kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating monzo.client.errors counter: %w", err)
	}

	return &Metrics{
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		errorTotal:      errorTotal,
	}, nil
}

// RecordRequest records a completed request.
func (m *Metrics) RecordRequest(ctx context.Context, method, path, status string, duration time.Duration) {
	m.requestTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
		attribute.String("status", status),
	))
	m.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
	))
}

// RecordError records a request that never produced a response.
func (m *Metrics) RecordError(ctx context.Context, kind string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}
