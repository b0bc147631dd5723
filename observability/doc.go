// Package observability provides OpenTelemetry tracing and metrics for
// outbound Monzo API calls.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultConfig("monzo"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanHTTPRequest)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultConfig("monzo"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("monzo"))
//	metrics.RecordRequest(ctx, "GET", "/balance", "200", duration)
package observability
