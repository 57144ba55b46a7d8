// Package observability owns the OpenTelemetry instruments and the Prometheus exporter.
package observability

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "nomadmatch"

// Metrics holds the application's metric instruments.
type Metrics struct {
	MatchRequestsTotal      metric.Int64Counter
	FallbackTotal           metric.Int64Counter
	DispatchDurationSeconds metric.Float64Histogram
	EmptyResultsTotal       metric.Int64Counter
}

var (
	appMetrics *Metrics
	once       sync.Once
)

// Get returns the instruments, creating them on first use from the global MeterProvider.
// Instruments created before InitPrometheus is called are forwarded once a provider is set.
func Get() *Metrics {
	once.Do(func() {
		m, err := newMetrics(otel.GetMeterProvider().Meter(meterName))
		if err != nil {
			slog.Error("failed to create metric instruments", "error", err)

			m, _ = newMetrics(noopMeter())
		}

		appMetrics = m
	})

	return appMetrics
}

func newMetrics(meter metric.Meter) (*Metrics, error) {
	var (
		m   Metrics
		err error
	)

	m.MatchRequestsTotal, err = meter.Int64Counter(
		"match_requests_total",
		metric.WithDescription("Total number of match requests completed"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating match_requests_total: %w", err)
	}

	m.FallbackTotal, err = meter.Int64Counter(
		"match_fallback_total",
		metric.WithDescription("Match requests answered by the local ranking"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating match_fallback_total: %w", err)
	}

	m.DispatchDurationSeconds, err = meter.Float64Histogram(
		"match_dispatch_duration_seconds",
		metric.WithDescription("Duration of calls to the remote matcher in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating match_dispatch_duration_seconds: %w", err)
	}

	m.EmptyResultsTotal, err = meter.Int64Counter(
		"match_empty_results_total",
		metric.WithDescription("Match requests that produced no cities"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating match_empty_results_total: %w", err)
	}

	return &m, nil
}

// InitPrometheus installs a MeterProvider backed by the Prometheus exporter and returns the
// handler serving the exposition format.
func InitPrometheus() (http.Handler, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter)))

	return promhttp.Handler(), nil
}
