package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing application metrics.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// Each service maintains its own isolated registry to prevent metric
	// name collisions.
	Registry *prometheus.Registry

	// Storage operation metrics fed by the Observer
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	operationBytes    *prometheus.CounterVec
}

// NewMetrics initializes a new Metrics instance. It sets up a dedicated
// Prometheus registry, registers the storage operation collectors, wraps
// all metrics with a constant `service` label, and creates an HTTP server
// exposing the /metrics endpoint.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "media-ingest",
//	    EnableDefaultCollectors: true,
//	})
//	go m.Server.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	// An isolated registry avoids metric collisions when multiple services
	// run in the same process.
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service automatically carry the label
	// service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.operationsTotal = createCounterVec(
		"objstore_operations_total",
		"Total number of storage operations by outcome",
		[]string{"component", "operation", "status"},
	)
	m.operationDuration = createHistogramVec(
		"objstore_operation_duration_seconds",
		"Duration of storage operations in seconds",
		[]string{"component", "operation"},
		prometheus.DefBuckets,
	)
	m.operationBytes = createCounterVec(
		"objstore_operation_bytes_total",
		"Total payload bytes moved by storage operations",
		[]string{"component", "operation"},
	)

	wrappedRegistry.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		m.operationBytes,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}
	return m
}
