// Package metrics exposes Prometheus metrics for the storage client and
// the surrounding application.
//
// It provides two layers:
//
//  1. A Metrics instance owning an isolated Prometheus registry and the
//     HTTP server serving /metrics, with factories for custom collectors.
//  2. An Observer implementation (NewObserver) that consumes the
//     observability.OperationContext events emitted by the storage client
//     and turns them into operation counters, latency histograms and
//     payload-size counters.
//
// # Standalone usage
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "media-ingest",
//	    EnableDefaultCollectors: true,
//	})
//	go m.Server.ListenAndServe()
//
//	client = client.WithObserver(metrics.NewObserver(m))
//
// Access metrics at: http://localhost:9090/metrics
//
// # FX
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{Address: ":9090", ServiceName: "media-ingest"}
//	    }),
//	)
//
// The fx module provides both *Metrics and the observability.Observer, so
// the storage client picks the observer up automatically.
package metrics
