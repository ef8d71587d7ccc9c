// Package observability defines the shared observability contract used by
// the objstore SDK packages.
//
// The SDK never couples itself to a concrete metrics or tracing system.
// Instead, every client accepts an optional Observer which receives one
// OperationContext per completed operation. The metrics and tracer packages
// in this repository ship ready-made Observer implementations (Prometheus
// and OpenTelemetry respectively), and applications are free to provide
// their own.
//
// # Attaching an Observer
//
//	client, err := objstore.NewClient(cfg, transport)
//	if err != nil {
//	    return err
//	}
//	client = client.WithObserver(myObserver)
//
// With fx, an Observer provided in the container is injected automatically:
//
//	app := fx.New(
//	    objstore.FXModule,
//	    fx.Provide(func() observability.Observer { return myObserver }),
//	)
//
// # Semantics
//
// Observers must be safe for concurrent use; a single Observer instance may
// receive operations from many goroutines. Observers should return quickly:
// they are called synchronously on the operation path.
package observability
