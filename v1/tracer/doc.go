// Package tracer provides distributed tracing functionality using OpenTelemetry.
//
// The tracer package offers a simplified interface for implementing distributed tracing
// in Go applications. It abstracts away the complexity of OpenTelemetry to provide
// a clean, easy-to-use API for creating and managing trace spans, and ships an
// observability.Observer implementation that turns storage client operations into spans.
//
// Core Features:
//   - Simple span creation and management
//   - Error recording and status tracking
//   - Customizable span attributes
//   - Cross-service trace context propagation
//   - A ready-made Observer for the storage client
//
// Basic Usage:
//
//	import (
//		"context"
//		"github.com/stratal/objstore/v1/logger"
//		"github.com/stratal/objstore/v1/tracer"
//	)
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info})
//
//	tracerClient := tracer.NewClient(tracer.Config{
//		ServiceName:  "media-ingest",
//		AppEnv:       "development",
//		EnableExport: true,
//	}, log)
//
//	ctx, span := tracerClient.StartSpan(ctx, "process-request")
//	defer span.End()
//
// Tracing storage operations:
//
//	client, _ := objstore.NewClient(cfg, transport)
//	client = client.WithObserver(tracer.NewObserver(tracerClient))
//
// Every storage operation then appears as a span named after the operation,
// carrying the bucket, key, payload size and error status as attributes.
//
// Distributed Tracing Across Services:
//
//	// In the sending service
//	traceHeaders := tracerClient.GetCarrier(ctx)
//	for key, value := range traceHeaders {
//		req.Header.Set(key, value)
//	}
//
//	// In the receiving service
//	ctx := tracerClient.SetCarrierOnContext(r.Context(), headers)
//	ctx, span := tracerClient.StartSpan(ctx, "handle-request")
//	defer span.End()
//
// FX Module Integration:
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    // ... other modules
//	)
//	app.Run()
//
// Thread Safety:
//
// All methods on the Tracer type and Span interface are safe for concurrent use
// by multiple goroutines.
package tracer
