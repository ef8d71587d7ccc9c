// Package objstore provides a client for S3-compatible object storage
// built around explicit protocol messages. The client assembles requests
// (method, bucket, key, query, headers, XML body), hands them to a
// caller-supplied Transport, and decodes the XML responses into the types
// of the v1/s3types, v1/lifecycle, v1/replication, v1/notification,
// v1/tags, v1/sse, v1/lock and v1/s3select packages.
//
// # Architecture
//
// The Transport interface is the seam between message assembly and the
// wire: implementations own endpoint resolution, request signing, retries
// and connection pooling. This package never opens a socket, which keeps
// every operation unit-testable with an in-memory transport.
//
// Responses with non-2xx status are decoded into an *APIError that unwraps
// to sentinel errors (ErrBucketNotFound, ErrObjectNotFound, ...) for
// errors.Is branching.
//
// Listings paginate through V1 markers, V2 continuation tokens, version
// markers and part-number markers. Each listing offers a single-page call,
// a drain-everything call, and (for V2) a channel-based stream:
//
//	entries, errs := client.StreamObjects(ctx, "photos", objstore.ListObjectsOptions{Prefix: "2026/"})
//	for entry := range entries {
//	    process(entry)
//	}
//	if err := <-errs; err != nil {
//	    return err
//	}
//
// Bucket regions are resolved once and cached; concurrent lookups for the
// same bucket collapse into a single location call.
//
// # Construction
//
//	cfg, err := objstore.LoadConfig("objstore.yaml")
//	if err != nil {
//	    return err
//	}
//	client, err := objstore.NewClient(cfg, transport)
//	if err != nil {
//	    return err
//	}
//	client = client.WithLogger(myLogger).WithObserver(myObserver)
//
// # FX
//
// The package ships an fx module providing NewClientWithDI and a lifecycle
// hook that verifies the configured default bucket on startup:
//
//	app := fx.New(
//	    objstore.FXModule,
//	    fx.Provide(
//	        func() objstore.Config { return cfg },
//	        func() objstore.Transport { return transport },
//	    ),
//	)
package objstore
