package objstore

import (
	"context"
	"log"

	"github.com/stratal/objstore/v1/observability"
	"go.uber.org/fx"
)

// FXModule is an fx.Module that provides and configures the object storage
// client. This module registers the client with the Fx dependency injection
// framework, making it available to other components in the application.
//
// The module:
// 1. Provides the client factory function
// 2. Invokes the lifecycle registration to manage the client's lifecycle
//
// Usage:
//
//	app := fx.New(
//	    objstore.FXModule,
//	    fx.Provide(
//	        func() objstore.Config { return loadConfig() },
//	        func() objstore.Transport { return myTransport },
//	    ),
//	)
var FXModule = fx.Module("objstore",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterObjstoreLifecycle),
)

// ObjstoreParams groups the dependencies needed to create the client
type ObjstoreParams struct {
	fx.In

	Config    Config
	Transport Transport
	Logger    Logger                 `optional:"true"`
	Observer  observability.Observer `optional:"true"`
}

// NewClientWithDI creates a new client using dependency injection. The
// optional logger and observer are attached when present in the graph.
func NewClientWithDI(params ObjstoreParams) (*ObjstoreClient, error) {
	if params.Logger != nil {
		params.Config.Logger = params.Logger
	}
	client, err := NewClient(params.Config, params.Transport)
	if err != nil {
		return nil, err
	}
	if params.Observer != nil {
		client = client.WithObserver(params.Observer)
	}
	return client, nil
}

// ObjstoreLifecycleParams groups the dependencies for lifecycle management
type ObjstoreLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *ObjstoreClient
}

// RegisterObjstoreLifecycle registers the client with the fx lifecycle
// system. On start it verifies the configured default bucket is reachable;
// buckets are never created implicitly.
func RegisterObjstoreLifecycle(params ObjstoreLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			bucket := params.Client.cfg.Connection.Bucket
			if bucket == "" {
				log.Println("INFO: objstore client started (no default bucket configured)")
				return nil
			}
			exists, err := params.Client.BucketExists(ctx, bucket)
			if err != nil {
				log.Printf("WARN: failed to check default bucket on startup: %v", err)
				return err
			}
			if !exists {
				log.Printf("WARN: default bucket %q does not exist", bucket)
				return ErrBucketNotFound
			}
			log.Println("INFO: objstore client started and default bucket reachable")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: shutting down objstore client")
			return nil
		},
	})
}
