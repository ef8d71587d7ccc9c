package observability

import "time"

// OperationContext carries the details of a single completed operation.
// It is the unit of information passed from SDK clients to an Observer.
type OperationContext struct {
	// Component identifies the emitting package (e.g. "objstore").
	Component string

	// Operation is the logical operation name (e.g. "list_objects_v2",
	// "complete_multipart_upload").
	Operation string

	// Resource is the primary resource the operation acted on.
	// For object storage operations this is the bucket name.
	Resource string

	// SubResource is the secondary resource, if any.
	// For object storage operations this is the object key.
	SubResource string

	// Duration is how long the operation took, including the transport
	// round trip.
	Duration time.Duration

	// Error is the error returned by the operation, or nil on success.
	Error error

	// Size is the payload size in bytes where meaningful (uploaded bytes,
	// entries returned by a listing), otherwise 0.
	Size int64

	// Metadata holds operation-specific details (e.g. part_count,
	// continuation_token_set). May be nil.
	Metadata map[string]interface{}
}

// Observer receives completed operations from SDK clients.
//
// Implementations must be safe for concurrent use.
type Observer interface {
	// ObserveOperation is called once per completed operation.
	ObserveOperation(ctx OperationContext)
}
