package objstore

import (
	"time"

	"github.com/stratal/objstore/v1/observability"
)

// observeOperation notifies the observer about an operation if one is
// configured.
//
// Notes:
//   - resource: bucket name
//   - subResource: object key
func (c *ObjstoreClient) observeOperation(operation, resource, subResource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if c == nil || c.observer == nil {
		return
	}

	if resource == "" {
		resource = c.cfg.Connection.Bucket
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component:   "objstore",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}
