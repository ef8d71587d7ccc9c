package objstore

import (
	"context"
	"io"
	"net/url"
)

// Request is one storage API call before signing and HTTP encoding. The
// transport owns endpoint resolution, authentication and retries; the
// client only describes the call.
type Request struct {
	// Method is the HTTP verb of the operation (GET, PUT, POST, DELETE, HEAD).
	Method string

	// Bucket is the target bucket. Empty for account-level calls such as
	// listing buckets.
	Bucket string

	// Key is the target object key. Empty for bucket-level calls.
	Key string

	// Query holds the sub-resource and pagination parameters
	// (list-type=2, uploads, uploadId, versions, tagging, ...).
	Query url.Values

	// Headers holds request headers (encryption, tagging, ACL, directives).
	Headers map[string]string

	// Body is the request payload, or nil.
	Body io.Reader

	// ContentLength is the payload size when known, -1 otherwise.
	ContentLength int64
}

// Response is the transport's answer to a Request. Body is never nil for a
// non-nil Response; callers must close it.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       io.ReadCloser
}

// Header returns a response header value, or "".
func (r *Response) Header(name string) string {
	if r == nil {
		return ""
	}
	return r.Headers[name]
}

// Transport executes storage API calls. Implementations handle signing,
// endpoint style (path or virtual host), connection management and
// retries; this package never talks HTTP directly.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a function to the Transport interface. Used mostly
// in tests.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

// Do calls the function.
func (f TransportFunc) Do(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}
