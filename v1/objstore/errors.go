package objstore

import (
	"errors"

	"github.com/stratal/objstore/v1/s3types"
)

// Common client errors
var (
	// ErrNilTransport is returned when a client is created without a transport.
	ErrNilTransport = errors.New("objstore: transport cannot be nil")

	// ErrInvalidConfig is returned when the configuration is incomplete.
	ErrInvalidConfig = errors.New("objstore: invalid configuration")

	// ErrBucketNotFound is returned when the target bucket does not exist.
	ErrBucketNotFound = errors.New("objstore: bucket not found")

	// ErrObjectNotFound is returned when the target object does not exist.
	ErrObjectNotFound = errors.New("objstore: object not found")

	// ErrUploadNotFound is returned when a multipart upload ID is unknown,
	// typically because it was aborted or already completed.
	ErrUploadNotFound = errors.New("objstore: multipart upload not found")

	// ErrAccessDenied is returned when the credentials lack permission.
	ErrAccessDenied = errors.New("objstore: access denied")

	// ErrConfigurationNotFound is returned when a bucket sub-configuration
	// (lifecycle, replication, encryption, lock, tags) is not set.
	ErrConfigurationNotFound = errors.New("objstore: bucket configuration not found")

	// ErrInvalidArgument is returned when the server rejects a request value.
	ErrInvalidArgument = errors.New("objstore: invalid argument")

	// ErrSlowDown is returned when the server asks the caller to back off.
	ErrSlowDown = errors.New("objstore: server requested slow down")
)

// APIError wraps the decoded server error document. It unwraps to one of
// the sentinel errors above so callers can branch with errors.Is while
// still reaching the raw response via errors.As.
type APIError struct {
	Response s3types.ErrorResponse
	sentinel error
}

// Error implements the error interface.
func (e *APIError) Error() string { return e.Response.Error() }

// Unwrap exposes the matching sentinel, or nil for unmapped codes.
func (e *APIError) Unwrap() error { return e.sentinel }

// newAPIError maps a decoded error document onto a sentinel.
func newAPIError(resp s3types.ErrorResponse) *APIError {
	var sentinel error
	switch resp.Code {
	case s3types.ErrCodeNoSuchBucket:
		sentinel = ErrBucketNotFound
	case s3types.ErrCodeNoSuchKey:
		sentinel = ErrObjectNotFound
	case s3types.ErrCodeNoSuchUpload:
		sentinel = ErrUploadNotFound
	case s3types.ErrCodeAccessDenied:
		sentinel = ErrAccessDenied
	case s3types.ErrCodeNoSuchLifecycleConfig,
		s3types.ErrCodeReplicationConfigNotFound,
		s3types.ErrCodeObjectLockConfigNotFound,
		s3types.ErrCodeSSEConfigNotFound,
		s3types.ErrCodeNoSuchTagSet:
		sentinel = ErrConfigurationNotFound
	case s3types.ErrCodeInvalidArgument, s3types.ErrCodeInvalidPart, s3types.ErrCodeInvalidPartOrder:
		sentinel = ErrInvalidArgument
	case s3types.ErrCodeSlowDown:
		sentinel = ErrSlowDown
	}
	return &APIError{Response: resp, sentinel: sentinel}
}

// IsBucketNotFoundError checks if the error indicates a missing bucket.
func IsBucketNotFoundError(err error) bool {
	return errors.Is(err, ErrBucketNotFound)
}

// IsObjectNotFoundError checks if the error indicates a missing object.
func IsObjectNotFoundError(err error) bool {
	return errors.Is(err, ErrObjectNotFound)
}

// IsUploadNotFoundError checks if the error indicates an unknown upload ID.
func IsUploadNotFoundError(err error) bool {
	return errors.Is(err, ErrUploadNotFound)
}

// IsAccessDeniedError checks if the error indicates missing permissions.
func IsAccessDeniedError(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

// IsConfigurationNotFoundError checks if the error indicates an unset
// bucket sub-configuration.
func IsConfigurationNotFoundError(err error) bool {
	return errors.Is(err, ErrConfigurationNotFound)
}

// IsRetryableError checks if the operation can be retried as-is.
func IsRetryableError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Response.IsRetryable()
	}
	return false
}
