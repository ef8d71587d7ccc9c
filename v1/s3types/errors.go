package s3types

import (
	"encoding/xml"
	"fmt"
)

// Error codes returned by S3-compatible services that callers commonly
// branch on.
const (
	ErrCodeNoSuchBucket              = "NoSuchBucket"
	ErrCodeNoSuchKey                 = "NoSuchKey"
	ErrCodeNoSuchUpload              = "NoSuchUpload"
	ErrCodeNoSuchVersion             = "NoSuchVersion"
	ErrCodeAccessDenied              = "AccessDenied"
	ErrCodeBucketAlreadyExists       = "BucketAlreadyExists"
	ErrCodeBucketAlreadyOwnedByYou   = "BucketAlreadyOwnedByYou"
	ErrCodeBucketNotEmpty            = "BucketNotEmpty"
	ErrCodeEntityTooSmall            = "EntityTooSmall"
	ErrCodeEntityTooLarge            = "EntityTooLarge"
	ErrCodeInvalidArgument           = "InvalidArgument"
	ErrCodeInvalidPart               = "InvalidPart"
	ErrCodeInvalidPartOrder          = "InvalidPartOrder"
	ErrCodeInvalidObjectState        = "InvalidObjectState"
	ErrCodePreconditionFailed        = "PreconditionFailed"
	ErrCodeSlowDown                  = "SlowDown"
	ErrCodeNoSuchLifecycleConfig     = "NoSuchLifecycleConfiguration"
	ErrCodeReplicationConfigNotFound = "ReplicationConfigurationNotFoundError"
	ErrCodeObjectLockConfigNotFound  = "ObjectLockConfigurationNotFoundError"
	ErrCodeSSEConfigNotFound         = "ServerSideEncryptionConfigurationNotFoundError"
	ErrCodeNoSuchTagSet              = "NoSuchTagSet"
)

// ErrorResponse is the XML error body returned on non-2xx responses.
// It implements the error interface so decoded failures can be returned
// directly.
type ErrorResponse struct {
	XMLName    xml.Name `xml:"Error"`
	Code       string   `xml:"Code"`
	Message    string   `xml:"Message"`
	BucketName string   `xml:"BucketName,omitempty"`
	Key        string   `xml:"Key,omitempty"`
	Resource   string   `xml:"Resource,omitempty"`
	Region     string   `xml:"Region,omitempty"`
	RequestID  string   `xml:"RequestId,omitempty"`
	HostID     string   `xml:"HostId,omitempty"`

	// StatusCode is the HTTP status the error arrived with. Not part of
	// the XML body; filled in by the response decoder.
	StatusCode int `xml:"-"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Code
}

// IsRetryable reports whether the service asked the client to back off.
// Retry scheduling itself is the caller's concern.
func (e ErrorResponse) IsRetryable() bool {
	return e.Code == ErrCodeSlowDown || e.StatusCode == 500 || e.StatusCode == 503
}
