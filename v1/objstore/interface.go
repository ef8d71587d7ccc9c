package objstore

import (
	"context"

	"github.com/stratal/objstore/v1/lifecycle"
	"github.com/stratal/objstore/v1/lock"
	"github.com/stratal/objstore/v1/notification"
	"github.com/stratal/objstore/v1/replication"
	"github.com/stratal/objstore/v1/s3select"
	"github.com/stratal/objstore/v1/s3types"
	"github.com/stratal/objstore/v1/sse"
	"github.com/stratal/objstore/v1/tags"
)

// Client provides a high-level interface for S3-compatible object storage.
// It assembles protocol messages and hands them to a Transport; signing,
// retries and connection management live in the transport.
//
// This interface is implemented by the concrete *ObjstoreClient type.
type Client interface {
	// Bucket operations

	// ListBuckets returns all buckets owned by the authenticated account.
	ListBuckets(ctx context.Context) ([]s3types.Bucket, error)

	// MakeBucket creates a bucket.
	MakeBucket(ctx context.Context, bucket string, opts MakeBucketOptions) error

	// RemoveBucket deletes an empty bucket.
	RemoveBucket(ctx context.Context, bucket string) error

	// BucketExists reports whether a bucket exists and is accessible.
	BucketExists(ctx context.Context, bucket string) (bool, error)

	// GetBucketRegion resolves and caches the region a bucket lives in.
	GetBucketRegion(ctx context.Context, bucket string) (string, error)

	// Bucket configuration

	SetBucketVersioning(ctx context.Context, bucket string, config s3types.VersioningConfiguration) error
	GetBucketVersioning(ctx context.Context, bucket string) (s3types.VersioningConfiguration, error)
	SetBucketLifecycle(ctx context.Context, bucket string, config *lifecycle.Configuration) error
	GetBucketLifecycle(ctx context.Context, bucket string) (*lifecycle.Configuration, error)
	RemoveBucketLifecycle(ctx context.Context, bucket string) error
	SetBucketReplication(ctx context.Context, bucket string, config *replication.Config) error
	GetBucketReplication(ctx context.Context, bucket string) (*replication.Config, error)
	RemoveBucketReplication(ctx context.Context, bucket string) error
	SetBucketNotification(ctx context.Context, bucket string, config *notification.Configuration) error
	GetBucketNotification(ctx context.Context, bucket string) (*notification.Configuration, error)
	RemoveAllBucketNotification(ctx context.Context, bucket string) error
	SetBucketEncryption(ctx context.Context, bucket string, config *sse.Configuration) error
	GetBucketEncryption(ctx context.Context, bucket string) (*sse.Configuration, error)
	RemoveBucketEncryption(ctx context.Context, bucket string) error
	SetObjectLockConfig(ctx context.Context, bucket string, config *lock.Configuration) error
	GetObjectLockConfig(ctx context.Context, bucket string) (*lock.Configuration, error)
	SetBucketTagging(ctx context.Context, bucket string, set *tags.TagSet) error
	GetBucketTagging(ctx context.Context, bucket string) (*tags.TagSet, error)
	RemoveBucketTagging(ctx context.Context, bucket string) error

	// Object listing

	ListObjects(ctx context.Context, bucket, marker string, opts ListObjectsOptions) (*s3types.ListBucketResultV1, error)
	ListObjectsV2(ctx context.Context, bucket, continuationToken string, opts ListObjectsOptions) (*s3types.ListBucketResultV2, error)
	StreamObjects(ctx context.Context, bucket string, opts ListObjectsOptions) (<-chan s3types.ObjectEntry, <-chan error)
	ListAllObjects(ctx context.Context, bucket string, opts ListObjectsOptions) ([]s3types.ObjectEntry, error)
	ListObjectVersions(ctx context.Context, bucket, keyMarker, versionIDMarker string, opts ListObjectsOptions) (*s3types.ListVersionsResult, error)
	ListAllObjectVersions(ctx context.Context, bucket string, opts ListObjectsOptions) (*s3types.ListVersionsResult, error)

	// Object operations

	RemoveObject(ctx context.Context, bucket, key, versionID string) error
	RemoveObjects(ctx context.Context, bucket string, objects []s3types.ObjectToDelete, quiet bool) (*s3types.DeleteResult, error)
	CopyObject(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string, opts CopyObjectOptions) (*s3types.CopyObjectResult, error)
	RestoreObject(ctx context.Context, bucket, key string, days int, tier string) error
	GetObjectACL(ctx context.Context, bucket, key string) (*s3types.AccessControlPolicy, error)
	SetObjectCannedACL(ctx context.Context, bucket, key string, acl s3types.CannedACL) error
	SetObjectTagging(ctx context.Context, bucket, key string, set *tags.TagSet) error
	GetObjectTagging(ctx context.Context, bucket, key string) (*tags.TagSet, error)
	RemoveObjectTagging(ctx context.Context, bucket, key string) error
	PutObjectRetention(ctx context.Context, bucket, key, versionID string, retention *lock.Retention, bypassGovernance bool) error
	GetObjectRetention(ctx context.Context, bucket, key, versionID string) (*lock.Retention, error)
	PutObjectLegalHold(ctx context.Context, bucket, key, versionID string, status lock.LegalHoldStatus) error
	GetObjectLegalHold(ctx context.Context, bucket, key, versionID string) (lock.LegalHoldStatus, error)
	SelectObjectContent(ctx context.Context, bucket, key string, query *s3select.Request) (*Response, error)

	// Multipart upload operations

	NewMultipartUpload(ctx context.Context, bucket, key string, opts NewMultipartUploadOptions) (*s3types.InitiateMultipartUploadResult, error)
	ListMultipartUploads(ctx context.Context, bucket, keyMarker, uploadIDMarker, prefix string) (*s3types.ListMultipartUploadsResult, error)
	ListAllMultipartUploads(ctx context.Context, bucket, prefix string) ([]s3types.MultipartUpload, error)
	ListObjectParts(ctx context.Context, bucket, key, uploadID string, partNumberMarker int) (*s3types.ListPartsResult, error)
	ListAllObjectParts(ctx context.Context, bucket, key, uploadID string) (*s3types.ListPartsResult, error)
	CompleteMultipartUpload(ctx context.Context, bucket, key, uploadID string, parts []s3types.CompletePart) (*s3types.CompleteMultipartUploadResult, error)
	CompleteMultipartUploadFromListing(ctx context.Context, bucket, key, uploadID string) (*s3types.CompleteMultipartUploadResult, error)
	AbortMultipartUpload(ctx context.Context, bucket, key, uploadID string) error
}
