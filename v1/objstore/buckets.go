package objstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stratal/objstore/v1/lifecycle"
	"github.com/stratal/objstore/v1/lock"
	"github.com/stratal/objstore/v1/notification"
	"github.com/stratal/objstore/v1/replication"
	"github.com/stratal/objstore/v1/s3types"
	"github.com/stratal/objstore/v1/sse"
	"github.com/stratal/objstore/v1/tags"
)

// ListBuckets returns all buckets owned by the authenticated account.
func (c *ObjstoreClient) ListBuckets(ctx context.Context) ([]s3types.Bucket, error) {
	req := newRequest("GET", "", "")
	var result s3types.ListAllMyBucketsResult
	if err := c.executeXML(ctx, "list_buckets", req, &result); err != nil {
		return nil, err
	}
	return result.Buckets, nil
}

// MakeBucketOptions carries the optional settings of MakeBucket.
type MakeBucketOptions struct {
	// Region places the bucket in a region other than the client default.
	Region string
	// ObjectLocking creates the bucket with object locking enabled.
	// Locking cannot be turned on later.
	ObjectLocking bool
}

// MakeBucket creates a bucket.
func (c *ObjstoreClient) MakeBucket(ctx context.Context, bucket string, opts MakeBucketOptions) error {
	region := opts.Region
	if region == "" {
		region = c.cfg.Connection.Region
	}
	req := newRequest("PUT", bucket, "")
	if opts.ObjectLocking {
		req.Headers["X-Amz-Bucket-Object-Lock-Enabled"] = "true"
	}
	// us-east-1 is the implicit default and must not be sent as a
	// location constraint.
	if region != "us-east-1" {
		body, size, err := marshalBody(&s3types.CreateBucketConfiguration{
			Xmlns:              s3types.Namespace,
			LocationConstraint: region,
		})
		if err != nil {
			return err
		}
		req.Body = body
		req.ContentLength = size
	}
	if err := c.executeXML(ctx, "make_bucket", req, nil); err != nil {
		return err
	}
	c.regionCache.set(bucket, region)
	return nil
}

// RemoveBucket deletes an empty bucket.
func (c *ObjstoreClient) RemoveBucket(ctx context.Context, bucket string) error {
	req := newRequest("DELETE", bucket, "")
	if err := c.executeXML(ctx, "remove_bucket", req, nil); err != nil {
		return err
	}
	c.regionCache.delete(bucket)
	return nil
}

// BucketExists reports whether a bucket exists and is accessible.
func (c *ObjstoreClient) BucketExists(ctx context.Context, bucket string) (bool, error) {
	start := time.Now()
	req := newRequest("HEAD", bucket, "")
	err := c.executeXMLNoObserve(ctx, req, nil)
	c.observeOperation("bucket_exists", bucket, "", time.Since(start), err, 0, nil)
	if err != nil {
		if IsBucketNotFoundError(err) || IsObjectNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SetBucketVersioning enables or suspends versioning.
func (c *ObjstoreClient) SetBucketVersioning(ctx context.Context, bucket string, config s3types.VersioningConfiguration) error {
	config.Xmlns = s3types.Namespace
	req := newRequest("PUT", bucket, "")
	req.Query.Set("versioning", "")
	body, size, err := marshalBody(&config)
	if err != nil {
		return err
	}
	req.Body = body
	req.ContentLength = size
	return c.executeXML(ctx, "set_bucket_versioning", req, nil)
}

// GetBucketVersioning returns the bucket versioning state.
func (c *ObjstoreClient) GetBucketVersioning(ctx context.Context, bucket string) (s3types.VersioningConfiguration, error) {
	req := newRequest("GET", bucket, "")
	req.Query.Set("versioning", "")
	var config s3types.VersioningConfiguration
	err := c.executeXML(ctx, "get_bucket_versioning", req, &config)
	return config, err
}

// SetBucketLifecycle replaces the bucket lifecycle configuration.
func (c *ObjstoreClient) SetBucketLifecycle(ctx context.Context, bucket string, config *lifecycle.Configuration) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	req := newRequest("PUT", bucket, "")
	req.Query.Set("lifecycle", "")
	body, size, err := marshalBody(config)
	if err != nil {
		return err
	}
	req.Body = body
	req.ContentLength = size
	return c.executeXML(ctx, "set_bucket_lifecycle", req, nil)
}

// GetBucketLifecycle returns the bucket lifecycle configuration.
func (c *ObjstoreClient) GetBucketLifecycle(ctx context.Context, bucket string) (*lifecycle.Configuration, error) {
	req := newRequest("GET", bucket, "")
	req.Query.Set("lifecycle", "")
	var config lifecycle.Configuration
	if err := c.executeXML(ctx, "get_bucket_lifecycle", req, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// RemoveBucketLifecycle deletes the bucket lifecycle configuration.
func (c *ObjstoreClient) RemoveBucketLifecycle(ctx context.Context, bucket string) error {
	req := newRequest("DELETE", bucket, "")
	req.Query.Set("lifecycle", "")
	return c.executeXML(ctx, "remove_bucket_lifecycle", req, nil)
}

// SetBucketReplication replaces the bucket replication configuration.
func (c *ObjstoreClient) SetBucketReplication(ctx context.Context, bucket string, config *replication.Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	req := newRequest("PUT", bucket, "")
	req.Query.Set("replication", "")
	body, size, err := marshalBody(config)
	if err != nil {
		return err
	}
	req.Body = body
	req.ContentLength = size
	return c.executeXML(ctx, "set_bucket_replication", req, nil)
}

// GetBucketReplication returns the bucket replication configuration.
func (c *ObjstoreClient) GetBucketReplication(ctx context.Context, bucket string) (*replication.Config, error) {
	req := newRequest("GET", bucket, "")
	req.Query.Set("replication", "")
	var config replication.Config
	if err := c.executeXML(ctx, "get_bucket_replication", req, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// RemoveBucketReplication deletes the bucket replication configuration.
func (c *ObjstoreClient) RemoveBucketReplication(ctx context.Context, bucket string) error {
	req := newRequest("DELETE", bucket, "")
	req.Query.Set("replication", "")
	return c.executeXML(ctx, "remove_bucket_replication", req, nil)
}

// SetBucketNotification replaces the bucket notification configuration.
func (c *ObjstoreClient) SetBucketNotification(ctx context.Context, bucket string, config *notification.Configuration) error {
	req := newRequest("PUT", bucket, "")
	req.Query.Set("notification", "")
	body, size, err := marshalBody(config)
	if err != nil {
		return err
	}
	req.Body = body
	req.ContentLength = size
	return c.executeXML(ctx, "set_bucket_notification", req, nil)
}

// GetBucketNotification returns the bucket notification configuration.
func (c *ObjstoreClient) GetBucketNotification(ctx context.Context, bucket string) (*notification.Configuration, error) {
	req := newRequest("GET", bucket, "")
	req.Query.Set("notification", "")
	var config notification.Configuration
	if err := c.executeXML(ctx, "get_bucket_notification", req, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// RemoveAllBucketNotification clears every notification binding by writing
// an empty configuration.
func (c *ObjstoreClient) RemoveAllBucketNotification(ctx context.Context, bucket string) error {
	return c.SetBucketNotification(ctx, bucket, &notification.Configuration{Xmlns: s3types.Namespace})
}

// SetBucketEncryption sets the default encryption of a bucket.
func (c *ObjstoreClient) SetBucketEncryption(ctx context.Context, bucket string, config *sse.Configuration) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	req := newRequest("PUT", bucket, "")
	req.Query.Set("encryption", "")
	body, size, err := marshalBody(config)
	if err != nil {
		return err
	}
	req.Body = body
	req.ContentLength = size
	return c.executeXML(ctx, "set_bucket_encryption", req, nil)
}

// GetBucketEncryption returns the default encryption of a bucket.
func (c *ObjstoreClient) GetBucketEncryption(ctx context.Context, bucket string) (*sse.Configuration, error) {
	req := newRequest("GET", bucket, "")
	req.Query.Set("encryption", "")
	var config sse.Configuration
	if err := c.executeXML(ctx, "get_bucket_encryption", req, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// RemoveBucketEncryption deletes the default encryption of a bucket.
func (c *ObjstoreClient) RemoveBucketEncryption(ctx context.Context, bucket string) error {
	req := newRequest("DELETE", bucket, "")
	req.Query.Set("encryption", "")
	return c.executeXML(ctx, "remove_bucket_encryption", req, nil)
}

// SetObjectLockConfig sets the bucket object-lock configuration.
func (c *ObjstoreClient) SetObjectLockConfig(ctx context.Context, bucket string, config *lock.Configuration) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	req := newRequest("PUT", bucket, "")
	req.Query.Set("object-lock", "")
	body, size, err := marshalBody(config)
	if err != nil {
		return err
	}
	req.Body = body
	req.ContentLength = size
	return c.executeXML(ctx, "set_object_lock_config", req, nil)
}

// GetObjectLockConfig returns the bucket object-lock configuration.
func (c *ObjstoreClient) GetObjectLockConfig(ctx context.Context, bucket string) (*lock.Configuration, error) {
	req := newRequest("GET", bucket, "")
	req.Query.Set("object-lock", "")
	var config lock.Configuration
	if err := c.executeXML(ctx, "get_object_lock_config", req, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SetBucketTagging replaces the bucket tag set.
func (c *ObjstoreClient) SetBucketTagging(ctx context.Context, bucket string, set *tags.TagSet) error {
	if err := set.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	req := newRequest("PUT", bucket, "")
	req.Query.Set("tagging", "")
	body, size, err := marshalBody(set)
	if err != nil {
		return err
	}
	req.Body = body
	req.ContentLength = size
	return c.executeXML(ctx, "set_bucket_tagging", req, nil)
}

// GetBucketTagging returns the bucket tag set. A bucket without tags
// yields ErrConfigurationNotFound.
func (c *ObjstoreClient) GetBucketTagging(ctx context.Context, bucket string) (*tags.TagSet, error) {
	req := newRequest("GET", bucket, "")
	req.Query.Set("tagging", "")
	var set tags.TagSet
	if err := c.executeXML(ctx, "get_bucket_tagging", req, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

// RemoveBucketTagging deletes all bucket tags.
func (c *ObjstoreClient) RemoveBucketTagging(ctx context.Context, bucket string) error {
	req := newRequest("DELETE", bucket, "")
	req.Query.Set("tagging", "")
	return c.executeXML(ctx, "remove_bucket_tagging", req, nil)
}

// HasBucketReplication reports whether a replication configuration is set,
// mapping the not-found error to false.
func (c *ObjstoreClient) HasBucketReplication(ctx context.Context, bucket string) (bool, error) {
	_, err := c.GetBucketReplication(ctx, bucket)
	if err != nil {
		if errors.Is(err, ErrConfigurationNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
