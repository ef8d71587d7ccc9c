package objstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/stratal/objstore/v1/lock"
	"github.com/stratal/objstore/v1/s3select"
	"github.com/stratal/objstore/v1/s3types"
	"github.com/stratal/objstore/v1/tags"
)

// ListObjectsOptions carries the optional parameters of the listing calls.
type ListObjectsOptions struct {
	// Prefix restricts the listing to keys beginning with it.
	Prefix string
	// Delimiter rolls up keys sharing a prefix up to it into CommonPrefixes.
	Delimiter string
	// MaxKeys caps the page size. 0 uses the server default (1000).
	MaxKeys int
	// StartAfter begins a V2 listing after this key.
	StartAfter string
}

func (o ListObjectsOptions) apply(req *Request) {
	if o.Prefix != "" {
		req.Query.Set("prefix", o.Prefix)
	}
	if o.Delimiter != "" {
		req.Query.Set("delimiter", o.Delimiter)
	}
	if o.MaxKeys > 0 {
		req.Query.Set("max-keys", strconv.Itoa(o.MaxKeys))
	}
}

// ListObjects fetches one page of a V1 listing. marker resumes after the
// given key; pass the previous page's NextPageMarker.
func (c *ObjstoreClient) ListObjects(ctx context.Context, bucket, marker string, opts ListObjectsOptions) (*s3types.ListBucketResultV1, error) {
	req := newRequest("GET", bucket, "")
	req.Query.Set("encoding-type", string(s3types.EncodingTypeURL))
	opts.apply(req)
	if marker != "" {
		req.Query.Set("marker", marker)
	}
	var result s3types.ListBucketResultV1
	if err := c.executeXML(ctx, "list_objects", req, &result); err != nil {
		return nil, err
	}
	if err := result.DecodeKeys(); err != nil {
		return nil, fmt.Errorf("objstore: decode listing keys: %w", err)
	}
	return &result, nil
}

// ListObjectsV2 fetches one page of a V2 listing. continuationToken resumes
// a truncated listing; pass the previous page's NextContinuationToken.
func (c *ObjstoreClient) ListObjectsV2(ctx context.Context, bucket, continuationToken string, opts ListObjectsOptions) (*s3types.ListBucketResultV2, error) {
	req := newRequest("GET", bucket, "")
	req.Query.Set("list-type", "2")
	req.Query.Set("encoding-type", string(s3types.EncodingTypeURL))
	opts.apply(req)
	if opts.StartAfter != "" {
		req.Query.Set("start-after", opts.StartAfter)
	}
	if continuationToken != "" {
		req.Query.Set("continuation-token", continuationToken)
	}
	var result s3types.ListBucketResultV2
	if err := c.executeXML(ctx, "list_objects_v2", req, &result); err != nil {
		return nil, err
	}
	if err := result.DecodeKeys(); err != nil {
		return nil, fmt.Errorf("objstore: decode listing keys: %w", err)
	}
	return &result, nil
}

// StreamObjects walks a whole V2 listing and delivers entries over a
// channel. Both channels close when the listing ends; the error channel
// delivers at most one error.
func (c *ObjstoreClient) StreamObjects(ctx context.Context, bucket string, opts ListObjectsOptions) (<-chan s3types.ObjectEntry, <-chan error) {
	entries := make(chan s3types.ObjectEntry)
	errs := make(chan error, 1)

	go func() {
		defer close(entries)
		defer close(errs)

		token := ""
		for {
			page, err := c.ListObjectsV2(ctx, bucket, token, opts)
			if err != nil {
				errs <- err
				return
			}
			for _, entry := range page.Contents {
				select {
				case entries <- entry:
				case <-ctx.Done():
					errs <- ctx.Err()
					return
				}
			}
			if !page.IsTruncated {
				return
			}
			token = page.NextContinuationToken
		}
	}()

	return entries, errs
}

// ListAllObjects drains a V2 listing into a single slice.
func (c *ObjstoreClient) ListAllObjects(ctx context.Context, bucket string, opts ListObjectsOptions) ([]s3types.ObjectEntry, error) {
	entries, errs := c.StreamObjects(ctx, bucket, opts)
	var all []s3types.ObjectEntry
	for entry := range entries {
		all = append(all, entry)
	}
	if err := <-errs; err != nil {
		return nil, err
	}
	return all, nil
}

// ListObjectVersions fetches one page of a versioned listing. keyMarker and
// versionIDMarker resume a truncated listing.
func (c *ObjstoreClient) ListObjectVersions(ctx context.Context, bucket, keyMarker, versionIDMarker string, opts ListObjectsOptions) (*s3types.ListVersionsResult, error) {
	req := newRequest("GET", bucket, "")
	req.Query.Set("versions", "")
	opts.apply(req)
	if keyMarker != "" {
		req.Query.Set("key-marker", keyMarker)
	}
	if versionIDMarker != "" {
		req.Query.Set("version-id-marker", versionIDMarker)
	}
	var result s3types.ListVersionsResult
	if err := c.executeXML(ctx, "list_object_versions", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListAllObjectVersions walks a versioned listing to the end and merges the
// pages into one result.
func (c *ObjstoreClient) ListAllObjectVersions(ctx context.Context, bucket string, opts ListObjectsOptions) (*s3types.ListVersionsResult, error) {
	var pages []*s3types.ListVersionsResult
	keyMarker, versionIDMarker := "", ""
	for {
		page, err := c.ListObjectVersions(ctx, bucket, keyMarker, versionIDMarker, opts)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
		if !page.IsTruncated {
			break
		}
		keyMarker = page.NextKeyMarker
		versionIDMarker = page.NextVersionIDMarker
	}
	return s3types.MergeVersionPages(pages...)
}

// RemoveObject deletes a single object, or a specific version when
// versionID is set.
func (c *ObjstoreClient) RemoveObject(ctx context.Context, bucket, key, versionID string) error {
	req := newRequest("DELETE", bucket, key)
	if versionID != "" {
		req.Query.Set("versionId", versionID)
	}
	return c.executeXML(ctx, "remove_object", req, nil)
}

// RemoveObjects deletes up to 1000 objects in one call. quiet suppresses
// per-object success entries in the result.
func (c *ObjstoreClient) RemoveObjects(ctx context.Context, bucket string, objects []s3types.ObjectToDelete, quiet bool) (*s3types.DeleteResult, error) {
	if len(objects) == 0 {
		return &s3types.DeleteResult{}, nil
	}
	if len(objects) > 1000 {
		return nil, fmt.Errorf("%w: at most 1000 objects per delete call, got %d", ErrInvalidArgument, len(objects))
	}
	doc := s3types.Delete{
		Xmlns:   s3types.Namespace,
		Quiet:   quiet,
		Objects: objects,
	}
	req := newRequest("POST", bucket, "")
	req.Query.Set("delete", "")
	body, size, err := marshalBody(&doc)
	if err != nil {
		return nil, err
	}
	req.Body = body
	req.ContentLength = size

	var result s3types.DeleteResult
	if err := c.executeXML(ctx, "remove_objects", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CopyObjectOptions carries the optional parameters of CopyObject.
type CopyObjectOptions struct {
	// SourceVersionID copies a specific version of the source.
	SourceVersionID string
	// MetadataDirective selects COPY or REPLACE for user metadata.
	MetadataDirective s3types.MetadataDirective
	// Metadata is the replacement user metadata when the directive is REPLACE.
	Metadata map[string]string
	// StorageClass stores the copy under a different class.
	StorageClass s3types.StorageClass
}

// CopyObject performs a server-side copy.
func (c *ObjstoreClient) CopyObject(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string, opts CopyObjectOptions) (*s3types.CopyObjectResult, error) {
	req := newRequest("PUT", dstBucket, dstKey)
	source := encodePath("/" + srcBucket + "/" + srcKey)
	if opts.SourceVersionID != "" {
		source += "?versionId=" + url.QueryEscape(opts.SourceVersionID)
	}
	req.Headers["X-Amz-Copy-Source"] = source
	if opts.MetadataDirective != "" {
		req.Headers["X-Amz-Metadata-Directive"] = string(opts.MetadataDirective)
	}
	if opts.StorageClass != "" {
		req.Headers["X-Amz-Storage-Class"] = string(opts.StorageClass)
	}
	for k, v := range opts.Metadata {
		req.Headers["X-Amz-Meta-"+k] = v
	}
	var result s3types.CopyObjectResult
	if err := c.executeXML(ctx, "copy_object", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RestoreObject requests a restore of an archived object for the given
// number of days.
func (c *ObjstoreClient) RestoreObject(ctx context.Context, bucket, key string, days int, tier string) error {
	req := newRequest("POST", bucket, key)
	req.Query.Set("restore", "")
	body, size, err := marshalBody(&s3types.RestoreRequest{
		Xmlns: s3types.Namespace,
		Days:  days,
		Tier:  tier,
	})
	if err != nil {
		return err
	}
	req.Body = body
	req.ContentLength = size
	return c.executeXML(ctx, "restore_object", req, nil)
}

// GetObjectACL returns the access control policy of an object.
func (c *ObjstoreClient) GetObjectACL(ctx context.Context, bucket, key string) (*s3types.AccessControlPolicy, error) {
	req := newRequest("GET", bucket, key)
	req.Query.Set("acl", "")
	var policy s3types.AccessControlPolicy
	if err := c.executeXML(ctx, "get_object_acl", req, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

// SetObjectCannedACL applies a canned ACL to an object.
func (c *ObjstoreClient) SetObjectCannedACL(ctx context.Context, bucket, key string, acl s3types.CannedACL) error {
	if !acl.IsValid() {
		return fmt.Errorf("%w: unknown canned ACL %q", ErrInvalidArgument, acl)
	}
	req := newRequest("PUT", bucket, key)
	req.Query.Set("acl", "")
	req.Headers["X-Amz-Acl"] = string(acl)
	return c.executeXML(ctx, "set_object_acl", req, nil)
}

// SetObjectTagging replaces the tag set of an object.
func (c *ObjstoreClient) SetObjectTagging(ctx context.Context, bucket, key string, set *tags.TagSet) error {
	if err := set.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	req := newRequest("PUT", bucket, key)
	req.Query.Set("tagging", "")
	body, size, err := marshalBody(set)
	if err != nil {
		return err
	}
	req.Body = body
	req.ContentLength = size
	return c.executeXML(ctx, "set_object_tagging", req, nil)
}

// GetObjectTagging returns the tag set of an object.
func (c *ObjstoreClient) GetObjectTagging(ctx context.Context, bucket, key string) (*tags.TagSet, error) {
	req := newRequest("GET", bucket, key)
	req.Query.Set("tagging", "")
	var set tags.TagSet
	if err := c.executeXML(ctx, "get_object_tagging", req, &set); err != nil {
		return nil, err
	}
	set.ScopeToObject()
	return &set, nil
}

// RemoveObjectTagging deletes all tags of an object.
func (c *ObjstoreClient) RemoveObjectTagging(ctx context.Context, bucket, key string) error {
	req := newRequest("DELETE", bucket, key)
	req.Query.Set("tagging", "")
	return c.executeXML(ctx, "remove_object_tagging", req, nil)
}

// PutObjectRetention sets the retention of an object version.
// bypassGovernance shortens or removes a GOVERNANCE retention.
func (c *ObjstoreClient) PutObjectRetention(ctx context.Context, bucket, key, versionID string, retention *lock.Retention, bypassGovernance bool) error {
	if err := retention.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	req := newRequest("PUT", bucket, key)
	req.Query.Set("retention", "")
	if versionID != "" {
		req.Query.Set("versionId", versionID)
	}
	if bypassGovernance {
		req.Headers["X-Amz-Bypass-Governance-Retention"] = "true"
	}
	body, size, err := marshalBody(retention)
	if err != nil {
		return err
	}
	req.Body = body
	req.ContentLength = size
	return c.executeXML(ctx, "put_object_retention", req, nil)
}

// GetObjectRetention returns the retention of an object version.
func (c *ObjstoreClient) GetObjectRetention(ctx context.Context, bucket, key, versionID string) (*lock.Retention, error) {
	req := newRequest("GET", bucket, key)
	req.Query.Set("retention", "")
	if versionID != "" {
		req.Query.Set("versionId", versionID)
	}
	var retention lock.Retention
	if err := c.executeXML(ctx, "get_object_retention", req, &retention); err != nil {
		return nil, err
	}
	return &retention, nil
}

// PutObjectLegalHold toggles the legal hold of an object version.
func (c *ObjstoreClient) PutObjectLegalHold(ctx context.Context, bucket, key, versionID string, status lock.LegalHoldStatus) error {
	hold := lock.LegalHold{Status: status}
	if err := hold.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	req := newRequest("PUT", bucket, key)
	req.Query.Set("legal-hold", "")
	if versionID != "" {
		req.Query.Set("versionId", versionID)
	}
	body, size, err := marshalBody(&hold)
	if err != nil {
		return err
	}
	req.Body = body
	req.ContentLength = size
	return c.executeXML(ctx, "put_object_legal_hold", req, nil)
}

// GetObjectLegalHold returns the legal hold status of an object version.
func (c *ObjstoreClient) GetObjectLegalHold(ctx context.Context, bucket, key, versionID string) (lock.LegalHoldStatus, error) {
	req := newRequest("GET", bucket, key)
	req.Query.Set("legal-hold", "")
	if versionID != "" {
		req.Query.Set("versionId", versionID)
	}
	var hold lock.LegalHold
	if err := c.executeXML(ctx, "get_object_legal_hold", req, &hold); err != nil {
		return "", err
	}
	return hold.Status, nil
}

// SelectObjectContent runs a select query against an object and returns the
// raw event-stream response. The caller owns the body and decodes frames
// with the s3select package.
func (c *ObjstoreClient) SelectObjectContent(ctx context.Context, bucket, key string, query *s3select.Request) (*Response, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	req := newRequest("POST", bucket, key)
	req.Query.Set("select", "")
	req.Query.Set("select-type", "2")
	body, size, err := marshalBody(query)
	if err != nil {
		return nil, err
	}
	req.Body = body
	req.ContentLength = size
	resp, err := c.do(ctx, req)
	c.observeOperation("select_object_content", bucket, key, 0, err, size, nil)
	return resp, err
}
