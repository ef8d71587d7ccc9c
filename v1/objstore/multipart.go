package objstore

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/stratal/objstore/v1/s3types"
	"github.com/stratal/objstore/v1/sse"
)

// NewMultipartUploadOptions carries the optional settings of
// NewMultipartUpload.
type NewMultipartUploadOptions struct {
	// ContentType of the assembled object.
	ContentType string
	// StorageClass of the assembled object.
	StorageClass s3types.StorageClass
	// Encryption applies server-side encryption to the upload.
	Encryption sse.ServerSide
	// Metadata is attached as user metadata headers.
	Metadata map[string]string
}

// NewMultipartUpload starts a multipart upload and returns its ID.
func (c *ObjstoreClient) NewMultipartUpload(ctx context.Context, bucket, key string, opts NewMultipartUploadOptions) (*s3types.InitiateMultipartUploadResult, error) {
	req := newRequest("POST", bucket, key)
	req.Query.Set("uploads", "")
	if opts.ContentType != "" {
		req.Headers["Content-Type"] = opts.ContentType
	}
	if opts.StorageClass != "" {
		req.Headers["X-Amz-Storage-Class"] = string(opts.StorageClass)
	}
	if opts.Encryption != nil {
		opts.Encryption.Marshal(req.Headers)
	}
	for k, v := range opts.Metadata {
		req.Headers["X-Amz-Meta-"+k] = v
	}
	var result s3types.InitiateMultipartUploadResult
	if err := c.executeXML(ctx, "new_multipart_upload", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListMultipartUploads fetches one page of in-progress uploads.
func (c *ObjstoreClient) ListMultipartUploads(ctx context.Context, bucket, keyMarker, uploadIDMarker, prefix string) (*s3types.ListMultipartUploadsResult, error) {
	req := newRequest("GET", bucket, "")
	req.Query.Set("uploads", "")
	if prefix != "" {
		req.Query.Set("prefix", prefix)
	}
	if keyMarker != "" {
		req.Query.Set("key-marker", keyMarker)
	}
	if uploadIDMarker != "" {
		req.Query.Set("upload-id-marker", uploadIDMarker)
	}
	var result s3types.ListMultipartUploadsResult
	if err := c.executeXML(ctx, "list_multipart_uploads", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListAllMultipartUploads walks the upload listing to the end.
func (c *ObjstoreClient) ListAllMultipartUploads(ctx context.Context, bucket, prefix string) ([]s3types.MultipartUpload, error) {
	var uploads []s3types.MultipartUpload
	keyMarker, uploadIDMarker := "", ""
	for {
		page, err := c.ListMultipartUploads(ctx, bucket, keyMarker, uploadIDMarker, prefix)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, page.Uploads...)
		if !page.IsTruncated {
			return uploads, nil
		}
		keyMarker = page.NextKeyMarker
		uploadIDMarker = page.NextUploadIDMarker
	}
}

// ListObjectParts fetches one page of uploaded parts.
func (c *ObjstoreClient) ListObjectParts(ctx context.Context, bucket, key, uploadID string, partNumberMarker int) (*s3types.ListPartsResult, error) {
	req := newRequest("GET", bucket, key)
	req.Query.Set("uploadId", uploadID)
	if partNumberMarker > 0 {
		req.Query.Set("part-number-marker", strconv.Itoa(partNumberMarker))
	}
	var result s3types.ListPartsResult
	if err := c.executeXML(ctx, "list_object_parts", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListAllObjectParts walks the part listing to the end and merges the pages
// into one result.
func (c *ObjstoreClient) ListAllObjectParts(ctx context.Context, bucket, key, uploadID string) (*s3types.ListPartsResult, error) {
	var pages []*s3types.ListPartsResult
	marker := 0
	for {
		page, err := c.ListObjectParts(ctx, bucket, key, uploadID, marker)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
		if !page.IsTruncated {
			break
		}
		marker = page.NextPartNumberMarker
	}
	return s3types.MergeListPartsPages(pages...)
}

// CompleteMultipartUpload finalizes an upload from the collected parts.
// Parts are sorted and validated for gaps and duplicates before sending.
func (c *ObjstoreClient) CompleteMultipartUpload(ctx context.Context, bucket, key, uploadID string, parts []s3types.CompletePart) (*s3types.CompleteMultipartUploadResult, error) {
	doc, err := s3types.BuildCompleteMultipartUpload(parts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	doc.Xmlns = s3types.Namespace

	req := newRequest("POST", bucket, key)
	req.Query.Set("uploadId", uploadID)
	body, size, err := marshalBody(doc)
	if err != nil {
		return nil, err
	}
	req.Body = body
	req.ContentLength = size

	var result s3types.CompleteMultipartUploadResult
	if err := c.executeXML(ctx, "complete_multipart_upload", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CompleteMultipartUploadFromListing finalizes an upload using the parts
// the server has, fetched via ListAllObjectParts. Useful for resuming an
// upload whose part records were lost client-side.
func (c *ObjstoreClient) CompleteMultipartUploadFromListing(ctx context.Context, bucket, key, uploadID string) (*s3types.CompleteMultipartUploadResult, error) {
	listing, err := c.ListAllObjectParts(ctx, bucket, key, uploadID)
	if err != nil {
		return nil, err
	}
	parts := s3types.CompletePartsFromListing(listing.Parts)
	return c.CompleteMultipartUpload(ctx, bucket, key, uploadID, parts)
}

// AbortMultipartUpload cancels an upload and discards its parts.
func (c *ObjstoreClient) AbortMultipartUpload(ctx context.Context, bucket, key, uploadID string) error {
	req := newRequest("DELETE", bucket, key)
	req.Query.Set("uploadId", uploadID)
	return c.executeXML(ctx, "abort_multipart_upload", req, nil)
}

// ValidatePartSize checks a single part against the protocol limits.
// isLast allows the final part to be smaller than the minimum.
func ValidatePartSize(size int64, isLast bool) error {
	if size < 0 {
		return fmt.Errorf("%w: negative part size", ErrInvalidArgument)
	}
	if size > s3types.MaxPartSize {
		return fmt.Errorf("%w: part size %s exceeds maximum %s", ErrInvalidArgument,
			humanize.IBytes(uint64(size)), humanize.IBytes(uint64(s3types.MaxPartSize)))
	}
	if !isLast && size < s3types.MinPartSize {
		return fmt.Errorf("%w: part size %s below minimum %s", ErrInvalidArgument,
			humanize.IBytes(uint64(size)), humanize.IBytes(uint64(s3types.MinPartSize)))
	}
	return nil
}

// OptimalPartSize picks a part size for an object so the whole object fits
// within the part-count limit. Returns the part size and the number of
// parts.
func OptimalPartSize(objectSize int64) (int64, int, error) {
	if objectSize < 0 {
		return 0, 0, fmt.Errorf("%w: negative object size", ErrInvalidArgument)
	}
	if objectSize > s3types.MaxObjectSize {
		return 0, 0, fmt.Errorf("%w: object size %s exceeds maximum %s", ErrInvalidArgument,
			humanize.IBytes(uint64(objectSize)), humanize.IBytes(uint64(s3types.MaxObjectSize)))
	}
	partSize := int64(s3types.MinPartSize)
	for objectSize/partSize >= int64(s3types.MaxPartNumber) {
		partSize *= 2
	}
	parts := int(objectSize / partSize)
	if objectSize%partSize != 0 || objectSize == 0 {
		parts++
	}
	return partSize, parts, nil
}
