package s3types

import "encoding/xml"

// NOTE: do not rename structs that carry `xml` tags. The struct name (or its
// XMLName) becomes the top-level element S3-compatible services require.

// Owner identifies the owner of a bucket or object.
type Owner struct {
	ID          string `xml:"ID"`
	DisplayName string `xml:"DisplayName"`
}

// Initiator identifies who started a multipart upload. Same wire shape as
// Owner.
type Initiator = Owner

// Bucket is a single entry in a ListAllMyBucketsResult.
type Bucket struct {
	Name         string      `xml:"Name"`
	CreationDate ISO8601Time `xml:"CreationDate"`
}

// ListAllMyBucketsResult is the response body of the ListBuckets call.
type ListAllMyBucketsResult struct {
	XMLName xml.Name `xml:"ListAllMyBucketsResult"`
	Xmlns   string   `xml:"xmlns,attr,omitempty"`
	Owner   Owner    `xml:"Owner"`
	Buckets []Bucket `xml:"Buckets>Bucket"`
}

// CreateBucketConfiguration is the request body of the CreateBucket call.
type CreateBucketConfiguration struct {
	XMLName            xml.Name `xml:"CreateBucketConfiguration"`
	Xmlns              string   `xml:"xmlns,attr,omitempty"`
	LocationConstraint string   `xml:"LocationConstraint,omitempty"`
}

// LocationConstraint is the response body of the GetBucketLocation call.
// us-east-1 is returned as an empty element.
type LocationConstraint struct {
	XMLName  xml.Name `xml:"LocationConstraint"`
	Location string   `xml:",chardata"`
}

// VersioningConfiguration is the request/response body of the bucket
// versioning calls. Both fields are omitted when versioning was never
// configured.
type VersioningConfiguration struct {
	XMLName   xml.Name         `xml:"VersioningConfiguration"`
	Xmlns     string           `xml:"xmlns,attr,omitempty"`
	Status    VersioningStatus `xml:"Status,omitempty"`
	MFADelete string           `xml:"MfaDelete,omitempty"`
}

// Enabled reports whether versioning is currently on.
func (v VersioningConfiguration) Enabled() bool { return v.Status == VersioningEnabled }

// Suspended reports whether versioning was enabled and later suspended.
func (v VersioningConfiguration) Suspended() bool { return v.Status == VersioningSuspended }

// CommonPrefix is a rolled-up key prefix in delimited listing responses.
type CommonPrefix struct {
	Prefix string `xml:"Prefix"`
}

// CopyObjectResult is the response body of the CopyObject call.
type CopyObjectResult struct {
	XMLName      xml.Name    `xml:"CopyObjectResult"`
	ETag         string      `xml:"ETag"`
	LastModified ISO8601Time `xml:"LastModified"`
}

// CopyPartResult is the response body of the UploadPartCopy call.
type CopyPartResult struct {
	XMLName      xml.Name    `xml:"CopyPartResult"`
	ETag         string      `xml:"ETag"`
	LastModified ISO8601Time `xml:"LastModified"`
}

// ObjectToDelete is one target of a multi-object delete request.
type ObjectToDelete struct {
	Key       string `xml:"Key"`
	VersionID string `xml:"VersionId,omitempty"`
}

// Delete is the request body of the DeleteObjects (multi-object delete)
// call. At most 1000 objects may be named per request.
type Delete struct {
	XMLName xml.Name         `xml:"Delete"`
	Xmlns   string           `xml:"xmlns,attr,omitempty"`
	Quiet   bool             `xml:"Quiet"`
	Objects []ObjectToDelete `xml:"Object"`
}

// DeletedObject is a successfully deleted entry in a DeleteResult.
type DeletedObject struct {
	Key                   string `xml:"Key"`
	VersionID             string `xml:"VersionId,omitempty"`
	DeleteMarker          bool   `xml:"DeleteMarker,omitempty"`
	DeleteMarkerVersionID string `xml:"DeleteMarkerVersionId,omitempty"`
}

// DeleteError is a per-object failure in a DeleteResult.
type DeleteError struct {
	Key       string `xml:"Key"`
	VersionID string `xml:"VersionId,omitempty"`
	Code      string `xml:"Code"`
	Message   string `xml:"Message"`
}

// DeleteResult is the response body of the DeleteObjects call. In quiet
// mode only errors are reported.
type DeleteResult struct {
	XMLName xml.Name        `xml:"DeleteResult"`
	Deleted []DeletedObject `xml:"Deleted"`
	Errors  []DeleteError   `xml:"Error"`
}

// RestoreRequest is the request body of the RestoreObject call for archived
// objects. Days and the nested tier are the only fields MinIO-compatible
// services interpret.
type RestoreRequest struct {
	XMLName xml.Name `xml:"RestoreRequest"`
	Xmlns   string   `xml:"xmlns,attr,omitempty"`
	Days    int      `xml:"Days,omitempty"`
	Tier    string   `xml:"GlacierJobParameters>Tier,omitempty"`
}
