package s3types

import "encoding/xml"

// Multipart protocol limits.
const (
	// MinPartNumber is the lowest valid part number.
	MinPartNumber = 1

	// MaxPartNumber is the highest valid part number; uploads are limited
	// to 10000 parts.
	MaxPartNumber = 10000

	// MinPartSize is the minimum size of any part except the last,
	// 5 MiB.
	MinPartSize int64 = 5 * 1024 * 1024

	// MaxPartSize is the maximum size of a single part, 5 GiB.
	MaxPartSize int64 = 5 * 1024 * 1024 * 1024

	// MaxObjectSize is the maximum size of a completed multipart object,
	// 5 TiB.
	MaxObjectSize int64 = 5 * 1024 * 1024 * 1024 * 1024
)

// InitiateMultipartUploadResult is the response body of the
// CreateMultipartUpload call.
type InitiateMultipartUploadResult struct {
	XMLName  xml.Name `xml:"InitiateMultipartUploadResult"`
	Xmlns    string   `xml:"xmlns,attr,omitempty"`
	Bucket   string   `xml:"Bucket"`
	Key      string   `xml:"Key"`
	UploadID string   `xml:"UploadId"`
}

// CompletePart is a single <Part> in a CompleteMultipartUpload request.
// Checksum fields are present only when the parts were uploaded with an
// additional checksum algorithm.
type CompletePart struct {
	PartNumber        int    `xml:"PartNumber"`
	ETag              string `xml:"ETag"`
	ChecksumCRC32     string `xml:"ChecksumCRC32,omitempty"`
	ChecksumCRC32C    string `xml:"ChecksumCRC32C,omitempty"`
	ChecksumCRC64NVME string `xml:"ChecksumCRC64NVME,omitempty"`
	ChecksumSHA1      string `xml:"ChecksumSHA1,omitempty"`
	ChecksumSHA256    string `xml:"ChecksumSHA256,omitempty"`
}

// CompleteMultipartUpload is the request body of the
// CompleteMultipartUpload call. Parts must be listed in ascending part
// number order; use BuildCompleteMultipartUpload to assemble a validated
// request from collected parts.
type CompleteMultipartUpload struct {
	XMLName xml.Name       `xml:"CompleteMultipartUpload"`
	Xmlns   string         `xml:"xmlns,attr,omitempty"`
	Parts   []CompletePart `xml:"Part"`
}

// CompleteMultipartUploadResult is the response body of the
// CompleteMultipartUpload call.
type CompleteMultipartUploadResult struct {
	XMLName  xml.Name `xml:"CompleteMultipartUploadResult"`
	Xmlns    string   `xml:"xmlns,attr,omitempty"`
	Location string   `xml:"Location"`
	Bucket   string   `xml:"Bucket"`
	Key      string   `xml:"Key"`
	ETag     string   `xml:"ETag"`
}

// ObjectPart is a single <Part> entry in a ListPartsResult.
type ObjectPart struct {
	PartNumber   int         `xml:"PartNumber"`
	ETag         string      `xml:"ETag"`
	LastModified ISO8601Time `xml:"LastModified"`
	Size         int64       `xml:"Size"`
}

// ListPartsResult is the response body of the ListParts call. Pagination
// threads PartNumberMarker -> NextPartNumberMarker.
type ListPartsResult struct {
	XMLName              xml.Name     `xml:"ListPartsResult"`
	Xmlns                string       `xml:"xmlns,attr,omitempty"`
	Bucket               string       `xml:"Bucket"`
	Key                  string       `xml:"Key"`
	UploadID             string       `xml:"UploadId"`
	Initiator            Initiator    `xml:"Initiator"`
	Owner                Owner        `xml:"Owner"`
	StorageClass         StorageClass `xml:"StorageClass"`
	PartNumberMarker     int          `xml:"PartNumberMarker"`
	NextPartNumberMarker int          `xml:"NextPartNumberMarker"`
	MaxParts             int          `xml:"MaxParts"`
	IsTruncated          bool         `xml:"IsTruncated"`
	Parts                []ObjectPart `xml:"Part"`
}

// MultipartUpload is a single <Upload> entry in ListMultipartUploadsResult.
type MultipartUpload struct {
	Key          string       `xml:"Key"`
	UploadID     string       `xml:"UploadId"`
	Initiator    Initiator    `xml:"Initiator"`
	Owner        Owner        `xml:"Owner"`
	StorageClass StorageClass `xml:"StorageClass"`
	Initiated    ISO8601Time  `xml:"Initiated"`
}

// ListMultipartUploadsResult is the response body of the
// ListMultipartUploads call. Pagination threads the
// (KeyMarker, UploadIdMarker) pair.
type ListMultipartUploadsResult struct {
	XMLName            xml.Name          `xml:"ListMultipartUploadsResult"`
	Xmlns              string            `xml:"xmlns,attr,omitempty"`
	Bucket             string            `xml:"Bucket"`
	KeyMarker          string            `xml:"KeyMarker"`
	UploadIDMarker     string            `xml:"UploadIdMarker"`
	NextKeyMarker      string            `xml:"NextKeyMarker,omitempty"`
	NextUploadIDMarker string            `xml:"NextUploadIdMarker,omitempty"`
	Prefix             string            `xml:"Prefix"`
	Delimiter          string            `xml:"Delimiter,omitempty"`
	MaxUploads         int               `xml:"MaxUploads"`
	EncodingType       EncodingType      `xml:"EncodingType,omitempty"`
	IsTruncated        bool              `xml:"IsTruncated"`
	Uploads            []MultipartUpload `xml:"Upload"`
	CommonPrefixes     []CommonPrefix    `xml:"CommonPrefixes"`
}
