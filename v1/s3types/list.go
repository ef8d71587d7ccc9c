package s3types

import (
	"encoding/xml"
	"net/url"
)

// ObjectEntry is a single <Contents> entry in object listing responses.
type ObjectEntry struct {
	Key               string            `xml:"Key"`
	LastModified      ISO8601Time       `xml:"LastModified"`
	ETag              string            `xml:"ETag"`
	Size              int64             `xml:"Size"`
	StorageClass      StorageClass      `xml:"StorageClass"`
	Owner             *Owner            `xml:"Owner,omitempty"`
	ChecksumAlgorithm ChecksumAlgorithm `xml:"ChecksumAlgorithm,omitempty"`
}

// ListBucketResultV1 is the response body of the original ListObjects call.
// Pagination threads Marker -> NextMarker; NextMarker is only present for
// delimited listings, otherwise the last returned key is the next marker.
type ListBucketResultV1 struct {
	XMLName        xml.Name       `xml:"ListBucketResult"`
	Xmlns          string         `xml:"xmlns,attr,omitempty"`
	Name           string         `xml:"Name"`
	Prefix         string         `xml:"Prefix"`
	Marker         string         `xml:"Marker"`
	NextMarker     string         `xml:"NextMarker,omitempty"`
	Delimiter      string         `xml:"Delimiter,omitempty"`
	MaxKeys        int            `xml:"MaxKeys"`
	EncodingType   EncodingType   `xml:"EncodingType,omitempty"`
	IsTruncated    bool           `xml:"IsTruncated"`
	Contents       []ObjectEntry  `xml:"Contents"`
	CommonPrefixes []CommonPrefix `xml:"CommonPrefixes"`
}

// NextPageMarker returns the marker to use for the next page, applying the
// protocol's fallback to the last returned key when NextMarker is absent.
func (r *ListBucketResultV1) NextPageMarker() string {
	if !r.IsTruncated {
		return ""
	}
	if r.NextMarker != "" {
		return r.NextMarker
	}
	if n := len(r.Contents); n > 0 {
		return r.Contents[n-1].Key
	}
	return ""
}

// ListBucketResultV2 is the response body of the ListObjectsV2 call.
// Pagination threads ContinuationToken -> NextContinuationToken.
type ListBucketResultV2 struct {
	XMLName               xml.Name       `xml:"ListBucketResult"`
	Xmlns                 string         `xml:"xmlns,attr,omitempty"`
	Name                  string         `xml:"Name"`
	Prefix                string         `xml:"Prefix"`
	StartAfter            string         `xml:"StartAfter,omitempty"`
	Delimiter             string         `xml:"Delimiter,omitempty"`
	MaxKeys               int            `xml:"MaxKeys"`
	KeyCount              int            `xml:"KeyCount"`
	EncodingType          EncodingType   `xml:"EncodingType,omitempty"`
	IsTruncated           bool           `xml:"IsTruncated"`
	ContinuationToken     string         `xml:"ContinuationToken,omitempty"`
	NextContinuationToken string         `xml:"NextContinuationToken,omitempty"`
	Contents              []ObjectEntry  `xml:"Contents"`
	CommonPrefixes        []CommonPrefix `xml:"CommonPrefixes"`
}

// ObjectVersion is a <Version> entry in ListVersionsResult.
type ObjectVersion struct {
	Key          string       `xml:"Key"`
	VersionID    string       `xml:"VersionId"`
	IsLatest     bool         `xml:"IsLatest"`
	LastModified ISO8601Time  `xml:"LastModified"`
	ETag         string       `xml:"ETag"`
	Size         int64        `xml:"Size"`
	StorageClass StorageClass `xml:"StorageClass"`
	Owner        *Owner       `xml:"Owner,omitempty"`
}

// DeleteMarkerEntry is a <DeleteMarker> entry in ListVersionsResult.
type DeleteMarkerEntry struct {
	Key          string      `xml:"Key"`
	VersionID    string      `xml:"VersionId"`
	IsLatest     bool        `xml:"IsLatest"`
	LastModified ISO8601Time `xml:"LastModified"`
	Owner        *Owner      `xml:"Owner,omitempty"`
}

// ListVersionsResult is the response body of the ListObjectVersions call.
// Pagination threads the (KeyMarker, VersionIdMarker) pair.
type ListVersionsResult struct {
	XMLName             xml.Name            `xml:"ListVersionsResult"`
	Xmlns               string              `xml:"xmlns,attr,omitempty"`
	Name                string              `xml:"Name"`
	Prefix              string              `xml:"Prefix"`
	KeyMarker           string              `xml:"KeyMarker"`
	VersionIDMarker     string              `xml:"VersionIdMarker"`
	NextKeyMarker       string              `xml:"NextKeyMarker,omitempty"`
	NextVersionIDMarker string              `xml:"NextVersionIdMarker,omitempty"`
	Delimiter           string              `xml:"Delimiter,omitempty"`
	MaxKeys             int                 `xml:"MaxKeys"`
	EncodingType        EncodingType        `xml:"EncodingType,omitempty"`
	IsTruncated         bool                `xml:"IsTruncated"`
	Versions            []ObjectVersion     `xml:"Version"`
	DeleteMarkers       []DeleteMarkerEntry `xml:"DeleteMarker"`
	CommonPrefixes      []CommonPrefix      `xml:"CommonPrefixes"`
}

// decodeKey reverses encoding-type=url key encoding. Keys are encoded with
// query escaping on the wire (spaces become '+').
func decodeKey(key string, encoding EncodingType) (string, error) {
	if encoding != EncodingTypeURL {
		return key, nil
	}
	return url.QueryUnescape(key)
}

// DecodeKeys reverses encoding-type=url on all keys, prefixes and markers in
// the result. It is a no-op when the result carries no EncodingType.
func (r *ListBucketResultV2) DecodeKeys() error {
	if r.EncodingType != EncodingTypeURL {
		return nil
	}
	var err error
	for i := range r.Contents {
		if r.Contents[i].Key, err = decodeKey(r.Contents[i].Key, r.EncodingType); err != nil {
			return err
		}
	}
	for i := range r.CommonPrefixes {
		if r.CommonPrefixes[i].Prefix, err = decodeKey(r.CommonPrefixes[i].Prefix, r.EncodingType); err != nil {
			return err
		}
	}
	if r.Prefix, err = decodeKey(r.Prefix, r.EncodingType); err != nil {
		return err
	}
	if r.StartAfter, err = decodeKey(r.StartAfter, r.EncodingType); err != nil {
		return err
	}
	return nil
}

// DecodeKeys reverses encoding-type=url on all keys, prefixes and markers in
// the result. It is a no-op when the result carries no EncodingType.
func (r *ListBucketResultV1) DecodeKeys() error {
	if r.EncodingType != EncodingTypeURL {
		return nil
	}
	var err error
	for i := range r.Contents {
		if r.Contents[i].Key, err = decodeKey(r.Contents[i].Key, r.EncodingType); err != nil {
			return err
		}
	}
	for i := range r.CommonPrefixes {
		if r.CommonPrefixes[i].Prefix, err = decodeKey(r.CommonPrefixes[i].Prefix, r.EncodingType); err != nil {
			return err
		}
	}
	if r.Prefix, err = decodeKey(r.Prefix, r.EncodingType); err != nil {
		return err
	}
	if r.Marker, err = decodeKey(r.Marker, r.EncodingType); err != nil {
		return err
	}
	if r.NextMarker, err = decodeKey(r.NextMarker, r.EncodingType); err != nil {
		return err
	}
	return nil
}
