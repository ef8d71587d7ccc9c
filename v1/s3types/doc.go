// Package s3types defines the core wire messages of the S3-compatible REST
// protocol: the XML request and response bodies exchanged for bucket
// listing, object listing (V1, V2 and versioned), multi-object delete,
// copy, and multipart upload operations, together with the enums and
// date-format converters those messages depend on.
//
// The structs in this package are marshalling DTOs. Field names and XML tags
// follow the S3 protocol exactly; do not rename structs that carry `xml`
// tags, because the struct name (or its XMLName) becomes the top-level
// element that S3-compatible services require.
//
// # Round-tripping
//
// All messages marshal and unmarshal with encoding/xml:
//
//	var res s3types.ListBucketResultV2
//	if err := xml.Unmarshal(body, &res); err != nil {
//	    return err
//	}
//
// Timestamps on the wire use ISO8601 with millisecond precision
// (2006-01-02T15:04:05.000Z); parsing is tolerant of the variants used by
// non-AWS implementations. See ISO8601Time.
//
// # Aggregation helpers
//
// Listing and multipart messages are paginated on the wire. The helpers in
// aggregate.go validate and combine pages and part sets (ordering, gap and
// duplicate detection) before they are used to build follow-up requests such
// as CompleteMultipartUpload.
package s3types
