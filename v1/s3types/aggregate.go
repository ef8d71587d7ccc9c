package s3types

import (
	"fmt"
	"sort"
	"strings"
)

// This file holds the aggregation logic that sits between paginated wire
// messages and the follow-up requests built from them: collected parts must
// form a gap-free, duplicate-free, ascending sequence before a multipart
// upload may be completed, and version listing pages must be merged without
// disturbing the (key, version) wire order.

// ValidatePartNumber reports whether n is a usable part number.
func ValidatePartNumber(n int) error {
	if n < MinPartNumber || n > MaxPartNumber {
		return fmt.Errorf("s3types: part number %d outside allowed range [%d,%d]",
			n, MinPartNumber, MaxPartNumber)
	}
	return nil
}

// TrimETag removes the surrounding double quotes services include on wire
// ETags. Quoting differs between implementations, so comparisons should
// always go through TrimETag.
func TrimETag(etag string) string {
	return strings.TrimSuffix(strings.TrimPrefix(etag, "\""), "\"")
}

// SortCompleteParts orders parts ascending by part number, in place.
func SortCompleteParts(parts []CompletePart) {
	sort.Slice(parts, func(i, j int) bool { return parts[i].PartNumber < parts[j].PartNumber })
}

// BuildCompleteMultipartUpload assembles a validated
// CompleteMultipartUpload request from collected parts.
//
// The parts may arrive in any order (concurrent uploaders finish out of
// order); the result is sorted ascending. The following conditions are
// rejected:
//   - no parts at all
//   - a part number outside [1,10000]
//   - a missing ETag
//   - duplicate part numbers
//   - gaps in the sequence (part numbers must be 1..N contiguous)
func BuildCompleteMultipartUpload(parts []CompletePart) (*CompleteMultipartUpload, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("s3types: cannot complete multipart upload with zero parts")
	}

	sorted := make([]CompletePart, len(parts))
	copy(sorted, parts)
	SortCompleteParts(sorted)

	for i, p := range sorted {
		if err := ValidatePartNumber(p.PartNumber); err != nil {
			return nil, err
		}
		if TrimETag(p.ETag) == "" {
			return nil, fmt.Errorf("s3types: part %d has an empty ETag", p.PartNumber)
		}
		if i > 0 && p.PartNumber == sorted[i-1].PartNumber {
			return nil, fmt.Errorf("s3types: duplicate part number %d", p.PartNumber)
		}
		// Contiguity: after sorting and dedupe-check, part i must be i+1.
		if p.PartNumber != i+1 {
			return nil, fmt.Errorf("s3types: part sequence has a gap: expected part %d, found %d",
				i+1, p.PartNumber)
		}
	}

	return &CompleteMultipartUpload{Parts: sorted}, nil
}

// CompletePartsFromListing converts ListParts entries into the request parts
// used to complete the upload.
func CompletePartsFromListing(parts []ObjectPart) []CompletePart {
	out := make([]CompletePart, 0, len(parts))
	for _, p := range parts {
		out = append(out, CompletePart{PartNumber: p.PartNumber, ETag: p.ETag})
	}
	return out
}

// TotalPartsSize sums the sizes of listed parts.
func TotalPartsSize(parts []ObjectPart) int64 {
	var total int64
	for _, p := range parts {
		total += p.Size
	}
	return total
}

// MergeListPartsPages folds follow-up ListParts pages into the first page,
// keeping parts sorted by part number and clearing the pagination fields.
// Pages must belong to the same upload.
func MergeListPartsPages(pages ...*ListPartsResult) (*ListPartsResult, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("s3types: no pages to merge")
	}
	merged := *pages[0]
	for _, page := range pages[1:] {
		if page.UploadID != merged.UploadID || page.Key != merged.Key || page.Bucket != merged.Bucket {
			return nil, fmt.Errorf("s3types: cannot merge parts pages from different uploads (%s/%s %s vs %s/%s %s)",
				merged.Bucket, merged.Key, merged.UploadID, page.Bucket, page.Key, page.UploadID)
		}
		merged.Parts = append(merged.Parts, page.Parts...)
	}
	sort.Slice(merged.Parts, func(i, j int) bool {
		return merged.Parts[i].PartNumber < merged.Parts[j].PartNumber
	})
	merged.IsTruncated = false
	merged.PartNumberMarker = 0
	merged.NextPartNumberMarker = 0
	return &merged, nil
}

// MergeVersionPages folds follow-up ListObjectVersions pages into the first
// page. Versions and delete markers keep their wire order (keys ascending,
// versions newest first within a key), which is already total across pages
// because the service paginates on the (KeyMarker, VersionIdMarker) pair.
func MergeVersionPages(pages ...*ListVersionsResult) (*ListVersionsResult, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("s3types: no pages to merge")
	}
	merged := *pages[0]
	for _, page := range pages[1:] {
		if page.Name != merged.Name {
			return nil, fmt.Errorf("s3types: cannot merge version pages from different buckets (%s vs %s)",
				merged.Name, page.Name)
		}
		merged.Versions = append(merged.Versions, page.Versions...)
		merged.DeleteMarkers = append(merged.DeleteMarkers, page.DeleteMarkers...)
		merged.CommonPrefixes = appendUniquePrefixes(merged.CommonPrefixes, page.CommonPrefixes)
	}
	merged.IsTruncated = false
	merged.NextKeyMarker = ""
	merged.NextVersionIDMarker = ""
	return &merged, nil
}

// appendUniquePrefixes appends prefixes not already present. Listings repeat
// a common prefix on the page boundary when a prefix group spans pages.
func appendUniquePrefixes(dst, src []CommonPrefix) []CommonPrefix {
	seen := make(map[string]struct{}, len(dst))
	for _, p := range dst {
		seen[p.Prefix] = struct{}{}
	}
	for _, p := range src {
		if _, ok := seen[p.Prefix]; !ok {
			dst = append(dst, p)
			seen[p.Prefix] = struct{}{}
		}
	}
	return dst
}
