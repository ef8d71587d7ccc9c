package s3types

import (
	"strings"
	"testing"
)

func TestBuildCompleteMultipartUpload_SortsParts(t *testing.T) {
	parts := []CompletePart{
		{PartNumber: 3, ETag: "\"c\""},
		{PartNumber: 1, ETag: "\"a\""},
		{PartNumber: 2, ETag: "\"b\""},
	}
	req, err := BuildCompleteMultipartUpload(parts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, p := range req.Parts {
		if p.PartNumber != i+1 {
			t.Errorf("position %d: expected part %d, got %d", i, i+1, p.PartNumber)
		}
	}
	// Input must not be reordered.
	if parts[0].PartNumber != 3 {
		t.Error("input slice was mutated")
	}
}

func TestBuildCompleteMultipartUpload_RejectsEmpty(t *testing.T) {
	if _, err := BuildCompleteMultipartUpload(nil); err == nil {
		t.Fatal("expected error for zero parts")
	}
}

func TestBuildCompleteMultipartUpload_RejectsGap(t *testing.T) {
	parts := []CompletePart{
		{PartNumber: 1, ETag: "a"},
		{PartNumber: 3, ETag: "c"},
	}
	_, err := BuildCompleteMultipartUpload(parts)
	if err == nil {
		t.Fatal("expected gap error")
	}
	if !strings.Contains(err.Error(), "gap") {
		t.Errorf("expected gap error, got %v", err)
	}
}

func TestBuildCompleteMultipartUpload_RejectsDuplicate(t *testing.T) {
	parts := []CompletePart{
		{PartNumber: 1, ETag: "a"},
		{PartNumber: 1, ETag: "a2"},
		{PartNumber: 2, ETag: "b"},
	}
	if _, err := BuildCompleteMultipartUpload(parts); err == nil {
		t.Fatal("expected duplicate error")
	}
}

func TestBuildCompleteMultipartUpload_RejectsBadPartNumber(t *testing.T) {
	for _, n := range []int{0, -1, MaxPartNumber + 1} {
		if _, err := BuildCompleteMultipartUpload([]CompletePart{{PartNumber: n, ETag: "a"}}); err == nil {
			t.Errorf("expected error for part number %d", n)
		}
	}
}

func TestBuildCompleteMultipartUpload_RejectsEmptyETag(t *testing.T) {
	if _, err := BuildCompleteMultipartUpload([]CompletePart{{PartNumber: 1, ETag: "\"\""}}); err == nil {
		t.Fatal("expected error for empty etag")
	}
}

func TestTrimETag(t *testing.T) {
	cases := map[string]string{
		"\"abc\"": "abc",
		"abc":     "abc",
		"":        "",
	}
	for in, want := range cases {
		if got := TrimETag(in); got != want {
			t.Errorf("TrimETag(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMergeListPartsPages(t *testing.T) {
	page1 := &ListPartsResult{
		Bucket: "b", Key: "k", UploadID: "u",
		Parts:       []ObjectPart{{PartNumber: 2, Size: 10}, {PartNumber: 1, Size: 5}},
		IsTruncated: true, NextPartNumberMarker: 2,
	}
	page2 := &ListPartsResult{
		Bucket: "b", Key: "k", UploadID: "u",
		Parts: []ObjectPart{{PartNumber: 3, Size: 7}},
	}

	merged, err := MergeListPartsPages(page1, page2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(merged.Parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(merged.Parts))
	}
	for i, p := range merged.Parts {
		if p.PartNumber != i+1 {
			t.Errorf("position %d: expected part %d, got %d", i, i+1, p.PartNumber)
		}
	}
	if merged.IsTruncated {
		t.Error("merged result must not be truncated")
	}
	if got := TotalPartsSize(merged.Parts); got != 22 {
		t.Errorf("expected total size 22, got %d", got)
	}
}

func TestMergeListPartsPages_RejectsMixedUploads(t *testing.T) {
	a := &ListPartsResult{Bucket: "b", Key: "k", UploadID: "u1"}
	b := &ListPartsResult{Bucket: "b", Key: "k", UploadID: "u2"}
	if _, err := MergeListPartsPages(a, b); err == nil {
		t.Fatal("expected error for mixed uploads")
	}
}

func TestMergeVersionPages(t *testing.T) {
	page1 := &ListVersionsResult{
		Name:        "b",
		Versions:    []ObjectVersion{{Key: "a", VersionID: "2", IsLatest: true}},
		IsTruncated: true, NextKeyMarker: "a", NextVersionIDMarker: "2",
		CommonPrefixes: []CommonPrefix{{Prefix: "dir/"}},
	}
	page2 := &ListVersionsResult{
		Name:           "b",
		Versions:       []ObjectVersion{{Key: "a", VersionID: "1"}},
		DeleteMarkers:  []DeleteMarkerEntry{{Key: "z", VersionID: "9", IsLatest: true}},
		CommonPrefixes: []CommonPrefix{{Prefix: "dir/"}, {Prefix: "dir2/"}},
	}

	merged, err := MergeVersionPages(page1, page2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(merged.Versions) != 2 || len(merged.DeleteMarkers) != 1 {
		t.Fatalf("unexpected merged sizes: %d versions, %d markers",
			len(merged.Versions), len(merged.DeleteMarkers))
	}
	if merged.Versions[0].VersionID != "2" || merged.Versions[1].VersionID != "1" {
		t.Error("version order was not preserved")
	}
	if len(merged.CommonPrefixes) != 2 {
		t.Errorf("expected deduplicated prefixes, got %v", merged.CommonPrefixes)
	}
	if merged.IsTruncated || merged.NextKeyMarker != "" {
		t.Error("pagination fields were not cleared")
	}
}

func TestCompletePartsFromListing(t *testing.T) {
	parts := CompletePartsFromListing([]ObjectPart{
		{PartNumber: 1, ETag: "\"a\"", Size: 5},
		{PartNumber: 2, ETag: "\"b\"", Size: 6},
	})
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if parts[1].ETag != "\"b\"" || parts[1].PartNumber != 2 {
		t.Errorf("unexpected part: %+v", parts[1])
	}
}
