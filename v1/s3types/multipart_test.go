package s3types

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestCompleteMultipartUpload_Marshal(t *testing.T) {
	req := CompleteMultipartUpload{
		Parts: []CompletePart{
			{PartNumber: 1, ETag: "\"etag1\""},
			{PartNumber: 2, ETag: "\"etag2\"", ChecksumSHA256: "sha"},
		},
	}
	data, err := xml.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	if !strings.HasPrefix(s, "<CompleteMultipartUpload") {
		t.Errorf("unexpected root element: %s", s)
	}
	if !strings.Contains(s, "<PartNumber>1</PartNumber>") {
		t.Errorf("missing part number: %s", s)
	}
	if strings.Contains(s, "ChecksumCRC32") {
		t.Errorf("empty checksum fields must be omitted: %s", s)
	}
	if !strings.Contains(s, "<ChecksumSHA256>sha</ChecksumSHA256>") {
		t.Errorf("missing checksum: %s", s)
	}
}

func TestInitiateMultipartUploadResult_Decode(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<InitiateMultipartUploadResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Bucket>media</Bucket>
  <Key>large.bin</Key>
  <UploadId>upload-123</UploadId>
</InitiateMultipartUploadResult>`

	var res InitiateMultipartUploadResult
	if err := xml.Unmarshal([]byte(body), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.UploadID != "upload-123" || res.Bucket != "media" || res.Key != "large.bin" {
		t.Errorf("unexpected decode: %+v", res)
	}
}

func TestListPartsResult_Decode(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<ListPartsResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Bucket>media</Bucket>
  <Key>large.bin</Key>
  <UploadId>upload-123</UploadId>
  <Initiator><ID>i</ID><DisplayName>init</DisplayName></Initiator>
  <Owner><ID>o</ID><DisplayName>own</DisplayName></Owner>
  <StorageClass>STANDARD</StorageClass>
  <PartNumberMarker>0</PartNumberMarker>
  <NextPartNumberMarker>2</NextPartNumberMarker>
  <MaxParts>2</MaxParts>
  <IsTruncated>true</IsTruncated>
  <Part>
    <PartNumber>1</PartNumber>
    <LastModified>2010-11-10T20:48:34.000Z</LastModified>
    <ETag>&quot;7778aef83f66abc1fa1e8477f296d394&quot;</ETag>
    <Size>10485760</Size>
  </Part>
  <Part>
    <PartNumber>2</PartNumber>
    <LastModified>2010-11-10T20:48:33.000Z</LastModified>
    <ETag>&quot;aaaa18db4cc2f85cedef654fccc4a4x8&quot;</ETag>
    <Size>10485760</Size>
  </Part>
</ListPartsResult>`

	var res ListPartsResult
	if err := xml.Unmarshal([]byte(body), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(res.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(res.Parts))
	}
	if !res.IsTruncated || res.NextPartNumberMarker != 2 {
		t.Error("pagination fields not decoded")
	}
	if res.Initiator.ID != "i" || res.Owner.ID != "o" {
		t.Error("initiator/owner not decoded")
	}
}

func TestListMultipartUploadsResult_Decode(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<ListMultipartUploadsResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Bucket>media</Bucket>
  <KeyMarker></KeyMarker>
  <UploadIdMarker></UploadIdMarker>
  <NextKeyMarker>big.bin</NextKeyMarker>
  <NextUploadIdMarker>upload-2</NextUploadIdMarker>
  <MaxUploads>1000</MaxUploads>
  <IsTruncated>false</IsTruncated>
  <Upload>
    <Key>big.bin</Key>
    <UploadId>upload-2</UploadId>
    <Initiator><ID>i</ID><DisplayName>init</DisplayName></Initiator>
    <Owner><ID>o</ID><DisplayName>own</DisplayName></Owner>
    <StorageClass>STANDARD</StorageClass>
    <Initiated>2010-11-10T20:48:33.000Z</Initiated>
  </Upload>
</ListMultipartUploadsResult>`

	var res ListMultipartUploadsResult
	if err := xml.Unmarshal([]byte(body), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(res.Uploads) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(res.Uploads))
	}
	up := res.Uploads[0]
	if up.UploadID != "upload-2" || up.Key != "big.bin" {
		t.Errorf("unexpected upload: %+v", up)
	}
	if up.Initiated.IsZero() {
		t.Error("initiated timestamp not decoded")
	}
}
