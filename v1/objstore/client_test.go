package objstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stratal/objstore/v1/s3types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport replays canned responses and records the requests it saw.
type fakeTransport struct {
	mu       sync.Mutex
	requests []*Request
	handler  func(req *Request) (*Response, error)
}

func (f *fakeTransport) Do(_ context.Context, req *Request) (*Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.handler(req)
}

func (f *fakeTransport) last() *Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func xmlResponse(status int, body string) (*Response, error) {
	return &Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/xml"},
		Body:       io.NopCloser(strings.NewReader(body)),
	}, nil
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Connection.Endpoint = "storage.test:9000"
	return cfg
}

func newTestClient(t *testing.T, handler func(req *Request) (*Response, error)) (*ObjstoreClient, *fakeTransport) {
	t.Helper()
	transport := &fakeTransport{handler: handler}
	client, err := NewClient(testConfig(), transport)
	require.NoError(t, err)
	return client, transport
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(testConfig(), nil)
	assert.ErrorIs(t, err, ErrNilTransport)

	cfg := testConfig()
	cfg.Connection.Endpoint = ""
	_, err = NewClient(cfg, &fakeTransport{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestListObjectsV2(t *testing.T) {
	body := `<ListBucketResult>
  <Name>photos</Name>
  <KeyCount>1</KeyCount>
  <IsTruncated>false</IsTruncated>
  <EncodingType>url</EncodingType>
  <Contents>
    <Key>2026%2Fcat+1.jpg</Key>
    <LastModified>2026-08-23T10:00:00.000Z</LastModified>
    <ETag>&quot;abc&quot;</ETag>
    <Size>1024</Size>
    <StorageClass>STANDARD</StorageClass>
  </Contents>
</ListBucketResult>`

	client, transport := newTestClient(t, func(*Request) (*Response, error) {
		return xmlResponse(200, body)
	})

	result, err := client.ListObjectsV2(context.Background(), "photos", "tok-1", ListObjectsOptions{
		Prefix:  "2026/",
		MaxKeys: 100,
	})
	require.NoError(t, err)

	req := transport.last()
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "photos", req.Bucket)
	assert.Equal(t, "2", req.Query.Get("list-type"))
	assert.Equal(t, "url", req.Query.Get("encoding-type"))
	assert.Equal(t, "2026/", req.Query.Get("prefix"))
	assert.Equal(t, "100", req.Query.Get("max-keys"))
	assert.Equal(t, "tok-1", req.Query.Get("continuation-token"))

	require.Len(t, result.Contents, 1)
	assert.Equal(t, "2026/cat 1.jpg", result.Contents[0].Key)
	assert.Equal(t, int64(1024), result.Contents[0].Size)
}

func TestStreamObjects_Paginates(t *testing.T) {
	pages := []string{
		`<ListBucketResult><Name>b</Name><IsTruncated>true</IsTruncated>
		 <NextContinuationToken>tok-2</NextContinuationToken>
		 <Contents><Key>a.txt</Key><Size>1</Size></Contents></ListBucketResult>`,
		`<ListBucketResult><Name>b</Name><IsTruncated>false</IsTruncated>
		 <Contents><Key>b.txt</Key><Size>2</Size></Contents></ListBucketResult>`,
	}
	var call int32
	client, transport := newTestClient(t, func(*Request) (*Response, error) {
		n := atomic.AddInt32(&call, 1)
		return xmlResponse(200, pages[n-1])
	})

	entries, errs := client.StreamObjects(context.Background(), "b", ListObjectsOptions{})
	var keys []string
	for entry := range entries {
		keys = append(keys, entry.Key)
	}
	require.NoError(t, <-errs)
	assert.Equal(t, []string{"a.txt", "b.txt"}, keys)

	transport.mu.Lock()
	defer transport.mu.Unlock()
	require.Len(t, transport.requests, 2)
	assert.Equal(t, "tok-2", transport.requests[1].Query.Get("continuation-token"))
}

func TestErrorMapping(t *testing.T) {
	client, _ := newTestClient(t, func(*Request) (*Response, error) {
		return xmlResponse(404, `<Error><Code>NoSuchBucket</Code><Message>bucket missing</Message><BucketName>ghost</BucketName></Error>`)
	})

	_, err := client.ListObjectsV2(context.Background(), "ghost", "", ListObjectsOptions{})
	require.Error(t, err)
	assert.True(t, IsBucketNotFoundError(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "ghost", apiErr.Response.BucketName)
	assert.Equal(t, 404, apiErr.Response.StatusCode)
}

func TestBucketExists(t *testing.T) {
	status := 200
	client, _ := newTestClient(t, func(*Request) (*Response, error) {
		return xmlResponse(status, "")
	})

	exists, err := client.BucketExists(context.Background(), "b")
	require.NoError(t, err)
	assert.True(t, exists)

	status = 404
	exists, err = client.BucketExists(context.Background(), "b")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRemoveObjects(t *testing.T) {
	client, transport := newTestClient(t, func(*Request) (*Response, error) {
		return xmlResponse(200, `<DeleteResult>
  <Deleted><Key>a.txt</Key></Deleted>
  <Error><Key>b.txt</Key><Code>AccessDenied</Code><Message>denied</Message></Error>
</DeleteResult>`)
	})

	result, err := client.RemoveObjects(context.Background(), "b", []s3types.ObjectToDelete{
		{Key: "a.txt"}, {Key: "b.txt"},
	}, true)
	require.NoError(t, err)
	assert.Len(t, result.Deleted, 1)
	assert.Len(t, result.Errors, 1)

	req := transport.last()
	assert.Equal(t, "POST", req.Method)
	_, hasDelete := req.Query["delete"]
	assert.True(t, hasDelete)

	payload, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "<Quiet>true</Quiet>")
	assert.Contains(t, string(payload), "<Key>a.txt</Key>")
}

func TestRemoveObjects_TooMany(t *testing.T) {
	client, _ := newTestClient(t, func(*Request) (*Response, error) {
		t.Fatal("transport must not be called")
		return nil, nil
	})
	objects := make([]s3types.ObjectToDelete, 1001)
	for i := range objects {
		objects[i] = s3types.ObjectToDelete{Key: uuid.NewString()}
	}
	_, err := client.RemoveObjects(context.Background(), "b", objects, false)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGetBucketRegion_CachesAndCollapses(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(*Request) (*Response, error) {
		atomic.AddInt32(&calls, 1)
		return xmlResponse(200, `<LocationConstraint>eu-central-1</LocationConstraint>`)
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			region, err := client.GetBucketRegion(context.Background(), "b")
			assert.NoError(t, err)
			assert.Equal(t, "eu-central-1", region)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// Cached afterwards.
	region, err := client.GetBucketRegion(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", region)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetBucketRegion_EmptyMeansUSEast1(t *testing.T) {
	client, _ := newTestClient(t, func(*Request) (*Response, error) {
		return xmlResponse(200, `<LocationConstraint></LocationConstraint>`)
	})
	region, err := client.GetBucketRegion(context.Background(), "legacy")
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", region)
}

func TestCompleteMultipartUpload(t *testing.T) {
	client, transport := newTestClient(t, func(*Request) (*Response, error) {
		return xmlResponse(200, `<CompleteMultipartUploadResult>
  <Bucket>b</Bucket><Key>big.bin</Key><ETag>"final-etag"</ETag>
</CompleteMultipartUploadResult>`)
	})

	// Parts arrive unordered; the client sorts them.
	parts := []s3types.CompletePart{
		{PartNumber: 2, ETag: "e2"},
		{PartNumber: 1, ETag: "e1"},
	}
	result, err := client.CompleteMultipartUpload(context.Background(), "b", "big.bin", "upl-1", parts)
	require.NoError(t, err)
	assert.Equal(t, `"final-etag"`, result.ETag)

	req := transport.last()
	assert.Equal(t, "upl-1", req.Query.Get("uploadId"))
	payload, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	first := strings.Index(string(payload), "<PartNumber>1</PartNumber>")
	second := strings.Index(string(payload), "<PartNumber>2</PartNumber>")
	assert.Greater(t, second, first)
}

func TestCompleteMultipartUpload_RejectsGaps(t *testing.T) {
	client, _ := newTestClient(t, func(*Request) (*Response, error) {
		t.Fatal("transport must not be called")
		return nil, nil
	})
	parts := []s3types.CompletePart{
		{PartNumber: 1, ETag: "e1"},
		{PartNumber: 3, ETag: "e3"},
	}
	_, err := client.CompleteMultipartUpload(context.Background(), "b", "k", "u", parts)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMakeBucket_RegionBody(t *testing.T) {
	client, transport := newTestClient(t, func(*Request) (*Response, error) {
		return xmlResponse(200, "")
	})

	err := client.MakeBucket(context.Background(), "b", MakeBucketOptions{Region: "eu-west-1", ObjectLocking: true})
	require.NoError(t, err)

	req := transport.last()
	assert.Equal(t, "true", req.Headers["X-Amz-Bucket-Object-Lock-Enabled"])
	payload, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "<LocationConstraint>eu-west-1</LocationConstraint>")

	// us-east-1 must be sent without a body.
	err = client.MakeBucket(context.Background(), "b2", MakeBucketOptions{Region: "us-east-1"})
	require.NoError(t, err)
	assert.Nil(t, transport.last().Body)
}

func TestValidatePartSize(t *testing.T) {
	err := ValidatePartSize(4<<20, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4.0 MiB")
	assert.Contains(t, err.Error(), "5.0 MiB")

	assert.NoError(t, ValidatePartSize(4<<20, true))
	assert.NoError(t, ValidatePartSize(5<<20, false))
	assert.ErrorIs(t, ValidatePartSize(6<<30, false), ErrInvalidArgument)

	// Negative sizes are rejected even for the last part, which is only
	// exempt from the minimum.
	assert.ErrorIs(t, ValidatePartSize(-1, true), ErrInvalidArgument)
	assert.ErrorIs(t, ValidatePartSize(-1, false), ErrInvalidArgument)
}

func TestOptimalPartSize(t *testing.T) {
	size, parts, err := OptimalPartSize(100 << 20) // 100 MiB
	require.NoError(t, err)
	assert.Equal(t, int64(5<<20), size)
	assert.Equal(t, 20, parts)

	// A very large object must grow the part size to stay under 10k parts.
	size, parts, err = OptimalPartSize(1 << 40) // 1 TiB
	require.NoError(t, err)
	assert.LessOrEqual(t, parts, s3types.MaxPartNumber)
	assert.GreaterOrEqual(t, size, int64(5<<20))

	_, _, err = OptimalPartSize(s3types.MaxObjectSize + 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5.0 TiB")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "objstore.yaml")
	content := `connection:
  endpoint: storage.test:9000
  region: eu-central-1
  bucket: media
  useSSL: false
  virtualHostStyle: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "storage.test:9000", cfg.Connection.Endpoint)
	assert.Equal(t, "eu-central-1", cfg.Connection.Region)
	assert.Equal(t, "media", cfg.Connection.Bucket)
	assert.False(t, cfg.Connection.UseSSL)
	assert.True(t, cfg.Connection.VirtualHostStyle)
}

func TestLoadConfig_MissingEndpoint(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "objstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte("connection:\n  region: eu-central-1\n"), 0o600))

	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCopyObject_EncodesSource(t *testing.T) {
	client, transport := newTestClient(t, func(*Request) (*Response, error) {
		return xmlResponse(200, `<CopyObjectResult><ETag>"abc"</ETag></CopyObjectResult>`)
	})

	// Spaces, "?" and non-ASCII runes are legal in keys but not in a raw
	// header value; a bare "?" would also collide with the versionId
	// separator.
	_, err := client.CopyObject(context.Background(),
		"src", "dir/a b?.txt", "dst", "k",
		CopyObjectOptions{SourceVersionID: "v1"})
	require.NoError(t, err)
	assert.Equal(t, "/src/dir/a%20b%3F.txt?versionId=v1",
		transport.last().Headers["X-Amz-Copy-Source"])

	_, err = client.CopyObject(context.Background(),
		"src", "bilder/über#1.png", "dst", "k", CopyObjectOptions{})
	require.NoError(t, err)
	assert.Equal(t, "/src/bilder/%C3%BCber%231.png",
		transport.last().Headers["X-Amz-Copy-Source"])
}

func TestTransportError_Propagates(t *testing.T) {
	wantErr := fmt.Errorf("connection refused")
	client, _ := newTestClient(t, func(*Request) (*Response, error) {
		return nil, wantErr
	})
	_, err := client.ListBuckets(context.Background())
	assert.ErrorIs(t, err, wantErr)
}
