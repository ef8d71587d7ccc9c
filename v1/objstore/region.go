package objstore

import (
	"context"
	"sync"

	"github.com/stratal/objstore/v1/s3types"
)

// regionCache stores resolved bucket regions. Safe for concurrent use.
type regionCache struct {
	mu      sync.RWMutex
	regions map[string]string
}

func newRegionCache() *regionCache {
	return &regionCache{regions: map[string]string{}}
}

func (rc *regionCache) get(bucket string) (string, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	region, ok := rc.regions[bucket]
	return region, ok
}

func (rc *regionCache) set(bucket, region string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.regions[bucket] = region
}

func (rc *regionCache) delete(bucket string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	delete(rc.regions, bucket)
}

// GetBucketRegion resolves the region a bucket lives in. Results are
// cached; concurrent lookups for the same bucket are collapsed into a
// single location call.
func (c *ObjstoreClient) GetBucketRegion(ctx context.Context, bucket string) (string, error) {
	if region, ok := c.regionCache.get(bucket); ok {
		return region, nil
	}

	result, err, _ := c.regionGroup.Do(bucket, func() (interface{}, error) {
		// Re-check under the flight; a previous caller may have stored it.
		if region, ok := c.regionCache.get(bucket); ok {
			return region, nil
		}
		req := newRequest("GET", bucket, "")
		req.Query.Set("location", "")

		var location s3types.LocationConstraint
		if err := c.executeXML(ctx, "get_bucket_region", req, &location); err != nil {
			return "", err
		}
		region := location.Location
		if region == "" {
			// Legacy servers answer with an empty constraint for us-east-1.
			region = "us-east-1"
		}
		c.regionCache.set(bucket, region)
		return region, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// InvalidateBucketRegion drops a cached region, forcing the next lookup to
// hit the server. Useful after a bucket is recreated elsewhere.
func (c *ObjstoreClient) InvalidateBucketRegion(bucket string) {
	c.regionCache.delete(bucket)
}
