// Package tags models the S3 tagging messages used on buckets and objects.
//
// Tag sets travel in two formats: the <Tagging> XML document used by the
// PUT/GET tagging calls, and the URL-encoded form used in the
// X-Amz-Tagging request header. Both round-trip through the TagSet type:
//
//	set, err := tags.New(map[string]string{"project": "alpha"}, true)
//	if err != nil {
//	    return err
//	}
//	header := set.String()          // "project=alpha"
//	body, err := xml.Marshal(set)   // <Tagging><TagSet>...</TagSet></Tagging>
//
// Validation follows the protocol limits: keys are 1-128 characters, values
// up to 256 characters, keys must be unique, and a set holds at most 10 tags
// on objects or 50 on buckets.
package tags
