// Package lifecycle models the bucket lifecycle configuration document
// (PutBucketLifecycleConfiguration / GetBucketLifecycleConfiguration).
//
// A Configuration holds up to 1000 rules; each rule scopes itself with a
// Filter and declares at least one action: Expiration, Transition, their
// noncurrent-version counterparts, or AbortIncompleteMultipartUpload.
//
//	cfg := lifecycle.Configuration{
//	    Rules: []lifecycle.Rule{{
//	        ID:     "expire-tmp",
//	        Status: lifecycle.StatusEnabled,
//	        Filter: lifecycle.Filter{Prefix: "tmp/"},
//	        Expiration: lifecycle.Expiration{Days: 7},
//	    }},
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	body, err := xml.Marshal(&cfg)
//
// Validation enforces the protocol's mutual-exclusivity rules: an
// Expiration carries exactly one of Date, Days or
// ExpiredObjectDeleteMarker; a Filter carries at most one of Prefix, Tag or
// And; expiration dates must fall on midnight UTC.
//
// Empty sub-elements are suppressed on marshal through IsNull-style
// emptiness checks, except the mandatory <Filter> element which is always
// emitted.
package lifecycle
