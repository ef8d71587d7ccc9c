// Package replication models the bucket replication configuration document
// and provides rule-management operations on top of it.
//
// A Config carries the replication Role ARN and an ordered set of rules.
// Rules are added, edited and removed through Options so callers never
// hand-assemble the XML:
//
//	var cfg replication.Config
//	err := cfg.AddRule(replication.Options{
//	    ID:           "mirror-prod",
//	    Priority:     "1",
//	    Prefix:       "prod/",
//	    DestBucket:   "arn:aws:s3:::prod-mirror",
//	    StorageClass: "STANDARD_IA",
//	})
//
// AddRule and EditRule enforce the server-side invariants locally: rule IDs
// and priorities must be unique, the destination must be a bucket ARN, and
// tag filters obey the usual key/value limits.
package replication
