// Package lock models object locking: the bucket-level
// ObjectLockConfiguration with its default retention, per-object Retention
// documents, and legal hold status.
package lock
