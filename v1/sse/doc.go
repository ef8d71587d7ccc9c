// Package sse models server-side encryption: the per-request header sets
// (SSE-C, SSE-KMS, SSE-S3) and the bucket-level default encryption
// configuration document.
//
// Request-scoped encryption implements the ServerSide interface; callers
// apply it to an outgoing header map:
//
//	enc, err := sse.NewSSEC(key) // key is exactly 32 bytes
//	if err != nil {
//	    return err
//	}
//	headers := map[string]string{}
//	enc.Marshal(headers)
//
// SSE-C copy-source variants reuse the same key material under the
// x-amz-copy-source-* header names via CopySSEC.
package sse
