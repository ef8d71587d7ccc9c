package sse

import (
	"crypto/md5"
	"encoding/base64"
	"errors"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Type names an encryption scheme.
type Type string

// Encryption schemes.
const (
	TypeC   Type = "SSE-C"
	TypeKMS Type = "SSE-KMS"
	TypeS3  Type = "SSE-S3"
)

// Header names used by the schemes.
const (
	headerAlgorithm   = "X-Amz-Server-Side-Encryption"
	headerKMSKeyID    = "X-Amz-Server-Side-Encryption-Aws-Kms-Key-Id"
	headerKMSContext  = "X-Amz-Server-Side-Encryption-Context"
	headerCAlgorithm  = "X-Amz-Server-Side-Encryption-Customer-Algorithm"
	headerCKey        = "X-Amz-Server-Side-Encryption-Customer-Key"
	headerCKeyMD5     = "X-Amz-Server-Side-Encryption-Customer-Key-Md5"
	headerCopyCPrefix = "X-Amz-Copy-Source-Server-Side-Encryption-Customer-"
)

// ErrInvalidCustomerKey is returned when an SSE-C key is not exactly 32
// bytes.
var ErrInvalidCustomerKey = errors.New("sse: customer key must be exactly 32 bytes")

// ServerSide is a request-scoped encryption setting. Marshal writes the
// scheme's headers into the outgoing header map.
type ServerSide interface {
	Type() Type
	Marshal(headers map[string]string)
}

// ssec is customer-provided key encryption for object operations.
type ssec struct {
	key [32]byte
}

// NewSSEC returns SSE-C encryption using the given 256-bit key.
func NewSSEC(key []byte) (ServerSide, error) {
	if len(key) != 32 {
		return nil, ErrInvalidCustomerKey
	}
	s := &ssec{}
	copy(s.key[:], key)
	return s, nil
}

func (s *ssec) Type() Type { return TypeC }

func (s *ssec) Marshal(headers map[string]string) {
	keyMD5 := md5.Sum(s.key[:])
	headers[headerCAlgorithm] = "AES256"
	headers[headerCKey] = base64.StdEncoding.EncodeToString(s.key[:])
	headers[headerCKeyMD5] = base64.StdEncoding.EncodeToString(keyMD5[:])
}

// copySSEC is SSE-C key material applied to the copy source of a copy
// operation.
type copySSEC struct {
	inner *ssec
}

// CopySSEC converts an SSE-C setting into its copy-source form. Passing a
// non-SSE-C setting returns it unchanged.
func CopySSEC(s ServerSide) ServerSide {
	if c, ok := s.(*ssec); ok {
		return &copySSEC{inner: c}
	}
	return s
}

func (s *copySSEC) Type() Type { return TypeC }

func (s *copySSEC) Marshal(headers map[string]string) {
	keyMD5 := md5.Sum(s.inner.key[:])
	headers[headerCopyCPrefix+"Algorithm"] = "AES256"
	headers[headerCopyCPrefix+"Key"] = base64.StdEncoding.EncodeToString(s.inner.key[:])
	headers[headerCopyCPrefix+"Key-Md5"] = base64.StdEncoding.EncodeToString(keyMD5[:])
}

// ssekms is key-management-service encryption with an optional encryption
// context.
type ssekms struct {
	keyID      string
	context    map[string]string
	hasContext bool
}

// NewSSEKMS returns SSE-KMS encryption. keyID may be empty to use the
// account default key; context is an optional encryption context sent as
// JSON.
func NewSSEKMS(keyID string, context map[string]string) (ServerSide, error) {
	return &ssekms{keyID: keyID, context: context, hasContext: len(context) > 0}, nil
}

func (s *ssekms) Type() Type { return TypeKMS }

func (s *ssekms) Marshal(headers map[string]string) {
	headers[headerAlgorithm] = "aws:kms"
	if s.keyID != "" {
		headers[headerKMSKeyID] = s.keyID
	}
	if s.hasContext {
		data, err := json.Marshal(s.context)
		if err == nil {
			headers[headerKMSContext] = base64.StdEncoding.EncodeToString(data)
		}
	}
}

// sses3 is server-managed AES256 encryption.
type sses3 struct{}

// NewSSE returns SSE-S3 encryption.
func NewSSE() ServerSide { return sses3{} }

func (sses3) Type() Type { return TypeS3 }

func (sses3) Marshal(headers map[string]string) {
	headers[headerAlgorithm] = "AES256"
}
