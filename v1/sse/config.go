package sse

import (
	"encoding/xml"
	"errors"
)

// Algorithm is the default-encryption algorithm enum.
type Algorithm string

// Default-encryption algorithms.
const (
	AlgorithmAES256 Algorithm = "AES256"
	AlgorithmKMS    Algorithm = "aws:kms"
)

// ErrInvalidAlgorithm is returned for unknown default-encryption
// algorithms.
var ErrInvalidAlgorithm = errors.New("sse: algorithm must be AES256 or aws:kms")

// ApplyServerSideEncryptionByDefault is the per-rule default applied to
// new objects.
type ApplyServerSideEncryptionByDefault struct {
	SSEAlgorithm   Algorithm `xml:"SSEAlgorithm"`
	KMSMasterKeyID string    `xml:"KMSMasterKeyID,omitempty"`
}

// ConfigRule wraps one default-encryption rule.
type ConfigRule struct {
	Apply ApplyServerSideEncryptionByDefault `xml:"ApplyServerSideEncryptionByDefault"`
}

// Configuration is the <ServerSideEncryptionConfiguration> document used
// by the bucket-encryption calls.
type Configuration struct {
	XMLName xml.Name     `xml:"ServerSideEncryptionConfiguration"`
	Xmlns   string       `xml:"xmlns,attr,omitempty"`
	Rules   []ConfigRule `xml:"Rule"`
}

// NewConfigurationSSES3 returns a bucket default of server-managed AES256.
func NewConfigurationSSES3() *Configuration {
	return &Configuration{
		Rules: []ConfigRule{
			{Apply: ApplyServerSideEncryptionByDefault{SSEAlgorithm: AlgorithmAES256}},
		},
	}
}

// NewConfigurationSSEKMS returns a bucket default of KMS encryption with
// the given master key.
func NewConfigurationSSEKMS(kmsMasterKey string) *Configuration {
	return &Configuration{
		Rules: []ConfigRule{
			{Apply: ApplyServerSideEncryptionByDefault{
				SSEAlgorithm:   AlgorithmKMS,
				KMSMasterKeyID: kmsMasterKey,
			}},
		},
	}
}

// Validate checks the algorithm of every rule.
func (c *Configuration) Validate() error {
	for _, r := range c.Rules {
		switch r.Apply.SSEAlgorithm {
		case AlgorithmAES256, AlgorithmKMS:
		default:
			return ErrInvalidAlgorithm
		}
	}
	return nil
}
