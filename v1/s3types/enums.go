package s3types

import "fmt"

// Namespace is the XML namespace declared on S3 document roots.
const Namespace = "http://s3.amazonaws.com/doc/2006-03-01/"

// StorageClass identifies the storage tier of an object.
type StorageClass string

// Storage classes understood by S3-compatible services.
const (
	StorageClassStandard           StorageClass = "STANDARD"
	StorageClassReducedRedundancy  StorageClass = "REDUCED_REDUNDANCY"
	StorageClassStandardIA         StorageClass = "STANDARD_IA"
	StorageClassOnezoneIA          StorageClass = "ONEZONE_IA"
	StorageClassIntelligentTiering StorageClass = "INTELLIGENT_TIERING"
	StorageClassGlacier            StorageClass = "GLACIER"
	StorageClassGlacierIR          StorageClass = "GLACIER_IR"
	StorageClassDeepArchive        StorageClass = "DEEP_ARCHIVE"
)

// ParseStorageClass converts a wire value into a StorageClass.
func ParseStorageClass(s string) (StorageClass, error) {
	switch sc := StorageClass(s); sc {
	case StorageClassStandard, StorageClassReducedRedundancy, StorageClassStandardIA,
		StorageClassOnezoneIA, StorageClassIntelligentTiering, StorageClassGlacier,
		StorageClassGlacierIR, StorageClassDeepArchive:
		return sc, nil
	}
	return "", fmt.Errorf("s3types: unknown storage class %q", s)
}

// Permission is the access granted by an ACL grant.
type Permission string

// ACL permissions.
const (
	PermissionRead        Permission = "READ"
	PermissionWrite       Permission = "WRITE"
	PermissionReadACP     Permission = "READ_ACP"
	PermissionWriteACP    Permission = "WRITE_ACP"
	PermissionFullControl Permission = "FULL_CONTROL"
)

// IsValid reports whether the permission is one of the protocol values.
func (p Permission) IsValid() bool {
	switch p {
	case PermissionRead, PermissionWrite, PermissionReadACP, PermissionWriteACP, PermissionFullControl:
		return true
	}
	return false
}

// CannedACL is a predefined grant set applied via the x-amz-acl header.
type CannedACL string

// Canned ACLs.
const (
	CannedACLPrivate                CannedACL = "private"
	CannedACLPublicRead             CannedACL = "public-read"
	CannedACLPublicReadWrite        CannedACL = "public-read-write"
	CannedACLAuthenticatedRead      CannedACL = "authenticated-read"
	CannedACLAWSExecRead            CannedACL = "aws-exec-read"
	CannedACLBucketOwnerRead        CannedACL = "bucket-owner-read"
	CannedACLBucketOwnerFullControl CannedACL = "bucket-owner-full-control"
	CannedACLLogDeliveryWrite       CannedACL = "log-delivery-write"
)

// IsValid reports whether the canned ACL is one of the protocol values.
func (a CannedACL) IsValid() bool {
	switch a {
	case CannedACLPrivate, CannedACLPublicRead, CannedACLPublicReadWrite,
		CannedACLAuthenticatedRead, CannedACLAWSExecRead, CannedACLBucketOwnerRead,
		CannedACLBucketOwnerFullControl, CannedACLLogDeliveryWrite:
		return true
	}
	return false
}

// GranteeType is the xsi:type of an ACL grantee.
type GranteeType string

// Grantee types.
const (
	GranteeCanonicalUser GranteeType = "CanonicalUser"
	GranteeAmazonUser    GranteeType = "AmazonCustomerByEmail"
	GranteeGroup         GranteeType = "Group"
)

// MetadataDirective controls metadata handling during CopyObject.
type MetadataDirective string

const (
	// MetadataDirectiveCopy copies source object metadata.
	MetadataDirectiveCopy MetadataDirective = "COPY"

	// MetadataDirectiveReplace replaces source metadata with the metadata
	// supplied on the copy request.
	MetadataDirectiveReplace MetadataDirective = "REPLACE"
)

// ChecksumAlgorithm identifies the additional checksum attached to an
// object or part.
type ChecksumAlgorithm string

// Checksum algorithms.
const (
	ChecksumCRC32     ChecksumAlgorithm = "CRC32"
	ChecksumCRC32C    ChecksumAlgorithm = "CRC32C"
	ChecksumCRC64NVME ChecksumAlgorithm = "CRC64NVME"
	ChecksumSHA1      ChecksumAlgorithm = "SHA1"
	ChecksumSHA256    ChecksumAlgorithm = "SHA256"
)

// ParseChecksumAlgorithm converts a wire value into a ChecksumAlgorithm.
func ParseChecksumAlgorithm(s string) (ChecksumAlgorithm, error) {
	switch a := ChecksumAlgorithm(s); a {
	case ChecksumCRC32, ChecksumCRC32C, ChecksumCRC64NVME, ChecksumSHA1, ChecksumSHA256:
		return a, nil
	}
	return "", fmt.Errorf("s3types: unknown checksum algorithm %q", s)
}

// EncodingType is the key-encoding requested on listing calls.
type EncodingType string

// EncodingTypeURL asks the service to URL-encode keys in listing responses
// so keys containing XML-hostile characters survive the transport.
const EncodingTypeURL EncodingType = "url"

// VersioningStatus is the state of bucket versioning.
type VersioningStatus string

// Versioning states. An empty status means versioning was never enabled.
const (
	VersioningEnabled   VersioningStatus = "Enabled"
	VersioningSuspended VersioningStatus = "Suspended"
)
