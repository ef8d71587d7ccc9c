package sts

import (
	"encoding/xml"
	"fmt"

	"github.com/stratal/objstore/v1/s3types"
)

// Credentials is the temporary key material returned by every exchange.
type Credentials struct {
	AccessKeyID     string              `xml:"AccessKeyId"`
	SecretAccessKey string              `xml:"SecretAccessKey"`
	SessionToken    string              `xml:"SessionToken"`
	Expiration      s3types.ISO8601Time `xml:"Expiration"`
}

// AssumedRoleUser identifies the principal of an assumed role.
type AssumedRoleUser struct {
	Arn           string `xml:"Arn"`
	AssumedRoleID string `xml:"AssumedRoleId"`
}

// AssumeRoleResult is the payload of AssumeRoleResponse.
type AssumeRoleResult struct {
	AssumedRoleUser  AssumedRoleUser `xml:"AssumedRoleUser"`
	Credentials      Credentials     `xml:"Credentials"`
	PackedPolicySize int             `xml:"PackedPolicySize,omitempty"`
}

// AssumeRoleResponse is the AssumeRole envelope.
type AssumeRoleResponse struct {
	XMLName   xml.Name         `xml:"AssumeRoleResponse"`
	Result    AssumeRoleResult `xml:"AssumeRoleResult"`
	RequestID string           `xml:"ResponseMetadata>RequestId,omitempty"`
}

// WebIdentityResult is the payload of the web-identity and client-grants
// envelopes.
type WebIdentityResult struct {
	AssumedRoleUser             AssumedRoleUser `xml:"AssumedRoleUser"`
	Audience                    string          `xml:"Audience,omitempty"`
	Credentials                 Credentials     `xml:"Credentials"`
	PackedPolicySize            int             `xml:"PackedPolicySize,omitempty"`
	Provider                    string          `xml:"Provider,omitempty"`
	SubjectFromWebIdentityToken string          `xml:"SubjectFromWebIdentityToken,omitempty"`
}

// AssumeRoleWithWebIdentityResponse is the web-identity envelope.
type AssumeRoleWithWebIdentityResponse struct {
	XMLName   xml.Name          `xml:"AssumeRoleWithWebIdentityResponse"`
	Result    WebIdentityResult `xml:"AssumeRoleWithWebIdentityResult"`
	RequestID string            `xml:"ResponseMetadata>RequestId,omitempty"`
}

// AssumeRoleWithClientGrantsResponse is the client-grants envelope.
type AssumeRoleWithClientGrantsResponse struct {
	XMLName   xml.Name          `xml:"AssumeRoleWithClientGrantsResponse"`
	Result    WebIdentityResult `xml:"AssumeRoleWithClientGrantsResult"`
	RequestID string            `xml:"ResponseMetadata>RequestId,omitempty"`
}

// AssumeRoleWithLDAPIdentityResponse is the LDAP-identity envelope.
type AssumeRoleWithLDAPIdentityResponse struct {
	XMLName   xml.Name          `xml:"AssumeRoleWithLDAPIdentityResponse"`
	Result    WebIdentityResult `xml:"AssumeRoleWithLDAPIdentityResult"`
	RequestID string            `xml:"ResponseMetadata>RequestId,omitempty"`
}

// ErrorResponse is the STS error envelope. It differs from the object API
// error document: the code and message nest under <Error>.
type ErrorResponse struct {
	XMLName   xml.Name `xml:"ErrorResponse"`
	Type      string   `xml:"Error>Type"`
	Code      string   `xml:"Error>Code"`
	Message   string   `xml:"Error>Message"`
	RequestID string   `xml:"RequestId"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	return fmt.Sprintf("sts: %s: %s (request id %s)", e.Code, e.Message, e.RequestID)
}

// ParseError decodes an STS error envelope from a response body.
func ParseError(data []byte) (ErrorResponse, error) {
	var resp ErrorResponse
	if err := xml.Unmarshal(data, &resp); err != nil {
		return ErrorResponse{}, err
	}
	return resp, nil
}
