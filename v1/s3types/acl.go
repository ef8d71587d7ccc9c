package s3types

import (
	"encoding/xml"
	"fmt"
)

// Well-known grantee group URIs.
const (
	// GroupAllUsers grants to everyone, including anonymous requests.
	GroupAllUsers = "http://acs.amazonaws.com/groups/global/AllUsers"

	// GroupAuthenticatedUsers grants to any authenticated principal.
	GroupAuthenticatedUsers = "http://acs.amazonaws.com/groups/global/AuthenticatedUsers"

	// GroupLogDelivery grants to the access-log delivery system.
	GroupLogDelivery = "http://acs.amazonaws.com/groups/s3/LogDelivery"
)

// xsiNamespace is declared on Grantee elements so the xsi:type attribute
// resolves.
const xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"

// Grantee identifies the principal a grant applies to. Exactly one of
// ID/EmailAddress/URI is set depending on Type.
type Grantee struct {
	XMLNSXSI     string      `xml:"xmlns:xsi,attr,omitempty"`
	Type         GranteeType `xml:"xsi:type,attr,omitempty"`
	ID           string      `xml:"ID,omitempty"`
	DisplayName  string      `xml:"DisplayName,omitempty"`
	EmailAddress string      `xml:"EmailAddress,omitempty"`
	URI          string      `xml:"URI,omitempty"`
}

// Grant couples a grantee with a permission.
type Grant struct {
	Grantee    Grantee    `xml:"Grantee"`
	Permission Permission `xml:"Permission"`
}

// AccessControlPolicy is the request/response body of the bucket and object
// ACL calls.
type AccessControlPolicy struct {
	XMLName xml.Name `xml:"AccessControlPolicy"`
	Xmlns   string   `xml:"xmlns,attr,omitempty"`
	Owner   Owner    `xml:"Owner"`
	Grants  []Grant  `xml:"AccessControlList>Grant"`
}

// NewCanonicalUserGrant builds a grant for a canonical user ID.
func NewCanonicalUserGrant(id, displayName string, permission Permission) (Grant, error) {
	if id == "" {
		return Grant{}, fmt.Errorf("s3types: canonical user grant requires an ID")
	}
	if !permission.IsValid() {
		return Grant{}, fmt.Errorf("s3types: invalid permission %q", permission)
	}
	return Grant{
		Grantee: Grantee{
			XMLNSXSI:    xsiNamespace,
			Type:        GranteeCanonicalUser,
			ID:          id,
			DisplayName: displayName,
		},
		Permission: permission,
	}, nil
}

// NewGroupGrant builds a grant for a well-known group URI.
func NewGroupGrant(uri string, permission Permission) (Grant, error) {
	switch uri {
	case GroupAllUsers, GroupAuthenticatedUsers, GroupLogDelivery:
	default:
		return Grant{}, fmt.Errorf("s3types: unknown grantee group URI %q", uri)
	}
	if !permission.IsValid() {
		return Grant{}, fmt.Errorf("s3types: invalid permission %q", permission)
	}
	return Grant{
		Grantee:    Grantee{XMLNSXSI: xsiNamespace, Type: GranteeGroup, URI: uri},
		Permission: permission,
	}, nil
}

// Validate checks structural invariants of a policy before it is sent:
// every grant needs a valid permission and a grantee with exactly the
// identity field its type requires.
func (p *AccessControlPolicy) Validate() error {
	for i, g := range p.Grants {
		if !g.Permission.IsValid() {
			return fmt.Errorf("s3types: grant %d: invalid permission %q", i, g.Permission)
		}
		switch g.Grantee.effectiveType() {
		case GranteeCanonicalUser:
			if g.Grantee.ID == "" {
				return fmt.Errorf("s3types: grant %d: CanonicalUser grantee requires ID", i)
			}
		case GranteeAmazonUser:
			if g.Grantee.EmailAddress == "" {
				return fmt.Errorf("s3types: grant %d: AmazonCustomerByEmail grantee requires EmailAddress", i)
			}
		case GranteeGroup:
			if g.Grantee.URI == "" {
				return fmt.Errorf("s3types: grant %d: Group grantee requires URI", i)
			}
		default:
			return fmt.Errorf("s3types: grant %d: unknown grantee type %q", i, g.Grantee.Type)
		}
	}
	return nil
}

// effectiveType returns the grantee type, inferring it from the identity
// fields when the xsi:type attribute was lost in decoding (encoding/xml does
// not map prefixed attributes back onto prefixed struct tags).
func (g Grantee) effectiveType() GranteeType {
	if g.Type != "" {
		return g.Type
	}
	switch {
	case g.URI != "":
		return GranteeGroup
	case g.EmailAddress != "":
		return GranteeAmazonUser
	case g.ID != "":
		return GranteeCanonicalUser
	}
	return ""
}

// PermissionsFor collects the permissions granted to a canonical user ID,
// including those inherited from group grants to AllUsers and
// AuthenticatedUsers.
func (p *AccessControlPolicy) PermissionsFor(canonicalID string) []Permission {
	var perms []Permission
	for _, g := range p.Grants {
		switch g.Grantee.effectiveType() {
		case GranteeCanonicalUser:
			if g.Grantee.ID == canonicalID {
				perms = append(perms, g.Permission)
			}
		case GranteeGroup:
			if g.Grantee.URI == GroupAllUsers || g.Grantee.URI == GroupAuthenticatedUsers {
				perms = append(perms, g.Permission)
			}
		}
	}
	return perms
}
