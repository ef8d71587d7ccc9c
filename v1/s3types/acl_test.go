package s3types

import (
	"encoding/xml"
	"testing"
)

func TestAccessControlPolicy_Decode(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<AccessControlPolicy xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Owner><ID>owner-id</ID><DisplayName>owner</DisplayName></Owner>
  <AccessControlList>
    <Grant>
      <Grantee xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:type="CanonicalUser">
        <ID>owner-id</ID>
        <DisplayName>owner</DisplayName>
      </Grantee>
      <Permission>FULL_CONTROL</Permission>
    </Grant>
    <Grant>
      <Grantee xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:type="Group">
        <URI>http://acs.amazonaws.com/groups/global/AllUsers</URI>
      </Grantee>
      <Permission>READ</Permission>
    </Grant>
  </AccessControlList>
</AccessControlPolicy>`

	var acp AccessControlPolicy
	if err := xml.Unmarshal([]byte(body), &acp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(acp.Grants) != 2 {
		t.Fatalf("expected 2 grants, got %d", len(acp.Grants))
	}
	if acp.Grants[0].Permission != PermissionFullControl {
		t.Errorf("unexpected permission %q", acp.Grants[0].Permission)
	}
	if acp.Grants[1].Grantee.URI != GroupAllUsers {
		t.Errorf("unexpected group URI %q", acp.Grants[1].Grantee.URI)
	}
}

func TestNewCanonicalUserGrant_Validation(t *testing.T) {
	if _, err := NewCanonicalUserGrant("", "x", PermissionRead); err == nil {
		t.Error("expected error for empty ID")
	}
	if _, err := NewCanonicalUserGrant("id", "x", Permission("OWN")); err == nil {
		t.Error("expected error for bad permission")
	}
	g, err := NewCanonicalUserGrant("id", "x", PermissionWrite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Grantee.Type != GranteeCanonicalUser {
		t.Errorf("unexpected grantee type %q", g.Grantee.Type)
	}
}

func TestNewGroupGrant_RejectsUnknownURI(t *testing.T) {
	if _, err := NewGroupGrant("http://example.com/everyone", PermissionRead); err == nil {
		t.Error("expected error for unknown group URI")
	}
}

func TestAccessControlPolicy_Validate(t *testing.T) {
	acp := &AccessControlPolicy{
		Grants: []Grant{
			{Grantee: Grantee{Type: GranteeCanonicalUser}, Permission: PermissionRead},
		},
	}
	if err := acp.Validate(); err == nil {
		t.Error("expected error for CanonicalUser grantee without ID")
	}

	acp.Grants[0].Grantee.ID = "id"
	if err := acp.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAccessControlPolicy_PermissionsFor(t *testing.T) {
	acp := &AccessControlPolicy{
		Grants: []Grant{
			{Grantee: Grantee{Type: GranteeCanonicalUser, ID: "me"}, Permission: PermissionFullControl},
			{Grantee: Grantee{Type: GranteeGroup, URI: GroupAllUsers}, Permission: PermissionRead},
			{Grantee: Grantee{Type: GranteeCanonicalUser, ID: "other"}, Permission: PermissionWrite},
		},
	}
	perms := acp.PermissionsFor("me")
	if len(perms) != 2 {
		t.Fatalf("expected 2 permissions, got %v", perms)
	}
}
