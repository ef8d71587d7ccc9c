package lifecycle

import (
	"encoding/xml"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stratal/objstore/v1/tags"
)

func TestValidate_RequiresRules(t *testing.T) {
	cfg := Configuration{}
	if err := cfg.Validate(); !errors.Is(err, ErrNoRules) {
		t.Errorf("expected ErrNoRules, got %v", err)
	}
}

func TestValidate_RequiresAction(t *testing.T) {
	cfg := Configuration{Rules: []Rule{{
		ID:     "noop",
		Status: StatusEnabled,
	}}}
	if err := cfg.Validate(); !errors.Is(err, ErrMissingAction) {
		t.Errorf("expected ErrMissingAction, got %v", err)
	}
}

func TestValidate_Status(t *testing.T) {
	cfg := Configuration{Rules: []Rule{{
		Status:     "Paused",
		Expiration: Expiration{Days: 1},
	}}}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestValidate_IDLength(t *testing.T) {
	cfg := Configuration{Rules: []Rule{{
		ID:         strings.Repeat("x", 256),
		Status:     StatusEnabled,
		Expiration: Expiration{Days: 1},
	}}}
	if err := cfg.Validate(); !errors.Is(err, ErrIDTooLong) {
		t.Errorf("expected ErrIDTooLong, got %v", err)
	}
}

func TestValidate_DuplicateIDs(t *testing.T) {
	cfg := Configuration{Rules: []Rule{
		{ID: "r1", Status: StatusEnabled, Expiration: Expiration{Days: 1}},
		{ID: "r1", Status: StatusEnabled, Expiration: Expiration{Days: 2}},
	}}
	if err := cfg.Validate(); !errors.Is(err, ErrDuplicateRuleID) {
		t.Errorf("expected ErrDuplicateRuleID, got %v", err)
	}
}

func TestExpiration_Exclusivity(t *testing.T) {
	midnight := ExpirationDate{time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)}

	cases := []struct {
		name string
		exp  Expiration
		want error
	}{
		{"days only", Expiration{Days: 30}, nil},
		{"date only", Expiration{Date: midnight}, nil},
		{"marker only", Expiration{ExpiredObjectDeleteMarker: true}, nil},
		{"days and date", Expiration{Days: 30, Date: midnight}, ErrExclusiveExpiry},
		{"days and marker", Expiration{Days: 30, ExpiredObjectDeleteMarker: true}, ErrExclusiveExpiry},
		{"negative days", Expiration{Days: -1}, ErrNonPositiveDays},
		{
			"non-midnight date",
			Expiration{Date: ExpirationDate{time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)}},
			ErrDateNotMidnight,
		},
	}
	for _, c := range cases {
		if err := c.exp.Validate(); !errors.Is(err, c.want) {
			t.Errorf("%s: got %v, want %v", c.name, err, c.want)
		}
	}
}

func TestTransition_Exclusivity(t *testing.T) {
	midnight := ExpirationDate{time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)}
	tr := Transition{Days: 30, Date: midnight, StorageClass: "GLACIER"}
	if err := tr.Validate(); !errors.Is(err, ErrTransitionExclusiv) {
		t.Errorf("expected ErrTransitionExclusiv, got %v", err)
	}
}

func TestFilter_Exclusivity(t *testing.T) {
	f := Filter{
		Prefix: "logs/",
		Tag:    &tags.Tag{Key: "env", Value: "prod"},
	}
	if err := f.Validate(); !errors.Is(err, ErrExclusiveFilter) {
		t.Errorf("expected ErrExclusiveFilter, got %v", err)
	}

	and := Filter{And: &And{Prefix: "logs/", Tags: []tags.Tag{{Key: "env", Value: "prod"}}}}
	if err := and.Validate(); err != nil {
		t.Errorf("And filter must validate: %v", err)
	}
}

func TestConfiguration_MarshalOmitsNullActions(t *testing.T) {
	cfg := Configuration{Rules: []Rule{{
		ID:         "expire-tmp",
		Status:     StatusEnabled,
		Filter:     Filter{Prefix: "tmp/"},
		Expiration: Expiration{Days: 7},
	}}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	data, err := xml.Marshal(&cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "<Expiration><Days>7</Days></Expiration>") {
		t.Errorf("missing expiration: %s", s)
	}
	for _, absent := range []string{"<Transition>", "<NoncurrentVersionExpiration>", "<AbortIncompleteMultipartUpload>"} {
		if strings.Contains(s, absent) {
			t.Errorf("unset action %s leaked into: %s", absent, s)
		}
	}
	if !strings.Contains(s, "<Filter><Prefix>tmp/</Prefix></Filter>") {
		t.Errorf("missing filter: %s", s)
	}
}

func TestConfiguration_UnmarshalServerDocument(t *testing.T) {
	body := `<LifecycleConfiguration xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Rule>
    <ID>archive-logs</ID>
    <Status>Enabled</Status>
    <Filter><And><Prefix>logs/</Prefix><Tag><Key>retain</Key><Value>long</Value></Tag></And></Filter>
    <Transition><Days>30</Days><StorageClass>GLACIER</StorageClass></Transition>
    <Expiration><Date>2027-01-01T00:00:00.000Z</Date></Expiration>
    <NoncurrentVersionExpiration><NoncurrentDays>60</NoncurrentDays><NewerNoncurrentVersions>3</NewerNoncurrentVersions></NoncurrentVersionExpiration>
    <AbortIncompleteMultipartUpload><DaysAfterInitiation>5</DaysAfterInitiation></AbortIncompleteMultipartUpload>
  </Rule>
</LifecycleConfiguration>`

	var cfg Configuration
	if err := xml.Unmarshal([]byte(body), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(cfg.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(cfg.Rules))
	}
	r := cfg.Rules[0]
	if r.ID != "archive-logs" || r.Status != StatusEnabled {
		t.Errorf("rule header mismatch: %+v", r)
	}
	if r.Filter.And == nil || r.Filter.And.Prefix != "logs/" || len(r.Filter.And.Tags) != 1 {
		t.Errorf("filter mismatch: %+v", r.Filter)
	}
	if r.Transition.Days != 30 || r.Transition.StorageClass != "GLACIER" {
		t.Errorf("transition mismatch: %+v", r.Transition)
	}
	want := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	if !r.Expiration.Date.Equal(want) {
		t.Errorf("expiration date = %v, want %v", r.Expiration.Date.Time, want)
	}
	if r.NoncurrentVersionExpiration.NoncurrentDays != 60 ||
		r.NoncurrentVersionExpiration.NewerNoncurrentVersions != 3 {
		t.Errorf("noncurrent expiration mismatch: %+v", r.NoncurrentVersionExpiration)
	}
	if r.AbortIncompleteMultipartUpload.DaysAfterInitiation != 5 {
		t.Errorf("abort mismatch: %+v", r.AbortIncompleteMultipartUpload)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("server document must validate: %v", err)
	}
}

func TestConfiguration_RoundTrip(t *testing.T) {
	cfg := Configuration{
		Xmlns: "http://s3.amazonaws.com/doc/2006-03-01/",
		Rules: []Rule{
			{
				ID:     "tier",
				Status: StatusEnabled,
				Filter: Filter{Prefix: "data/"},
				Transition: Transition{
					Days:         90,
					StorageClass: "DEEP_ARCHIVE",
				},
			},
			{
				ID:                             "reap-uploads",
				Status:                         StatusDisabled,
				AbortIncompleteMultipartUpload: AbortIncompleteMultipartUpload{DaysAfterInitiation: 7},
			},
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	data, err := xml.Marshal(&cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Configuration
	if err := xml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(back.Rules))
	}
	if back.Rules[0].Transition.Days != 90 || back.Rules[1].AbortIncompleteMultipartUpload.DaysAfterInitiation != 7 {
		t.Errorf("round trip mismatch: %+v", back.Rules)
	}
}
