package tags

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew_SortsKeys(t *testing.T) {
	set, err := New(map[string]string{"b": "2", "a": "1"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.TagList[0].Key != "a" || set.TagList[1].Key != "b" {
		t.Errorf("keys not sorted: %+v", set.TagList)
	}
}

func TestNew_RejectsLongKey(t *testing.T) {
	long := strings.Repeat("k", 129)
	if _, err := New(map[string]string{long: "v"}, true); err == nil {
		t.Error("expected error for key over 128 chars")
	}
}

func TestNew_RejectsLongValue(t *testing.T) {
	long := strings.Repeat("v", 257)
	if _, err := New(map[string]string{"k": long}, true); err == nil {
		t.Error("expected error for value over 256 chars")
	}
}

func TestNew_ObjectLimit(t *testing.T) {
	m := map[string]string{}
	for i := 0; i < 11; i++ {
		m[strings.Repeat("k", i+1)] = "v"
	}
	if _, err := New(m, true); err == nil {
		t.Error("expected error for more than 10 object tags")
	}
	if _, err := New(m, false); err != nil {
		t.Errorf("11 tags must be fine for buckets: %v", err)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	set, err := New(map[string]string{"project": "alpha", "team": "storage infra"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	encoded := set.String()

	back, err := Parse(encoded, true)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := back.ToMap()
	if m["project"] != "alpha" || m["team"] != "storage infra" {
		t.Errorf("round trip mismatch: %v", m)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse("a=1;b=2%", true); err == nil {
		t.Error("expected error for malformed encoding")
	}
}

func TestTagSet_XML(t *testing.T) {
	set, err := New(map[string]string{"env": "prod"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := xml.Marshal(set)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "<Tagging>") && !strings.HasPrefix(s, "<Tagging") {
		t.Errorf("unexpected root: %s", s)
	}
	if !strings.Contains(s, "<TagSet><Tag><Key>env</Key><Value>prod</Value></Tag></TagSet>") {
		t.Errorf("unexpected body: %s", s)
	}

	var back TagSet
	if err := xml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.ToMap()["env"] != "prod" {
		t.Errorf("round trip mismatch: %v", back.ToMap())
	}
}

func TestValidate_DuplicateKeysFromXML(t *testing.T) {
	body := `<Tagging><TagSet><Tag><Key>a</Key><Value>1</Value></Tag><Tag><Key>a</Key><Value>2</Value></Tag></TagSet></Tagging>`
	var set TagSet
	if err := xml.Unmarshal([]byte(body), &set); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := set.Validate(); err == nil {
		t.Error("expected duplicate key error")
	}
}

func TestScopeToObject_AfterDecode(t *testing.T) {
	var body strings.Builder
	body.WriteString("<Tagging><TagSet>")
	for i := 0; i < 12; i++ {
		fmt.Fprintf(&body, "<Tag><Key>k%02d</Key><Value>v</Value></Tag>", i)
	}
	body.WriteString("</TagSet></Tagging>")

	var set TagSet
	if err := xml.Unmarshal([]byte(body.String()), &set); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// Decoded documents default to the bucket limit; 12 tags pass.
	if err := set.Validate(); err != nil {
		t.Fatalf("bucket-scoped validate: %v", err)
	}

	set.ScopeToObject()
	if err := set.Validate(); !errors.Is(err, errTooManyObjectTags) {
		t.Errorf("object-scoped validate = %v, want errTooManyObjectTags", err)
	}
}
