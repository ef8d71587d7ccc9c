package lock

import (
	"encoding/xml"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewConfiguration_NoDefaultRule(t *testing.T) {
	cfg, err := NewConfiguration("", 0, "")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.ObjectLockEnabled != "Enabled" || cfg.Rule != nil {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestNewConfiguration_WithDefaultRule(t *testing.T) {
	cfg, err := NewConfiguration(Governance, 30, Days)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ret := cfg.DefaultRetention()
	if ret == nil || ret.Mode != Governance || ret.Days == nil || *ret.Days != 30 || ret.Years != nil {
		t.Errorf("unexpected retention: %+v", ret)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestNewConfiguration_Invalid(t *testing.T) {
	if _, err := NewConfiguration("HOLD", 30, Days); !errors.Is(err, ErrInvalidRetentionMode) {
		t.Errorf("expected ErrInvalidRetentionMode, got %v", err)
	}
	if _, err := NewConfiguration(Compliance, 30, "MONTHS"); !errors.Is(err, ErrInvalidValidityUnit) {
		t.Errorf("expected ErrInvalidValidityUnit, got %v", err)
	}
	if _, err := NewConfiguration(Compliance, 0, Years); !errors.Is(err, ErrNonPositiveValidity) {
		t.Errorf("expected ErrNonPositiveValidity, got %v", err)
	}
}

func TestDefaultRetention_Exclusivity(t *testing.T) {
	days, years := 30, 1
	both := DefaultRetention{Mode: Governance, Days: &days, Years: &years}
	if err := both.Validate(); !errors.Is(err, ErrExclusiveValidity) {
		t.Errorf("expected ErrExclusiveValidity, got %v", err)
	}
	neither := DefaultRetention{Mode: Governance}
	if err := neither.Validate(); !errors.Is(err, ErrExclusiveValidity) {
		t.Errorf("expected ErrExclusiveValidity, got %v", err)
	}
}

func TestConfiguration_XMLRoundTrip(t *testing.T) {
	cfg, err := NewConfiguration(Compliance, 1, Years)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	data, err := xml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "<ObjectLockEnabled>Enabled</ObjectLockEnabled>") ||
		!strings.Contains(s, "<DefaultRetention><Mode>COMPLIANCE</Mode><Years>1</Years></DefaultRetention>") {
		t.Errorf("unexpected body: %s", s)
	}

	var back Configuration
	if err := xml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	ret := back.DefaultRetention()
	if ret == nil || ret.Years == nil || *ret.Years != 1 || ret.Days != nil {
		t.Errorf("round trip mismatch: %+v", ret)
	}
}

func TestRetention(t *testing.T) {
	until := time.Date(2027, 3, 1, 12, 0, 0, 0, time.UTC)
	ret, err := NewRetention(Governance, until)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	data, err := xml.Marshal(ret)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "<Mode>GOVERNANCE</Mode>") ||
		!strings.Contains(s, "<RetainUntilDate>2027-03-01T12:00:00.000Z</RetainUntilDate>") {
		t.Errorf("unexpected body: %s", s)
	}

	var back Retention
	if err := xml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.RetainUntilDate.Time().Equal(until) {
		t.Errorf("date mismatch: %v", back.RetainUntilDate.Time())
	}
	if err := back.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestRetention_Invalid(t *testing.T) {
	if _, err := NewRetention("FOREVER", time.Now()); !errors.Is(err, ErrInvalidRetentionMode) {
		t.Errorf("expected ErrInvalidRetentionMode, got %v", err)
	}
	if _, err := NewRetention(Governance, time.Time{}); !errors.Is(err, ErrMissingRetainDate) {
		t.Errorf("expected ErrMissingRetainDate, got %v", err)
	}
}

func TestParseRetentionMode(t *testing.T) {
	if m, err := ParseRetentionMode("COMPLIANCE"); err != nil || m != Compliance {
		t.Errorf("got %v, %v", m, err)
	}
	if _, err := ParseRetentionMode("governance"); !errors.Is(err, ErrInvalidRetentionMode) {
		t.Errorf("lowercase must be rejected, got %v", err)
	}
}

func TestLegalHold(t *testing.T) {
	hold := LegalHold{Status: LegalHoldOn}
	if err := hold.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	data, err := xml.Marshal(&hold)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), "<Status>ON</Status>") {
		t.Errorf("unexpected body: %s", data)
	}

	bad := LegalHold{Status: "MAYBE"}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidLegalHold) {
		t.Errorf("expected ErrInvalidLegalHold, got %v", err)
	}
}
