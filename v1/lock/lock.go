package lock

import (
	"encoding/xml"
	"errors"
	"fmt"
	"time"

	"github.com/stratal/objstore/v1/s3types"
)

// RetentionMode is the lock mode applied to object versions.
type RetentionMode string

// Retention modes.
const (
	Governance RetentionMode = "GOVERNANCE"
	Compliance RetentionMode = "COMPLIANCE"
)

// IsValid reports whether the mode is a known value.
func (m RetentionMode) IsValid() bool {
	return m == Governance || m == Compliance
}

// ParseRetentionMode maps the wire string onto a RetentionMode.
func ParseRetentionMode(s string) (RetentionMode, error) {
	m := RetentionMode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRetentionMode, s)
	}
	return m, nil
}

// ValidityUnit is the unit of a default retention period.
type ValidityUnit string

// Validity units.
const (
	Days  ValidityUnit = "DAYS"
	Years ValidityUnit = "YEARS"
)

// IsValid reports whether the unit is a known value.
func (u ValidityUnit) IsValid() bool {
	return u == Days || u == Years
}

// LegalHoldStatus toggles the legal hold on an object version.
type LegalHoldStatus string

// Legal hold statuses.
const (
	LegalHoldOn  LegalHoldStatus = "ON"
	LegalHoldOff LegalHoldStatus = "OFF"
)

// IsValid reports whether the status is a known value.
func (s LegalHoldStatus) IsValid() bool {
	return s == LegalHoldOn || s == LegalHoldOff
}

// Validation errors.
var (
	ErrInvalidRetentionMode = errors.New("lock: retention mode must be GOVERNANCE or COMPLIANCE")
	ErrInvalidValidityUnit  = errors.New("lock: validity unit must be DAYS or YEARS")
	ErrInvalidLegalHold     = errors.New("lock: legal hold status must be ON or OFF")
	ErrNonPositiveValidity  = errors.New("lock: retention validity must be positive")
	ErrExclusiveValidity    = errors.New("lock: default retention must set exactly one of Days or Years")
	ErrMissingRetainDate    = errors.New("lock: retention requires a retain-until date")
)

// DefaultRetention is the bucket-wide default applied to new object
// versions. Exactly one of Days or Years is set.
type DefaultRetention struct {
	XMLName xml.Name      `xml:"DefaultRetention"`
	Mode    RetentionMode `xml:"Mode"`
	Days    *int          `xml:"Days,omitempty"`
	Years   *int          `xml:"Years,omitempty"`
}

// Validate checks mode and Days/Years exclusivity.
func (d DefaultRetention) Validate() error {
	if !d.Mode.IsValid() {
		return ErrInvalidRetentionMode
	}
	if (d.Days == nil) == (d.Years == nil) {
		return ErrExclusiveValidity
	}
	if d.Days != nil && *d.Days <= 0 {
		return ErrNonPositiveValidity
	}
	if d.Years != nil && *d.Years <= 0 {
		return ErrNonPositiveValidity
	}
	return nil
}

// Configuration is the <ObjectLockConfiguration> document.
type Configuration struct {
	XMLName           xml.Name `xml:"ObjectLockConfiguration"`
	Xmlns             string   `xml:"xmlns,attr,omitempty"`
	ObjectLockEnabled string   `xml:"ObjectLockEnabled"`
	Rule              *struct {
		DefaultRetention DefaultRetention `xml:"DefaultRetention"`
	} `xml:"Rule,omitempty"`
}

// NewConfiguration builds a lock configuration. mode, validity and unit may
// all be zero for a configuration without a default retention rule;
// otherwise all three must be set and valid.
func NewConfiguration(mode RetentionMode, validity uint, unit ValidityUnit) (*Configuration, error) {
	cfg := &Configuration{ObjectLockEnabled: "Enabled"}
	if mode == "" && validity == 0 && unit == "" {
		return cfg, nil
	}
	if !mode.IsValid() {
		return nil, ErrInvalidRetentionMode
	}
	if !unit.IsValid() {
		return nil, ErrInvalidValidityUnit
	}
	if validity == 0 {
		return nil, ErrNonPositiveValidity
	}
	ret := DefaultRetention{Mode: mode}
	v := int(validity)
	if unit == Days {
		ret.Days = &v
	} else {
		ret.Years = &v
	}
	cfg.Rule = &struct {
		DefaultRetention DefaultRetention `xml:"DefaultRetention"`
	}{DefaultRetention: ret}
	return cfg, nil
}

// DefaultRetention returns the configured default rule, or nil.
func (c *Configuration) DefaultRetention() *DefaultRetention {
	if c.Rule == nil {
		return nil
	}
	return &c.Rule.DefaultRetention
}

// Validate checks the enabled flag and, when present, the default rule.
func (c *Configuration) Validate() error {
	if c.ObjectLockEnabled != "Enabled" {
		return fmt.Errorf("lock: ObjectLockEnabled must be %q, got %q", "Enabled", c.ObjectLockEnabled)
	}
	if c.Rule != nil {
		return c.Rule.DefaultRetention.Validate()
	}
	return nil
}

// Retention is the per-object <Retention> document.
type Retention struct {
	XMLName         xml.Name             `xml:"Retention"`
	Xmlns           string               `xml:"xmlns,attr,omitempty"`
	Mode            RetentionMode        `xml:"Mode"`
	RetainUntilDate s3types.ISO8601Time  `xml:"RetainUntilDate"`
}

// NewRetention builds a validated per-object retention.
func NewRetention(mode RetentionMode, retainUntil time.Time) (*Retention, error) {
	if !mode.IsValid() {
		return nil, ErrInvalidRetentionMode
	}
	if retainUntil.IsZero() {
		return nil, ErrMissingRetainDate
	}
	return &Retention{Mode: mode, RetainUntilDate: s3types.ISO8601Time(retainUntil)}, nil
}

// Validate checks mode and date.
func (r *Retention) Validate() error {
	if !r.Mode.IsValid() {
		return ErrInvalidRetentionMode
	}
	if r.RetainUntilDate.IsZero() {
		return ErrMissingRetainDate
	}
	return nil
}

// LegalHold is the per-object <LegalHold> document.
type LegalHold struct {
	XMLName xml.Name        `xml:"LegalHold"`
	Xmlns   string          `xml:"xmlns,attr,omitempty"`
	Status  LegalHoldStatus `xml:"Status"`
}

// Validate checks the status.
func (l *LegalHold) Validate() error {
	if !l.Status.IsValid() {
		return ErrInvalidLegalHold
	}
	return nil
}
