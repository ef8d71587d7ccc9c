package lifecycle

import (
	"encoding/xml"
	"errors"
	"fmt"
	"time"

	"github.com/stratal/objstore/v1/s3types"
	"github.com/stratal/objstore/v1/tags"
)

// Status is the activation state of a lifecycle rule.
type Status string

// Rule statuses.
const (
	StatusEnabled  Status = "Enabled"
	StatusDisabled Status = "Disabled"
)

// Protocol limits.
const (
	maxRules    = 1000
	maxIDLength = 255
)

// Validation errors.
var (
	ErrNoRules            = errors.New("lifecycle: configuration has no rules")
	ErrTooManyRules       = errors.New("lifecycle: configuration exceeds 1000 rules")
	ErrMissingAction      = errors.New("lifecycle: rule declares no action")
	ErrInvalidStatus      = errors.New("lifecycle: rule status must be Enabled or Disabled")
	ErrIDTooLong          = errors.New("lifecycle: rule ID exceeds 255 characters")
	ErrDuplicateRuleID    = errors.New("lifecycle: duplicate rule ID")
	ErrExclusiveExpiry    = errors.New("lifecycle: expiration must set exactly one of Date, Days or ExpiredObjectDeleteMarker")
	ErrExclusiveFilter    = errors.New("lifecycle: filter must set at most one of Prefix, Tag or And")
	ErrDateNotMidnight    = errors.New("lifecycle: date must be midnight UTC")
	ErrNonPositiveDays    = errors.New("lifecycle: days must be positive")
	ErrTransitionExclusiv = errors.New("lifecycle: transition must set exactly one of Date or Days")
)

// ExpirationDate is a date-only timestamp; the wire form is
// 2006-01-02T00:00:00Z style midnight UTC.
type ExpirationDate struct {
	time.Time
}

// MarshalXML emits the date in the canonical wire format.
func (d ExpirationDate) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if d.IsZero() {
		return nil
	}
	return e.EncodeElement(d.UTC().Format(s3types.ISO8601Format), start)
}

// UnmarshalXML parses the wire date tolerantly.
func (d *ExpirationDate) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := dec.DecodeElement(&s, &start); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := s3types.ParseISO8601(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// isMidnightUTC reports whether the date has no time-of-day component.
func (d ExpirationDate) isMidnightUTC() bool {
	u := d.UTC()
	return u.Hour() == 0 && u.Minute() == 0 && u.Second() == 0 && u.Nanosecond() == 0
}

// Expiration is the current-version expiry action of a rule.
type Expiration struct {
	XMLName                   xml.Name       `xml:"Expiration"`
	Date                      ExpirationDate `xml:"Date,omitempty"`
	Days                      int            `xml:"Days,omitempty"`
	ExpiredObjectDeleteMarker bool           `xml:"ExpiredObjectDeleteMarker,omitempty"`
}

// IsNull reports whether the action is unset and should be omitted.
func (e Expiration) IsNull() bool {
	return e.Date.IsZero() && e.Days == 0 && !e.ExpiredObjectDeleteMarker
}

// Validate checks the mutual exclusivity of the three trigger fields.
func (e Expiration) Validate() error {
	set := 0
	if !e.Date.IsZero() {
		set++
		if !e.Date.isMidnightUTC() {
			return ErrDateNotMidnight
		}
	}
	if e.Days != 0 {
		set++
		if e.Days < 0 {
			return ErrNonPositiveDays
		}
	}
	if e.ExpiredObjectDeleteMarker {
		set++
	}
	if set != 1 {
		return ErrExclusiveExpiry
	}
	return nil
}

// Transition is the current-version tiering action of a rule.
type Transition struct {
	XMLName      xml.Name             `xml:"Transition"`
	Date         ExpirationDate       `xml:"Date,omitempty"`
	Days         int                  `xml:"Days,omitempty"`
	StorageClass s3types.StorageClass `xml:"StorageClass,omitempty"`
}

// IsNull reports whether the action is unset and should be omitted.
func (t Transition) IsNull() bool {
	return t.Date.IsZero() && t.Days == 0 && t.StorageClass == ""
}

// Validate checks Date/Days exclusivity. Transition allows Days == 0
// (transition at creation), so only double-setting is rejected.
func (t Transition) Validate() error {
	if !t.Date.IsZero() && t.Days != 0 {
		return ErrTransitionExclusiv
	}
	if t.Days < 0 {
		return ErrNonPositiveDays
	}
	if !t.Date.IsZero() && !t.Date.isMidnightUTC() {
		return ErrDateNotMidnight
	}
	return nil
}

// NoncurrentVersionExpiration expires noncurrent object versions.
type NoncurrentVersionExpiration struct {
	XMLName                 xml.Name `xml:"NoncurrentVersionExpiration"`
	NoncurrentDays          int      `xml:"NoncurrentDays,omitempty"`
	NewerNoncurrentVersions int      `xml:"NewerNoncurrentVersions,omitempty"`
}

// IsNull reports whether the action is unset and should be omitted.
func (n NoncurrentVersionExpiration) IsNull() bool {
	return n.NoncurrentDays == 0 && n.NewerNoncurrentVersions == 0
}

// NoncurrentVersionTransition tiers noncurrent object versions.
type NoncurrentVersionTransition struct {
	XMLName        xml.Name             `xml:"NoncurrentVersionTransition"`
	NoncurrentDays int                  `xml:"NoncurrentDays,omitempty"`
	StorageClass   s3types.StorageClass `xml:"StorageClass,omitempty"`
}

// IsNull reports whether the action is unset and should be omitted.
func (n NoncurrentVersionTransition) IsNull() bool {
	return n.NoncurrentDays == 0 && n.StorageClass == ""
}

// AbortIncompleteMultipartUpload reaps stale multipart uploads.
type AbortIncompleteMultipartUpload struct {
	XMLName             xml.Name `xml:"AbortIncompleteMultipartUpload"`
	DaysAfterInitiation int      `xml:"DaysAfterInitiation,omitempty"`
}

// IsNull reports whether the action is unset and should be omitted.
func (a AbortIncompleteMultipartUpload) IsNull() bool {
	return a.DaysAfterInitiation == 0
}

// And combines multiple filter conditions.
type And struct {
	XMLName               xml.Name   `xml:"And"`
	Prefix                string     `xml:"Prefix,omitempty"`
	Tags                  []tags.Tag `xml:"Tag,omitempty"`
	ObjectSizeGreaterThan int64      `xml:"ObjectSizeGreaterThan,omitempty"`
	ObjectSizeLessThan    int64      `xml:"ObjectSizeLessThan,omitempty"`
}

// IsEmpty reports whether no condition is set.
func (a And) IsEmpty() bool {
	return a.Prefix == "" && len(a.Tags) == 0 &&
		a.ObjectSizeGreaterThan == 0 && a.ObjectSizeLessThan == 0
}

// Filter scopes a rule to a subset of the bucket. At most one of Prefix,
// Tag or And may be set; an empty filter matches the whole bucket.
type Filter struct {
	XMLName               xml.Name  `xml:"Filter"`
	Prefix                string    `xml:"Prefix,omitempty"`
	Tag                   *tags.Tag `xml:"Tag,omitempty"`
	And                   *And      `xml:"And,omitempty"`
	ObjectSizeGreaterThan int64     `xml:"ObjectSizeGreaterThan,omitempty"`
	ObjectSizeLessThan    int64     `xml:"ObjectSizeLessThan,omitempty"`
}

// Validate checks the exclusivity of filter branches.
func (f Filter) Validate() error {
	set := 0
	if f.Prefix != "" {
		set++
	}
	if f.Tag != nil {
		set++
		if err := f.Tag.Validate(); err != nil {
			return err
		}
	}
	if f.And != nil && !f.And.IsEmpty() {
		set++
		for _, t := range f.And.Tags {
			if err := t.Validate(); err != nil {
				return err
			}
		}
	}
	if set > 1 {
		return ErrExclusiveFilter
	}
	return nil
}

// Rule is one lifecycle rule.
type Rule struct {
	XMLName                        xml.Name                       `xml:"Rule"`
	ID                             string                         `xml:"ID,omitempty"`
	Status                         Status                         `xml:"Status"`
	Filter                         Filter                         `xml:"Filter"`
	Expiration                     Expiration                     `xml:"Expiration,omitempty"`
	Transition                     Transition                     `xml:"Transition,omitempty"`
	NoncurrentVersionExpiration    NoncurrentVersionExpiration    `xml:"NoncurrentVersionExpiration,omitempty"`
	NoncurrentVersionTransition    NoncurrentVersionTransition    `xml:"NoncurrentVersionTransition,omitempty"`
	AbortIncompleteMultipartUpload AbortIncompleteMultipartUpload `xml:"AbortIncompleteMultipartUpload,omitempty"`
}

// Validate checks the rule invariants: a valid status, an ID within limits,
// a consistent filter, and at least one configured action.
func (r Rule) Validate() error {
	if r.Status != StatusEnabled && r.Status != StatusDisabled {
		return ErrInvalidStatus
	}
	if len(r.ID) > maxIDLength {
		return ErrIDTooLong
	}
	if err := r.Filter.Validate(); err != nil {
		return err
	}
	if r.Expiration.IsNull() && r.Transition.IsNull() &&
		r.NoncurrentVersionExpiration.IsNull() && r.NoncurrentVersionTransition.IsNull() &&
		r.AbortIncompleteMultipartUpload.IsNull() {
		return ErrMissingAction
	}
	if !r.Expiration.IsNull() {
		if err := r.Expiration.Validate(); err != nil {
			return err
		}
	}
	if !r.Transition.IsNull() {
		if err := r.Transition.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Configuration is the <LifecycleConfiguration> document.
type Configuration struct {
	XMLName xml.Name `xml:"LifecycleConfiguration"`
	Xmlns   string   `xml:"xmlns,attr,omitempty"`
	Rules   []Rule   `xml:"Rule"`
}

// Validate checks the configuration and all rules.
func (c *Configuration) Validate() error {
	if len(c.Rules) == 0 {
		return ErrNoRules
	}
	if len(c.Rules) > maxRules {
		return ErrTooManyRules
	}
	seen := make(map[string]struct{}, len(c.Rules))
	for _, r := range c.Rules {
		if err := r.Validate(); err != nil {
			if r.ID != "" {
				return fmt.Errorf("rule %q: %w", r.ID, err)
			}
			return err
		}
		if r.ID != "" {
			if _, dup := seen[r.ID]; dup {
				return fmt.Errorf("%w: %q", ErrDuplicateRuleID, r.ID)
			}
			seen[r.ID] = struct{}{}
		}
	}
	return nil
}

// MarshalXML writes the configuration, omitting null actions. encoding/xml
// has no emptiness hook for struct-typed fields, so the rule is re-shaped
// with pointers before encoding.
func (r Rule) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	type wireRule struct {
		ID                             string                          `xml:"ID,omitempty"`
		Status                         Status                          `xml:"Status"`
		Filter                         Filter                          `xml:"Filter"`
		Expiration                     *Expiration                     `xml:"Expiration,omitempty"`
		Transition                     *Transition                     `xml:"Transition,omitempty"`
		NoncurrentVersionExpiration    *NoncurrentVersionExpiration    `xml:"NoncurrentVersionExpiration,omitempty"`
		NoncurrentVersionTransition    *NoncurrentVersionTransition    `xml:"NoncurrentVersionTransition,omitempty"`
		AbortIncompleteMultipartUpload *AbortIncompleteMultipartUpload `xml:"AbortIncompleteMultipartUpload,omitempty"`
	}
	w := wireRule{ID: r.ID, Status: r.Status, Filter: r.Filter}
	if !r.Expiration.IsNull() {
		w.Expiration = &r.Expiration
	}
	if !r.Transition.IsNull() {
		w.Transition = &r.Transition
	}
	if !r.NoncurrentVersionExpiration.IsNull() {
		w.NoncurrentVersionExpiration = &r.NoncurrentVersionExpiration
	}
	if !r.NoncurrentVersionTransition.IsNull() {
		w.NoncurrentVersionTransition = &r.NoncurrentVersionTransition
	}
	if !r.AbortIncompleteMultipartUpload.IsNull() {
		w.AbortIncompleteMultipartUpload = &r.AbortIncompleteMultipartUpload
	}
	start.Name = xml.Name{Local: "Rule"}
	return e.EncodeElement(w, start)
}
