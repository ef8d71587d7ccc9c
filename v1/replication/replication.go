package replication

import (
	"encoding/xml"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/stratal/objstore/v1/tags"
)

// Status toggles a rule or a rule sub-feature.
type Status string

// Rule statuses.
const (
	Enabled  Status = "Enabled"
	Disabled Status = "Disabled"
)

const bucketARNPrefix = "arn:aws:s3:::"

// Validation errors.
var (
	ErrEmptyRuleID        = errors.New("replication: rule ID cannot be empty")
	ErrRuleIDTooLong      = errors.New("replication: rule ID exceeds 255 characters")
	ErrDuplicateRuleID    = errors.New("replication: duplicate rule ID")
	ErrDuplicatePriority  = errors.New("replication: duplicate rule priority")
	ErrInvalidPriority    = errors.New("replication: priority must be an integer")
	ErrInvalidDestination = errors.New("replication: destination must be a bucket ARN (arn:aws:s3:::<bucket>)")
	ErrRuleNotFound       = errors.New("replication: rule not found")
	ErrInvalidStatus      = errors.New("replication: status must be Enabled or Disabled")
	ErrInvalidFilterTag   = errors.New("replication: invalid filter tag")
)

// Tag is a replication filter tag. It shares the tagging limits but lives
// inside <Filter> and <And> elements.
type Tag struct {
	Key   string `xml:"Key,omitempty"`
	Value string `xml:"Value,omitempty"`
}

// IsEmpty reports whether the tag is unset.
func (t Tag) IsEmpty() bool { return t.Key == "" && t.Value == "" }

func (t Tag) validate() error {
	if n := utf8.RuneCountInString(t.Key); n == 0 || n > 128 {
		return fmt.Errorf("%w: key %q", ErrInvalidFilterTag, t.Key)
	}
	if utf8.RuneCountInString(t.Value) > 256 {
		return fmt.Errorf("%w: value for key %q", ErrInvalidFilterTag, t.Key)
	}
	return nil
}

// And combines a prefix with one or more tags.
type And struct {
	XMLName xml.Name `xml:"And"`
	Prefix  string   `xml:"Prefix,omitempty"`
	Tags    []Tag    `xml:"Tag,omitempty"`
}

// IsEmpty reports whether no condition is set.
func (a And) IsEmpty() bool { return a.Prefix == "" && len(a.Tags) == 0 }

// Filter scopes a rule.
type Filter struct {
	XMLName xml.Name `xml:"Filter"`
	Prefix  string   `xml:"Prefix,omitempty"`
	Tag     Tag      `xml:"Tag,omitempty"`
	And     And      `xml:"And,omitempty"`
}

// Destination names the replication target bucket.
type Destination struct {
	XMLName      xml.Name `xml:"Destination"`
	Bucket       string   `xml:"Bucket"`
	StorageClass string   `xml:"StorageClass,omitempty"`
}

// DeleteMarkerReplication controls replication of delete markers.
type DeleteMarkerReplication struct {
	Status Status `xml:"Status"`
}

// DeleteReplication controls replication of versioned deletes. This is an
// extension element carried by several S3-compatible servers.
type DeleteReplication struct {
	Status Status `xml:"Status"`
}

// ReplicaModifications controls syncing metadata changes made on replicas.
type ReplicaModifications struct {
	Status Status `xml:"Status"`
}

// SourceSelectionCriteria wraps replica-modification sync settings.
type SourceSelectionCriteria struct {
	ReplicaModifications ReplicaModifications `xml:"ReplicaModifications"`
}

// IsValid reports whether the criteria carry a well-formed status.
func (s SourceSelectionCriteria) IsValid() bool {
	st := s.ReplicaModifications.Status
	return st == "" || st == Enabled || st == Disabled
}

// ExistingObjectReplication controls replication of objects that predate
// the rule.
type ExistingObjectReplication struct {
	Status Status `xml:"Status"`
}

// Rule is a single replication rule.
type Rule struct {
	XMLName                   xml.Name                  `xml:"Rule"`
	ID                        string                    `xml:"ID,omitempty"`
	Status                    Status                    `xml:"Status"`
	Priority                  int                       `xml:"Priority"`
	DeleteMarkerReplication   DeleteMarkerReplication   `xml:"DeleteMarkerReplication"`
	DeleteReplication         DeleteReplication         `xml:"DeleteReplication"`
	Destination               Destination               `xml:"Destination"`
	Filter                    Filter                    `xml:"Filter"`
	SourceSelectionCriteria   SourceSelectionCriteria   `xml:"SourceSelectionCriteria,omitempty"`
	ExistingObjectReplication ExistingObjectReplication `xml:"ExistingObjectReplication,omitempty"`
}

// Validate checks the rule invariants independent of the enclosing config.
func (r Rule) Validate() error {
	if r.ID == "" {
		return ErrEmptyRuleID
	}
	if len(r.ID) > 255 {
		return ErrRuleIDTooLong
	}
	if r.Status != Enabled && r.Status != Disabled {
		return ErrInvalidStatus
	}
	if !strings.HasPrefix(r.Destination.Bucket, bucketARNPrefix) ||
		r.Destination.Bucket == bucketARNPrefix {
		return ErrInvalidDestination
	}
	if !r.Filter.Tag.IsEmpty() {
		if err := r.Filter.Tag.validate(); err != nil {
			return err
		}
	}
	for _, t := range r.Filter.And.Tags {
		if err := t.validate(); err != nil {
			return err
		}
	}
	if !r.SourceSelectionCriteria.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

// Config is the <ReplicationConfiguration> document.
type Config struct {
	XMLName xml.Name `xml:"ReplicationConfiguration"`
	Xmlns   string   `xml:"xmlns,attr,omitempty"`
	Role    string   `xml:"Role,omitempty"`
	Rules   []Rule   `xml:"Rule"`
}

// Empty reports whether the config carries no rules.
func (c *Config) Empty() bool { return len(c.Rules) == 0 }

// Options describes a rule mutation for AddRule and EditRule. String fields
// keep the "unset" state distinguishable from explicit values.
type Options struct {
	ID                        string
	Priority                  string
	Prefix                    string
	RuleStatus                string
	Tags                      map[string]string
	DestBucket                string
	StorageClass              string
	ReplicateDeleteMarkers    string
	ReplicateDeletes          string
	ReplicaSync               string
	ExistingObjectReplicate   string
}

func parseStatus(s, def string) (Status, error) {
	if s == "" {
		s = def
	}
	switch strings.ToLower(s) {
	case "enable", "enabled":
		return Enabled, nil
	case "disable", "disabled":
		return Disabled, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

func (o Options) buildRule() (Rule, error) {
	if o.ID == "" {
		return Rule{}, ErrEmptyRuleID
	}
	priority, err := strconv.Atoi(o.Priority)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q", ErrInvalidPriority, o.Priority)
	}
	status, err := parseStatus(o.RuleStatus, "enable")
	if err != nil {
		return Rule{}, err
	}
	dmStatus, err := parseStatus(o.ReplicateDeleteMarkers, "disable")
	if err != nil {
		return Rule{}, err
	}
	delStatus, err := parseStatus(o.ReplicateDeletes, "disable")
	if err != nil {
		return Rule{}, err
	}
	syncStatus, err := parseStatus(o.ReplicaSync, "enable")
	if err != nil {
		return Rule{}, err
	}
	existingStatus, err := parseStatus(o.ExistingObjectReplicate, "disable")
	if err != nil {
		return Rule{}, err
	}

	var filter Filter
	ruleTags := tagsInOrder(o.Tags)
	switch {
	case len(ruleTags) == 1 && o.Prefix == "":
		filter.Tag = ruleTags[0]
	case len(ruleTags) > 0:
		filter.And = And{Prefix: o.Prefix, Tags: ruleTags}
	default:
		filter.Prefix = o.Prefix
	}

	rule := Rule{
		ID:                      o.ID,
		Priority:                priority,
		Status:                  status,
		DeleteMarkerReplication: DeleteMarkerReplication{Status: dmStatus},
		DeleteReplication:       DeleteReplication{Status: delStatus},
		Destination: Destination{
			Bucket:       o.DestBucket,
			StorageClass: o.StorageClass,
		},
		Filter: filter,
		SourceSelectionCriteria: SourceSelectionCriteria{
			ReplicaModifications: ReplicaModifications{Status: syncStatus},
		},
		ExistingObjectReplication: ExistingObjectReplication{Status: existingStatus},
	}
	if err := rule.Validate(); err != nil {
		return Rule{}, err
	}
	return rule, nil
}

// AddRule appends a new rule built from opts, rejecting ID and priority
// collisions with existing rules.
func (c *Config) AddRule(opts Options) error {
	rule, err := opts.buildRule()
	if err != nil {
		return err
	}
	for _, existing := range c.Rules {
		if existing.ID == rule.ID {
			return fmt.Errorf("%w: %q", ErrDuplicateRuleID, rule.ID)
		}
		if existing.Priority == rule.Priority {
			return fmt.Errorf("%w: %d", ErrDuplicatePriority, rule.Priority)
		}
	}
	c.Rules = append(c.Rules, rule)
	return nil
}

// EditRule replaces the rule with the matching ID. The priority may move to
// any value not held by another rule.
func (c *Config) EditRule(opts Options) error {
	rule, err := opts.buildRule()
	if err != nil {
		return err
	}
	idx := -1
	for i, existing := range c.Rules {
		if existing.ID == rule.ID {
			idx = i
			continue
		}
		if existing.Priority == rule.Priority {
			return fmt.Errorf("%w: %d", ErrDuplicatePriority, rule.Priority)
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrRuleNotFound, rule.ID)
	}
	c.Rules[idx] = rule
	return nil
}

// RemoveRule deletes the rule with the given ID.
func (c *Config) RemoveRule(id string) error {
	for i, existing := range c.Rules {
		if existing.ID == id {
			c.Rules = append(c.Rules[:i], c.Rules[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrRuleNotFound, id)
}

// Validate checks the whole config: every rule plus cross-rule uniqueness.
func (c *Config) Validate() error {
	ids := make(map[string]struct{}, len(c.Rules))
	priorities := make(map[int]struct{}, len(c.Rules))
	for _, r := range c.Rules {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("rule %q: %w", r.ID, err)
		}
		if _, dup := ids[r.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateRuleID, r.ID)
		}
		ids[r.ID] = struct{}{}
		if _, dup := priorities[r.Priority]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicatePriority, r.Priority)
		}
		priorities[r.Priority] = struct{}{}
	}
	return nil
}

// tagsInOrder converts the options map into tags with a stable order so
// rebuilt rules compare equal across runs.
func tagsInOrder(m map[string]string) []Tag {
	set, err := tags.New(m, true)
	if err != nil || set == nil {
		// Oversized or invalid sets are still emitted sorted; rule
		// validation reports the actual problem.
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]Tag, 0, len(m))
		for _, k := range keys {
			out = append(out, Tag{Key: k, Value: m[k]})
		}
		return out
	}
	out := make([]Tag, 0, set.Count())
	for _, t := range set.TagList {
		out = append(out, Tag{Key: t.Key, Value: t.Value})
	}
	return out
}
