package notification

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

// EventType is one member of the s3:* event name set.
type EventType string

// Event types understood by bucket notification targets.
const (
	ObjectCreatedAll                     EventType = "s3:ObjectCreated:*"
	ObjectCreatedPut                     EventType = "s3:ObjectCreated:Put"
	ObjectCreatedPost                    EventType = "s3:ObjectCreated:Post"
	ObjectCreatedCopy                    EventType = "s3:ObjectCreated:Copy"
	ObjectCreatedCompleteMultipartUpload EventType = "s3:ObjectCreated:CompleteMultipartUpload"
	ObjectAccessedGet                    EventType = "s3:ObjectAccessed:Get"
	ObjectAccessedHead                   EventType = "s3:ObjectAccessed:Head"
	ObjectAccessedAll                    EventType = "s3:ObjectAccessed:*"
	ObjectRemovedAll                     EventType = "s3:ObjectRemoved:*"
	ObjectRemovedDelete                  EventType = "s3:ObjectRemoved:Delete"
	ObjectRemovedDeleteMarkerCreated     EventType = "s3:ObjectRemoved:DeleteMarkerCreated"
	ObjectReducedRedundancyLostObject    EventType = "s3:ReducedRedundancyLostObject"
	ObjectRestorePost                    EventType = "s3:ObjectRestore:Post"
	ObjectRestoreCompleted               EventType = "s3:ObjectRestore:Completed"
	ObjectReplicationAll                 EventType = "s3:Replication:*"
	ObjectReplicationFailed              EventType = "s3:Replication:OperationFailedReplication"
	ObjectReplicationComplete            EventType = "s3:Replication:OperationCompletedReplication"
	ObjectReplicationMissedThreshold     EventType = "s3:Replication:OperationMissedThreshold"
	ObjectReplicatedAfterThreshold       EventType = "s3:Replication:OperationReplicatedAfterThreshold"
	ObjectTaggingAll                     EventType = "s3:ObjectTagging:*"
	ObjectTaggingPut                     EventType = "s3:ObjectTagging:Put"
	ObjectTaggingDelete                  EventType = "s3:ObjectTagging:Delete"
	BucketCreatedAll                     EventType = "s3:BucketCreated:*"
	BucketRemovedAll                     EventType = "s3:BucketRemoved:*"
)

// Errors returned by configuration mutations.
var (
	ErrDuplicateConfig = errors.New("notification: target with overlapping ARN and events already present")
	ErrNoEvents        = errors.New("notification: configuration carries no events")
	ErrInvalidArn      = errors.New("notification: malformed ARN")
)

// Arn is the parsed form of arn:partition:service:region:account:resource.
type Arn struct {
	Partition string
	Service   string
	Region    string
	AccountID string
	Resource  string
}

// NewArn builds an Arn from its parts.
func NewArn(partition, service, region, accountID, resource string) Arn {
	return Arn{
		Partition: partition,
		Service:   service,
		Region:    region,
		AccountID: accountID,
		Resource:  resource,
	}
}

// ParseArn parses the string form. The resource part may itself contain
// colons; everything after the fifth separator belongs to it.
func ParseArn(s string) (Arn, error) {
	if !strings.HasPrefix(s, "arn:") {
		return Arn{}, fmt.Errorf("%w: %q", ErrInvalidArn, s)
	}
	parts := strings.SplitN(s, ":", 6)
	if len(parts) != 6 || parts[5] == "" {
		return Arn{}, fmt.Errorf("%w: %q", ErrInvalidArn, s)
	}
	return Arn{
		Partition: parts[1],
		Service:   parts[2],
		Region:    parts[3],
		AccountID: parts[4],
		Resource:  parts[5],
	}, nil
}

// String returns the canonical string form.
func (a Arn) String() string {
	return "arn:" + a.Partition + ":" + a.Service + ":" + a.Region + ":" +
		a.AccountID + ":" + a.Resource
}

// FilterRule is one name/value pair inside an S3Key filter. Name is either
// "prefix" or "suffix".
type FilterRule struct {
	Name  string `xml:"Name"`
	Value string `xml:"Value"`
}

// S3Key wraps the filter rules of a target configuration.
type S3Key struct {
	FilterRules []FilterRule `xml:"FilterRule,omitempty"`
}

// Filter wraps the key filter.
type Filter struct {
	S3Key S3Key `xml:"S3Key,omitempty"`
}

// Config is the target-independent part of a notification binding: an ID,
// an event list and optional key filters.
type Config struct {
	ID     string      `xml:"Id,omitempty"`
	Arn    Arn         `xml:"-"`
	Events []EventType `xml:"Event"`
	Filter *Filter     `xml:"Filter,omitempty"`
}

// NewConfig returns a Config bound to the given target ARN.
func NewConfig(arn Arn) Config {
	return Config{Arn: arn}
}

// AddEvents appends event types, skipping ones already present.
func (c *Config) AddEvents(events ...EventType) {
	for _, ev := range events {
		found := false
		for _, existing := range c.Events {
			if existing == ev {
				found = true
				break
			}
		}
		if !found {
			c.Events = append(c.Events, ev)
		}
	}
}

// AddFilterRule appends a filter rule, replacing an existing rule of the
// same name.
func (c *Config) AddFilterRule(rule FilterRule) {
	if c.Filter == nil {
		c.Filter = &Filter{}
	}
	for i, existing := range c.Filter.S3Key.FilterRules {
		if existing.Name == rule.Name {
			c.Filter.S3Key.FilterRules[i] = rule
			return
		}
	}
	c.Filter.S3Key.FilterRules = append(c.Filter.S3Key.FilterRules, rule)
}

// AddFilterPrefix sets the prefix filter.
func (c *Config) AddFilterPrefix(prefix string) {
	c.AddFilterRule(FilterRule{Name: "prefix", Value: prefix})
}

// AddFilterSuffix sets the suffix filter.
func (c *Config) AddFilterSuffix(suffix string) {
	c.AddFilterRule(FilterRule{Name: "suffix", Value: suffix})
}

func (c Config) prefix() string { return c.filterValue("prefix") }
func (c Config) suffix() string { return c.filterValue("suffix") }

func (c Config) filterValue(name string) string {
	if c.Filter == nil {
		return ""
	}
	for _, r := range c.Filter.S3Key.FilterRules {
		if r.Name == name {
			return r.Value
		}
	}
	return ""
}

// Equal reports whether the config targets the same ARN with the same
// events and filters.
func (c Config) Equal(events []EventType, prefix, suffix string) bool {
	if c.prefix() != prefix || c.suffix() != suffix {
		return false
	}
	if len(c.Events) != len(events) {
		return false
	}
	want := make(map[EventType]struct{}, len(events))
	for _, ev := range events {
		want[ev] = struct{}{}
	}
	for _, ev := range c.Events {
		if _, ok := want[ev]; !ok {
			return false
		}
	}
	return true
}

func (c Config) validate() error {
	if len(c.Events) == 0 {
		return ErrNoEvents
	}
	return nil
}

// QueueConfig binds events to an SQS-compatible queue.
type QueueConfig struct {
	Config
	Queue string `xml:"Queue"`
}

// TopicConfig binds events to an SNS-compatible topic.
type TopicConfig struct {
	Config
	Topic string `xml:"Topic"`
}

// LambdaConfig binds events to a lambda / cloud function target.
type LambdaConfig struct {
	Config
	Lambda string `xml:"CloudFunction"`
}

// Configuration is the <NotificationConfiguration> document.
type Configuration struct {
	XMLName       xml.Name       `xml:"NotificationConfiguration"`
	Xmlns         string         `xml:"xmlns,attr,omitempty"`
	QueueConfigs  []QueueConfig  `xml:"QueueConfiguration"`
	TopicConfigs  []TopicConfig  `xml:"TopicConfiguration"`
	LambdaConfigs []LambdaConfig `xml:"CloudFunctionConfiguration"`
}

// Empty reports whether no targets are configured.
func (c *Configuration) Empty() bool {
	return len(c.QueueConfigs) == 0 && len(c.TopicConfigs) == 0 && len(c.LambdaConfigs) == 0
}

// AddQueue appends a queue binding, rejecting a duplicate of an existing
// binding with the same ARN, events and filters.
func (c *Configuration) AddQueue(config Config) error {
	if err := config.validate(); err != nil {
		return err
	}
	for _, existing := range c.QueueConfigs {
		if existing.Queue == config.Arn.String() &&
			existing.Equal(config.Events, config.prefix(), config.suffix()) {
			return fmt.Errorf("%w: %s", ErrDuplicateConfig, config.Arn)
		}
	}
	c.QueueConfigs = append(c.QueueConfigs, QueueConfig{
		Config: config,
		Queue:  config.Arn.String(),
	})
	return nil
}

// AddTopic appends a topic binding with the same duplicate rules as
// AddQueue.
func (c *Configuration) AddTopic(config Config) error {
	if err := config.validate(); err != nil {
		return err
	}
	for _, existing := range c.TopicConfigs {
		if existing.Topic == config.Arn.String() &&
			existing.Equal(config.Events, config.prefix(), config.suffix()) {
			return fmt.Errorf("%w: %s", ErrDuplicateConfig, config.Arn)
		}
	}
	c.TopicConfigs = append(c.TopicConfigs, TopicConfig{
		Config: config,
		Topic:  config.Arn.String(),
	})
	return nil
}

// AddLambda appends a lambda binding with the same duplicate rules as
// AddQueue.
func (c *Configuration) AddLambda(config Config) error {
	if err := config.validate(); err != nil {
		return err
	}
	for _, existing := range c.LambdaConfigs {
		if existing.Lambda == config.Arn.String() &&
			existing.Equal(config.Events, config.prefix(), config.suffix()) {
			return fmt.Errorf("%w: %s", ErrDuplicateConfig, config.Arn)
		}
	}
	c.LambdaConfigs = append(c.LambdaConfigs, LambdaConfig{
		Config: config,
		Lambda: config.Arn.String(),
	})
	return nil
}

// RemoveQueueByArnEventsPrefixSuffix removes the queue binding matching the
// exact ARN, event set and filters.
func (c *Configuration) RemoveQueueByArnEventsPrefixSuffix(arn Arn, events []EventType, prefix, suffix string) error {
	for i, existing := range c.QueueConfigs {
		if existing.Queue == arn.String() && existing.Equal(events, prefix, suffix) {
			c.QueueConfigs = append(c.QueueConfigs[:i], c.QueueConfigs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("notification: no queue binding for %s with the given events and filters", arn)
}

// RemoveTopicByArnEventsPrefixSuffix removes the matching topic binding.
func (c *Configuration) RemoveTopicByArnEventsPrefixSuffix(arn Arn, events []EventType, prefix, suffix string) error {
	for i, existing := range c.TopicConfigs {
		if existing.Topic == arn.String() && existing.Equal(events, prefix, suffix) {
			c.TopicConfigs = append(c.TopicConfigs[:i], c.TopicConfigs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("notification: no topic binding for %s with the given events and filters", arn)
}

// RemoveLambdaByArnEventsPrefixSuffix removes the matching lambda binding.
func (c *Configuration) RemoveLambdaByArnEventsPrefixSuffix(arn Arn, events []EventType, prefix, suffix string) error {
	for i, existing := range c.LambdaConfigs {
		if existing.Lambda == arn.String() && existing.Equal(events, prefix, suffix) {
			c.LambdaConfigs = append(c.LambdaConfigs[:i], c.LambdaConfigs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("notification: no lambda binding for %s with the given events and filters", arn)
}
