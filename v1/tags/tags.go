package tags

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"unicode/utf8"
)

// Protocol limits for tag sets.
const (
	maxKeyLength     = 128
	maxValueLength   = 256
	maxObjectTagSize = 10
	maxBucketTagSize = 50
)

// Errors returned by tag validation.
var (
	errTooManyObjectTags = fmt.Errorf("tags: object tag set exceeds %d tags", maxObjectTagSize)
	errTooManyBucketTags = fmt.Errorf("tags: bucket tag set exceeds %d tags", maxBucketTagSize)
	errDuplicateTagKey   = fmt.Errorf("tags: duplicate tag key")
	errInvalidTagKey     = fmt.Errorf("tags: tag key must be 1-%d characters", maxKeyLength)
	errInvalidTagValue   = fmt.Errorf("tags: tag value must be at most %d characters", maxValueLength)
)

// Tag is a single key/value pair.
type Tag struct {
	Key   string `xml:"Key"`
	Value string `xml:"Value"`
}

// Validate checks the protocol limits for a single tag.
func (t Tag) Validate() error {
	if n := utf8.RuneCountInString(t.Key); n == 0 || n > maxKeyLength {
		return fmt.Errorf("%w: %q", errInvalidTagKey, t.Key)
	}
	if utf8.RuneCountInString(t.Value) > maxValueLength {
		return fmt.Errorf("%w: key %q", errInvalidTagValue, t.Key)
	}
	return nil
}

// TagSet is the <Tagging> document exchanged by the PUT/GET tagging calls.
// isObject controls which size limit applies; it is not part of the wire
// format. New and Parse set it from their argument; sets decoded straight
// from XML default to the bucket limit until ScopeToObject is called.
type TagSet struct {
	XMLName  xml.Name `xml:"Tagging"`
	Xmlns    string   `xml:"xmlns,attr,omitempty"`
	TagList  []Tag    `xml:"TagSet>Tag"`
	isObject bool
}

// New builds a validated TagSet from a map. Keys are sorted so the wire form
// is deterministic. isObject selects the object tag limit (10) over the
// bucket limit (50).
func New(tagMap map[string]string, isObject bool) (*TagSet, error) {
	set := &TagSet{isObject: isObject}
	keys := make([]string, 0, len(tagMap))
	for k := range tagMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		set.TagList = append(set.TagList, Tag{Key: k, Value: tagMap[k]})
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// ScopeToObject applies the object tag limit (10) to later Validate calls.
// Needed on sets decoded from XML, which cannot tell the two documents
// apart on the wire.
func (s *TagSet) ScopeToObject() {
	s.isObject = true
}

// Parse decodes the URL-encoded header form ("k1=v1&k2=v2") into a
// validated TagSet.
func Parse(encoded string, isObject bool) (*TagSet, error) {
	values, err := url.ParseQuery(encoded)
	if err != nil {
		return nil, fmt.Errorf("tags: invalid encoded tag set: %w", err)
	}
	tagMap := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 1 {
			return nil, fmt.Errorf("%w: %q", errDuplicateTagKey, k)
		}
		value := ""
		if len(v) == 1 {
			value = v[0]
		}
		tagMap[k] = value
	}
	return New(tagMap, isObject)
}

// Validate checks all tags and set-level invariants.
func (s *TagSet) Validate() error {
	limit := maxBucketTagSize
	limitErr := errTooManyBucketTags
	if s.isObject {
		limit = maxObjectTagSize
		limitErr = errTooManyObjectTags
	}
	if len(s.TagList) > limit {
		return limitErr
	}
	seen := make(map[string]struct{}, len(s.TagList))
	for _, t := range s.TagList {
		if err := t.Validate(); err != nil {
			return err
		}
		if _, dup := seen[t.Key]; dup {
			return fmt.Errorf("%w: %q", errDuplicateTagKey, t.Key)
		}
		seen[t.Key] = struct{}{}
	}
	return nil
}

// ToMap returns the tags as a map.
func (s *TagSet) ToMap() map[string]string {
	m := make(map[string]string, len(s.TagList))
	for _, t := range s.TagList {
		m[t.Key] = t.Value
	}
	return m
}

// String returns the URL-encoded header form, keys sorted.
func (s *TagSet) String() string {
	var b strings.Builder
	list := make([]Tag, len(s.TagList))
	copy(list, s.TagList)
	sort.Slice(list, func(i, j int) bool { return list[i].Key < list[j].Key })
	for i, t := range list {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(t.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(t.Value))
	}
	return b.String()
}

// Count returns the number of tags in the set.
func (s *TagSet) Count() int { return len(s.TagList) }
