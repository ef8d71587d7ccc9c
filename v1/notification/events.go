package notification

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// identity is the principal that triggered an event.
type identity struct {
	PrincipalID string `json:"principalId"`
}

// bucketMeta identifies the bucket an event happened in.
type bucketMeta struct {
	Name          string   `json:"name"`
	OwnerIdentity identity `json:"ownerIdentity"`
	Arn           string   `json:"arn"`
}

// objectMeta identifies the object an event happened to.
type objectMeta struct {
	Key          string            `json:"key"`
	Size         int64             `json:"size,omitempty"`
	ETag         string            `json:"eTag,omitempty"`
	ContentType  string            `json:"contentType,omitempty"`
	UserMetadata map[string]string `json:"userMetadata,omitempty"`
	VersionID    string            `json:"versionId,omitempty"`
	Sequencer    string            `json:"sequencer"`
}

// eventMeta is the s3 section of an event record.
type eventMeta struct {
	SchemaVersion   string     `json:"s3SchemaVersion"`
	ConfigurationID string     `json:"configurationId"`
	Bucket          bucketMeta `json:"bucket"`
	Object          objectMeta `json:"object"`
}

// sourceInfo describes the request origin of an event.
type sourceInfo struct {
	Host      string `json:"host"`
	Port      string `json:"port"`
	UserAgent string `json:"userAgent"`
}

// Event is one notification record as delivered to targets.
type Event struct {
	EventVersion      string            `json:"eventVersion"`
	EventSource       string            `json:"eventSource"`
	AwsRegion         string            `json:"awsRegion"`
	EventTime         string            `json:"eventTime"`
	EventName         string            `json:"eventName"`
	UserIdentity      identity          `json:"userIdentity"`
	RequestParameters map[string]string `json:"requestParameters"`
	ResponseElements  map[string]string `json:"responseElements"`
	S3                eventMeta         `json:"s3"`
	Source            sourceInfo        `json:"source"`
}

// Info is the Records envelope wrapping one or more events, plus the error
// field some listen-notification streams attach.
type Info struct {
	Records []Event `json:"Records"`
	Err     error   `json:"-"`
}

// ParseEvents decodes a single Records document.
func ParseEvents(data []byte) (Info, error) {
	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return Info{}, err
	}
	return info, nil
}

// DecodeEvents reads newline-delimited Records documents from r until EOF
// or a decode error, invoking fn for each. fn returning false stops the
// loop without error.
func DecodeEvents(r io.Reader, fn func(Info) bool) error {
	dec := json.NewDecoder(r)
	for {
		var info Info
		if err := dec.Decode(&info); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if !fn(info) {
			return nil
		}
	}
}
