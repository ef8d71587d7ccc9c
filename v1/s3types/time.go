package s3types

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// Wire date formats used by S3-compatible services.
const (
	// ISO8601Format is the canonical timestamp format in XML payloads,
	// e.g. <LastModified>2009-10-12T17:50:30.000Z</LastModified>.
	ISO8601Format = "2006-01-02T15:04:05.000Z"

	// ISO8601DateFormat is the date-only form used by lifecycle rules.
	ISO8601DateFormat = "2006-01-02"

	// AmzDateFormat is the compact form used in X-Amz-Date style values.
	AmzDateFormat = "20060102T150405Z"
)

// iso8601ParseLayouts are the layouts accepted when decoding timestamps.
// Non-AWS implementations vary in sub-second precision and zone suffix.
var iso8601ParseLayouts = []string{
	ISO8601Format,
	"2006-01-02T15:04:05.999999999Z07:00", // RFC3339 with nanoseconds
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05Z07:00",
	ISO8601DateFormat,
}

// ParseISO8601 parses a wire timestamp, accepting the precision and zone
// variants produced by common S3-compatible implementations.
func ParseISO8601(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, fmt.Errorf("s3types: empty timestamp")
	}
	for _, layout := range iso8601ParseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("s3types: unrecognized timestamp %q", value)
}

// FormatISO8601 formats a time in the canonical wire format (UTC,
// millisecond precision).
func FormatISO8601(t time.Time) string {
	return t.UTC().Format(ISO8601Format)
}

// ISO8601Time is a time.Time that round-trips through XML in the S3 wire
// format. Marshalling always emits the canonical millisecond-precision UTC
// form; unmarshalling is tolerant (see ParseISO8601). An empty element
// decodes to the zero time.
type ISO8601Time time.Time

// Time returns the underlying time.Time.
func (t ISO8601Time) Time() time.Time { return time.Time(t) }

// IsZero reports whether the timestamp is the zero time.
func (t ISO8601Time) IsZero() bool { return time.Time(t).IsZero() }

// String implements fmt.Stringer using the canonical wire format.
func (t ISO8601Time) String() string { return FormatISO8601(time.Time(t)) }

// MarshalXML implements xml.Marshaler.
func (t ISO8601Time) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(FormatISO8601(time.Time(t)), start)
}

// UnmarshalXML implements xml.Unmarshaler.
func (t *ISO8601Time) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*t = ISO8601Time(time.Time{})
		return nil
	}
	parsed, err := ParseISO8601(s)
	if err != nil {
		return err
	}
	*t = ISO8601Time(parsed)
	return nil
}

// MarshalXMLAttr implements xml.MarshalerAttr so the type can also be used
// in attribute position.
func (t ISO8601Time) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return xml.Attr{Name: name, Value: FormatISO8601(time.Time(t))}, nil
}
