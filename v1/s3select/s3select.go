package s3select

import (
	"encoding/xml"
	"errors"
)

// ExpressionType identifies the query language of a select expression.
type ExpressionType string

// Expression types. Only SQL is defined by the protocol.
const ExpressionTypeSQL ExpressionType = "SQL"

// CompressionType names the input compression.
type CompressionType string

// Input compression types.
const (
	CompressionNone  CompressionType = "NONE"
	CompressionGzip  CompressionType = "GZIP"
	CompressionBzip2 CompressionType = "BZIP2"
)

// FileHeaderInfo controls how the first CSV record is treated.
type FileHeaderInfo string

// CSV header handling modes.
const (
	FileHeaderNone   FileHeaderInfo = "NONE"
	FileHeaderIgnore FileHeaderInfo = "IGNORE"
	FileHeaderUse    FileHeaderInfo = "USE"
)

// JSONType selects the JSON document layout.
type JSONType string

// JSON input layouts.
const (
	JSONDocument JSONType = "DOCUMENT"
	JSONLines    JSONType = "LINES"
)

// QuoteFields controls quoting of CSV output fields.
type QuoteFields string

// CSV output quoting modes.
const (
	QuoteFieldsAlways   QuoteFields = "ALWAYS"
	QuoteFieldsAsNeeded QuoteFields = "ASNEEDED"
)

// Validation errors.
var (
	ErrEmptyExpression  = errors.New("s3select: expression cannot be empty")
	ErrInputFormat      = errors.New("s3select: input serialization must set exactly one of CSV, JSON or Parquet")
	ErrOutputFormat     = errors.New("s3select: output serialization must set exactly one of CSV or JSON")
	ErrInvalidScanRange = errors.New("s3select: scan range bounds must be non-negative and ordered")
)

// CSVInput configures CSV input parsing.
type CSVInput struct {
	FileHeaderInfo             FileHeaderInfo `xml:"FileHeaderInfo,omitempty"`
	RecordDelimiter            string         `xml:"RecordDelimiter,omitempty"`
	FieldDelimiter             string         `xml:"FieldDelimiter,omitempty"`
	QuoteCharacter             string         `xml:"QuoteCharacter,omitempty"`
	QuoteEscapeCharacter       string         `xml:"QuoteEscapeCharacter,omitempty"`
	Comments                   string         `xml:"Comments,omitempty"`
	AllowQuotedRecordDelimiter bool           `xml:"AllowQuotedRecordDelimiter,omitempty"`
}

// JSONInput configures JSON input parsing.
type JSONInput struct {
	Type JSONType `xml:"Type,omitempty"`
}

// ParquetInput marks Parquet input; it carries no options.
type ParquetInput struct{}

// InputSerialization selects and configures the input format.
type InputSerialization struct {
	CompressionType CompressionType `xml:"CompressionType,omitempty"`
	CSV             *CSVInput       `xml:"CSV,omitempty"`
	JSON            *JSONInput      `xml:"JSON,omitempty"`
	Parquet         *ParquetInput   `xml:"Parquet,omitempty"`
}

// Validate checks that exactly one format is selected.
func (i InputSerialization) Validate() error {
	set := 0
	if i.CSV != nil {
		set++
	}
	if i.JSON != nil {
		set++
	}
	if i.Parquet != nil {
		set++
	}
	if set != 1 {
		return ErrInputFormat
	}
	return nil
}

// CSVOutput configures CSV result encoding.
type CSVOutput struct {
	QuoteFields          QuoteFields `xml:"QuoteFields,omitempty"`
	RecordDelimiter      string      `xml:"RecordDelimiter,omitempty"`
	FieldDelimiter       string      `xml:"FieldDelimiter,omitempty"`
	QuoteCharacter       string      `xml:"QuoteCharacter,omitempty"`
	QuoteEscapeCharacter string      `xml:"QuoteEscapeCharacter,omitempty"`
}

// JSONOutput configures JSON result encoding.
type JSONOutput struct {
	RecordDelimiter string `xml:"RecordDelimiter,omitempty"`
}

// OutputSerialization selects and configures the result format.
type OutputSerialization struct {
	CSV  *CSVOutput  `xml:"CSV,omitempty"`
	JSON *JSONOutput `xml:"JSON,omitempty"`
}

// Validate checks that exactly one format is selected.
func (o OutputSerialization) Validate() error {
	if (o.CSV != nil) == (o.JSON != nil) {
		return ErrOutputFormat
	}
	return nil
}

// RequestProgress enables periodic progress frames in the response stream.
type RequestProgress struct {
	Enabled bool `xml:"Enabled"`
}

// ScanRange restricts the query to a byte range of the object. End is
// exclusive; a zero End means "to the end of the object".
type ScanRange struct {
	Start int64 `xml:"Start,omitempty"`
	End   int64 `xml:"End,omitempty"`
}

// Validate checks range ordering.
func (s ScanRange) Validate() error {
	if s.Start < 0 || s.End < 0 {
		return ErrInvalidScanRange
	}
	if s.End != 0 && s.End < s.Start {
		return ErrInvalidScanRange
	}
	return nil
}

// Request is the <SelectObjectContentRequest> document.
type Request struct {
	XMLName             xml.Name            `xml:"SelectObjectContentRequest"`
	Expression          string              `xml:"Expression"`
	ExpressionType      ExpressionType      `xml:"ExpressionType"`
	RequestProgress     RequestProgress     `xml:"RequestProgress"`
	InputSerialization  InputSerialization  `xml:"InputSerialization"`
	OutputSerialization OutputSerialization `xml:"OutputSerialization"`
	ScanRange           *ScanRange          `xml:"ScanRange,omitempty"`
}

// NewRequest builds a validated SQL select request.
func NewRequest(expression string, input InputSerialization, output OutputSerialization) (*Request, error) {
	req := &Request{
		Expression:          expression,
		ExpressionType:      ExpressionTypeSQL,
		InputSerialization:  input,
		OutputSerialization: output,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// Validate checks the expression and both serialization sections.
func (r *Request) Validate() error {
	if r.Expression == "" {
		return ErrEmptyExpression
	}
	if err := r.InputSerialization.Validate(); err != nil {
		return err
	}
	if err := r.OutputSerialization.Validate(); err != nil {
		return err
	}
	if r.ScanRange != nil {
		return r.ScanRange.Validate()
	}
	return nil
}

// Progress is the payload of a Progress frame.
type Progress struct {
	XMLName        xml.Name `xml:"Progress"`
	BytesScanned   int64    `xml:"BytesScanned"`
	BytesProcessed int64    `xml:"BytesProcessed"`
	BytesReturned  int64    `xml:"BytesReturned"`
}

// Stats is the payload of the final Stats frame.
type Stats struct {
	XMLName        xml.Name `xml:"Stats"`
	BytesScanned   int64    `xml:"BytesScanned"`
	BytesProcessed int64    `xml:"BytesProcessed"`
	BytesReturned  int64    `xml:"BytesReturned"`
}

// ParseProgress decodes a Progress frame payload.
func ParseProgress(data []byte) (Progress, error) {
	var p Progress
	err := xml.Unmarshal(data, &p)
	return p, err
}

// ParseStats decodes a Stats frame payload.
func ParseStats(data []byte) (Stats, error) {
	var s Stats
	err := xml.Unmarshal(data, &s)
	return s, err
}
