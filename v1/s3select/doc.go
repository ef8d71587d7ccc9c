// Package s3select models the select-object-content request document and
// the Progress/Stats payloads returned inside the response event stream.
// The stream framing itself is transport-level and handled elsewhere; this
// package only builds and validates the XML bodies.
//
//	req, err := s3select.NewRequest("select s.name from S3Object s",
//	    s3select.InputSerialization{CSV: &s3select.CSVInput{FileHeaderInfo: s3select.FileHeaderUse}},
//	    s3select.OutputSerialization{JSON: &s3select.JSONOutput{}},
//	)
//
// NewRequest rejects requests that do not pick exactly one input format
// and exactly one output format.
package s3select
