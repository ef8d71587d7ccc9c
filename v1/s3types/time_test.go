package s3types

import (
	"encoding/xml"
	"testing"
	"time"
)

func TestParseISO8601_CanonicalForm(t *testing.T) {
	got, err := ParseISO8601("2009-10-12T17:50:30.000Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2009, 10, 12, 17, 50, 30, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseISO8601_Variants(t *testing.T) {
	variants := []string{
		"2009-10-12T17:50:30Z",
		"2009-10-12T17:50:30.123456789Z",
		"2009-10-12T17:50:30+00:00",
		"2009-10-12",
	}
	for _, v := range variants {
		if _, err := ParseISO8601(v); err != nil {
			t.Errorf("expected %q to parse, got %v", v, err)
		}
	}
}

func TestParseISO8601_Invalid(t *testing.T) {
	for _, v := range []string{"", "   ", "12 Oct 2009", "2009/10/12"} {
		if _, err := ParseISO8601(v); err == nil {
			t.Errorf("expected %q to fail", v)
		}
	}
}

func TestFormatISO8601_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	in := time.Date(2021, 3, 1, 13, 0, 0, 0, loc)
	got := FormatISO8601(in)
	if got != "2021-03-01T12:00:00.000Z" {
		t.Errorf("expected UTC wire form, got %q", got)
	}
}

func TestISO8601Time_XMLRoundTrip(t *testing.T) {
	type doc struct {
		XMLName      xml.Name    `xml:"Doc"`
		LastModified ISO8601Time `xml:"LastModified"`
	}
	in := doc{LastModified: ISO8601Time(time.Date(2020, 6, 5, 4, 3, 2, 0, time.UTC))}

	data, err := xml.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out doc
	if err := xml.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.LastModified.Time().Equal(in.LastModified.Time()) {
		t.Errorf("round trip changed value: %v != %v", out.LastModified, in.LastModified)
	}
}

func TestISO8601Time_EmptyElementDecodesToZero(t *testing.T) {
	type doc struct {
		XMLName      xml.Name    `xml:"Doc"`
		LastModified ISO8601Time `xml:"LastModified"`
	}
	var out doc
	if err := xml.Unmarshal([]byte("<Doc><LastModified></LastModified></Doc>"), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.LastModified.IsZero() {
		t.Errorf("expected zero time, got %v", out.LastModified)
	}
}
