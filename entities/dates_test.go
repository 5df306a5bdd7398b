package entities

import (
	"testing"
	"time"
)

func TestParseDateEmptyIsNull(t *testing.T) {
	for _, input := range []string{"", "   "} {
		d, err := ParseDate(input)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", input, err)
		}
		if d.Valid {
			t.Errorf("ParseDate(%q) should be null", input)
		}
	}
}

func TestParseDateLayouts(t *testing.T) {
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, input := range []string{"2026-03-15", "2026-03-15T10:30:00Z", "3/15/2026"} {
		d, err := ParseDate(input)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", input, err)
		}
		if !d.Valid || !d.Time.Equal(want) {
			t.Errorf("ParseDate(%q) = %v", input, d.Time)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestDateRoundTrip(t *testing.T) {
	original := NewDate(time.Date(2026, 8, 24, 13, 45, 0, 0, time.Local))

	v, err := original.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	var scanned Date
	if err := scanned.Scan(v); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !scanned.Valid || scanned.String() != "2026-08-24" {
		t.Errorf("round trip gave %q", scanned.String())
	}
}

func TestDateScanTolerant(t *testing.T) {
	var d Date
	if err := d.Scan(nil); err != nil || d.Valid {
		t.Errorf("nil scan: err=%v valid=%v", err, d.Valid)
	}
	if err := d.Scan(""); err != nil || d.Valid {
		t.Errorf("empty string scan: err=%v valid=%v", err, d.Valid)
	}
	// malformed stored text reads as null rather than failing the row
	if err := d.Scan("banana"); err != nil || d.Valid {
		t.Errorf("malformed scan: err=%v valid=%v", err, d.Valid)
	}
	if err := d.Scan(time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)); err != nil || !d.Valid {
		t.Fatalf("time scan: err=%v valid=%v", err, d.Valid)
	}
	if d.String() != "2026-01-02" {
		t.Errorf("time scan gave %q", d.String())
	}
}

func TestDateNullValue(t *testing.T) {
	v, err := (Date{}).Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != nil {
		t.Errorf("null date stored as %v, want NULL", v)
	}
}

func TestDateJSON(t *testing.T) {
	b, err := (Date{}).MarshalJSON()
	if err != nil || string(b) != "null" {
		t.Errorf("null date json = %s, err=%v", b, err)
	}
	b, err = NewDate(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)).MarshalJSON()
	if err != nil || string(b) != `"2026-05-01"` {
		t.Errorf("date json = %s, err=%v", b, err)
	}
}

func TestDateTimeRoundTrip(t *testing.T) {
	original := Now()
	v, err := original.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	var scanned DateTime
	if err := scanned.Scan(v); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !scanned.Valid || !scanned.Time.Equal(original.Time) {
		t.Errorf("round trip: got %v, want %v", scanned.Time, original.Time)
	}
}

func TestDateTimeScanLegacyFormats(t *testing.T) {
	var d DateTime
	if err := d.Scan("2026-08-24 13:45:00"); err != nil || !d.Valid {
		t.Errorf("legacy layout scan: err=%v valid=%v", err, d.Valid)
	}
	if err := d.Scan(""); err != nil || d.Valid {
		t.Errorf("empty scan: err=%v valid=%v", err, d.Valid)
	}
}
