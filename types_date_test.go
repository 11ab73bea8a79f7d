package reitfolio

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		ok   bool
	}{
		{"2024-01-15", NewDate(2024, time.January, 15), true},
		{"2024-1-5", NewDate(2024, time.January, 5), true},
		{" 2024-01-15 ", NewDate(2024, time.January, 15), true},
		{"15/01/2024", Date{}, false},
		{"not a date", Date{}, false},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("ParseDate(%q) error = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDate_ReportDateRoundTrip(t *testing.T) {
	d := NewDate(2024, time.June, 30)
	if got := d.ReportDate(); got != "30/06/2024" {
		t.Errorf("ReportDate() = %q, want 30/06/2024", got)
	}
	back, err := ParseReportDate("30/06/2024")
	if err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("ParseReportDate round trip = %s, want %s", back, d)
	}
}

func TestDate_Ordering(t *testing.T) {
	a, b := day("2024-01-01"), day("2024-02-01")
	if !a.Before(b) || b.Before(a) || !b.After(a) {
		t.Error("date ordering broken")
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("Compare broken")
	}
}

func TestDate_JSON(t *testing.T) {
	d := day("2024-01-15")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-01-15"` {
		t.Errorf("marshal = %s", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
