package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.July, 4)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(b) != `"2026-07-04"` {
		t.Fatalf("Marshal = %s, want \"2026-07-04\"", b)
	}

	var parsed Date
	if err := json.Unmarshal(b, &parsed); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !parsed.Equal(d.Time) {
		t.Fatalf("round-trip = %v, want %v", parsed, d)
	}
}

func TestDate_UnmarshalJSON_RejectsBadFormats(t *testing.T) {
	inputs := []string{
		`"04.07.2026"`,
		`"2026-07-04T10:00:00Z"`,
		`"not a date"`,
		`42`,
	}

	for _, input := range inputs {
		var d Date
		if err := json.Unmarshal([]byte(input), &d); err == nil {
			t.Errorf("Unmarshal(%s): expected error, got nil", input)
		}
	}
}

func TestDate_DaysUntil(t *testing.T) {
	base := NewDate(2026, time.January, 31)

	if got := base.DaysUntil(NewDate(2026, time.February, 1)); got != 1 {
		t.Fatalf("DaysUntil next day = %d, want 1", got)
	}
	if got := base.DaysUntil(NewDate(2026, time.January, 31)); got != 0 {
		t.Fatalf("DaysUntil same day = %d, want 0", got)
	}
	if got := base.DaysUntil(NewDate(2026, time.January, 1)); got != -30 {
		t.Fatalf("DaysUntil past day = %d, want -30", got)
	}
}

func TestDateOf_TruncatesToMidnightUTC(t *testing.T) {
	moment := time.Date(2026, time.August, 29, 23, 59, 58, 0, time.UTC)

	d := DateOf(moment)
	if d.String() != "2026-08-29" {
		t.Fatalf("DateOf = %q, want 2026-08-29", d.String())
	}
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
		t.Fatalf("expected midnight, got %v", d.Time)
	}
}

func TestDate_Scan(t *testing.T) {
	want := NewDate(2026, time.March, 15)

	tests := []struct {
		name string
		src  any
	}{
		{name: "time.Time", src: time.Date(2026, time.March, 15, 12, 30, 0, 0, time.UTC)},
		{name: "string", src: "2026-03-15"},
		{name: "bytes", src: []byte("2026-03-15")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := d.Scan(tt.src); err != nil {
				t.Fatalf("Scan error: %v", err)
			}
			if !d.Equal(want.Time) {
				t.Fatalf("Scan = %v, want %v", d, want)
			}
		})
	}
}

func TestDate_Scan_UnsupportedType(t *testing.T) {
	var d Date
	if err := d.Scan(42); err == nil {
		t.Fatal("expected error scanning int, got nil")
	}
}
