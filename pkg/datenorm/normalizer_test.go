package datenorm_test

import (
	"testing"
	"time"

	"order-intake/pkg/datenorm"
)

func kst(y int, mo time.Month, d, h, mi, s int) time.Time {
	return time.Date(y, mo, d, h, mi, s, 0, time.FixedZone("KST", 9*3600))
}

func TestNewNormalizer(t *testing.T) {
	if _, err := datenorm.NewNormalizer(9 * time.Hour); err != nil {
		t.Fatalf("unexpected error creating valid normalizer: %v", err)
	}
	if _, err := datenorm.NewNormalizer(15 * time.Hour); err == nil {
		t.Fatalf("expected error for out of range offset")
	}
	if _, err := datenorm.NewNormalizer(90 * time.Second); err == nil {
		t.Fatalf("expected error for sub-minute offset")
	}
}

func TestNormalizeString(t *testing.T) {
	n := datenorm.Default()

	tests := []struct {
		name     string
		input    string
		want     time.Time
		resolved bool
	}{
		{
			name:     "Dotted date with weekday and PM",
			input:    "2025.12.31.(수) 오후 2:00",
			want:     kst(2025, 12, 31, 14, 0, 0),
			resolved: true,
		},
		{
			name:     "Spaced dotted date",
			input:    "2025. 12. 31. 오후 2:00",
			want:     kst(2025, 12, 31, 14, 0, 0),
			resolved: true,
		},
		{
			name:     "AM midnight hour",
			input:    "2025. 1. 5. 오전 12:30",
			want:     kst(2025, 1, 5, 0, 30, 0),
			resolved: true,
		},
		{
			name:     "PM noon hour",
			input:    "2025. 1. 5. 오후 12:30",
			want:     kst(2025, 1, 5, 12, 30, 0),
			resolved: true,
		},
		{
			name:     "PM afternoon",
			input:    "2025. 1. 5. 오후 1:15",
			want:     kst(2025, 1, 5, 13, 15, 0),
			resolved: true,
		},
		{
			name:     "AM unchanged",
			input:    "2025. 1. 5. 오전 11:45",
			want:     kst(2025, 1, 5, 11, 45, 0),
			resolved: true,
		},
		{
			name:     "PM already 24h",
			input:    "2025-01-05 오후 14:10",
			want:     kst(2025, 1, 5, 14, 10, 0),
			resolved: true,
		},
		{
			name:     "Date only becomes midnight",
			input:    "2025.3.1",
			want:     kst(2025, 3, 1, 0, 0, 0),
			resolved: true,
		},
		{
			name:     "Dashed without offset",
			input:    "2025-12-31 09:05",
			want:     kst(2025, 12, 31, 9, 5, 0),
			resolved: true,
		},
		{
			name:     "Dashed with seconds",
			input:    "2025-12-31 09:05:30",
			want:     kst(2025, 12, 31, 9, 5, 30),
			resolved: true,
		},
		{
			name:     "ISO without offset is anchored",
			input:    "2025-12-31T09:05:00",
			want:     kst(2025, 12, 31, 9, 5, 0),
			resolved: true,
		},
		{
			name:     "Explicit UTC offset honored",
			input:    "2025-12-31T05:00:00Z",
			want:     time.Date(2025, 12, 31, 5, 0, 0, 0, time.UTC),
			resolved: true,
		},
		{
			name:     "Explicit foreign offset honored",
			input:    "2025-12-31T14:00:00-05:00",
			want:     time.Date(2025, 12, 31, 19, 0, 0, 0, time.UTC),
			resolved: true,
		},
		{
			name:     "Korean date and hour words",
			input:    "2025년 12월 31일 (수) 오후 3시 30분",
			want:     kst(2025, 12, 31, 15, 30, 0),
			resolved: true,
		},
		{
			name:     "Half hour",
			input:    "2025/12/31 오전 9시 반",
			want:     kst(2025, 12, 31, 9, 30, 0),
			resolved: true,
		},
		{
			name:  "Time only is unresolved",
			input: "오후 2:00",
		},
		{
			name:  "Free text is unresolved",
			input: "내일 점심쯤",
		},
		{
			name:  "Invalid month is unresolved",
			input: "2025.13.01 10:00",
		},
		{
			name:  "Trailing words are unresolved",
			input: "2025.12.31 오후 2:00 픽업",
		},
		{
			name:  "Empty is unresolved",
			input: "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.NormalizeString(tt.input)
			if got.Resolved != tt.resolved {
				t.Fatalf("NormalizeString(%q) resolved = %v, want %v (at %v)", tt.input, got.Resolved, tt.resolved, got.At)
			}
			if tt.resolved && !got.At.Equal(tt.want) {
				t.Errorf("NormalizeString(%q) = %v, want %v", tt.input, got.At, tt.want)
			}
		})
	}
}

func TestOffsetAnchoringIgnoresProcessZone(t *testing.T) {
	prev := time.Local
	time.Local = time.FixedZone("PST", -8*3600)
	defer func() { time.Local = prev }()

	got := datenorm.Default().NormalizeString("2025. 12. 31. 오후 2:00")
	if !got.Resolved {
		t.Fatalf("expected resolved outcome")
	}
	if got.At.Format(time.RFC3339) != "2025-12-31T14:00:00+09:00" {
		t.Errorf("got %s", got.At.Format(time.RFC3339))
	}
	civil := got.At.In(datenorm.Default().Location())
	if civil.Hour() != 14 || civil.Day() != 31 {
		t.Errorf("civil time drifted: %v", civil)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := datenorm.Default()
	inputs := []string{
		"2025.12.31.(수) 오후 2:00",
		"2024. 2. 29. 오전 12:05",
		"2025-06-01",
		"2025-12-31T14:00:00-05:00",
	}
	for _, in := range inputs {
		first := n.NormalizeString(in)
		if !first.Resolved {
			t.Fatalf("%q: expected resolved", in)
		}
		second := n.NormalizeString(first.At.Format(time.RFC3339))
		if !second.Resolved || !second.At.Equal(first.At) {
			t.Errorf("%q: second pass = %v, want %v", in, second.At, first.At)
		}
	}
}

func TestNormalizeValues(t *testing.T) {
	n := datenorm.Default()
	at := time.Date(2025, 5, 1, 3, 0, 0, 0, time.UTC)
	str := "2025.05.01 오후 12:00"
	var nilStr *string
	var nilTime *time.Time

	if got := n.Normalize(nil); got.Resolved {
		t.Errorf("nil input must be unresolved")
	}
	if got := n.Normalize(nilStr); got.Resolved {
		t.Errorf("nil *string must be unresolved")
	}
	if got := n.Normalize(nilTime); got.Resolved {
		t.Errorf("nil *time.Time must be unresolved")
	}
	if got := n.Normalize(time.Time{}); got.Resolved {
		t.Errorf("zero time must be unresolved")
	}
	if got := n.Normalize(42); got.Resolved {
		t.Errorf("unsupported type must be unresolved")
	}
	if got := n.Normalize(at); !got.Resolved || !got.At.Equal(at) {
		t.Errorf("time value: got %+v", got)
	}
	if got := n.Normalize(&at); !got.Resolved || !got.At.Equal(at) {
		t.Errorf("time pointer: got %+v", got)
	}
	if got := n.Normalize(&str); !got.Resolved || !got.At.Equal(at) {
		t.Errorf("string pointer: got %+v, want %v", got, at)
	}
}

func TestStages(t *testing.T) {
	n := datenorm.Default()

	tests := []struct {
		name  string
		stage func(string) string
		input string
		want  string
	}{
		{"strip noise", datenorm.StripNoise, "2025.12.31.(수)  오후 2:00", "2025.12.31. 오후 2:00"},
		{"meridiem pm", datenorm.ResolveMeridiem, "오후 2:05", "14:05"},
		{"meridiem am twelve", datenorm.ResolveMeridiem, "오전 12:00", "00:00"},
		{"meridiem keeps seconds", datenorm.ResolveMeridiem, "오후 1:02:03", "13:02:03"},
		{"hour words", datenorm.ResolveMeridiem, "오후 3시 5분", "15:05"},
		{"separators", datenorm.NormalizeSeparators, "2025. 12. 31. 14:00", "2025-12-31 14:00"},
		{"separators korean", datenorm.NormalizeSeparators, "2025년 1월 2일", "2025-1-2"},
		{"complete time", datenorm.CompleteTime, "2025-1-2", "2025-1-2 00:00:00"},
		{"complete keeps time", datenorm.CompleteTime, "2025-1-2 10:00", "2025-1-2 10:00"},
		{"anchor", n.AnchorOffset, "2025-1-2 9:05", "2025-01-02T09:05:00+09:00"},
		{"anchor leaves offset", n.AnchorOffset, "2025-01-02T09:05:00Z", "2025-01-02T09:05:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stage(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	names := []string{}
	for _, s := range n.Stages() {
		names = append(names, s.Name)
	}
	if names[len(names)-1] != "anchor-offset" {
		t.Errorf("anchor-offset must run last, got %v", names)
	}
}

func TestCustomOffset(t *testing.T) {
	n := datenorm.MustNormalizer(-3*time.Hour - 30*time.Minute)
	got := n.NormalizeString("2025-01-02 10:00")
	if !got.Resolved {
		t.Fatalf("expected resolved")
	}
	if got.At.Format(time.RFC3339) != "2025-01-02T10:00:00-03:30" {
		t.Errorf("got %s", got.At.Format(time.RFC3339))
	}
}
