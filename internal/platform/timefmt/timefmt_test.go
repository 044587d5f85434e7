package timefmt

import (
	"testing"
	"time"
)

func TestFormatAsOf(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("KST", 9*60*60)
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "midnight renders as 12 am", in: time.Date(2025, 5, 19, 15, 30, 0, 0, time.UTC), want: "2025년 05월 20일 오전 12시 기준"},
		{name: "noon renders as 12 pm", in: time.Date(2025, 5, 20, 3, 0, 0, 0, time.UTC), want: "2025년 05월 20일 오후 12시 기준"},
		{name: "afternoon", in: time.Date(2025, 11, 3, 6, 59, 0, 0, time.UTC), want: "2025년 11월 03일 오후 3시 기준"},
		{name: "morning", in: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), want: "2025년 01월 01일 오전 9시 기준"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := FormatAsOf(&tc.in, loc)
			if got == nil || *got != tc.want {
				t.Fatalf("FormatAsOf(%s) = %v, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatAsOf_Nil(t *testing.T) {
	t.Parallel()

	if got := FormatAsOf(nil, nil); got != nil {
		t.Fatalf("expected nil, got %q", *got)
	}
}

func TestLoadLocation_FallsBack(t *testing.T) {
	t.Parallel()

	loc := LoadLocation("Nowhere/Invalid")
	_, offset := time.Date(2025, 1, 1, 0, 0, 0, 0, loc).Zone()
	if offset != 9*60*60 {
		t.Fatalf("expected +09:00 fallback, got offset %d", offset)
	}
}

func TestToday(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 5, 19, 16, 0, 0, 0, time.UTC)
	if got := Today(now, time.FixedZone("KST", 9*60*60)); got != "2025-05-20" {
		t.Fatalf("unexpected date: %s", got)
	}
}
