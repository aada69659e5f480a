package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 30, 0, 0, time.UTC)
}

func TestResolveRangeDefaults(t *testing.T) {
	tests := []struct {
		name      string
		today     time.Time
		wantStart string
		wantEnd   string
	}{
		{
			// On a Monday the previous full week is reported.
			"monday uses previous week",
			date(2026, time.February, 9),
			"2026-02-02",
			"2026-02-08",
		},
		{
			"wednesday uses monday through today",
			date(2026, time.February, 11),
			"2026-02-09",
			"2026-02-11",
		},
		{
			"sunday uses monday through today",
			date(2026, time.February, 15),
			"2026-02-09",
			"2026-02-15",
		},
		{
			"week spanning month boundary",
			date(2026, time.April, 1),
			"2026-03-30",
			"2026-04-01",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveRange(tt.today, "", "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.StartDate != tt.wantStart || got.EndDate != tt.wantEnd {
				t.Errorf("ResolveRange(%v) = %s..%s, want %s..%s",
					tt.today, got.StartDate, got.EndDate, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestResolveRangeExplicit(t *testing.T) {
	got, err := ResolveRange(date(2026, time.February, 9), "2026-01-05", "2026-01-11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StartDate != "2026-01-05" || got.EndDate != "2026-01-11" {
		t.Errorf("explicit dates not passed through: got %s..%s", got.StartDate, got.EndDate)
	}
}

func TestResolveRangeErrors(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"bad start", "05-01-2026", "2026-01-11"},
		{"bad end", "2026-01-05", "tomorrow"},
		{"end before start", "2026-01-11", "2026-01-05"},
		{"only start", "2026-01-05", ""},
		{"only end", "", "2026-01-11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ResolveRange(date(2026, time.February, 10), tt.start, tt.end); err == nil {
				t.Errorf("ResolveRange(%q, %q) expected error", tt.start, tt.end)
			}
		})
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{StartDate: "2026-02-02", EndDate: "2026-02-08"}
	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"start boundary", time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), true},
		{"end boundary", time.Date(2026, 2, 8, 23, 59, 59, 0, time.UTC), true},
		{"inside", time.Date(2026, 2, 5, 10, 0, 0, 0, time.UTC), true},
		{"before", time.Date(2026, 2, 1, 23, 59, 59, 0, time.UTC), false},
		{"after", time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.t); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}
