package timer

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "00:00:00"},
		{"negative_clamps", -time.Second, "00:00:00"},
		{"subsecond_floors", 900 * time.Millisecond, "00:00:00"},
		{"seconds", 59 * time.Second, "00:00:59"},
		{"minute_rollover", 60 * time.Second, "00:01:00"},
		{"mixed", 61*time.Second + 500*time.Millisecond, "00:01:01"},
		{"hours", 2*time.Hour + 3*time.Minute + 4*time.Second, "02:03:04"},
		{"no_day_wrap", 25 * time.Hour, "25:00:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatClock(tc.in); got != tc.want {
				t.Fatalf("formatClock(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCeilSecond(t *testing.T) {
	cases := []struct {
		name string
		in   time.Duration
		want time.Duration
	}{
		{"zero", 0, 0},
		{"whole_second", 2 * time.Second, 2 * time.Second},
		{"just_over", 2*time.Second + time.Millisecond, 3 * time.Second},
		{"just_under", 3*time.Second - time.Millisecond, 3 * time.Second},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ceilSecond(tc.in); got != tc.want {
				t.Fatalf("ceilSecond(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
