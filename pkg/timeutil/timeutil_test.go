//go:build !integration

package timeutil

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{name: "microseconds", d: 250 * time.Microsecond, expected: "250µs"},
		{name: "milliseconds", d: 42 * time.Millisecond, expected: "42ms"},
		{name: "seconds", d: 1500 * time.Millisecond, expected: "1.5s"},
		{name: "minutes", d: 90 * time.Second, expected: "1.5m"},
		{name: "hours", d: 90 * time.Minute, expected: "1.5h"},
		{name: "zero", d: 0, expected: "0µs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatDuration(tt.d)
			if result != tt.expected {
				t.Errorf("FormatDuration(%v) = %q; want %q", tt.d, result, tt.expected)
			}
		})
	}
}
