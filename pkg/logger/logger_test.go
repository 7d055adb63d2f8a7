//go:build !integration

package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr captures stderr output during f.
func captureStderr(f func()) string {
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	f()

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		pattern   string
		want      bool
	}{
		{"exact match", "runbook:discovery", "runbook:discovery", true},
		{"no match", "runbook:discovery", "gitutil:diff", false},
		{"wildcard all", "runbook:discovery", "*", true},
		{"prefix wildcard", "runbook:discovery", "runbook:*", true},
		{"prefix wildcard no match", "runbook:discovery", "gitutil:*", false},
		{"suffix wildcard", "runbook:discovery", "*:discovery", true},
		{"middle wildcard", "cli:audit:run", "cli:*:run", true},
		{"middle wildcard no match", "cli:audit:other", "cli:*:run", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchPattern(tt.namespace, tt.pattern); got != tt.want {
				t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.namespace, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestComputeEnabled(t *testing.T) {
	origDebugEnv := debugEnv
	defer func() { debugEnv = origDebugEnv }()

	tests := []struct {
		name      string
		debugEnv  string
		namespace string
		want      bool
	}{
		{"empty disables all", "", "runbook:discovery", false},
		{"single pattern match", "runbook:*", "runbook:discovery", true},
		{"single pattern no match", "runbook:*", "gitutil:diff", false},
		{"multiple patterns", "runbook:*,gitutil:*", "gitutil:diff", true},
		{"exclusion disables", "runbook:*,-runbook:skip", "runbook:skip", false},
		{"exclusion allows others", "runbook:*,-runbook:skip", "runbook:discovery", true},
		{"exclusion wildcard", "*,-runbook:*", "runbook:discovery", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debugEnv = tt.debugEnv
			if got := computeEnabled(tt.namespace); got != tt.want {
				t.Errorf("computeEnabled(%q) with DEBUG=%q = %v, want %v",
					tt.namespace, tt.debugEnv, got, tt.want)
			}
		})
	}
}

func TestSelectColorStable(t *testing.T) {
	origColors, origTTY := debugColors, isTTY
	defer func() { debugColors, isTTY = origColors, origTTY }()

	debugColors, isTTY = true, true
	if selectColor("a:b") != selectColor("a:b") {
		t.Error("selectColor must be stable per namespace")
	}

	debugColors = false
	if selectColor("a:b") != "" {
		t.Error("selectColor must be empty when colors are disabled")
	}
}

func TestDisabledLoggerEmitsNothing(t *testing.T) {
	l := &Logger{namespace: "test:off", enabled: false}
	out := captureStderr(func() {
		l.Printf("should not appear %d", 1)
		l.Print("should not appear")
	})
	if out != "" {
		t.Errorf("disabled logger produced output: %q", out)
	}
}

func TestEnabledLoggerOutput(t *testing.T) {
	l := &Logger{namespace: "test:on", enabled: true}
	out := captureStderr(func() {
		l.Printf("checked %d runbooks", 3)
	})
	if !strings.Contains(out, "test:on") || !strings.Contains(out, "checked 3 runbooks") {
		t.Errorf("unexpected logger output: %q", out)
	}
	if !strings.Contains(out, "+") {
		t.Errorf("logger output missing elapsed-time suffix: %q", out)
	}
}
