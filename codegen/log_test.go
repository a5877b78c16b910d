package codegen

import (
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf strings.Builder
	log := NewLogger(LevelWarn, &buf)

	log.Debugf("hidden debug")
	log.Infof("hidden info")
	log.Warnf("shown warn")
	log.Errorf("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("suppressed levels leaked:\n%s", out)
	}
	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "shown error") {
		t.Errorf("enabled levels missing:\n%s", out)
	}
}

func TestLoggerWithDoesNotMutateParent(t *testing.T) {
	var buf strings.Builder
	parent := NewLogger(LevelInfo, &buf)
	child := parent.With(map[string]any{"k": "v"})

	parent.Infof("from parent")
	child.Infof("from child")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if strings.Contains(lines[0], "k=v") {
		t.Errorf("parent picked up child fields: %s", lines[0])
	}
	if !strings.Contains(lines[1], "k=v") {
		t.Errorf("child missing its field: %s", lines[1])
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"error", LevelError},
		{"WARN", LevelWarn},
		{"warning", LevelWarn},
		{"Info", LevelInfo},
		{"debug", LevelDebug},
		{"bogus", LevelWarn},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
