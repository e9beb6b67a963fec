package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestStringToLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" Warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := stringToLogLevel(tt.in); got != tt.want {
			t.Errorf("stringToLogLevel(%q) = %v, want: %v", tt.in, got, tt.want)
		}
	}
}

//nolint:paralleltest //Replaces the default logger.
func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	SetupLogger("production", "warn", &buf)

	slog.Info("hidden")
	slog.Warn("shown", "page", 2)

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Errorf("log output = %s, want info records dropped", out)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("production logs must be json: %v", err)
	}
	if rec["msg"] != "shown" || rec["page"] != 2.0 {
		t.Errorf("record = %v, want msg=shown page=2", rec)
	}

	buf.Reset()
	SetupLogger("development", "debug", &buf)
	slog.Debug("text record")
	if got := buf.String(); !strings.Contains(got, "msg=\"text record\"") {
		t.Errorf("log output = %q, want a text record", got)
	}
}
