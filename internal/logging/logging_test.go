package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

// captureLogOutput redirects the global logger to a buffer at debug level
// for the duration of f.
func captureLogOutput(format Format, f func()) string {
	var buf bytes.Buffer
	InitLoggerTo(&buf, LevelDebug, format)
	defer InitLogger(LevelWarn, FormatJSON)
	f()
	return buf.String()
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  Level
		format Format
	}{
		{"Debug level JSON format", LevelDebug, FormatJSON},
		{"Info level JSON format", LevelInfo, FormatJSON},
		{"Warn level Text format", LevelWarn, FormatText},
		{"Error level Text format", LevelError, FormatText},
		{"Default level (invalid value)", Level(999), FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitLogger(tt.level, tt.format)
			if GetLogger() == nil {
				t.Error("Expected logger to be initialized, got nil")
			}
		})
	}
	InitLogger(LevelWarn, FormatJSON)
}

// TestLevelFiltering verifies records below the configured level are dropped.
func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, LevelWarn, FormatText)
	defer InitLogger(LevelWarn, FormatJSON)

	EntityBuilt("note", false, 1)
	ValidationFailed("note", 1, false)
	GetLogger().Warn("shown")

	out := buf.String()
	if strings.Contains(out, "entity_built") || strings.Contains(out, "validation_failed") {
		t.Errorf("output contains filtered records: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("output missing records: %s", out)
	}
	if Enabled(LevelDebug) || !Enabled(LevelError) {
		t.Error("Enabled does not follow the configured level")
	}
}

// TestHostDefaultUntouched verifies configuring the package logger leaves
// slog's default logger alone.
func TestHostDefaultUntouched(t *testing.T) {
	before := slog.Default()
	InitLogger(LevelDebug, FormatText)
	defer InitLogger(LevelWarn, FormatJSON)
	if slog.Default() != before {
		t.Error("InitLogger replaced slog.Default")
	}

	var buf bytes.Buffer
	host := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(host)
	SetLogger(nil)
	if GetLogger() != host {
		t.Fatal("SetLogger did not install the host logger")
	}
	EntityBuilt("xliff", true, 0)
	if !strings.Contains(buf.String(), "entity_built") {
		t.Errorf("host logger missing record: %s", buf.String())
	}
}

// TestEntityBuilt verifies the construction record fields.
func TestEntityBuilt(t *testing.T) {
	out := captureLogOutput(FormatJSON, func() {
		EntityBuilt("count", true, 2, "extra", "v")
	})

	var rec map[string]any
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if rec["msg"] != "entity_built" || rec["tag"] != "count" || rec["from_node"] != true {
		t.Errorf("unexpected record: %v", rec)
	}
	if rec["explicit_values"] != float64(2) || rec["extra"] != "v" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestValueDeferred(t *testing.T) {
	out := captureLogOutput(FormatText, func() {
		ValueDeferred("count", "content", "4x", errors.New("not a number"))
	})
	for _, want := range []string{"value_deferred", "field=content", "raw=4x", `error="not a number"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestValidationFailed(t *testing.T) {
	out := captureLogOutput(FormatText, func() {
		ValidationFailed("trans-unit", 3, true)
	})
	for _, want := range []string{"validation_failed", "tag=trans-unit", "failures=3", "gather_all=true"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}
