package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250.00ms"},
		{999 * time.Millisecond, "999.00ms"},
		{time.Second, "1.00s"},
		{1500 * time.Millisecond, "1.50s"},
		{2 * time.Minute, "120.00s"},
		{0, "0.00ms"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	component := NewComponentLogger(logger, "pipeline")
	component.Info("stage completed",
		String(FieldStage, "cleaning"),
		Int("sentences", 42),
		Duration("stage_duration", 250*time.Millisecond),
	)

	line := buf.String()
	if !strings.Contains(line, "INFO pipeline: stage completed") {
		t.Errorf("missing component prefix: %q", line)
	}
	for _, fragment := range []string{"stage=cleaning", "sentences=42", "stage_duration=250.00ms"} {
		if !strings.Contains(line, fragment) {
			t.Errorf("missing %q in %q", fragment, line)
		}
	}
}

func TestConsoleQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Info("run finished", String(FieldFile, "mit leerzeichen.txt"))
	if !strings.Contains(buf.String(), `file="mit leerzeichen.txt"`) {
		t.Errorf("value not quoted: %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Warn("shadowed file", String(FieldFile, "doppelt.txt"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["level"] != "warn" {
		t.Errorf("level = %v, want warn", record["level"])
	}
	if record["file"] != "doppelt.txt" {
		t.Errorf("file = %v", record["file"])
	}
	if _, ok := record["ts"]; !ok {
		t.Error("missing ts field")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Level: "warn", Output: &buf})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Info("unterdrückt")
	if buf.Len() != 0 {
		t.Errorf("info line emitted at warn level: %q", buf.String())
	}
	logger.Warn("sichtbar")
	if !strings.Contains(buf.String(), "WARN") {
		t.Errorf("warn line missing: %q", buf.String())
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Error("New() accepted an unsupported format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("geht nirgendwo hin")
}
