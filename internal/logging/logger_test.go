package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DEBUG", "DEBUG"},
		{"debug", "DEBUG"},
		{"WARN", "WARN"},
		{"ERROR", "ERROR"},
		{"INFO", "INFO"},
		{"bogus", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in).String(); got != tt.want {
				t.Errorf("parseLevel(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestWithSessionAddsAttribute(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, "DEBUG").WithSession("abc").With("component", "dashboard")

	l.Info("task toggled", "task_id", "2")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}

	want := map[string]string{
		"msg":        "task toggled",
		"session_id": "abc",
		"component":  "dashboard",
		"task_id":    "2",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("entry[%q] = %v, want %q", k, entry[k], v)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, "WARN")

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("messages below WARN were logged: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("WARN message missing: %s", buf.String())
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	l, err := NewLogger(dir, "INFO")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	l.Info("started")
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"started"`) {
		t.Errorf("log file missing entry: %s", data)
	}
}

func TestNewLoggerWithoutDirDiscards(t *testing.T) {
	l, err := NewLogger("", "DEBUG")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	l.Info("nowhere")
	if err := l.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
