// ABOUTME: Tests for the leveled logger
// ABOUTME: Validates level filtering, output redirection, and level parsing

package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	saved := GetLevel()
	t.Cleanup(func() {
		SetOutput(prev)
		SetLevel(saved)
	})
	return &buf
}

func TestSetLevel(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelInfo)

	Debug("hidden %s", "line")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestDebugEmittedAtDebugLevel(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelDebug)

	Debug("slots=%d", 5)

	if !strings.Contains(buf.String(), "[DEBUG]") || !strings.Contains(buf.String(), "slots=5") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelError + 4)

	Error("boom")

	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("Error output missing: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "debug", want: "DEBUG"},
		{in: "WARN", want: "WARN"},
		{in: "error", want: "ERROR"},
		{in: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestOpenFile(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)
	SetLevel(LevelInfo)

	path := filepath.Join(t.TempDir(), "vlist.log")
	c, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	Info("written to %s", "file")
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "[INFO] written to file") {
		t.Errorf("log file content = %q", data)
	}
}
