package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"INFO", false},
		{"", false},
		{"warning", false},
		{"error", false},
		{"verbose", true},
	}

	for _, tt := range tests {
		_, err := parseLevel(tt.level)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLevel(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
		}
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "editpad.log")

	logger, err := New(DefaultConfig(path))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("tab saved")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "tab saved") {
		t.Errorf("Expected log line in file, got %q", string(data))
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("Expected error for invalid level")
	}
}

func TestNewOrNop(t *testing.T) {
	if NewOrNop(Config{Level: "loud"}) == nil {
		t.Error("Expected no-op logger, got nil")
	}
}
