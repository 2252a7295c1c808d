package nativelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWriterRollsDaily(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	day := time.Date(2026, 10, 16, 23, 59, 0, 0, time.UTC)
	w.now = func() time.Time { return day }
	if _, err := w.Write([]byte("first\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	day = day.Add(2 * time.Minute)
	if _, err := w.Write([]byte("second\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	first, err := os.ReadFile(filepath.Join(dir, "blogicum_2026-10-16.log"))
	if err != nil {
		t.Fatalf("read first file: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(dir, "blogicum_2026-10-17.log"))
	if err != nil {
		t.Fatalf("read second file: %v", err)
	}
	if string(first) != "first\n" || string(second) != "second\n" {
		t.Errorf("unexpected contents %q / %q", first, second)
	}
}

func TestNewZapLogger(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewZapLogger(dir, "info")
	if err != nil {
		t.Fatalf("NewZapLogger failed: %v", err)
	}
	logger.Info("hello from test")
	_ = logger.Sync()

	content, err := os.ReadFile(filepath.Join(dir, DailyFilename(time.Now())))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "hello from test") {
		t.Errorf("log line missing from %q", content)
	}
}

func TestNewZapLoggerRejectsLevel(t *testing.T) {
	if _, err := NewZapLogger(t.TempDir(), "loud"); err == nil {
		t.Error("expected invalid level error")
	}
}
