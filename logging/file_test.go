package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRotatingFileRotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	rf, err := OpenRotatingFile(dir, "ui.log", 1, 2)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rf.Close()

	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rf.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	rf.maxSize = 32

	line := []byte(strings.Repeat("x", 20) + "\n")
	for i := 0; i < 6; i++ {
		if _, err := rf.Write(line); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}

	archives, err := filepath.Glob(filepath.Join(dir, "ui.log.*.gz"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(archives) != 2 {
		t.Fatalf("expected 2 archives after pruning, got %v", archives)
	}
	data, err := os.ReadFile(rf.Path())
	if err != nil {
		t.Fatalf("read active file: %v", err)
	}
	if string(data) != string(line) {
		t.Fatalf("expected active file to hold the last line, got %q", data)
	}
}

func TestRotatingFileRejectsWritesAfterClose(t *testing.T) {
	rf, err := OpenRotatingFile(t.TempDir(), "ui.log", 1, 1)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := rf.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := rf.Write([]byte("late\n")); err == nil {
		t.Fatalf("expected error writing to closed file")
	}
}
