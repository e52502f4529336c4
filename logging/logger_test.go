package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func decodeEntries(t *testing.T, buf *bytes.Buffer) []Entry {
	t.Helper()
	var entries []Entry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerFiltersBelowMinLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("bakery", WARN, &buf)

	logger.Debug("ui", "ignored", nil)
	logger.Info("ui", "ignored", nil)
	logger.Warn("ui", "kept", map[string]any{"id": "popup"})
	logger.Error("ui", "failed", errors.New("boom"), nil)

	entries := decodeEntries(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Level != "WARN" || entries[0].Fields["id"] != "popup" || entries[0].Source != "bakery" {
		t.Fatalf("unexpected warn entry: %+v", entries[0])
	}
	if entries[1].Level != "ERROR" || entries[1].Error != "boom" {
		t.Fatalf("unexpected error entry: %+v", entries[1])
	}
}

func TestNilLoggerIsSilent(t *testing.T) {
	var logger *Logger
	logger.Info("ui", "nothing", nil)
	logger.Error("ui", "nothing", errors.New("x"), nil)
	logger.WithRequestID("r").WithCategory("ui").Info("nothing")
	if logger.Enabled(ERROR) {
		t.Fatalf("nil logger should not be enabled")
	}
}

func TestLogContextCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := New("bakery", DEBUG, &buf)
	logger.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	logger.WithRequestID("req-1").WithCategory("http").WithField("path", "/").Warn("slow")

	entries := decodeEntries(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	got := entries[0]
	if got.RequestID != "req-1" || got.Category != "http" || got.Fields["path"] != "/" || got.Level != "WARN" {
		t.Fatalf("unexpected entry: %+v", got)
	}
	if !got.Timestamp.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Fatalf("unexpected timestamp %v", got.Timestamp)
	}
}

func TestSubscribeReceivesEntries(t *testing.T) {
	logger := New("bakery", INFO)
	ch := make(chan Entry, 1)
	unsubscribe := logger.Subscribe(ch)

	logger.Info("ui", "hello", nil)
	select {
	case entry := <-ch:
		if entry.Message != "hello" {
			t.Fatalf("unexpected entry %+v", entry)
		}
	default:
		t.Fatalf("expected an entry")
	}

	unsubscribe()
	logger.Info("ui", "after", nil)
	select {
	case entry := <-ch:
		t.Fatalf("unexpected entry after unsubscribe: %+v", entry)
	default:
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"debug": DEBUG, "": INFO, "Info": INFO, "warning": WARN, "ERROR": ERROR}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
