package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger_LevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger("test", Warn, WithWriter(buf))

	l.Info("hidden %d", 1)
	l.Warn("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected info message to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown 2") || !strings.Contains(out, "[test]") {
		t.Errorf("Expected warn message with name, got %q", out)
	}
}

func TestLogger_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger("svc", Debug, WithWriter(buf), WithJSON()).Named("zipfs")

	l.Debug("opened %s", "/a.txt")

	var entry logEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if entry.Service != "svc/zipfs" || entry.Message != "opened /a.txt" || entry.Level != "DEBUG" {
		t.Errorf("Unexpected entry %+v", entry)
	}
}

func TestNop_DiscardsEverything(t *testing.T) {
	l := Nop()
	l.Error("nothing %s", "here")

	if l.Named("child").Level != Silent {
		t.Error("Expected named child of Nop to stay silent")
	}
}

func TestParse(t *testing.T) {
	level, err := Parse("warning")
	if err != nil || level != Warn {
		t.Errorf("Expected Warn, got %v, %v", level, err)
	}

	if _, err := Parse("verbose"); err == nil {
		t.Error("Expected error for unknown level")
	}
}
