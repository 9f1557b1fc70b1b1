package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	l := New(&bytes.Buffer{}, false, false)
	if l == nil {
		t.Fatal("New returned nil")
	}
	if !l.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected Info level to be enabled by default")
	}
	if l.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected Debug level to be disabled by default")
	}
}

func TestNew_Verbose(t *testing.T) {
	l := New(&bytes.Buffer{}, true, false)
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected Debug level to be enabled when verbose is true")
	}
}

func TestNew_WritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false, false)
	l.Info("sheet processed", "sheet", "FAQ")

	if !strings.Contains(buf.String(), "sheet processed") {
		t.Errorf("expected message in output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "sheet=FAQ") {
		t.Errorf("expected attribute in output, got %q", buf.String())
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false, true)
	l.Info("file done", "records", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "file done" {
		t.Errorf("expected msg 'file done', got %v", entry["msg"])
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("expected discard logger to be disabled at every level")
	}
}

func TestContext(t *testing.T) {
	l := New(&bytes.Buffer{}, false, false)
	ctx := context.Background()

	// Default when missing
	l1 := FromContext(ctx)
	if l1 == nil {
		t.Fatal("FromContext returned nil for empty context")
	}

	// With context
	ctx = WithContext(ctx, l)
	l2 := FromContext(ctx)
	if l2 != l {
		t.Error("FromContext did not return the logger injected with WithContext")
	}
}

type secret string

func (s secret) LogValue() slog.Value {
	return slog.StringValue("[REDACTED]")
}

func TestRedactionParams(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false, false)

	l.Info("sensitive", "api_key", secret("abc"))

	if strings.Contains(buf.String(), "abc") {
		t.Error("log contained secret value")
	}
	if !strings.Contains(buf.String(), "[REDACTED]") {
		t.Error("log did not contain redacted value")
	}
}
