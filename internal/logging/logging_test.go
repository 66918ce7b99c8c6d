package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "syllables", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "syllables=3") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestNew_NoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelInfo).Error("boom")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("unexpected ANSI escape in %q", buf.String())
	}
}
