package logger

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func encodeEntry(t *testing.T, ent zapcore.Entry, fields ...zapcore.Field) string {
	t.Helper()
	enc := newMinimalEncoder()
	buf, err := enc.EncodeEntry(ent, fields)
	if err != nil {
		t.Fatalf("EncodeEntry failed: %v", err)
	}
	return buf.String()
}

func TestEncodeEntryContainsTimeAndMessage(t *testing.T) {
	ts := time.Date(2026, 3, 1, 13, 4, 35, 0, time.UTC)
	out := encodeEntry(t, zapcore.Entry{
		Level:   zapcore.InfoLevel,
		Time:    ts,
		Message: "Summary computed",
	})

	if !strings.Contains(out, "13:04:35") {
		t.Errorf("expected timestamp in output, got %q", out)
	}
	if !strings.Contains(out, "Summary computed") {
		t.Errorf("expected message in output, got %q", out)
	}
}

func TestEncodeEntryShowsLevelForWarnAndError(t *testing.T) {
	warn := encodeEntry(t, zapcore.Entry{Level: zapcore.WarnLevel, Time: time.Now(), Message: "slow"})
	if !strings.Contains(warn, "WARN") {
		t.Errorf("expected WARN marker, got %q", warn)
	}

	errOut := encodeEntry(t, zapcore.Entry{Level: zapcore.ErrorLevel, Time: time.Now(), Message: "bad"})
	if !strings.Contains(errOut, "ERROR") {
		t.Errorf("expected ERROR marker, got %q", errOut)
	}

	info := encodeEntry(t, zapcore.Entry{Level: zapcore.InfoLevel, Time: time.Now(), Message: "fine"})
	if strings.Contains(info, "INFO") {
		t.Errorf("info level should not be printed, got %q", info)
	}
}

func TestEncodeEntryFormatsDatasetShape(t *testing.T) {
	out := encodeEntry(t, zapcore.Entry{Level: zapcore.InfoLevel, Time: time.Now(), Message: "loaded"},
		zap.Int(FieldRows, 100), zap.Int(FieldColumns, 4))

	if !strings.Contains(out, "100") || !strings.Contains(out, "rows") {
		t.Errorf("expected row count formatting, got %q", out)
	}
	if !strings.Contains(out, "4") || !strings.Contains(out, "cols") {
		t.Errorf("expected column count formatting, got %q", out)
	}
}

func TestAbbreviateName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"analyzer", "analyzer"},
		{"analyzer.stats", "a.stats"},
		{"analyzer.render.hist", "a.render.hist"},
	}
	for _, tt := range tests {
		if got := abbreviateName(tt.in); got != tt.want {
			t.Errorf("abbreviateName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSetThemeRejectsUnknown(t *testing.T) {
	defer SetTheme("everforest")

	SetTheme("gruvbox")
	if currentTheme != "gruvbox" {
		t.Errorf("expected gruvbox, got %q", currentTheme)
	}

	SetTheme("solarized")
	if currentTheme != "gruvbox" {
		t.Errorf("unknown theme should be ignored, got %q", currentTheme)
	}
}
