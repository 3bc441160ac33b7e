package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		DebugLevel: zapcore.DebugLevel,
		"verbose":  defaultZapLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Fatalf("toZapLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWithWriter_ConsoleFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(WarnLevel, ConsoleFormat, &buf)

	log.Infow("history_added", "id", 1)
	log.Warnw("history_save_slow", "ms", 250)
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "history_added") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "history_save_slow") {
		t.Fatalf("missing warn line: %q", out)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(InfoLevel, JSONFormat, &buf)
	log.Infow("converted", "from", "celsius")
	_ = log.Sync()

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("not json: %v (%q)", err, buf.String())
	}
	if m["msg"] != "converted" || m["from"] != "celsius" {
		t.Fatalf("unexpected entry: %v", m)
	}
}

func TestNop(t *testing.T) {
	Nop().Errorw("ignored", "k", "v")
}
