package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		wantDebug bool
		wantInfo  bool
	}{
		{"off", LevelOff, false, false},
		{"normal", LevelNormal, false, true},
		{"verbose", LevelVerbose, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, &buf)
			log.Debug("debug line")
			log.Info("info line")

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Fatalf("debug visible = %v, want %v (out=%q)", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "info line"); got != tt.wantInfo {
				t.Fatalf("info visible = %v, want %v (out=%q)", got, tt.wantInfo, out)
			}
		})
	}
}

func TestWithPrefixesAndSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	root := New(LevelNormal, &buf)
	child := root.With("search").With("api")

	child.Warn("slow response %dms", 900)
	if !strings.Contains(buf.String(), "[WRN] ") || !strings.Contains(buf.String(), "search: api: slow response 900ms") {
		t.Fatalf("unexpected output: %q", buf.String())
	}

	root.SetLevel(LevelOff)
	buf.Reset()
	child.Error("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("child ignored parent level, got %q", buf.String())
	}
	if child.GetLevel() != LevelOff {
		t.Fatalf("child level = %v, want off", child.GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"off":     LevelOff,
		"QUIET":   LevelOff,
		"verbose": LevelVerbose,
		"debug":   LevelVerbose,
		"normal":  LevelNormal,
		"":        LevelNormal,
		"bogus":   LevelNormal,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
