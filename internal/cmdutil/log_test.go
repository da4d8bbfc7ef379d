package cmdutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"motifscan/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	cases := []struct {
		s    config.Settings
		want log.Level
	}{
		{config.Settings{LogLevel: "debug"}, log.DebugLevel},
		{config.Settings{LogLevel: "info"}, log.InfoLevel},
		{config.Settings{LogLevel: "warn"}, log.WarnLevel},
		{config.Settings{LogLevel: "bogus"}, log.WarnLevel},
		{config.Settings{LogLevel: "debug", Quiet: true}, log.ErrorLevel},
	}
	for _, tc := range cases {
		if got := NewLogger(&bytes.Buffer{}, tc.s).GetLevel(); got != tc.want {
			t.Fatalf("%+v: want %v got %v", tc.s, tc.want, got)
		}
	}
}

func TestNewLoggerWritesToDst(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, config.Settings{LogLevel: "info"})
	l.Info("scanned", "records", 3)
	if !strings.Contains(buf.String(), "records=3") {
		t.Fatalf("unexpected log output %q", buf.String())
	}
	buf.Reset()
	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered at info level")
	}
}
