package logging

import (
	"testing"

	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		" INFO ": zapcore.InfoLevel,
		"warn":   zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
		"":       zapcore.InfoLevel,
		"loud":   zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLoggerVerbosity(t *testing.T) {
	if !NewLogger("debug").V(1).Enabled() {
		t.Fatalf("expected V(1) enabled at debug level")
	}
	if NewLogger("info").V(1).Enabled() {
		t.Fatalf("expected V(1) disabled at info level")
	}
}

func TestNewFallsBackOnZeroLogger(t *testing.T) {
	l := New(logr.Logger{})
	if l.Logr().GetSink() == nil {
		t.Fatalf("expected default sink")
	}
	d := New(logr.Discard())
	d.Info("ignored")
	d.WithName("x").WithValues("k", "v").Debug("ignored")
}

func TestDiscardStaysSilent(t *testing.T) {
	l := Discard()
	if l.Logr().Enabled() {
		t.Fatalf("expected discard logger to be disabled")
	}
	l.WithName("x").WithValues("k", "v").Error(nil, "ignored")
	l.Debug("ignored")
}
