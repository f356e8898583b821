package newsrank

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestZapLogger_ForwardsToSlog(t *testing.T) {
	var buf bytes.Buffer
	l := zapLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	l.With(zap.String("component", "detector")).
		Warn("Could not load model", zap.Error(errors.New("boom")), zap.Int("attempt", 1))
	l.Debug("hidden")

	out := buf.String()
	for _, want := range []string{"level=WARN", `msg="Could not load model"`, "component=detector", "error=boom", "attempt=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %s", want, out)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry must be filtered at info level: %s", out)
	}
}

func TestZapLogger_Nil(t *testing.T) {
	l := zapLogger(nil)
	if l.Core().Enabled(zap.ErrorLevel) {
		t.Error("nil slog logger must yield a no-op zap logger")
	}
}
