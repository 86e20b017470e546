package pxlmath

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestLogger_SingularInverse(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	if _, ok := Mat4Zero().Inverted(); ok {
		t.Fatal("Inverted() of zero matrix reported success")
	}
	if !strings.Contains(buf.String(), "singular matrix") {
		t.Errorf("log output = %q", buf.String())
	}
}
