package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestBuildHonorsLevel(t *testing.T) {
	ctx := context.Background()

	debug := build("debug", "json")
	if !debug.Enabled(ctx, slog.LevelDebug) {
		t.Error("debug logger must accept debug records")
	}

	warn := build("warn", "text")
	if warn.Enabled(ctx, slog.LevelInfo) {
		t.Error("warn logger must drop info records")
	}
	if !warn.Enabled(ctx, slog.LevelWarn) {
		t.Error("warn logger must accept warn records")
	}
}

func TestConfigureWinsOverLaterInit(t *testing.T) {
	Configure("debug", "text")
	Init()

	if !Get().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("logger configured for debug must keep that level after Init")
	}
}
