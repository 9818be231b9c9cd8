package main

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-theft-auto/multishape/config"
)

func parse(t *testing.T, args ...string) cliOpts {
	t.Helper()
	fs := flag.NewFlagSet("multishape", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opt, err := parseCLIOpts(fs, args)
	if err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return opt
}

func TestLoadConfigOverrides(t *testing.T) {
	opt := parse(t, "-canvases", "6", "-style", "gta", "-log-level", "debug")
	cfg, err := loadConfig(opt)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvases != 6 || cfg.UI.Style != "gta" || cfg.Log.Level != "debug" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if got := logLevel(cfg, false); got != slog.LevelDebug {
		t.Errorf("level = %v, want debug", got)
	}
}

func TestLoadConfigRejectsBadOverride(t *testing.T) {
	_, err := loadConfig(parse(t, "-canvases", "-1"))
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multishape.toml")
	if err := os.WriteFile(path, []byte("canvases = 2\n[log]\nlevel = \"warn\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(parse(t, "-config", path))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvases != 2 {
		t.Errorf("canvases = %d, want 2", cfg.Canvases)
	}
	if got := logLevel(cfg, false); got != slog.LevelWarn {
		t.Errorf("level = %v, want warn", got)
	}
	if got := logLevel(cfg, true); got != slog.LevelDebug {
		t.Errorf("verbose level = %v, want debug", got)
	}
}

func TestUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("multishape", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := parseCLIOpts(fs, []string{"-nope"}); err == nil {
		t.Error("unknown flag accepted")
	}
}
