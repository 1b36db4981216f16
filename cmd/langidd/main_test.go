package main

import (
	"context"
	"path/filepath"
	"testing"

	"langid/internal/logging"
	"langid/internal/testsupport"
)

func TestBuildSocketPath(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	expected := filepath.Join(cfg.Paths.LogDir, "langid.sock")
	if got := buildSocketPath(cfg); got != expected {
		t.Fatalf("expected socket path %q, got %q", expected, got)
	}

	if got := buildSocketPath(nil); got != filepath.Join("", "langid.sock") {
		t.Fatalf("expected default socket path, got %q", got)
	}
}

func TestBuildDaemonFromSeededProfiles(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Paths.APIBind = ""
	testsupport.SeedProfiles(t, cfg)

	d, err := buildDaemon(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("buildDaemon: %v", err)
	}
	defer d.Close()

	if d.HistoryEnabled() != cfg.History.Enabled {
		t.Fatalf("history enabled mismatch")
	}
	infos := d.Languages()
	if len(infos) != 3 {
		t.Fatalf("expected 3 languages, got %d", len(infos))
	}

	outcome, err := d.Identify(context.Background(), "the quick brown fox jumps over the lazy dog", "", nil)
	if err != nil {
		t.Fatalf("identify: %v", err)
	}
	if outcome.Result.Prediction != "en" {
		t.Fatalf("expected prediction en, got %q", outcome.Result.Prediction)
	}
}

func TestBuildDaemonFailsWithoutProfiles(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	if _, err := buildDaemon(cfg, logging.NewNop()); err == nil {
		t.Fatal("expected buildDaemon to fail without trained profiles")
	}
}
