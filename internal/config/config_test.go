package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"SignaturePad/internal/signature"
)

var keys = []string{
	"SIGNATURE_TABS", "SIGNATURE_PLACEHOLDER", "SIGNATURE_COLOR_OPTIONS",
	"SIGNATURE_PERSIST", "SIGNATURE_PDF", "SIGNATURE_OUTPUT_DIR", "SIGNATURE_DEBUG",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.Placeholder != "Signature" {
		t.Errorf("Expected default placeholder, got %q", cfg.Placeholder)
	}
	if len(cfg.Tabs) != 3 || cfg.Tabs[0] != signature.Draw {
		t.Errorf("Expected all tabs with draw first, got %v", cfg.Tabs)
	}
	if cfg.ShowColorOptions || cfg.Persist || cfg.PDF || cfg.OutputDir != "" {
		t.Errorf("Expected everything off by default, got %+v", cfg)
	}
}

func TestFromEnvValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIGNATURE_TABS", "type, image")
	t.Setenv("SIGNATURE_PLACEHOLDER", "Sign here")
	t.Setenv("SIGNATURE_COLOR_OPTIONS", "true")
	t.Setenv("SIGNATURE_PERSIST", "1")
	t.Setenv("SIGNATURE_PDF", "yes")
	t.Setenv("SIGNATURE_OUTPUT_DIR", "/tmp/signatures")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if len(cfg.Tabs) != 2 || cfg.Tabs[0] != signature.Type || cfg.Tabs[1] != signature.Image {
		t.Errorf("Unexpected tabs %v", cfg.Tabs)
	}
	if cfg.Placeholder != "Sign here" || !cfg.ShowColorOptions || !cfg.Persist || !cfg.PDF {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if cfg.OutputDir != "/tmp/signatures" {
		t.Errorf("Unexpected output dir %q", cfg.OutputDir)
	}
}

func TestFromEnvBadTabs(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIGNATURE_TABS", "draw,paint")
	if _, err := FromEnv(); !errors.Is(err, signature.ErrInvalidTabs) {
		t.Fatalf("Expected ErrInvalidTabs, got %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SIGNATURE_PLACEHOLDER=From file\nSIGNATURE_PDF=true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Placeholder != "From file" || !cfg.PDF {
		t.Fatalf("Expected values from .env, got %+v", cfg)
	}
}
