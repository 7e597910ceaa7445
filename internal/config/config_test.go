package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "runtrack.yaml")
	if err := os.WriteFile(cfgPath, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Listen != ":8080" {
		t.Fatalf("expected default listen :8080, got %q", cfg.Listen)
	}
	if cfg.DataDir == "" {
		t.Fatal("expected a default data_dir")
	}
	if !cfg.Backup.IsEnabled() {
		t.Fatal("expected backups enabled by default")
	}
	if cfg.Backup.Schedule != "@daily" {
		t.Fatalf("expected default backup schedule @daily, got %q", cfg.Backup.Schedule)
	}
	if cfg.Backup.Keep != 14 {
		t.Fatalf("expected default backup keep 14, got %d", cfg.Backup.Keep)
	}
	if got, want := cfg.Backup.Dir, filepath.Join(cfg.DataDir, "backups"); got != want {
		t.Fatalf("expected default backup dir %q, got %q", want, got)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig on a missing file should use defaults, got %v", err)
	}
	if cfg.Listen != ":8080" {
		t.Fatalf("expected default listen :8080, got %q", cfg.Listen)
	}
}

func TestLoadConfigExpandsTildePaths(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "runtrack.yaml")
	body := `
data_dir: "~/runtrack-data"
backup:
  dir: "~/runtrack-backups"
  schedule: "0 3 * * *"
  keep: 5
`
	if err := os.WriteFile(cfgPath, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		t.Fatalf("UserHomeDir unavailable for test: %v", err)
	}

	if got, want := cfg.DataDir, filepath.Join(home, "runtrack-data"); got != want {
		t.Fatalf("expected expanded data_dir %q, got %q", want, got)
	}
	if got, want := cfg.Backup.Dir, filepath.Join(home, "runtrack-backups"); got != want {
		t.Fatalf("expected expanded backup dir %q, got %q", want, got)
	}
	if cfg.Backup.Schedule != "0 3 * * *" {
		t.Fatalf("unexpected backup schedule %q", cfg.Backup.Schedule)
	}
	if cfg.Backup.Keep != 5 {
		t.Fatalf("unexpected backup keep %d", cfg.Backup.Keep)
	}
}
