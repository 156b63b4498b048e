package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/openclaw/terminal-qr/script"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 8556 || cfg.Dialect != script.Windows || cfg.TerminalWidth != 2 || cfg.PreviewWidth != 1 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.SessionTTL.Duration != 30*time.Minute {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
}

func TestLoad_File(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeConfig(t, `
port: 9000
log_level: debug
dialect: pwsh
terminal_width: 3
preview_width: 2
session_ttl: 5m
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 9000 || cfg.LogLevel != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Dialect != script.PowerShell {
		t.Errorf("Dialect = %v, want powershell", cfg.Dialect)
	}
	if cfg.TerminalWidth != 3 || cfg.PreviewWidth != 2 {
		t.Errorf("widths = %d/%d", cfg.TerminalWidth, cfg.PreviewWidth)
	}
	if cfg.SessionTTL.Duration != 5*time.Minute {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeConfig(t, "port: 9000\n")
	t.Setenv("TQR_PORT", "9100")
	t.Setenv("TQR_DIALECT", "linux")
	t.Setenv("TQR_TERMINAL_WIDTH", "4")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 9100 || cfg.Dialect != script.Linux || cfg.TerminalWidth != 4 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TQR_PREVIEW_WIDTH=3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("TQR_PREVIEW_WIDTH") })

	cfg, err := Load("missing.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PreviewWidth != 3 {
		t.Errorf("PreviewWidth = %d, want 3 from .env", cfg.PreviewWidth)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad dialect":  "dialect: fish\n",
		"bad duration": "session_ttl: soon\n",
		"zero width":   "terminal_width: 0\n",
		"huge width":   "preview_width: 17\n",
		"bad port":     "port: 70000\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			chdir(t, t.TempDir())
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Fatal("Load() error = nil, want error")
			}
		})
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
