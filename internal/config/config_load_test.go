package config

import (
	"os"
	"path/filepath"
	"testing"

	"anchorver/internal/core"
)

/* ------------------------------------------------------------------------- */
/* LOAD CONFIG                                                               */
/* ------------------------------------------------------------------------- */

func TestLoadConfig(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		runInTempDir(t, filepath.Join(tmpDir, "dummy"), func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, false)
			if cfg.Theme != "anchorver" {
				t.Errorf("Theme = %q, want %q", cfg.Theme, "anchorver")
			}
			if cfg.Output.Format != FormatText {
				t.Errorf("Format = %q, want %q", cfg.Output.Format, FormatText)
			}
			if cfg.Scan.MaxDepth != core.MaxScanDepth {
				t.Errorf("MaxDepth = %d, want %d", cfg.Scan.MaxDepth, core.MaxScanDepth)
			}
		})
	})

	t.Run("valid yaml file", func(t *testing.T) {
		content := "theme: dracula\noutput:\n  format: json\nscan:\n  max-depth: 5\n  exclude:\n    - fixtures\n"
		tmpPath := writeTempConfig(t, content)
		runInTempDir(t, tmpPath, func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, false)
			if cfg.Theme != "dracula" {
				t.Errorf("Theme = %q, want %q", cfg.Theme, "dracula")
			}
			if cfg.Output.Format != FormatJSON {
				t.Errorf("Format = %q, want %q", cfg.Output.Format, FormatJSON)
			}
			if cfg.Scan.MaxDepth != 5 {
				t.Errorf("MaxDepth = %d, want 5", cfg.Scan.MaxDepth)
			}
			if len(cfg.Scan.Exclude) != 1 || cfg.Scan.Exclude[0] != "fixtures" {
				t.Errorf("Exclude = %v, want [fixtures]", cfg.Scan.Exclude)
			}
		})
	})

	t.Run("partial file gets defaults filled", func(t *testing.T) {
		tmpPath := writeTempConfig(t, "theme: charm\n")
		runInTempDir(t, tmpPath, func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, false)
			if cfg.Theme != "charm" {
				t.Errorf("Theme = %q, want %q", cfg.Theme, "charm")
			}
			if cfg.Output == nil || cfg.Output.Format != FormatText {
				t.Errorf("Output = %+v, want default format", cfg.Output)
			}
			if cfg.Scan == nil || cfg.Scan.MaxDepth != core.MaxScanDepth {
				t.Errorf("Scan = %+v, want default max depth", cfg.Scan)
			}
		})
	})

	t.Run("empty file falls back to defaults", func(t *testing.T) {
		tmpPath := writeTempConfig(t, "")
		runInTempDir(t, tmpPath, func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, false)
			if cfg.Theme != "anchorver" {
				t.Errorf("Theme = %q, want %q", cfg.Theme, "anchorver")
			}
		})
	})

	t.Run("unknown keys rejected", func(t *testing.T) {
		tmpPath := writeTempConfig(t, "theem: dracula\n")
		runInTempDir(t, tmpPath, func() {
			_, err := LoadConfigFn()
			checkError(t, err, true)
		})
	})

	t.Run("invalid yaml", func(t *testing.T) {
		tmpPath := writeTempConfig(t, ": this is invalid")
		runInTempDir(t, tmpPath, func() {
			_, err := LoadConfigFn()
			checkError(t, err, true)
		})
	})

	t.Run("read error when config path is a directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		runInTempDir(t, filepath.Join(tmpDir, "dummy"), func() {
			if err := os.Mkdir(DefaultConfigFile, 0o755); err != nil {
				t.Fatal(err)
			}
			_, err := LoadConfigFn()
			checkError(t, err, true)
		})
	})
}

/* ------------------------------------------------------------------------- */
/* ENVIRONMENT OVERRIDES                                                     */
/* ------------------------------------------------------------------------- */

func TestLoadConfig_Env(t *testing.T) {
	t.Run("config path from env", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("theme: charm\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		os.Setenv(EnvConfigPath, path)
		defer os.Unsetenv(EnvConfigPath)

		cfg, err := LoadConfigFn()
		checkError(t, err, false)
		if cfg.Theme != "charm" {
			t.Errorf("Theme = %q, want %q", cfg.Theme, "charm")
		}
	})

	t.Run("env path with traversal rejected", func(t *testing.T) {
		os.Setenv(EnvConfigPath, "../../../etc/anchorver.yaml")
		defer os.Unsetenv(EnvConfigPath)

		_, err := LoadConfigFn()
		checkError(t, err, true)
	})

	t.Run("theme env outranks file", func(t *testing.T) {
		tmpPath := writeTempConfig(t, "theme: dracula\n")
		os.Setenv(EnvTheme, "catppuccin")
		defer os.Unsetenv(EnvTheme)

		runInTempDir(t, tmpPath, func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, false)
			if cfg.Theme != "catppuccin" {
				t.Errorf("Theme = %q, want %q", cfg.Theme, "catppuccin")
			}
		})
	})
}
