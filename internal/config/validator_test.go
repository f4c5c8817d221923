package config

import (
	"context"
	"testing"

	"anchorver/internal/core"
)

func TestValidator_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("missing config file passes", func(t *testing.T) {
		fs := core.NewMockFileSystem()
		results := NewValidator(fs, Default(), DefaultConfigFile).Validate(ctx)
		if HasErrors(results) {
			t.Errorf("expected no errors, got %+v", results)
		}
	})

	t.Run("valid config file passes", func(t *testing.T) {
		fs := core.NewMockFileSystem()
		fs.SetFile(DefaultConfigFile, []byte("theme: charm\noutput:\n  format: text\n"))
		cfg := &Config{Theme: "charm", Output: &OutputConfig{Format: FormatText}}
		results := NewValidator(fs, cfg, DefaultConfigFile).Validate(ctx)
		if HasErrors(results) {
			t.Errorf("expected no errors, got %+v", results)
		}
	})

	t.Run("unknown keys fail syntax check", func(t *testing.T) {
		fs := core.NewMockFileSystem()
		fs.SetFile(DefaultConfigFile, []byte("theem: charm\n"))
		results := NewValidator(fs, Default(), DefaultConfigFile).Validate(ctx)
		if !HasErrors(results) {
			t.Error("expected errors for unknown key")
		}
	})

	t.Run("unknown output format fails", func(t *testing.T) {
		fs := core.NewMockFileSystem()
		cfg := &Config{Output: &OutputConfig{Format: "xml"}}
		results := NewValidator(fs, cfg, DefaultConfigFile).Validate(ctx)
		if ErrorCount(results) != 1 {
			t.Errorf("ErrorCount = %d, want 1 (%+v)", ErrorCount(results), results)
		}
	})

	t.Run("bad exclude pattern fails", func(t *testing.T) {
		fs := core.NewMockFileSystem()
		cfg := &Config{Scan: &ScanConfig{MaxDepth: 4, Exclude: []string{"["}}}
		results := NewValidator(fs, cfg, DefaultConfigFile).Validate(ctx)
		if !HasErrors(results) {
			t.Error("expected errors for malformed pattern")
		}
	})

	t.Run("negative max depth fails", func(t *testing.T) {
		fs := core.NewMockFileSystem()
		cfg := &Config{Scan: &ScanConfig{MaxDepth: -1}}
		results := NewValidator(fs, cfg, DefaultConfigFile).Validate(ctx)
		if !HasErrors(results) {
			t.Error("expected errors for negative depth")
		}
	})

	t.Run("unknown theme warns only", func(t *testing.T) {
		fs := core.NewMockFileSystem()
		cfg := &Config{Theme: "solarized"}
		results := NewValidator(fs, cfg, DefaultConfigFile).Validate(ctx)
		if HasErrors(results) {
			t.Errorf("expected warning only, got errors: %+v", results)
		}
		if WarningCount(results) != 1 {
			t.Errorf("WarningCount = %d, want 1", WarningCount(results))
		}
	})
}
