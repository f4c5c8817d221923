package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"anchorver/internal/core"
	"anchorver/internal/tui"
)

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	// Category is the validation category (e.g., "YAML Syntax", "Scan Settings").
	Category string

	// Passed indicates if the check passed.
	Passed bool

	// Message provides details about the validation result.
	Message string

	// Warning indicates if this is a warning rather than an error.
	Warning bool
}

// Validator validates the configuration file and its settings.
type Validator struct {
	fs          core.FileSystem
	cfg         *Config
	configPath  string
	validations []ValidationResult
}

// NewValidator creates a new configuration validator for the file at
// configPath (which may not exist).
func NewValidator(fs core.FileSystem, cfg *Config, configPath string) *Validator {
	return &Validator{
		fs:          fs,
		cfg:         cfg,
		configPath:  configPath,
		validations: make([]ValidationResult, 0),
	}
}

// Validate runs all validation checks and returns the results.
func (v *Validator) Validate(ctx context.Context) []ValidationResult {
	v.validations = make([]ValidationResult, 0)

	v.validateSyntax(ctx)
	v.validateOutput()
	v.validateScan()
	v.validateTheme()

	return v.validations
}

// validateSyntax re-decodes the config file strictly, so unknown keys
// and type mismatches surface here.
func (v *Validator) validateSyntax(ctx context.Context) {
	data, err := v.fs.ReadFile(ctx, v.configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			v.addValidation("YAML Syntax", true, fmt.Sprintf("no config file at %s, using defaults", v.configPath), false)
			return
		}
		v.addValidation("YAML Syntax", false, fmt.Sprintf("cannot read %s: %v", v.configPath, err), false)
		return
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		v.addValidation("YAML Syntax", false, fmt.Sprintf("invalid config: %v", err), false)
		return
	}
	v.addValidation("YAML Syntax", true, fmt.Sprintf("valid config file at %s", v.configPath), false)
}

func (v *Validator) validateOutput() {
	if v.cfg == nil || v.cfg.Output == nil || v.cfg.Output.Format == "" {
		return
	}
	switch v.cfg.Output.Format {
	case FormatText, FormatJSON:
		v.addValidation("Output", true, fmt.Sprintf("format %q", v.cfg.Output.Format), false)
	default:
		v.addValidation("Output", false, fmt.Sprintf("unknown format %q (expected %q or %q)", v.cfg.Output.Format, FormatText, FormatJSON), false)
	}
}

func (v *Validator) validateScan() {
	if v.cfg == nil || v.cfg.Scan == nil {
		return
	}
	if v.cfg.Scan.MaxDepth < 0 {
		v.addValidation("Scan Settings", false, fmt.Sprintf("max-depth %d is negative", v.cfg.Scan.MaxDepth), false)
	}
	for _, pattern := range v.cfg.Scan.Exclude {
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			v.addValidation("Scan Settings", false, fmt.Sprintf("invalid exclude pattern %q: %v", pattern, err), false)
		}
	}
}

func (v *Validator) validateTheme() {
	if v.cfg == nil || v.cfg.Theme == "" {
		return
	}
	if !tui.IsValidTheme(v.cfg.Theme) {
		v.addValidation("Theme", false, fmt.Sprintf("unknown theme %q, the default will be used", v.cfg.Theme), true)
	}
}

// addValidation adds a validation result to the list.
func (v *Validator) addValidation(category string, passed bool, message string, warning bool) {
	v.validations = append(v.validations, ValidationResult{
		Category: category,
		Passed:   passed,
		Message:  message,
		Warning:  warning,
	})
}

// HasErrors returns true if any validation failed.
func HasErrors(results []ValidationResult) bool {
	for _, r := range results {
		if !r.Passed && !r.Warning {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of failed validations.
func ErrorCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if !r.Passed && !r.Warning {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warnings.
func WarningCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if r.Warning {
			count++
		}
	}
	return count
}
