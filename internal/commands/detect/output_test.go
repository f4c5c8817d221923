package detect

import (
	"strings"
	"testing"

	"anchorver/internal/compat"
	"anchorver/internal/manifest"
	"anchorver/internal/testutils"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  OutputFormat
	}{
		{"text", FormatText},
		{"json", FormatJSON},
		{"", FormatText},
		{"invalid", FormatText},
		{"JSON", FormatText}, // case-sensitive, returns default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseOutputFormat(tt.input)
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatter_FormatReport_Text(t *testing.T) {
	report := &Report{
		Facts: manifest.VersionFacts{
			Rust:   "1.76.0",
			Solana: "1.18.17",
			Anchor: "0.30.1",
			Source: "/proj/rust-toolchain",
		},
		Inferred: true,
	}

	formatter := NewFormatter(FormatText)
	output := formatter.FormatReport(report)

	checks := []string{
		"Detected/Inferred Versions:",
		"Rust: 1.76.0",
		"(from /proj/rust-toolchain)",
		"Solana: 1.18.17",
		"Anchor: 0.30.1",
		"To work with this project, configure your environment as follows:",
		"rustup default 1.76.0",
		"agave-install init 1.18.17",
		"avm use 0.30.1",
	}

	for _, check := range checks {
		if !strings.Contains(output, check) {
			t.Errorf("output missing expected text %q", check)
		}
	}
}

func TestFormatter_FormatReport_TextNotices(t *testing.T) {
	report := &Report{
		Facts: manifest.VersionFacts{
			Rust:   "1.84.1",
			Solana: "2.1.0",
			Anchor: "0.30.1",
		},
		Notices: []compat.Notice{
			"Solana version could not be determined. Suggesting latest.",
			"Rust version could not be determined. Suggesting latest.",
		},
		Inferred: true,
	}

	formatter := NewFormatter(FormatText)
	output := formatter.FormatReport(report)

	noticeIdx := strings.Index(output, "Solana version could not be determined")
	headerIdx := strings.Index(output, "Detected/Inferred Versions:")

	if noticeIdx < 0 {
		t.Fatal("expected notice in output")
	}
	if headerIdx < 0 {
		t.Fatal("expected versions header in output")
	}
	if noticeIdx > headerIdx {
		t.Errorf("notices should print before the versions header (notice at %d, header at %d)", noticeIdx, headerIdx)
	}
	if !strings.Contains(output, "Rust version could not be determined") {
		t.Error("expected rust notice in output")
	}
}

func TestFormatter_FormatReport_TextPlaceholders(t *testing.T) {
	t.Run("inferred report without anchor", func(t *testing.T) {
		report := &Report{
			Facts: manifest.VersionFacts{
				Rust:   "1.76.0",
				Solana: "1.18.17",
			},
			Inferred: true,
		}

		output := NewFormatter(FormatText).FormatReport(report)

		if !strings.Contains(output, "Anchor: Unknown (may not be an Anchor project)") {
			t.Errorf("expected anchor placeholder, got: %q", output)
		}
		if strings.Contains(output, "avm use") {
			t.Error("setup lines must only cover set fields")
		}
		if !strings.Contains(output, "rustup default 1.76.0") {
			t.Error("expected rustup line for set rust version")
		}
	})

	t.Run("raw report keeps unknowns plain", func(t *testing.T) {
		report := &Report{
			Facts: manifest.VersionFacts{Solana: "1.18.17"},
		}

		output := NewFormatter(FormatText).FormatReport(report)

		if !strings.Contains(output, "Rust: Unknown") {
			t.Errorf("expected rust placeholder, got: %q", output)
		}
		if !strings.Contains(output, "Anchor: Unknown") {
			t.Errorf("expected anchor placeholder, got: %q", output)
		}
		if strings.Contains(output, "may not be an Anchor project") {
			t.Error("raw reports should not speculate about the project type")
		}
		if strings.Contains(output, "rustup default") {
			t.Error("setup lines must only cover set fields")
		}
		if !strings.Contains(output, "agave-install init 1.18.17") {
			t.Error("expected agave-install line for set solana version")
		}
	})

	t.Run("provenance only with a source", func(t *testing.T) {
		report := &Report{
			Facts:    manifest.VersionFacts{Rust: "1.76.0", Solana: "1.18.17", Anchor: "0.30.1"},
			Inferred: true,
		}

		output := NewFormatter(FormatText).FormatReport(report)

		if strings.Contains(output, "(from") {
			t.Errorf("expected no provenance suffix, got: %q", output)
		}
	})
}

func TestFormatter_FormatReport_JSON(t *testing.T) {
	report := &Report{
		Facts: manifest.VersionFacts{
			Rust:   "1.76.0",
			Solana: "1.18.17",
			Anchor: "0.30.1",
			Source: "/proj/rust-toolchain",
		},
		Notices:  []compat.Notice{"Solana version could not be determined. Suggesting latest."},
		Inferred: true,
	}

	formatter := NewFormatter(FormatJSON)
	output := formatter.FormatReport(report)

	checks := []string{
		`"rust": "1.76.0"`,
		`"solana": "1.18.17"`,
		`"anchor": "0.30.1"`,
		`"source": "/proj/rust-toolchain"`,
		`"notices"`,
		`"Solana version could not be determined. Suggesting latest."`,
	}

	for _, check := range checks {
		if !strings.Contains(output, check) {
			t.Errorf("JSON output missing expected text %q", check)
		}
	}

	if strings.Contains(output, "To work with this project") {
		t.Error("JSON output must not carry the setup block")
	}
}

func TestFormatter_FormatReport_JSONEmptyFields(t *testing.T) {
	report := &Report{Inferred: true}

	output := NewFormatter(FormatJSON).FormatReport(report)

	checks := []string{
		`"rust": ""`,
		`"anchor": ""`,
		`"notices": []`,
	}

	for _, check := range checks {
		if !strings.Contains(output, check) {
			t.Errorf("JSON output missing expected text %q", check)
		}
	}

	if strings.Contains(output, "Unknown") {
		t.Error("JSON output must keep unset fields empty, not use placeholders")
	}
}

func TestFormatter_PrintReport(t *testing.T) {
	report := &Report{
		Facts:    manifest.VersionFacts{Rust: "1.76.0", Solana: "1.18.17", Anchor: "0.30.1"},
		Inferred: true,
	}

	output, err := testutils.CaptureStdout(func() {
		NewFormatter(FormatText).PrintReport(report)
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}

	if !strings.Contains(output, "Detected/Inferred Versions:") {
		t.Errorf("expected versions header in output, got: %q", output)
	}
	if !strings.HasSuffix(output, "\n") {
		t.Error("expected trailing newline")
	}
}

func TestFormatter_PrintReport_JSON(t *testing.T) {
	report := &Report{
		Facts:    manifest.VersionFacts{Rust: "1.76.0", Solana: "1.18.17", Anchor: "0.30.1"},
		Inferred: true,
	}

	output, err := testutils.CaptureStdout(func() {
		NewFormatter(FormatJSON).PrintReport(report)
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}

	if !strings.Contains(output, `"rust": "1.76.0"`) {
		t.Errorf("expected JSON rust field in output, got: %q", output)
	}
	if !strings.HasSuffix(output, "\n") {
		t.Error("expected trailing newline")
	}
}

func TestNewFormatter(t *testing.T) {
	for _, format := range []OutputFormat{FormatText, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			f := NewFormatter(format)
			if f == nil {
				t.Fatal("expected non-nil formatter")
			}
			if f.format != format {
				t.Errorf("format = %v, want %v", f.format, format)
			}
		})
	}
}
