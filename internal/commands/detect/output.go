package detect

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"anchorver/internal/compat"
	"anchorver/internal/manifest"
	"anchorver/internal/printer"
)

// Placeholders for fields that are still unset when the report prints.
const (
	unknownVersion       = "Unknown"
	unknownAnchorVersion = "Unknown (may not be an Anchor project)"
)

// Report is everything one detection run produced for display.
type Report struct {
	Facts   manifest.VersionFacts
	Notices []compat.Notice

	// Inferred records whether the compatibility engine ran; it decides
	// how an unset Anchor version is worded.
	Inferred bool
}

// Formatter handles display of detection reports.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a new Formatter with the specified output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// FormatReport formats the report for display.
func (f *Formatter) FormatReport(r *Report) string {
	if f.format == FormatJSON {
		return f.formatJSON(r)
	}
	return f.formatText(r)
}

// formatText formats the report as human-readable text.
func (f *Formatter) formatText(r *Report) string {
	var sb strings.Builder

	for _, notice := range r.Notices {
		sb.WriteString(printer.Warning(string(notice)))
		sb.WriteString("\n")
	}
	if len(r.Notices) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString(printer.Bold("Detected/Inferred Versions:"))
	sb.WriteString("\n")

	rust := r.Facts.Rust
	if rust == "" {
		rust = unknownVersion
	}
	if r.Facts.Source != "" {
		fmt.Fprintf(&sb, "%s %s %s\n", printer.Bold("Rust:"), rust, printer.Faint(fmt.Sprintf("(from %s)", r.Facts.Source)))
	} else {
		fmt.Fprintf(&sb, "%s %s\n", printer.Bold("Rust:"), rust)
	}

	solana := r.Facts.Solana
	if solana == "" {
		solana = unknownVersion
	}
	fmt.Fprintf(&sb, "%s %s\n", printer.Bold("Solana:"), solana)

	anchor := r.Facts.Anchor
	if anchor == "" {
		anchor = unknownVersion
		if r.Inferred {
			anchor = unknownAnchorVersion
		}
	}
	fmt.Fprintf(&sb, "%s %s\n", printer.Bold("Anchor:"), anchor)

	sb.WriteString("\n")
	sb.WriteString("To work with this project, configure your environment as follows:\n")
	if r.Facts.Rust != "" {
		fmt.Fprintf(&sb, "  %s\n", printer.Success("rustup default "+r.Facts.Rust))
	}
	if r.Facts.Solana != "" {
		fmt.Fprintf(&sb, "  %s\n", printer.Success("agave-install init "+r.Facts.Solana))
	}
	if r.Facts.Anchor != "" {
		fmt.Fprintf(&sb, "  %s\n", printer.Success("avm use "+r.Facts.Anchor))
	}

	return sb.String()
}

// formatJSON formats the report as JSON.
func (f *Formatter) formatJSON(r *Report) string {
	notices := make([]string, 0, len(r.Notices))
	for _, n := range r.Notices {
		notices = append(notices, string(n))
	}

	output := struct {
		Rust    string   `json:"rust"`
		Solana  string   `json:"solana"`
		Anchor  string   `json:"anchor"`
		Source  string   `json:"source"`
		Notices []string `json:"notices"`
	}{
		Rust:    r.Facts.Rust,
		Solana:  r.Facts.Solana,
		Anchor:  r.Facts.Anchor,
		Source:  r.Facts.Source,
		Notices: notices,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting JSON: %v\n", err)
		return ""
	}

	return string(data)
}

// PrintReport prints the formatted report to stdout.
func (f *Formatter) PrintReport(r *Report) {
	out := f.FormatReport(r)
	if f.format == FormatJSON {
		fmt.Println(out)
		return
	}
	fmt.Print(out)
}
