package detect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"anchorver/internal/compat"
	"anchorver/internal/config"
	"anchorver/internal/core"
	"anchorver/internal/discovery"
	"anchorver/internal/manifest"
	"anchorver/internal/tui"
)

// Run returns the "detect" command.
func Run(cfg *config.Config) *cli.Command {
	defaultFormat := config.FormatText
	if cfg != nil && cfg.Output != nil && cfg.Output.Format != "" {
		defaultFormat = cfg.Output.Format
	}

	return &cli.Command{
		Name:      "detect",
		Aliases:   []string{"scan"},
		Usage:     "Detect the Rust, Solana and Anchor versions a project expects",
		ArgsUsage: "<project_directory>",
		UsageText: `anchorver detect <project_directory> [options]

Scans the project directory for:
  - rust-toolchain / rust-toolchain.toml pins
  - Anchor.toml toolchain configuration
  - Cargo.toml Solana and Anchor dependencies
  - package.json Solana and Anchor dependencies

Versions still missing afterwards are completed from the built-in
compatibility table.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json",
				Value:   defaultFormat,
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only print the versions",
			},
			&cli.BoolFlag{
				Name:  "no-infer",
				Usage: "Print raw detected facts without consulting the compatibility table",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDetectCmd(ctx, cmd, cfg)
		},
	}
}

// runDetectCmd executes the detect command.
func runDetectCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	args := cmd.Args().Slice()
	if len(args) != 1 {
		fmt.Printf("Usage: %s detect <project_directory>\n", cmd.Root().Name)
		return nil
	}

	projectDir, err := resolveProjectDir(args[0])
	if err != nil {
		return err
	}

	format := ParseOutputFormat(cmd.String("format"))
	quiet := cmd.Bool("quiet")

	fs := core.NewOSFileSystem()
	svc := discovery.NewService(fs, cfg)

	var facts manifest.VersionFacts
	scan := func(ctx context.Context) error {
		var err error
		facts, err = svc.Detect(ctx, projectDir)
		return err
	}

	if format == FormatText && !quiet {
		err = tui.WithSpinner(ctx, "Scanning project...", scan)
	} else {
		err = scan(ctx)
	}
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	report := &Report{Facts: facts}
	if !cmd.Bool("no-infer") {
		completed, notices, err := compat.Infer(facts)
		if err != nil {
			return err
		}
		report.Facts = completed
		report.Notices = notices
		report.Inferred = true
	}

	if quiet {
		printQuietReport(report)
		return nil
	}

	NewFormatter(format).PrintReport(report)
	return nil
}

// resolveProjectDir validates that path names an existing directory and
// canonicalizes it to an absolute, symlink-free form.
func resolveProjectDir(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("project directory does not exist: %s", path)
		}
		return "", fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize path %q: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize path %q: %w", path, err)
	}
	return resolved, nil
}

// printQuietReport prints the bare version fields, one per line.
func printQuietReport(r *Report) {
	rust := r.Facts.Rust
	if rust == "" {
		rust = unknownVersion
	}
	solana := r.Facts.Solana
	if solana == "" {
		solana = unknownVersion
	}
	anchor := r.Facts.Anchor
	if anchor == "" {
		anchor = unknownVersion
	}
	fmt.Printf("rust: %s\nsolana: %s\nanchor: %s\n", rust, solana, anchor)
}
