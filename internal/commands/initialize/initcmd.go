package initialize

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"anchorver/internal/config"
	"anchorver/internal/printer"
	"anchorver/internal/tui"
)

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create an .anchorver.yaml configuration file",
		UsageText: `anchorver init [options]

Walks through theme, output format and scan settings in an interactive
terminal; elsewhere, or with --yes, it writes the defaults.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Accept defaults without prompting",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			interactive := tui.IsInteractive() && !cmd.Bool("yes")
			return initConfig(NewPrompter(), interactive)
		},
	}
}

// initConfig drives the init flow. With interactive set, settings come
// from prompts and an existing file asks before being replaced; otherwise
// an existing file is an error and the defaults are written as-is.
func initConfig(prompter Prompter, interactive bool) error {
	if configExists() {
		if !interactive {
			return fmt.Errorf("configuration file %s already exists", config.DefaultConfigFile)
		}
		overwrite, err := prompter.Confirm(
			"Overwrite existing configuration?",
			fmt.Sprintf("%s already exists in this directory.", config.DefaultConfigFile),
		)
		if err != nil {
			return err
		}
		if !overwrite {
			printer.PrintFaint("Keeping the existing configuration.")
			return nil
		}
	}

	cfg := config.Default()
	if interactive {
		if err := promptSettings(prompter, cfg); err != nil {
			return err
		}
	}

	if err := configSaver.Save(cfg); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Created %s", config.DefaultConfigFile))
	printer.PrintFaint("Run 'anchorver detect <project_directory>' to try it out.")
	return nil
}

// configSaver writes the annotated YAML through the injected saver.
var configSaver = config.NewConfigSaver(&commentedMarshaler{}, nil, nil)

// promptSettings fills cfg from the interactive prompts.
func promptSettings(prompter Prompter, cfg *config.Config) error {
	theme, err := prompter.Select(
		"Theme",
		"Colors for prompts and forms.",
		themeOptions(),
	)
	if err != nil {
		return err
	}
	cfg.Theme = theme

	format, err := prompter.Select(
		"Default output format",
		"How detect reports render when --format is not given.",
		formatOptions(),
	)
	if err != nil {
		return err
	}
	cfg.Output.Format = format

	exclude, err := prompter.Input(
		"Exclude directories",
		"Comma-separated glob patterns the scan should skip. Leave empty for none.",
		"fixtures, vendor-*",
	)
	if err != nil {
		return err
	}
	cfg.Scan.Exclude = parseExcludePatterns(exclude)

	return nil
}

// themeOptions lists the selectable theme names.
func themeOptions() []huh.Option[string] {
	options := make([]huh.Option[string], len(tui.ValidThemes))
	for i, name := range tui.ValidThemes {
		options[i] = huh.NewOption(name, name)
	}
	return options
}

// formatOptions lists the selectable output formats.
func formatOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("text", config.FormatText),
		huh.NewOption("json", config.FormatJSON),
	}
}

// parseExcludePatterns splits a comma-separated pattern list, dropping
// empty entries.
func parseExcludePatterns(input string) []string {
	var patterns []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			patterns = append(patterns, trimmed)
		}
	}
	return patterns
}

// configExists reports whether the config file is present in the current
// directory.
func configExists() bool {
	_, err := os.Stat(config.DefaultConfigFile)
	return err == nil
}
