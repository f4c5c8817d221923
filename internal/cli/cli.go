package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	urfavecli "github.com/urfave/cli/v3"

	"anchorver/internal/commands/detect"
	"anchorver/internal/commands/doctor"
	"anchorver/internal/commands/initialize"
	"anchorver/internal/commands/matrix"
	"anchorver/internal/config"
	"anchorver/internal/printer"
	"anchorver/internal/tui"
	"anchorver/internal/version"
)

var noColorFlag bool

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the anchorver cli.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "anchorver",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Toolchain version detector for Anchor and Solana projects",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "theme",
				Usage:       "Color theme for interactive prompts",
				DefaultText: "anchorver",
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
			&urfavecli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			noColor := noColorFlag
			if cfg != nil && cfg.Output != nil && cfg.Output.NoColor {
				noColor = true
			}
			printer.SetNoColor(noColor)

			// The flag wins over the config file; the loader already
			// folded the environment into cfg.
			theme := cmd.String("theme")
			if theme == "" && cfg != nil {
				theme = cfg.Theme
			}
			tui.SetTheme(theme)

			if cmd.Bool("verbose") {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.WarnLevel)
			}
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			detect.Run(cfg),
			matrix.Run(),
			initialize.Run(),
			doctor.Run(cfg),
		},
	}
}
