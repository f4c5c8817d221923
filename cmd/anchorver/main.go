package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"anchorver/internal/cli"
	"anchorver/internal/config"
	"anchorver/internal/printer"
)

// runCLI loads the configuration and runs the root command with args.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appCli := cli.New(cfg)
	return appCli.Run(context.Background(), args)
}

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())

		var suggester interface{ Suggestion() string }
		if errors.As(err, &suggester) {
			printer.PrintFaint(suggester.Suggestion())
		}
		os.Exit(1)
	}
}
