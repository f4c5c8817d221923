package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/urfave/cli/v3"

	"anchorver/internal/config"
	"anchorver/internal/core"
	"anchorver/internal/discovery"
	"anchorver/internal/printer"
)

// managedTools are the version managers the setup commands rely on.
var managedTools = []string{"rustup", "agave-install", "avm"}

// lookPathFn resolves tool names on PATH; tests swap it out.
var lookPathFn = exec.LookPath

// Run returns the "doctor" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Check the configuration file, toolchain managers and current directory",
		UsageText: `anchorver doctor [options]

Validates the configuration file, looks rustup, agave-install and avm up
on PATH (nothing is executed) and probes the current directory for
version evidence. Exits non-zero when the configuration file exists but
is invalid.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only print the summary",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDoctorCmd(ctx, cmd, cfg)
		},
	}
}

// runDoctorCmd executes the doctor command.
func runDoctorCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	quiet := cmd.Bool("quiet")

	configPath := config.ConfigFilePath()
	fs := core.NewOSFileSystem()
	results := config.NewValidator(fs, cfg, configPath).Validate(ctx)

	if !quiet {
		printer.PrintBold("Configuration")
		for _, r := range results {
			printValidation(r)
		}
		fmt.Println()
	}

	toolChecks := checkTools()
	if !quiet {
		printer.PrintBold("Toolchain managers")
		for _, c := range toolChecks {
			printTool(c)
		}
		fmt.Println()
	}

	if !quiet {
		printer.PrintBold("Current directory")
		if checkProject(ctx, cfg) {
			printer.PrintSuccess("  ✓ version evidence found, detect will work here")
		} else {
			printer.PrintFaint("  - no Solana version evidence, point detect at a project directory")
		}
		fmt.Println()
	}

	errorCount := config.ErrorCount(results)
	warningCount := config.WarningCount(results)
	for _, c := range toolChecks {
		if c.err != nil {
			warningCount++
		}
	}

	if errorCount > 0 {
		printer.PrintError(fmt.Sprintf("Doctor found %d error(s) and %d warning(s)", errorCount, warningCount))
		return fmt.Errorf("configuration at %s failed validation", configPath)
	}
	if warningCount > 0 {
		printer.PrintWarning(fmt.Sprintf("Doctor found %d warning(s)", warningCount))
		return nil
	}
	printer.PrintSuccess("Doctor found no problems")
	return nil
}

// printValidation prints one configuration check result.
func printValidation(r config.ValidationResult) {
	switch {
	case r.Passed:
		printer.PrintSuccess(fmt.Sprintf("  ✓ %s: %s", r.Category, r.Message))
	case r.Warning:
		printer.PrintWarning(fmt.Sprintf("  ⚠ %s: %s", r.Category, r.Message))
	default:
		printer.PrintError(fmt.Sprintf("  ✗ %s: %s", r.Category, r.Message))
	}
}

// toolCheck is the result of a PATH lookup for one toolchain manager.
type toolCheck struct {
	name string
	path string
	err  error
}

// checkTools looks each managed tool up on PATH.
func checkTools() []toolCheck {
	checks := make([]toolCheck, 0, len(managedTools))
	for _, name := range managedTools {
		path, err := lookPathFn(name)
		checks = append(checks, toolCheck{name: name, path: path, err: err})
	}
	return checks
}

// printTool prints one PATH lookup result. A missing manager is a
// warning, not an error; detect still works without it.
func printTool(c toolCheck) {
	if c.err != nil {
		printer.PrintWarning(fmt.Sprintf("  ⚠ %s not found on PATH", c.name))
		return
	}
	printer.PrintSuccess(fmt.Sprintf("  ✓ %s at %s", c.name, c.path))
}

// checkProject runs a quiet scan of the working directory and reports
// whether it carries any Solana or Anchor version evidence.
func checkProject(ctx context.Context, cfg *config.Config) bool {
	wd, err := os.Getwd()
	if err != nil {
		return false
	}

	svc := discovery.NewService(core.NewOSFileSystem(), cfg)
	facts, err := svc.Detect(ctx, wd)
	if err != nil {
		return false
	}
	return facts.Solana != "" || facts.Anchor != ""
}
