// Package testutils provides shared helpers for command and CLI tests.
package testutils

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"

	"anchorver/internal/config"
)

// CaptureStdout captures everything fn writes to stdout.
func CaptureStdout(fn func()) (string, error) {
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", fmt.Errorf("failed to create pipe: %w", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read captured output: %w", err)
	}
	return string(data), nil
}

// BuildCLIForTests builds a root command hosting the given subcommands,
// mirroring the production CLI shape without its Before hook.
func BuildCLIForTests(commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name:     "anchorver",
		Commands: commands,
	}
}

// RunCLITest runs the CLI with args from workDir and fails the test on
// error.
func RunCLITest(t *testing.T, appCli *cli.Command, args []string, workDir string) {
	t.Helper()
	if err := RunCLITestAllowError(t, appCli, args, workDir); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

// RunCLITestAllowError runs the CLI with args from workDir and returns
// whatever error the command produced.
func RunCLITestAllowError(t *testing.T, appCli *cli.Command, args []string, workDir string) error {
	t.Helper()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(workDir); err != nil {
		t.Fatalf("failed to enter %s: %v", workDir, err)
	}
	defer func() {
		if err := os.Chdir(oldWd); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	}()

	return appCli.Run(context.Background(), args)
}

// WriteTempManifest writes a manifest file under dir and returns its path.
func WriteTempManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteTempConfig writes an anchorver config file under dir and returns
// its path.
func WriteTempConfig(t *testing.T, dir, content string) string {
	t.Helper()
	return WriteTempManifest(t, dir, config.DefaultConfigFile, content)
}
