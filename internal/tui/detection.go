package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvVars are environment variables whose presence marks a CI/CD run.
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"GITLAB_CI",              // GitLab CI
	"CIRCLECI",               // CircleCI
	"TRAVIS",                 // Travis CI
	"JENKINS_HOME",           // Jenkins
	"BUILDKITE",              // Buildkite
	"BITBUCKET_BUILD_NUMBER", // Bitbucket Pipelines
	"DRONE",                  // Drone CI
	"SEMAPHORE",              // Semaphore CI
	"APPVEYOR",               // AppVeyor
	"CODEBUILD_BUILD_ID",     // AWS CodeBuild
	"TF_BUILD",               // Azure Pipelines
}

// IsInteractive determines if the current environment supports interactive
// prompts and progress displays. It returns false when stdout is not a
// terminal (redirected to file, pipe, etc.) or when running under CI.
//
// Commands use this to skip prompts and spinners in non-interactive contexts.
func IsInteractive() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // G115: fd is a small value, no overflow risk
		return false
	}

	for _, env := range ciEnvVars {
		if os.Getenv(env) != "" {
			return false
		}
	}

	return true
}

// IsTTY checks if stdout is a terminal.
// This is a lower-level check than IsInteractive.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}
