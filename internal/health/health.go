// Package health runs environment checks for the keelhook doctor command.
package health

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/schoolboyqueue/keelhook/internal/codex"
	"github.com/schoolboyqueue/keelhook/internal/hook"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// Report contains all health check results
type Report struct {
	Checks []CheckResult
	Passed bool
}

// Run runs all health checks against the given project directory and
// returns a report. keelCmd is the configured keel executable; runner
// performs the version probe.
func Run(ctx context.Context, runner hook.Runner, keelCmd, projectDir string) *Report {
	report := &Report{
		Checks: make([]CheckResult, 0),
		Passed: true,
	}

	for _, check := range []CheckResult{
		CheckKeelCLI(keelCmd),
		CheckKeelVersion(ctx, runner, keelCmd),
		CheckRegistration(projectDir),
	} {
		report.Checks = append(report.Checks, check)
		if !check.Passed {
			report.Passed = false
		}
	}

	return report
}

// CheckKeelCLI checks if the keel compiler is available
func CheckKeelCLI(keelCmd string) CheckResult {
	path, err := exec.LookPath(keelCmd)
	if err != nil {
		return CheckResult{
			Name:    "keel CLI",
			Passed:  false,
			Message: fmt.Sprintf("%s not found in PATH", keelCmd),
		}
	}

	return CheckResult{
		Name:    "keel CLI",
		Passed:  true,
		Message: fmt.Sprintf("keel found at %s", path),
	}
}

// CheckKeelVersion probes the keel compiler by running it with --version
func CheckKeelVersion(ctx context.Context, runner hook.Runner, keelCmd string) CheckResult {
	result, err := runner.Run(ctx, keelCmd, "--version")
	if err != nil || result.ExitCode != 0 {
		return CheckResult{
			Name:    "keel version",
			Passed:  false,
			Message: fmt.Sprintf("%s --version failed", keelCmd),
		}
	}

	version := strings.TrimSpace(result.Stdout)
	if version == "" {
		version = "unknown version"
	}

	return CheckResult{
		Name:    "keel version",
		Passed:  true,
		Message: version,
	}
}

// CheckRegistration checks that .codex/config.toml registers the notify hook
func CheckRegistration(projectDir string) CheckResult {
	cfg, err := codex.Load(projectDir)
	if err != nil {
		return CheckResult{
			Name:    "Codex registration",
			Passed:  false,
			Message: err.Error(),
		}
	}

	if !cfg.HookRegistered() {
		return CheckResult{
			Name:    "Codex registration",
			Passed:  false,
			Message: "notify hook not registered, run: keelhook init",
		}
	}

	return CheckResult{
		Name:    "Codex registration",
		Passed:  true,
		Message: "notify hook registered in " + cfg.FilePath(),
	}
}

// FormatReport formats the health report for console output
func FormatReport(report *Report) string {
	var b strings.Builder

	for _, check := range report.Checks {
		if check.Passed {
			fmt.Fprintf(&b, "✓ %s: %s\n", check.Name, check.Message)
		} else {
			fmt.Fprintf(&b, "✗ %s: %s\n", check.Name, check.Message)
		}
	}

	return b.String()
}
