package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/schoolboyqueue/keelhook/internal/config"
	"github.com/schoolboyqueue/keelhook/internal/health"
	"github.com/schoolboyqueue/keelhook/internal/hook"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run health checks for the notify hook setup",
	Long: `Run health checks to verify the notify hook can do its job.

This command checks:
  - keel CLI is resolvable (honoring keel_cmd from config)
  - keel responds to --version
  - .codex/config.toml registers the notify hook

Each check displays a ✓ if passed or ✗ with an error message if failed.`,
	Example: `  # Check the setup before relying on the hook
  keelhook doctor

  # Typical first-time setup
  keelhook init && keelhook doctor`,
	Run: func(cmd *cobra.Command, args []string) {
		keelCmd := "keel"
		cfg, err := config.Load(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		} else {
			keelCmd = cfg.KeelCmd
		}

		projectDir, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		isTTY := term.IsTerminal(int(os.Stdout.Fd()))

		// The version probe spawns keel; show a spinner while it runs,
		// on stderr so piped stdout stays clean.
		var s *spinner.Spinner
		if isTTY {
			s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			s.Writer = os.Stderr
			s.Suffix = " checking environment"
			s.Start()
		}

		report := health.Run(cmd.Context(), hook.ExecRunner{}, keelCmd, projectDir)

		if s != nil {
			s.Stop()
		}

		printReport(report, isTTY)

		if !report.Passed {
			os.Exit(1)
		}
	},
}

// printReport prints the health report, colorized on a terminal.
func printReport(report *health.Report, isTTY bool) {
	if !isTTY {
		fmt.Print(health.FormatReport(report))
		return
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	for _, check := range report.Checks {
		if check.Passed {
			fmt.Printf("%s %s: %s\n", green("✓"), check.Name, check.Message)
		} else {
			fmt.Printf("%s %s: %s\n", red("✗"), check.Name, check.Message)
		}
	}
}
