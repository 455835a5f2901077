// Package cli provides Cobra-based CLI commands for keelhook, the Codex
// notify hook for the keel architecture compiler. It defines the hook
// entry point (notify), registration management (init, deinit), and
// utility commands (doctor, version).
package cli

import (
	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/keelhook/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "keelhook",
	Short: "Codex notify hook for the keel compiler",
	Long: `keelhook connects the keel architecture compiler to Codex CLI.

Codex invokes "keelhook notify" after each agent turn via the notify
setting in .codex/config.toml. On turn completion the hook runs
"keel compile --changed --json" and relays compiler diagnostics on
stderr so Codex sees violations in its next turn.`,
	Example: `  # Register the hook in .codex/config.toml
  keelhook init

  # Verify keel and the registration are in place
  keelhook doctor

  # What Codex runs after each turn (reads the event from stdin)
  echo '{"type": "agent-turn-complete"}' | keelhook notify`,
}

// configFile is the local config path, set via the global --config flag.
var configFile string

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultLocalPath, "Path to config file")

	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(deinitCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}
