package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/keelhook/internal/codex"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Register the notify hook in .codex/config.toml",
	Long: `Set the notify setting in .codex/config.toml to the current keelhook
executable, creating the file when absent. Every other setting in the
file is preserved. Re-running refreshes the registration, for example
after the binary moves.`,
	Example: `  # Register the hook for the current project
  keelhook init`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	projectDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	exe, err := hookExecutable()
	if err != nil {
		return fmt.Errorf("resolving keelhook executable: %w", err)
	}

	cfg, err := codex.Load(projectDir)
	if err != nil {
		return err
	}

	cfg.SetNotify(exe + " notify")
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "keelhook: registered notify hook in %s\n", cfg.FilePath())
	return nil
}

// hookExecutable returns the absolute path to the current keelhook
// executable with symlinks resolved, so the registration survives
// symlinked install locations.
func hookExecutable() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(exePath)
	if err != nil {
		return "", err
	}

	return resolved, nil
}
