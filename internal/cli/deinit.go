package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/keelhook/internal/codex"
)

var deinitCmd = &cobra.Command{
	Use:   "deinit",
	Short: "Remove the notify hook from .codex/config.toml",
	Long: `Remove the notify setting from .codex/config.toml when it was installed
by keelhook. A notify command pointing at anything else is left
untouched, as are all other settings in the file.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runDeinit,
}

func runDeinit(cmd *cobra.Command, args []string) error {
	projectDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	cfg, err := codex.Load(projectDir)
	if err != nil {
		return err
	}

	if !cfg.Exists() {
		fmt.Fprintln(cmd.OutOrStdout(), "keelhook: no .codex/config.toml, nothing to do")
		return nil
	}

	if !cfg.RemoveNotify() {
		fmt.Fprintln(cmd.OutOrStdout(), "keelhook: notify hook not registered, leaving config untouched")
		return nil
	}

	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "keelhook: removed notify hook from %s\n", cfg.FilePath())
	return nil
}
