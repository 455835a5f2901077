package cli

import (
	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/keelhook/internal/config"
	"github.com/schoolboyqueue/keelhook/internal/hook"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Run the Codex notify hook (reads one event from stdin)",
	Long: `Read one Codex notification event from stdin. When the event type is
agent-turn-complete, run keel compile on changed files and relay the
compiler's stderr diagnostics; any other event is ignored.

Codex invokes this command through the notify setting in
.codex/config.toml (see "keelhook init"); it is not normally run by
hand. The command exits zero even when the compile reports violations --
diagnostics travel over stderr, never the exit status.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}

		keelCmd, keelArgs := cfg.CompileCommand()
		h := hook.New(hook.ExecRunner{}, cmd.ErrOrStderr(), keelCmd, keelArgs)
		return h.HandleEvent(cmd.Context(), cmd.InOrStdin())
	},
}
