package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/keelhook/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long:  "Display version, commit, build date, and Go version information for keelhook",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "keelhook %s\n", build.Version)
		fmt.Fprintf(out, "commit: %s\n", build.Commit)
		fmt.Fprintf(out, "built: %s\n", build.BuildDate)
		fmt.Fprintf(out, "go: %s\n", runtime.Version())
		fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}
