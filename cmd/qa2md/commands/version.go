package commands

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "qa2md %s\n", version)
		fmt.Fprintf(out, "  go:     %s\n", runtime.Version())
		fmt.Fprintf(out, "  os:     %s/%s\n", runtime.GOOS, runtime.GOARCH)

		info, ok := debug.ReadBuildInfo()
		if !ok {
			return nil
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				fmt.Fprintf(out, "  commit: %s\n", setting.Value)
			case "vcs.time":
				fmt.Fprintf(out, "  built:  %s\n", setting.Value)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
