package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbhint/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "dumbhint %s\n", buildInfo.Short())
		fmt.Fprintf(out, "built: %s\n", buildInfo.BuildDate)
		fmt.Fprintf(out, "go: %s\n", buildInfo.GoVersion)
		fmt.Fprintf(out, "%s\n", build.RepoURL)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
