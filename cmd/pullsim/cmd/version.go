package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/pullrefresh/cmd/pullsim/internal/script"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pullsim version %s (built %s, script format %s)\n", Version, BuildTime, script.CurrentVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
