// Package cmd implements the pullsim CLI commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-drift/pullrefresh/cmd/pullsim/internal/script"
	"github.com/go-drift/pullrefresh/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pullsim",
	Short: "Replay pull-to-refresh gesture scripts",
	Long: `pullsim feeds a scripted pointer sequence to a pull-to-refresh layout
on a fake 60Hz frame clock and reports the offset, lifecycle state and
indicator label over time.

Scripts are YAML files with version ` + script.CurrentVersion + `.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		errors.SetHandler(&errors.LogHandler{Verbose: verbose, Output: cmd.ErrOrStderr()})
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("pullsim version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "record lifecycle transitions and report errors with stack traces")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadAndReplay(path string) (*script.Trace, error) {
	s, err := script.Load(path)
	if err != nil {
		return nil, err
	}
	return script.Replay(s, script.Options{Verbose: verbose})
}
