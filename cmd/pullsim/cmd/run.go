package cmd

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Replay a script and print the trace",
	Long: `Replays a gesture script and prints one line per event and per frame
that changed the offset, content scroll, state or label, followed by a
summary line.

With --verbose, lines also carry lifecycle transitions and label changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	trace, err := loadAndReplay(args[0])
	if trace != nil {
		if werr := trace.WriteText(cmd.OutOrStdout()); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}
