package cmd

import (
	"fmt"
	"image/color"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/pullrefresh/cmd/pullsim/internal/plot"
	"github.com/go-drift/pullrefresh/cmd/pullsim/internal/script"
)

var (
	plotOutput string
	plotWidth  int
	plotHeight int
)

var plotCmd = &cobra.Command{
	Use:   "plot <script.yaml>",
	Short: "Replay a script and render the offset over time as PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlot,
}

func init() {
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "pullsim.png", "PNG file to write")
	plotCmd.Flags().IntVar(&plotWidth, "width", plot.DefaultWidth, "image width in pixels")
	plotCmd.Flags().IntVar(&plotHeight, "height", plot.DefaultHeight, "image height in pixels")
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	trace, err := loadAndReplay(args[0])
	if trace == nil {
		return err
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	f, err := os.Create(plotOutput)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", plotOutput, err)
	}
	defer f.Close()
	if err := plot.WritePNG(f, chartFor(args[0], trace)); err != nil {
		return fmt.Errorf("failed to write %s: %w", plotOutput, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d frames, peak offset %d)\n", plotOutput, len(trace.Frames), trace.MaxOffset())
	return nil
}

func chartFor(title string, trace *script.Trace) *plot.Chart {
	points := make([]plot.Point, len(trace.Frames))
	for i, f := range trace.Frames {
		points[i] = plot.Point{Time: f.Time, Value: f.Offset}
	}
	return &plot.Chart{
		Title:  title,
		Points: points,
		Guides: []plot.Guide{
			{Label: "header", Value: trace.Header, Color: color.RGBA{0x2e, 0x9e, 0x4f, 0xff}},
			{Label: "threshold", Value: trace.Threshold, Color: color.RGBA{0xd9, 0x48, 0x3b, 0xff}},
		},
		Width:  plotWidth,
		Height: plotHeight,
	}
}
