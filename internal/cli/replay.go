package cli

import (
	"fmt"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"InkBoard/internal/board"
	"InkBoard/internal/export"
	"InkBoard/internal/script"
	"InkBoard/internal/state"
)

func (c *CLI) replayCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "replay [script]",
		Short: "Run a session script and print the resulting log",
		Long:  `Replay applies every step of a YAML session script to a fresh board, prints the action log and optionally exports the final raster as PNG or PDF.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			opts, err := c.boardOptions()
			if err != nil {
				return err
			}
			e := board.New(s.Width, s.Height, opts...)
			if err := s.Run(e); err != nil {
				return fmt.Errorf("replay %s: %w", args[0], err)
			}
			c.Logger.Debug("replayed", "script", args[0], "steps", len(s.Steps))

			printLog(cmd.OutOrStdout(), e.Entries())

			if output == "" {
				return nil
			}
			if err := export.ToFile(output, e.SnapshotRaster()); err != nil {
				return err
			}
			c.Logger.Info("exported board", "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "write the final raster to this .png or .pdf file")
	return cmd
}

// printLog writes one line per log entry.
func printLog(w io.Writer, entries []state.Action) {
	for i, a := range entries {
		switch a := a.(type) {
		case *state.Draw:
			col, _ := colorful.MakeColor(a.Style.Color)
			fmt.Fprintf(w, "%3d draw  %s %-5s points=%d width=%g color=%s\n",
				i, a.ID, a.Geometry.Kind, len(a.Geometry.Points), a.Style.Width, col.Hex())
		case *state.Erase:
			fmt.Fprintf(w, "%3d erase strokes=%d\n", i, len(a.Removed))
		}
	}
}
