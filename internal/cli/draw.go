package cli

import (
	"github.com/spf13/cobra"

	"InkBoard/internal/ui"
)

func (c *CLI) drawCommand() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Open a board window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.boardOptions()
			if err != nil {
				return err
			}
			w := ui.Window{
				Width:  c.cfg.Canvas.Width,
				Height: c.cfg.Canvas.Height,
				Dark:   c.cfg.Pen.Dark,
				Logger: c.Logger,
			}
			if width > 0 {
				w.Width = width
			}
			if height > 0 {
				w.Height = height
			}
			c.Logger.Info("opening board", "width", w.Width, "height", w.Height)
			ui.RunApp(w, opts...)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "window width (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "window height (default from config)")
	return cmd
}
