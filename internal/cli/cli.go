// Package cli implements the inkboard command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"InkBoard/internal/board"
	"InkBoard/internal/config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		cfg: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Config returns the loaded preferences.
func (c *CLI) Config() config.Config {
	return c.cfg
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "inkboard",
		Short:        "InkBoard is a stroke annotation board",
		Long:         `InkBoard records pen strokes and erasures as an undoable action log and renders them to a raster, on screen or from a replayed session script.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML preferences file")

	root.AddCommand(c.drawCommand())
	root.AddCommand(c.replayCommand())

	return root
}

func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	lvl, _ := cfg.Level()
	c.SetLogLevel(lvl)
	if c.configPath != "" {
		c.Logger.Info("config loaded", "path", c.configPath)
	}
	return nil
}

// boardOptions turns the preferences into engine options.
func (c *CLI) boardOptions() ([]board.Option, error) {
	style, err := c.cfg.Style()
	if err != nil {
		return nil, err
	}
	return []board.Option{
		board.WithLogger(c.Logger.WithPrefix("board")),
		board.WithStyle(style),
		board.WithStylusOnly(c.cfg.Input.StylusOnly),
		board.WithMultiTouch(c.cfg.Input.MultiTouch),
	}, nil
}
