package board

import (
	"io"

	"github.com/charmbracelet/log"

	"InkBoard/internal/input"
	"InkBoard/internal/state"
)

// Option configures an Engine during creation.
type Option func(*options)

type options struct {
	logger   *log.Logger
	sink     input.GestureSink
	style    state.Style
	onChange func()
	input    input.Options
}

func defaultOptions() options {
	return options{
		logger: log.New(io.Discard),
		style:  state.DefaultStyle,
		input:  input.Options{MultiTouch: true},
	}
}

// WithLogger sets the logger. By default the engine logs nothing.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithGestureSink sets where second-pointer taps and drags go.
func WithGestureSink(s input.GestureSink) Option {
	return func(o *options) {
		o.sink = s
	}
}

// WithStyle sets the pen the board starts with.
func WithStyle(s state.Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithOnChange registers a callback run after every change to the log or
// the raster, so a host can redraw and update its undo affordances.
func WithOnChange(fn func()) Option {
	return func(o *options) {
		o.onChange = fn
	}
}

// WithStylusOnly lets non-stylus input through to the host.
func WithStylusOnly(on bool) Option {
	return func(o *options) {
		o.input.StylusOnly = on
	}
}

// WithMultiTouch enables or disables second-pointer gestures. Enabled by
// default.
func WithMultiTouch(on bool) Option {
	return func(o *options) {
		o.input.MultiTouch = on
	}
}
