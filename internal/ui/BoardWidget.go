package ui

import (
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"InkBoard/internal/board"
	"InkBoard/internal/input"
	"InkBoard/internal/state"
)

// BoardWidget shows a board and feeds it mouse input. The primary button
// draws and the secondary button erases.
type BoardWidget struct {
	widget.BaseWidget

	engine     *board.Engine
	raster     *canvas.Raster
	background color.Color
	statusBar  *widget.Label

	tool    input.ToolKind
	buttons input.Buttons
	down    bool

	// OnChanged runs after every change to the board, so the toolbar can
	// refresh its undo and redo buttons.
	OnChanged func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ input.GestureSink = (*BoardWidget)(nil)

// NewBoardWidget creates a board of the given size. The widget registers
// itself as the engine's change listener and gesture sink.
func NewBoardWidget(width, height int, background color.Color, opts ...board.Option) *BoardWidget {
	b := &BoardWidget{
		background: background,
		statusBar:  widget.NewLabel("Ready"),
	}
	opts = append(opts, board.WithOnChange(b.changed), board.WithGestureSink(b))
	b.engine = board.New(width, height, opts...)
	b.raster = canvas.NewRaster(func(int, int) image.Image {
		return b.engine.Preview()
	})
	b.raster.ScaleMode = canvas.ImageScaleSmooth
	b.ExtendBaseWidget(b)
	return b
}

// Engine returns the board behind the widget.
func (b *BoardWidget) Engine() *board.Engine {
	return b.engine
}

// Status is the label the widget reports to.
func (b *BoardWidget) Status() *widget.Label {
	return b.statusBar
}

// SetStatus shows text in the status bar. It is safe to call from any
// goroutine.
func (b *BoardWidget) SetStatus(text string) {
	fyne.Do(func() {
		b.statusBar.SetText(text)
	})
}

func (b *BoardWidget) changed() {
	b.raster.Refresh()
	if b.OnChanged != nil {
		b.OnChanged()
	}
}

// Tap is a second-pointer tap the board did not consume. Nothing sits under
// a desktop board, so it is only reported.
func (b *BoardWidget) Tap(p state.Point) {
	b.statusBar.SetText(fmt.Sprintf("Tap at %.0f, %.0f", p.X, p.Y))
}

// Drag is a second-pointer vertical drag.
func (b *BoardWidget) Drag(dy float64) {
	b.statusBar.SetText(fmt.Sprintf("Scroll by %.0f", dy))
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (b *BoardWidget) send(phase input.Phase, pos fyne.Position) {
	b.engine.Handle(input.Event{
		Phase:        phase,
		Pos:          toPoint(pos),
		Tool:         b.tool,
		Buttons:      b.buttons,
		PointerCount: 1,
	})
	if phase == input.Move && b.engine.Drawing() {
		b.raster.Refresh()
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	switch e.Button {
	case desktop.MouseButtonPrimary:
		b.tool, b.buttons = input.ToolMouse, input.ButtonPrimary
	case desktop.MouseButtonSecondary:
		b.tool, b.buttons = input.ToolEraser, input.ButtonSecondary
	default:
		return
	}
	b.down = true
	b.send(input.Down, e.Position)
	b.raster.Refresh()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if !b.down {
		return
	}
	b.down = false
	b.send(input.Up, e.Position)
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.down {
		b.send(input.Move, e.Position)
	}
}

func (b *BoardWidget) DragEnd() {}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

// Resize keeps the board raster the size of the widget.
func (b *BoardWidget) Resize(size fyne.Size) {
	b.BaseWidget.Resize(size)
	b.engine.Resize(int(size.Width), int(size.Height))
}

func (b *BoardWidget) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(b.background)
	return widget.NewSimpleRenderer(container.NewStack(bg, b.raster))
}
