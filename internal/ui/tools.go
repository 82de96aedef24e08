package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the board controls.
type Toolbar struct {
	board *BoardWidget

	pen    *widget.Button
	eraser *widget.Button
	undo   *widget.Button
	redo   *widget.Button
	clear  *widget.Button
	export *widget.Button
	width  *widget.Slider
}

// NewToolbar builds the controls for board. onExport is run by the export
// button; a nil onExport hides it.
func NewToolbar(board *BoardWidget, onExport func()) *Toolbar {
	e := board.Engine()
	t := &Toolbar{board: board}

	t.pen = widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
		e.SetEraserMode(false)
		t.Update()
	})
	t.eraser = widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		e.SetEraserMode(true)
		t.Update()
	})
	t.undo = widget.NewButtonWithIcon("", theme.ContentUndoIcon(), e.Undo)
	t.redo = widget.NewButtonWithIcon("", theme.ContentRedoIcon(), e.Redo)
	t.clear = widget.NewButtonWithIcon("", theme.DeleteIcon(), e.Clear)
	t.export = widget.NewButtonWithIcon("", theme.DocumentSaveIcon(), onExport)
	if onExport == nil {
		t.export.Hide()
	}

	t.width = widget.NewSlider(1.0, 50.0)
	t.width.SetValue(e.Style().Width)
	t.width.OnChanged = func(val float64) {
		s := e.Style()
		s.Width = val
		e.SetStyle(s)
	}

	board.OnChanged = t.Update
	t.Update()
	return t
}

// Update matches the buttons to the board: undo and clear need something on
// the log, redo needs something undone, and the active tool is highlighted.
func (t *Toolbar) Update() {
	e := t.board.Engine()
	setEnabled(t.undo, !e.IsEmpty())
	setEnabled(t.clear, !e.IsEmpty())
	setEnabled(t.redo, e.CanRedo())

	if e.EraserMode() {
		t.pen.Importance, t.eraser.Importance = widget.MediumImportance, widget.HighImportance
	} else {
		t.pen.Importance, t.eraser.Importance = widget.HighImportance, widget.MediumImportance
	}
	t.pen.Refresh()
	t.eraser.Refresh()
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}

// Object lays the toolbar out in a row.
func (t *Toolbar) Object() fyne.CanvasObject {
	e := t.board.Engine()
	onColorTapped := func(c color.NRGBA) {
		s := e.Style()
		s.Color = c
		e.SetStyle(s)
		e.SetEraserMode(false)
		t.Update()
	}
	colorBox := container.NewHBox(
		newColorSwatch(color.NRGBA{A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, onColorTapped),         // Red
		newColorSwatch(color.NRGBA{G: 255, A: 255}, onColorTapped),         // Green
		newColorSwatch(color.NRGBA{B: 255, A: 255}, onColorTapped),         // Blue
		newColorSwatch(color.NRGBA{R: 255, G: 255, A: 255}, onColorTapped), // Yellow
	)
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.width)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		t.pen, t.eraser,
		widget.NewSeparator(),
		t.undo, t.redo, t.clear, t.export,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
	)
}
