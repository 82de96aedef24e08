package ui

import (
	"fmt"
	"image/color"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/charmbracelet/log"

	"InkBoard/internal/board"
	"InkBoard/internal/export"
)

// Window settings of the desktop host.
type Window struct {
	Width, Height int
	Dark          bool
	Logger        *log.Logger
}

// RunApp opens the board window and blocks until it is closed.
func RunApp(w Window, opts ...board.Option) {
	if w.Logger == nil {
		w.Logger = log.New(io.Discard)
	}
	myApp := app.NewWithID("inkboard")
	myWindow := myApp.NewWindow("InkBoard")
	myWindow.Resize(fyne.NewSize(float32(w.Width), float32(w.Height)))

	var background color.Color = color.White
	if w.Dark {
		background = color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}
	}
	b := NewBoardWidget(w.Width, w.Height, background, opts...)

	toolbar := NewToolbar(b, func() {
		showExport(myWindow, b, w.Logger)
	})

	content := container.NewBorder(toolbar.Object(), b.Status(), nil, nil, b)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}

func showExport(win fyne.Window, b *BoardWidget, logger *log.Logger) {
	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		// The exporters write by path; the dialog only supplies the name.
		path := writer.URI().Path()
		if err := writer.Close(); err != nil {
			logger.Warn("closing export target", "path", path, "err", err)
		}
		if err := export.ToFile(path, b.Engine().SnapshotRaster()); err != nil {
			logger.Error("export failed", "path", path, "err", err)
			dialog.ShowError(fmt.Errorf("export: %w", err), win)
			return
		}
		logger.Info("exported board", "path", path)
		b.SetStatus("Exported " + writer.URI().Name())
	}, win)
	save.SetFileName("board.png")
	save.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".pdf"}))
	save.Show()
}
