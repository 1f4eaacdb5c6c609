package ui

import (
	"context"
	"errors"
	"image"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/wallpanel/internal/qr"
)

// ErrClipboardUnavailable is returned when the app has no clipboard.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// urlSink shows the absolute URL and keeps the QR code in step with it.
type urlSink struct {
	label  *widget.Label
	qr     *canvas.Image
	qrSize int
	log    *slog.Logger
}

func (s *urlSink) SetText(text string) {
	s.label.SetText(text)
	s.updateQR(text)
}

func (s *urlSink) Text() string {
	return s.label.Text
}

func (s *urlSink) updateQR(text string) {
	if s.qr == nil {
		return
	}
	var img image.Image
	if text != "" {
		var err error
		img, err = qr.Image(text, s.qrSize)
		if err != nil {
			s.log.Warn("qr code not rendered", "error", err)
		}
	}
	s.qr.Image = img
	s.qr.Refresh()
}

// buttonLabel adapts the copy button to panel.LabelSink.
type buttonLabel struct {
	btn *widget.Button
}

func (b buttonLabel) SetLabel(label string) {
	b.btn.SetText(label)
}

// fyneClipboard writes through the app clipboard on the main goroutine.
type fyneClipboard struct {
	cb fyne.Clipboard
}

func (c fyneClipboard) WriteText(ctx context.Context, text string) error {
	if c.cb == nil {
		return ErrClipboardUnavailable
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	fyne.DoAndWait(func() {
		c.cb.SetContent(text)
	})
	return nil
}
