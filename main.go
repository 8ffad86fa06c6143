package main

import (
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"

	"SignaturePad/internal/config"
	"SignaturePad/internal/export"
	"SignaturePad/internal/render"
	"SignaturePad/internal/signature"
	"SignaturePad/internal/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Debug {
		render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	log.Printf("Starting signature pad with tabs %v", cfg.Tabs)

	ui.RunApp("Signature", func(w fyne.Window) fyne.CanvasObject {
		pad, err := newSignaturePad(cfg, w)
		if err != nil {
			log.Fatalf("Failed to create signature pad: %v", err)
		}
		return pad
	})
}

func newSignaturePad(cfg *config.Config, w fyne.Window) (*ui.SignatureWidget, error) {
	sigCfg := signature.Config{
		Placeholder:      cfg.Placeholder,
		Tabs:             cfg.Tabs,
		ShowColorOptions: cfg.ShowColorOptions,
		OnSave: func(img image.Image) {
			showSaved(w, img)
		},
		OnCancel: w.Close,
	}
	if cfg.Persist {
		sigCfg.Persister = &export.Saver{Dir: cfg.OutputDir, PDF: cfg.PDF}
	}

	ctrl, err := signature.New(sigCfg)
	if err != nil {
		return nil, err
	}
	pad := ui.NewSignatureWidget(ctrl, &ui.FilePicker{Window: w})
	pad.SetColorChooser(ui.ColorDialog{Window: w})
	return pad, nil
}

// showSaved plays the host's part: it receives the bitmap and displays it.
func showSaved(w fyne.Window, img image.Image) {
	b := img.Bounds()
	log.Printf("Received signature %dx%d", b.Dx(), b.Dy())

	preview := canvas.NewImageFromImage(img)
	preview.FillMode = canvas.ImageFillOriginal
	dialog.ShowCustom(fmt.Sprintf("Signature %dx%d", b.Dx(), b.Dy()), "OK", preview, w)
}
