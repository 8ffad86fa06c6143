package ui

import (
	"log"

	"SignaturePad/internal/render"
	"SignaturePad/internal/signature"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// TypeSurface takes a typed signature and previews it in the chosen font.
type TypeSurface struct {
	widget.BaseWidget
	ctrl    *signature.Controller
	entry   *widget.Entry
	preview *canvas.Image
}

func NewTypeSurface(ctrl *signature.Controller) *TypeSurface {
	s := &TypeSurface{ctrl: ctrl}
	s.ExtendBaseWidget(s)

	s.entry = widget.NewEntry()
	s.entry.SetPlaceHolder(ctrl.Placeholder())
	s.entry.OnChanged = ctrl.SetText

	s.preview = canvas.NewImageFromImage(nil)
	s.preview.FillMode = canvas.ImageFillContain
	s.preview.SetMinSize(fyne.NewSize(render.TypeWidth/2, render.TypeHeight/2))
	s.updatePreview()
	return s
}

// Refresh pulls text, font and color from the controller.
func (s *TypeSurface) Refresh() {
	if s.entry.Text != s.ctrl.Text() {
		s.entry.SetText(s.ctrl.Text())
	}
	s.updatePreview()
	s.BaseWidget.Refresh()
}

func (s *TypeSurface) updatePreview() {
	img, err := render.Rasterize(render.TextInput{Text: s.ctrl.Text(), Family: s.ctrl.Font()},
		render.Options{Color: s.ctrl.Color()})
	if err != nil {
		log.Printf("[UI] Text preview failed: %v", err)
		s.preview.Image = nil
	} else {
		s.preview.Image = img
	}
	s.preview.Refresh()
}

func (s *TypeSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(s.entry, nil, nil, nil, s.preview))
}
