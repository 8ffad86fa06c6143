package ui

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log"

	"SignaturePad/internal/render"
	"SignaturePad/internal/signature"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// ImagePicker presents a chooser and calls done with the picked image, or
// with nil when the user dismissed it.
type ImagePicker interface {
	Pick(done func(image.Image))
}

// FilePicker picks PNG or JPEG files with the Fyne file dialog.
type FilePicker struct {
	Window fyne.Window
}

func (p *FilePicker) Pick(done func(image.Image)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("[UI] Image picker failed: %v", err)
			done(nil)
			return
		}
		if reader == nil {
			done(nil)
			return
		}
		defer func() {
			if err := reader.Close(); err != nil {
				log.Printf("[UI] Error closing image: %v", err)
			}
		}()

		img, format, err := image.Decode(reader)
		if err != nil {
			log.Printf("[UI] Could not decode %s: %v", reader.URI().Name(), err)
			done(nil)
			return
		}
		log.Printf("[UI] Picked %s image %s", format, reader.URI().Name())
		done(img)
	}, p.Window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg"}))
	d.Show()
}

// ImageSurface shows the picked image and opens the picker when tapped.
type ImageSurface struct {
	widget.BaseWidget
	ctrl   *signature.Controller
	picker ImagePicker
}

var _ fyne.Tappable = (*ImageSurface)(nil)

func NewImageSurface(ctrl *signature.Controller, picker ImagePicker) *ImageSurface {
	s := &ImageSurface{ctrl: ctrl, picker: picker}
	s.ExtendBaseWidget(s)
	return s
}

func (s *ImageSurface) Tapped(_ *fyne.PointEvent) {
	if s.picker == nil {
		return
	}
	s.picker.Pick(s.ctrl.SetImage)
}

func (s *ImageSurface) CreateRenderer() fyne.WidgetRenderer {
	r := &imageSurfaceRenderer{surface: s}
	r.background = canvas.NewRectangle(color.White)
	r.border = canvas.NewRectangle(color.Transparent)
	r.border.StrokeColor = borderColor
	r.border.StrokeWidth = 1
	r.border.CornerRadius = 4

	r.hint = canvas.NewText("Choose signature image", placeholderColor)
	r.hint.TextSize = 18
	r.hint.Alignment = fyne.TextAlignCenter

	r.picked = canvas.NewImageFromImage(nil)
	r.picked.FillMode = canvas.ImageFillContain
	r.picked.Hide()
	r.update()
	return r
}

type imageSurfaceRenderer struct {
	surface    *ImageSurface
	background *canvas.Rectangle
	border     *canvas.Rectangle
	hint       *canvas.Text
	picked     *canvas.Image
}

func (r *imageSurfaceRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.picked, r.hint, r.border}
}

func (r *imageSurfaceRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.border.Resize(size)
	r.picked.Resize(inkSize(size))

	textHeight := r.hint.MinSize().Height
	r.hint.Move(fyne.NewPos(0, (size.Height-textHeight)/2))
	r.hint.Resize(fyne.NewSize(size.Width, textHeight))
}

func (r *imageSurfaceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, render.DrawHeight)
}

func (r *imageSurfaceRenderer) Refresh() {
	r.update()
	r.picked.Refresh()
	canvas.Refresh(r.surface)
}

func (r *imageSurfaceRenderer) update() {
	if img, set := r.surface.ctrl.Image(); set {
		r.picked.Image = img
		r.picked.Show()
		r.hint.Hide()
	} else {
		r.picked.Image = nil
		r.picked.Hide()
		r.hint.Show()
	}
}

func (r *imageSurfaceRenderer) Destroy() {}
