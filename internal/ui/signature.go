package ui

import (
	"image/color"
	"log"

	"SignaturePad/internal/render"
	"SignaturePad/internal/signature"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// SignatureWidget is the embeddable signature pad: Done, Cancel and Clear
// actions, a mode selector and one surface per mode.
type SignatureWidget struct {
	widget.BaseWidget
	ctrl *signature.Controller

	done, cancel, clear *widget.Button
	modes               *widget.RadioGroup
	drawSurface         *DrawSurface
	imageSurface        *ImageSurface
	typeSurface         *TypeSurface
	fonts               *widget.Select
	palette             *colorPalette
	content             fyne.CanvasObject
}

var _ fyne.Widget = (*SignatureWidget)(nil)

// NewSignatureWidget builds the widget around ctrl. picker may be nil when
// the Image tab is not offered.
func NewSignatureWidget(ctrl *signature.Controller, picker ImagePicker) *SignatureWidget {
	w := &SignatureWidget{ctrl: ctrl}
	w.ExtendBaseWidget(w)

	w.done = widget.NewButton("Done", w.commit)
	w.cancel = widget.NewButton("Cancel", ctrl.Cancel)
	w.clear = widget.NewButton("Clear signature", ctrl.Clear)

	titles := make([]string, 0, len(ctrl.Tabs()))
	for _, m := range ctrl.Tabs() {
		titles = append(titles, m.Title())
	}
	w.modes = widget.NewRadioGroup(titles, w.selectTitle)
	w.modes.Horizontal = true
	w.modes.Required = true
	w.modes.SetSelected(ctrl.Active().Title())
	if len(titles) < 2 {
		w.modes.Hide()
	}

	w.drawSurface = NewDrawSurface(ctrl)
	w.imageSurface = NewImageSurface(ctrl, picker)
	w.typeSurface = NewTypeSurface(ctrl)
	w.fonts = NewFontPicker(ctrl)
	w.palette = newColorPalette(ctrl)
	if !ctrl.ShowColorOptions() {
		w.palette.Hide()
	}

	header := container.NewHBox(w.done, w.cancel, layout.NewSpacer(), w.clear)
	footer := container.NewHBox(w.fonts, w.palette.Container, layout.NewSpacer())
	// The surfaces sit in the top group so the Border never stretches them;
	// the strut keeps the stack exactly DrawHeight tall in every mode.
	strut := canvas.NewRectangle(color.Transparent)
	strut.SetMinSize(fyne.NewSize(0, render.DrawHeight))
	surfaces := container.NewStack(strut, w.drawSurface, w.imageSurface, w.typeSurface)
	w.content = container.NewBorder(container.NewVBox(header, w.modes, surfaces, footer), nil, nil, nil)

	ctrl.OnChange = w.sync
	w.sync()
	return w
}

// SetColorChooser adds a full color chooser next to the swatches. It has no
// effect on the layout unless color options are shown.
func (w *SignatureWidget) SetColorChooser(c ColorChooser) {
	w.palette.setChooser(c)
}

// Controller returns the controller driving the widget.
func (w *SignatureWidget) Controller() *signature.Controller { return w.ctrl }

func (w *SignatureWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.content)
}

func (w *SignatureWidget) commit() {
	if _, err := w.ctrl.Commit(); err != nil {
		log.Printf("[UI] Commit failed: %v", err)
	}
}

func (w *SignatureWidget) selectTitle(title string) {
	for _, m := range w.ctrl.Tabs() {
		if m.Title() == title {
			if err := w.ctrl.SelectMode(m); err != nil {
				log.Printf("[UI] %v", err)
			}
			return
		}
	}
}

// sync mirrors the controller state into the child widgets.
func (w *SignatureWidget) sync() {
	if w.ctrl.CanCommit() {
		w.done.Enable()
	} else {
		w.done.Disable()
	}

	active := w.ctrl.Active()
	showOnly(active == signature.Draw, w.drawSurface)
	showOnly(active == signature.Image, w.imageSurface)
	showOnly(active == signature.Type, w.typeSurface)
	showOnly(active == signature.Type, w.fonts)
	if w.modes.Selected != active.Title() {
		w.modes.SetSelected(active.Title())
	}
	if w.fonts.Selected != w.ctrl.Font() {
		w.fonts.SetSelected(w.ctrl.Font())
	}

	switch active {
	case signature.Draw:
		w.drawSurface.Refresh()
	case signature.Image:
		w.imageSurface.Refresh()
	case signature.Type:
		w.typeSurface.Refresh()
	}
}

func showOnly(visible bool, obj fyne.CanvasObject) {
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}
