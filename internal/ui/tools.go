package ui

import (
	"image/color"

	"SignaturePad/internal/render"
	"SignaturePad/internal/signature"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// paletteColors are offered when the host enables color options.
var paletteColors = []color.Color{
	color.Black,
	color.NRGBA{B: 255, A: 255}, // Blue
	color.NRGBA{R: 255, A: 255}, // Red
}

// ColorChooser offers a full color selection beyond the fixed swatches.
// done is not called when the chooser is dismissed.
type ColorChooser interface {
	Choose(initial color.Color, done func(color.Color))
}

// ColorDialog chooses colors with Fyne's advanced color picker dialog.
type ColorDialog struct {
	Window fyne.Window
}

func (d ColorDialog) Choose(initial color.Color, done func(color.Color)) {
	picker := dialog.NewColorPicker("Ink color", "Choose the signature color", done, d.Window)
	picker.Advanced = true
	picker.SetColor(initial)
	picker.Show()
}

// colorSwatch is a tappable filled circle.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	circle := canvas.NewCircle(s.Color)
	circle.StrokeColor = color.Gray{Y: 150}
	circle.StrokeWidth = 1

	holder := container.NewGridWrap(fyne.NewSize(32, 32), circle)
	return widget.NewSimpleRenderer(holder)
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// colorPalette is a row of swatches that set the ink color, followed by a
// button opening the full chooser once one is installed.
type colorPalette struct {
	*fyne.Container
	ctrl    *signature.Controller
	more    *widget.Button
	chooser ColorChooser
}

func newColorPalette(ctrl *signature.Controller) *colorPalette {
	p := &colorPalette{ctrl: ctrl}
	onColorTapped := func(c color.Color) {
		ctrl.SetColor(c)
	}
	objects := make([]fyne.CanvasObject, 0, len(paletteColors)+1)
	for _, c := range paletteColors {
		objects = append(objects, newColorSwatch(c, onColorTapped))
	}
	p.more = widget.NewButton("More colors", p.choose)
	p.more.Hide()
	objects = append(objects, p.more)
	p.Container = container.NewHBox(objects...)
	return p
}

func (p *colorPalette) setChooser(c ColorChooser) {
	p.chooser = c
	if c == nil {
		p.more.Hide()
	} else {
		p.more.Show()
	}
}

func (p *colorPalette) choose() {
	if p.chooser == nil {
		return
	}
	p.chooser.Choose(p.ctrl.Color(), p.ctrl.SetColor)
}

// NewFontPicker returns a selector over the fixed font families.
func NewFontPicker(ctrl *signature.Controller) *widget.Select {
	sel := widget.NewSelect(render.Families(), func(family string) {
		ctrl.SetFont(family)
	})
	sel.SetSelected(ctrl.Font())
	return sel
}
