package ui

import (
	"image"
	"image/color"
	"log"
	"math"

	"SignaturePad/internal/render"
	"SignaturePad/internal/signature"
	"SignaturePad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

var (
	placeholderColor = color.Gray{Y: 150}
	borderColor      = color.Gray{Y: 150}
)

// DrawSurface captures freehand strokes for the draw mode.
//
// Pointer samples go to the controller's Capture; the live ink is drawn by
// the same rasterizer that produces the committed image.
type DrawSurface struct {
	widget.BaseWidget
	ctrl *signature.Controller
}

var _ fyne.Widget = (*DrawSurface)(nil)
var _ fyne.Draggable = (*DrawSurface)(nil)
var _ desktop.Mouseable = (*DrawSurface)(nil)

func NewDrawSurface(ctrl *signature.Controller) *DrawSurface {
	s := &DrawSurface{ctrl: ctrl}
	s.ExtendBaseWidget(s)
	ctrl.Capture().SetBoundsFunc(s.bounds)
	return s
}

// bounds is the capture rectangle. It is never taller than the committed
// canvas, so every recorded point lands in the saved image.
func (s *DrawSurface) bounds() state.Rect {
	size := inkSize(s.Size())
	return state.NewRect(size.Width, size.Height)
}

func inkSize(size fyne.Size) fyne.Size {
	return fyne.NewSize(size.Width, min(size.Height, render.DrawHeight))
}

func (s *DrawSurface) sample(pos fyne.Position) {
	s.ctrl.Capture().Sample(state.Point{X: pos.X, Y: pos.Y})
}

func (s *DrawSurface) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		s.sample(e.Position)
	}
}

func (s *DrawSurface) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		s.ctrl.Capture().Release()
	}
}

func (s *DrawSurface) Dragged(e *fyne.DragEvent) {
	s.sample(e.Position)
}

func (s *DrawSurface) DragEnd() {
	s.ctrl.Capture().Release()
}

func (s *DrawSurface) CreateRenderer() fyne.WidgetRenderer {
	r := &drawSurfaceRenderer{surface: s}
	r.background = canvas.NewRectangle(color.White)
	r.border = canvas.NewRectangle(color.Transparent)
	r.border.StrokeColor = borderColor
	r.border.StrokeWidth = 1
	r.border.CornerRadius = 4

	r.placeholder = canvas.NewText(s.ctrl.Placeholder(), placeholderColor)
	r.placeholder.TextSize = render.FontSize
	r.placeholder.TextStyle = fyne.TextStyle{Italic: true}
	r.placeholder.Alignment = fyne.TextAlignCenter

	r.ink = canvas.NewImageFromImage(nil)
	r.ink.FillMode = canvas.ImageFillStretch
	r.ink.ScaleMode = canvas.ImageScalePixels
	r.ink.Hide()
	return r
}

type drawSurfaceRenderer struct {
	surface     *DrawSurface
	background  *canvas.Rectangle
	border      *canvas.Rectangle
	placeholder *canvas.Text
	ink         *canvas.Image
}

func (r *drawSurfaceRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.ink, r.placeholder, r.border}
}

func (r *drawSurfaceRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.border.Resize(size)
	r.ink.Move(fyne.NewPos(0, 0))
	r.ink.Resize(inkSize(size))

	textHeight := r.placeholder.MinSize().Height
	r.placeholder.Move(fyne.NewPos(0, (size.Height-textHeight)/2))
	r.placeholder.Resize(fyne.NewSize(size.Width, textHeight))

	r.surface.ctrl.Capture().Relayout()
	r.redraw(size)
}

func (r *drawSurfaceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, render.DrawHeight)
}

func (r *drawSurfaceRenderer) Refresh() {
	r.placeholder.Text = r.surface.ctrl.Placeholder()
	r.redraw(r.surface.Size())
	canvas.Refresh(r.surface)
}

func (r *drawSurfaceRenderer) Destroy() {}

// redraw shows the placeholder while the path is empty, otherwise a still
// of the stroke at the surface width and the committed height.
func (r *drawSurfaceRenderer) redraw(size fyne.Size) {
	size = inkSize(size)
	path := r.surface.ctrl.Capture().Path()
	if path.Empty() {
		r.ink.Hide()
		r.placeholder.Show()
		return
	}
	r.placeholder.Hide()

	px := image.Pt(int(math.Ceil(float64(size.Width))), int(math.Ceil(float64(size.Height))))
	if px.X <= 0 || px.Y <= 0 {
		return
	}
	img, err := render.Rasterize(render.StrokeInput{Stroke: path.Render()}, render.Options{
		Color: r.surface.ctrl.Color(),
		Size:  px,
	})
	if err != nil {
		log.Printf("[UI] Stroke preview failed: %v", err)
		return
	}
	r.ink.Image = img
	r.ink.Show()
	r.ink.Refresh()
}
