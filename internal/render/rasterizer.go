package render

import (
	"image"
	"image/color"
	"log/slog"
	"math"

	"SignaturePad/internal/state"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas and pen constants shared by the preview and the committed image.
const (
	DrawHeight = 160
	TypeWidth  = 512
	TypeHeight = 128
	LineWidth  = 5.0
	FontSize   = 44.0
)

// Input is one of StrokeInput, TextInput or ImageInput.
type Input interface {
	isInput()
}

// StrokeInput is freehand drawing expanded into runs.
type StrokeInput struct {
	Stroke state.RenderableStroke
}

// TextInput is a single line of typed text drawn in a font family.
// An empty Family selects DefaultFamily.
type TextInput struct {
	Text   string
	Family string
}

// ImageInput is a picked image returned unchanged.
type ImageInput struct {
	Image image.Image
}

func (StrokeInput) isInput() {}
func (TextInput) isInput()   {}
func (ImageInput) isInput()  {}

// Options control how an Input is drawn. Zero fields take the package
// defaults: black, LineWidth, FontSize, and the canvas policy of the input
// kind. A non-zero Size forces the canvas dimensions.
type Options struct {
	Color    color.Color
	Width    float64
	FontSize float64
	Size     image.Point
}

func (o Options) withDefaults() Options {
	if o.Color == nil {
		o.Color = color.Black
	}
	if o.Width <= 0 {
		o.Width = LineWidth
	}
	if o.FontSize <= 0 {
		o.FontSize = FontSize
	}
	return o
}

// Rasterize draws in onto a new bitmap.
func Rasterize(in Input, opts Options) (image.Image, error) {
	opts = opts.withDefaults()

	switch in := in.(type) {
	case StrokeInput:
		return rasterizeStroke(in.Stroke, opts)
	case TextInput:
		return rasterizeText(in, opts)
	case ImageInput:
		if in.Image == nil {
			return image.NewRGBA(image.Rectangle{}), nil
		}
		return in.Image, nil
	default:
		return nil, &RenderError{Op: "input", Err: ErrUnknownInput}
	}
}

// StrokeCanvas returns the committed canvas size for a stroke: as wide as
// the rightmost point and DrawHeight tall.
func StrokeCanvas(rs state.RenderableStroke) image.Point {
	w := int(math.Ceil(float64(rs.MaxX())))
	if w < 1 {
		w = 1
	}
	return image.Pt(w, DrawHeight)
}

func rasterizeStroke(rs state.RenderableStroke, opts Options) (*image.RGBA, error) {
	if rs.Len() == 0 {
		return nil, &RenderError{Op: "stroke", Err: ErrEmptyStroke}
	}
	size := opts.Size
	if size == (image.Point{}) {
		size = StrokeCanvas(rs)
	}
	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	if size.X <= 0 || size.Y <= 0 {
		return img, nil
	}

	scanner := rasterx.NewScannerGV(size.X, size.Y, img, img.Bounds())
	dasher := rasterx.NewDasher(size.X, size.Y, scanner)
	dasher.SetStroke(fixed.Int26_6(opts.Width*64), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0)
	dasher.SetColor(ToRGBA(opts.Color))

	segments := 0
	for _, run := range rs {
		// A lone point has no segment to stroke.
		if len(run) < 2 {
			continue
		}
		dasher.Start(toFixed(run[0]))
		for _, p := range run[1:] {
			dasher.Line(toFixed(p))
			segments++
		}
		dasher.Stop(false)
	}
	dasher.Draw()

	Logger().Debug("render: stroke",
		slog.Int("runs", len(rs)),
		slog.Int("segments", segments),
		slog.Int("width", size.X),
		slog.Int("height", size.Y))
	return img, nil
}

func rasterizeText(in TextInput, opts Options) (*image.RGBA, error) {
	family := in.Family
	if family == "" {
		family = DefaultFamily
	}
	face, err := NewFace(family, opts.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	size := opts.Size
	if size == (image.Point{}) {
		size = image.Pt(TypeWidth, TypeHeight)
	}
	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	if in.Text == "" {
		return img, nil
	}

	// Centered on one line with the baseline one ascent below the top edge.
	// Overflow on either side is clipped by the canvas.
	tw := font.MeasureString(face, in.Text)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ToRGBA(opts.Color)),
		Face: face,
		Dot: fixed.Point26_6{
			X: (fixed.I(size.X) - tw) / 2,
			Y: face.Metrics().Ascent,
		},
	}
	d.DrawString(in.Text)

	Logger().Debug("render: text",
		slog.String("family", family),
		slog.Int("runes", len([]rune(in.Text))),
		slog.Int("width", size.X))
	return img, nil
}

func toFixed(p state.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(float64(p.X), float64(p.Y))
}
