package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"SignaturePad/internal/state"
)

func diagonal(n int) *state.StrokePath {
	s := state.NewStrokePath()
	for i := 0; i < n; i++ {
		s.AddPoint(state.Point{X: float32(10 + i*4), Y: float32(20 + i*2)})
	}
	s.AddBreak()
	return s
}

// inkBounds returns the rectangle of pixels with non-zero alpha.
func inkBounds(img image.Image) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestRasterizeStrokeCanvas(t *testing.T) {
	s := diagonal(50)
	img, err := Rasterize(StrokeInput{Stroke: s.Render()}, Options{})
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}

	wantW := int(s.MaxX())
	if got := img.Bounds().Dx(); got != wantW {
		t.Fatalf("Expected width %d, got %d", wantW, got)
	}
	if got := img.Bounds().Dy(); got != DrawHeight {
		t.Fatalf("Expected height %d, got %d", DrawHeight, got)
	}
	if inkBounds(img).Empty() {
		t.Fatal("Expected the stroke to leave ink")
	}
}

func TestRasterizeStrokeDeterministic(t *testing.T) {
	s := diagonal(30)
	s.AddPoint(state.Point{X: 15, Y: 100})
	s.AddPoint(state.Point{X: 60, Y: 120})

	opts := Options{Color: color.NRGBA{R: 200, G: 10, B: 40, A: 255}}
	a, err := Rasterize(StrokeInput{Stroke: s.Render()}, opts)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	b, err := Rasterize(StrokeInput{Stroke: s.Render()}, opts)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if !bytes.Equal(a.(*image.RGBA).Pix, b.(*image.RGBA).Pix) {
		t.Fatal("Expected identical pixels for identical input")
	}
}

// Strokes use round caps and round joins: ink reaches past a run's end
// points by half the line width, and a corner is rounded, not mitered.
func TestRasterizeStrokeRoundCapsAndJoins(t *testing.T) {
	s := state.NewStrokePath()
	s.AddPoint(state.Point{X: 20, Y: 80})
	s.AddPoint(state.Point{X: 60, Y: 80})
	s.AddPoint(state.Point{X: 60, Y: 120})
	s.AddBreak()

	img, err := Rasterize(StrokeInput{Stroke: s.Render()}, Options{Size: image.Pt(100, DrawHeight)})
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}

	tests := []struct {
		name string
		x, y int
		ink  bool
	}{
		{"start cap", 18, 80, true},
		{"end cap", 60, 121, true},
		{"inner corner", 58, 82, true},
		{"outer miter corner", 62, 77, false},
		{"beyond cap", 15, 80, false},
	}
	for _, tt := range tests {
		_, _, _, a := img.At(tt.x, tt.y).RGBA()
		if got := a != 0; got != tt.ink {
			t.Errorf("%s (%d,%d): ink %v, want %v", tt.name, tt.x, tt.y, got, tt.ink)
		}
	}
}

func TestRasterizeStrokeRespectsBreaks(t *testing.T) {
	s := state.NewStrokePath()
	s.AddPoint(state.Point{X: 10, Y: 80})
	s.AddPoint(state.Point{X: 40, Y: 80})
	s.AddBreak()
	s.AddPoint(state.Point{X: 160, Y: 80})
	s.AddPoint(state.Point{X: 190, Y: 80})

	img, err := Rasterize(StrokeInput{Stroke: s.Render()}, Options{})
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if _, _, _, a := img.At(100, 80).RGBA(); a != 0 {
		t.Fatal("Expected no ink in the gap between runs")
	}
	if _, _, _, a := img.At(25, 80).RGBA(); a == 0 {
		t.Fatal("Expected ink on the first run")
	}
	if _, _, _, a := img.At(175, 80).RGBA(); a == 0 {
		t.Fatal("Expected ink on the second run")
	}
}

func TestRasterizeStrokeForcedSize(t *testing.T) {
	s := diagonal(10)
	full, err := Rasterize(StrokeInput{Stroke: s.Render()}, Options{Size: image.Pt(300, 200)})
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if full.Bounds() != image.Rect(0, 0, 300, 200) {
		t.Fatalf("Unexpected bounds %v", full.Bounds())
	}

	committed, err := Rasterize(StrokeInput{Stroke: s.Render()}, Options{})
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	b := committed.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if full.At(x, y) != committed.At(x, y) {
				t.Fatalf("Preview and committed pixels differ at (%d,%d)", x, y)
			}
		}
	}
}

func TestRasterizeEmptyStroke(t *testing.T) {
	_, err := Rasterize(StrokeInput{}, Options{})
	var re *RenderError
	if !errors.As(err, &re) || !errors.Is(err, ErrEmptyStroke) {
		t.Fatalf("Expected RenderError wrapping ErrEmptyStroke, got %v", err)
	}
}

func TestRasterizeText(t *testing.T) {
	img, err := Rasterize(TextInput{Text: "Jane Doe", Family: FamilyBoldItalic}, Options{})
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, TypeWidth, TypeHeight) {
		t.Fatalf("Unexpected bounds %v", img.Bounds())
	}

	ink := inkBounds(img)
	if ink.Empty() {
		t.Fatal("Expected text to leave ink")
	}
	left, right := ink.Min.X, TypeWidth-ink.Max.X
	if d := left - right; d > 12 || d < -12 {
		t.Fatalf("Expected text centered, margins %d and %d", left, right)
	}
	if ink.Min.Y > TypeHeight/2 {
		t.Fatalf("Expected text near the top, ink starts at y=%d", ink.Min.Y)
	}
}

func TestRasterizeEmptyText(t *testing.T) {
	img, err := Rasterize(TextInput{}, Options{})
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if !inkBounds(img).Empty() {
		t.Fatal("Expected blank canvas for empty text")
	}
}

func TestRasterizeUnknownFamily(t *testing.T) {
	_, err := Rasterize(TextInput{Text: "x", Family: "Zapfino"}, Options{})
	var re *RenderError
	if !errors.As(err, &re) {
		t.Fatalf("Expected RenderError, got %v", err)
	}
	if re.Family != "Zapfino" || !errors.Is(err, ErrUnknownFamily) {
		t.Fatalf("Unexpected error %v", err)
	}
}

func TestRasterizeImagePassThrough(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	got, err := Rasterize(ImageInput{Image: src}, Options{})
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if got != image.Image(src) {
		t.Fatal("Expected the picked image to be returned unchanged")
	}

	empty, err := Rasterize(ImageInput{}, Options{})
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if !empty.Bounds().Empty() {
		t.Fatalf("Expected empty bitmap for unset image, got %v", empty.Bounds())
	}
}

func TestFamilies(t *testing.T) {
	fams := Families()
	if len(fams) != 4 || fams[0] != DefaultFamily {
		t.Fatalf("Unexpected families %v", fams)
	}
	for _, f := range fams {
		if !HasFamily(f) {
			t.Errorf("HasFamily(%q) = false", f)
		}
		face, err := NewFace(f, FontSize)
		if err != nil {
			t.Fatalf("NewFace(%q) failed: %v", f, err)
		}
		face.Close()
	}
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want color.NRGBA
	}{
		{"nil", nil, color.NRGBA{A: 255}},
		{"black", color.Black, color.NRGBA{A: 255}},
		{"rgba", color.RGBA{R: 255, A: 255}, color.NRGBA{R: 255, A: 255}},
		{"half alpha", color.RGBA{R: 64, A: 128}, color.NRGBA{R: 127, A: 128}},
		{"gray", color.Gray{Y: 10}, color.NRGBA{R: 10, G: 10, B: 10, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGBA(tt.in); got != tt.want {
				t.Fatalf("ToRGBA(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
