package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/jung-kurt/gofpdf"
)

// pxPerMM maps signature pixels to page millimetres.
const pxPerMM = 3

// margin from the top-left corner of the page, in millimetres.
const margin = 15

// WritePDF writes an A4 page with img placed at the top-left margin.
func WritePDF(path string, img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("pdf %s: %w", path, ErrEmptyImage)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("pdf %s: encode: %w", path, err)
	}

	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("signature", opts, &buf)
	p.ImageOptions("signature", margin, margin,
		float64(b.Dx())/pxPerMM, float64(b.Dy())/pxPerMM,
		false, opts, 0, "")
	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdf %s: %w", path, err)
	}
	return nil
}
