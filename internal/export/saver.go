package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"SignaturePad/internal/signature"
)

// ErrEmptyImage is returned when there is nothing to write.
var ErrEmptyImage = errors.New("image is empty")

// timeLayout is ISO 8601 basic format, safe in file names on every platform.
const timeLayout = "20060102T150405Z"

// FileName returns the PNG name for a signature committed at t.
func FileName(t time.Time) string {
	return "Signature-" + t.UTC().Format(timeLayout) + ".png"
}

// DocumentsDir returns the user's documents directory, or the home
// directory when there is none.
func DocumentsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("documents dir: %w", err)
	}
	docs := filepath.Join(home, "Documents")
	if fi, err := os.Stat(docs); err == nil && fi.IsDir() {
		return docs, nil
	}
	return home, nil
}

// Saver writes committed signatures as timestamped PNG files, with an
// optional PDF next to each one. Files are never read back.
type Saver struct {
	Dir string
	PDF bool
}

var _ signature.Persister = (*Saver)(nil)

// Persist writes res under s.Dir. The result's CreatedAt names the file.
func (s *Saver) Persist(res *signature.Result) error {
	if res == nil || res.Image == nil || res.Image.Bounds().Empty() {
		return ErrEmptyImage
	}
	dir := s.Dir
	if dir == "" {
		d, err := DocumentsDir()
		if err != nil {
			return err
		}
		dir = d
	}

	path := filepath.Join(dir, FileName(res.CreatedAt))
	if err := writePNG(path, res.Image); err != nil {
		return err
	}
	log.Printf("[EXPORT] Saved %v signature to %s", res.Mode, path)

	if s.PDF {
		pdfPath := strings.TrimSuffix(path, ".png") + ".pdf"
		if err := WritePDF(pdfPath, res.Image); err != nil {
			return err
		}
		log.Printf("[EXPORT] Saved PDF to %s", pdfPath)
	}
	return nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("png %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("png %s: close: %w", path, cerr)
		}
		// Never leave a truncated file behind.
		if err != nil {
			os.Remove(path)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("png %s: encode: %w", path, err)
	}
	return nil
}
