package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/opentype"
)

// Font families offered by the type mode.
const (
	FamilyItalic       = "Go Italic"
	FamilyMediumItalic = "Go Medium Italic"
	FamilyBoldItalic   = "Go Bold Italic"
	FamilyMonoItalic   = "Go Mono Italic"

	DefaultFamily = FamilyItalic
)

var familyTTF = map[string][]byte{
	FamilyItalic:       goitalic.TTF,
	FamilyMediumItalic: gomediumitalic.TTF,
	FamilyBoldItalic:   gobolditalic.TTF,
	FamilyMonoItalic:   gomonoitalic.TTF,
}

var (
	parsedMu sync.Mutex
	parsed   = map[string]*opentype.Font{}
)

// Families returns the selectable font families in display order.
func Families() []string {
	return []string{FamilyItalic, FamilyMediumItalic, FamilyBoldItalic, FamilyMonoItalic}
}

// HasFamily reports whether name is one of Families.
func HasFamily(name string) bool {
	_, ok := familyTTF[name]
	return ok
}

// NewFace resolves a family name to a face of the given pixel size.
// An unknown family yields a *RenderError.
func NewFace(family string, size float64) (font.Face, error) {
	f, err := loadFamily(family)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, &RenderError{Op: "face", Family: family, Err: err}
	}
	return face, nil
}

func loadFamily(family string) (*opentype.Font, error) {
	parsedMu.Lock()
	defer parsedMu.Unlock()

	if f, ok := parsed[family]; ok {
		return f, nil
	}
	ttf, ok := familyTTF[family]
	if !ok {
		return nil, &RenderError{Op: "font", Family: family, Err: ErrUnknownFamily}
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, &RenderError{Op: "font", Family: family, Err: fmt.Errorf("parse: %w", err)}
	}
	parsed[family] = f
	return f, nil
}
