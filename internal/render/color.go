package render

import "image/color"

// ToRGBA converts any color to non-premultiplied 8-bit RGBA by reading its
// channels directly. A nil color is black.
func ToRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
