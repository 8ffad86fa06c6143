// Package render rasterizes signature content into bitmaps.
//
// Three kinds of input are accepted: a stroke expanded into runs, a line of
// typed text with a font family, or an already decoded image. Strokes and
// text are drawn onto a transparent RGBA canvas; images pass through as is.
//
// Rendering is deterministic. The same Input and Options always produce the
// same pixels, which lets the live preview and the committed image agree.
package render
