package render

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFamily is wrapped by RenderError when a font family is not
	// one of Families.
	ErrUnknownFamily = errors.New("unknown font family")

	// ErrEmptyStroke is returned when a stroke with no points is rasterized.
	ErrEmptyStroke = errors.New("stroke has no points")

	// ErrUnknownInput is returned for an Input of an unsupported kind.
	ErrUnknownInput = errors.New("unsupported input")
)

// RenderError reports why an input could not be rasterized.
type RenderError struct {
	Op     string
	Family string
	Err    error
}

func (e *RenderError) Error() string {
	if e.Family != "" {
		return fmt.Sprintf("render %s %q: %v", e.Op, e.Family, e.Err)
	}
	return fmt.Sprintf("render %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
