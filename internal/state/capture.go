package state

// Capture turns a pointer gesture into StrokePath mutations.
//
// Samples inside the capture bounds extend the current run; samples outside
// lift the pen, so dragging out and back in yields two runs rather than a
// straight line across the gap. Releasing the pointer always lifts the pen.
type Capture struct {
	path     *StrokePath
	boundsFn func() Rect
	bounds   Rect
	active   bool

	// OnChange is called after every sample or release.
	OnChange func()
}

// NewCapture returns a capture session over an empty path. boundsFn reports
// the current rectangle of the drawing surface.
func NewCapture(boundsFn func() Rect) *Capture {
	return &Capture{
		path:     NewStrokePath(),
		boundsFn: boundsFn,
	}
}

// SetBoundsFunc replaces the bounds provider and recomputes the bounds.
func (c *Capture) SetBoundsFunc(fn func() Rect) {
	c.boundsFn = fn
	c.Relayout()
}

// Path returns the path being captured.
func (c *Capture) Path() *StrokePath { return c.path }

// Bounds returns the bounds used for the last sample.
func (c *Capture) Bounds() Rect { return c.bounds }

// Active reports whether a gesture is in progress.
func (c *Capture) Active() bool { return c.active }

// Sample feeds one pointer location. The first sample of a gesture refreshes
// the bounds so a resize between gestures is never missed.
func (c *Capture) Sample(p Point) {
	if !c.active {
		c.active = true
		c.Relayout()
	}
	if c.bounds.Contains(p) {
		c.path.AddPoint(p)
	} else {
		c.path.AddBreak()
	}
	c.changed()
}

// Release ends the gesture. The next gesture starts a new run even when it
// begins at the same location.
func (c *Capture) Release() {
	c.active = false
	c.path.AddBreak()
	c.changed()
}

// Relayout recomputes the capture bounds. Call it on every layout change.
func (c *Capture) Relayout() {
	if c.boundsFn != nil {
		c.bounds = c.boundsFn()
	}
}

// Reset replaces the path with a new empty one and abandons any gesture.
func (c *Capture) Reset() {
	c.path = NewStrokePath()
	c.active = false
	c.changed()
}

func (c *Capture) changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}
