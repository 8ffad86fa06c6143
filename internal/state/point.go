package state

// Point is a pointer sample in surface-local coordinates.
type Point struct{ X, Y float32 }

// Run is a contiguous run of points drawn without lifting the pen.
type Run []Point

// RenderableStroke is the read-only view of a StrokePath as disjoint runs.
// The live preview and the committed image are both drawn from it.
type RenderableStroke []Run

// Len returns the total number of points across all runs.
func (rs RenderableStroke) Len() int {
	n := 0
	for _, r := range rs {
		n += len(r)
	}
	return n
}

// MaxX returns the largest X coordinate in the stroke, or 0 when empty.
func (rs RenderableStroke) MaxX() float32 {
	var maxX float32
	first := true
	for _, r := range rs {
		for _, p := range r {
			if first || p.X > maxX {
				maxX = p.X
				first = false
			}
		}
	}
	return maxX
}
