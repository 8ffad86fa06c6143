package state

// Rect is an axis-aligned rectangle in the same space as Point.
type Rect struct {
	Min, Max Point
}

// NewRect returns the rectangle at origin with the given size.
func NewRect(width, height float32) Rect {
	return Rect{Max: Point{X: width, Y: height}}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Width of the rectangle.
func (r Rect) Width() float32 { return r.Max.X - r.Min.X }

// Height of the rectangle.
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Contains reports whether p lies inside r. Edges are inclusive, so a sample
// exactly on the border of the surface still extends the stroke.
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// boundingBox returns the smallest rectangle containing all points.
func boundingBox(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y

	for _, point := range points {
		if point.X < minX {
			minX = point.X
		}
		if point.X > maxX {
			maxX = point.X
		}
		if point.Y < minY {
			minY = point.Y
		}
		if point.Y > maxY {
			maxY = point.Y
		}
	}
	return Rect{Min: Point{X: minX, Y: minY}, Max: Point{X: maxX, Y: maxY}}
}
