package state

// StrokePath accumulates pointer samples and pen-lift breaks.
//
// A break at index i means points[i] starts a new run. Breaks are kept
// strictly increasing and never exceed len(points); a break equal to the
// current length applies to the next point added.
//
// StrokePath is not safe for concurrent use; it belongs to the event thread.
type StrokePath struct {
	points []Point
	breaks []int
}

// NewStrokePath returns an empty path.
func NewStrokePath() *StrokePath {
	return &StrokePath{}
}

// AddPoint appends p. Bounds checking is the caller's job.
func (s *StrokePath) AddPoint(p Point) {
	s.points = append(s.points, p)
}

// AddBreak records a pen lift at the current length. It reports whether a
// new break was stored; repeated lifts with no point in between are no-ops.
func (s *StrokePath) AddBreak() bool {
	at := len(s.points)
	if n := len(s.breaks); n > 0 && s.breaks[n-1] >= at {
		return false
	}
	s.breaks = append(s.breaks, at)
	return true
}

// Empty reports whether no point has been recorded.
func (s *StrokePath) Empty() bool { return len(s.points) == 0 }

// Len returns the number of recorded points.
func (s *StrokePath) Len() int { return len(s.points) }

// Points returns a copy of the recorded points in order.
func (s *StrokePath) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Breaks returns a copy of the break indices.
func (s *StrokePath) Breaks() []int {
	out := make([]int, len(s.breaks))
	copy(out, s.breaks)
	return out
}

// Bounds returns the bounding box of all points, or the zero Rect.
func (s *StrokePath) Bounds() Rect {
	return boundingBox(s.points)
}

// MaxX returns the largest X among the points, or 0 when empty.
func (s *StrokePath) MaxX() float32 {
	return s.Bounds().Max.X
}

// Render splits the points into disjoint runs at the recorded breaks.
// An empty path yields no runs.
func (s *StrokePath) Render() RenderableStroke {
	if len(s.points) == 0 {
		return nil
	}
	var (
		runs RenderableStroke
		cur  Run
		next int
	)
	for i, p := range s.points {
		isBreak := false
		for next < len(s.breaks) && s.breaks[next] <= i {
			if s.breaks[next] == i {
				isBreak = true
			}
			next++
		}
		if isBreak && len(cur) > 0 {
			runs = append(runs, cur)
			cur = nil
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}
