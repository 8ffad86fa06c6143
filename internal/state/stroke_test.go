package state

import (
	"reflect"
	"testing"
)

func flatten(rs RenderableStroke) []Point {
	var out []Point
	for _, r := range rs {
		out = append(out, r...)
	}
	return out
}

func TestRenderRuns(t *testing.T) {
	tests := []struct {
		name string
		ops  string // 'p' adds the next point, 'b' adds a break
		runs []int  // expected run lengths
	}{
		{name: "empty", ops: "", runs: nil},
		{name: "only breaks", ops: "bbb", runs: nil},
		{name: "single run", ops: "ppp", runs: []int{3}},
		{name: "leading break", ops: "bpp", runs: []int{2}},
		{name: "trailing break", ops: "ppb", runs: []int{2}},
		{name: "two runs", ops: "ppbpp", runs: []int{2, 2}},
		{name: "double break", ops: "ppbbpp", runs: []int{2, 2}},
		{name: "single points", ops: "pbpbp", runs: []int{1, 1, 1}},
		{name: "three runs", ops: "pbbppbpppb", runs: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStrokePath()
			var want []Point
			for i, op := range tt.ops {
				switch op {
				case 'p':
					p := Point{X: float32(i), Y: float32(i * 2)}
					s.AddPoint(p)
					want = append(want, p)
				case 'b':
					s.AddBreak()
				}
			}

			rs := s.Render()
			if len(rs) != len(tt.runs) {
				t.Fatalf("Expected %d runs, got %d", len(tt.runs), len(rs))
			}
			for i, r := range rs {
				if len(r) != tt.runs[i] {
					t.Errorf("Run %d: expected %d points, got %d", i, tt.runs[i], len(r))
				}
			}
			if got := flatten(rs); !reflect.DeepEqual(got, want) {
				t.Fatalf("Runs do not reproduce point order: got %v, want %v", got, want)
			}
		})
	}
}

func TestAddBreakIdempotent(t *testing.T) {
	once := NewStrokePath()
	twice := NewStrokePath()
	for _, s := range []*StrokePath{once, twice} {
		s.AddPoint(Point{X: 1, Y: 1})
		s.AddPoint(Point{X: 2, Y: 2})
	}

	if !once.AddBreak() {
		t.Fatal("Expected first break to be stored")
	}
	twice.AddBreak()
	if twice.AddBreak() {
		t.Fatal("Expected repeated break to be ignored")
	}

	for _, s := range []*StrokePath{once, twice} {
		s.AddPoint(Point{X: 3, Y: 3})
	}
	if !reflect.DeepEqual(once.Render(), twice.Render()) {
		t.Fatalf("Double break changed the runs: %v vs %v", once.Render(), twice.Render())
	}
	if !reflect.DeepEqual(twice.Breaks(), []int{2}) {
		t.Fatalf("Expected breaks [2], got %v", twice.Breaks())
	}
}

func TestBreaksStrictlyIncreasing(t *testing.T) {
	s := NewStrokePath()
	for i := 0; i < 20; i++ {
		if i%3 == 0 {
			s.AddBreak()
			s.AddBreak()
		}
		s.AddPoint(Point{X: float32(i)})
	}
	s.AddBreak()

	breaks := s.Breaks()
	for i := 1; i < len(breaks); i++ {
		if breaks[i] <= breaks[i-1] {
			t.Fatalf("Breaks not strictly increasing: %v", breaks)
		}
	}
	if last := breaks[len(breaks)-1]; last > s.Len() {
		t.Fatalf("Break %d beyond %d points", last, s.Len())
	}
}

func TestEmptyPath(t *testing.T) {
	s := NewStrokePath()
	if !s.Empty() {
		t.Fatal("Expected new path to be empty")
	}
	if rs := s.Render(); len(rs) != 0 {
		t.Fatalf("Expected no runs, got %d", len(rs))
	}
	if s.MaxX() != 0 {
		t.Fatalf("Expected MaxX 0, got %v", s.MaxX())
	}
}

func TestMaxX(t *testing.T) {
	s := NewStrokePath()
	s.AddPoint(Point{X: 10, Y: 5})
	s.AddBreak()
	s.AddPoint(Point{X: 42, Y: 1})
	s.AddPoint(Point{X: 7, Y: 90})

	if got := s.MaxX(); got != 42 {
		t.Fatalf("Expected MaxX 42, got %v", got)
	}
	if got := s.Render().MaxX(); got != 42 {
		t.Fatalf("Expected RenderableStroke MaxX 42, got %v", got)
	}
	b := s.Bounds()
	if b.Min != (Point{X: 7, Y: 1}) || b.Max != (Point{X: 42, Y: 90}) {
		t.Fatalf("Unexpected bounds %+v", b)
	}
}
