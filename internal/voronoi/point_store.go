package voronoi

import (
	"math/rand"
	"time"
)

// Point is a Voronoi seed. Physics moves X and Y; Color is fixed at insertion.
type Point struct {
	X     int
	Y     int
	Color RGB565
}

// PointStore is the bounded, insertion-ordered set of seeds. Index 0 is the
// oldest point and the next to be evicted.
type PointStore struct {
	points   []Point
	capacity int
	width    int
	height   int
	rng      *rand.Rand
}

// NewPointStore creates an empty store for a width x height display. A nil rng
// is replaced by a clock-seeded source.
func NewPointStore(width, height, capacity int, rng *rand.Rand) *PointStore {
	if capacity < 1 {
		capacity = MaxPointCount
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PointStore{
		points:   make([]Point, 0, capacity),
		capacity: capacity,
		width:    width,
		height:   height,
		rng:      rng,
	}
}

// Add clamps (x, y) into [0,width] x [0,height], evicts the oldest point when
// the store is full, and appends a point with a random palette color.
func (s *PointStore) Add(x, y int) Point {
	p := Point{
		X:     clampCoord(x, 0, s.width),
		Y:     clampCoord(y, 0, s.height),
		Color: palette[s.rng.Intn(len(palette))],
	}
	if len(s.points) >= s.capacity {
		n := copy(s.points, s.points[1:])
		s.points = s.points[:n]
	}
	s.points = append(s.points, p)
	return p
}

// Points returns a copy of the stored points, oldest first.
func (s *PointStore) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Len reports the number of stored points.
func (s *PointStore) Len() int { return len(s.points) }

// Cap reports the eviction threshold.
func (s *PointStore) Cap() int { return s.capacity }

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
