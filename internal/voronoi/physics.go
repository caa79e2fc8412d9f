package voronoi

import "math"

// Vec is a floating-point displacement.
type Vec struct {
	X float64
	Y float64
}

// Physics pushes seeds apart with an inverse-square force that vanishes beyond
// Radius.
type Physics struct {
	Radius   float64
	Strength float64
}

// Displacements returns the summed repulsion acting on each point. Each pair
// is evaluated once and applied with opposite signs to both members.
func (p Physics) Displacements(points []Point) []Vec {
	out := make([]Vec, len(points))
	r2 := p.Radius * p.Radius
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			dx := float64(points[i].X - points[j].X)
			dy := float64(points[i].Y - points[j].Y)
			d2 := dx*dx + dy*dy
			if d2 <= 0 || d2 >= r2 {
				continue
			}
			dist := math.Sqrt(d2)
			force := p.Strength / d2
			fx := force * (dx / dist)
			fy := force * (dy / dist)
			out[i].X += fx
			out[i].Y += fy
			out[j].X -= fx
			out[j].Y -= fy
		}
	}
	return out
}

// Step moves every point by its displacement, truncating toward zero, and
// clamps the result into [0,width] x [0,height].
func (p Physics) Step(points []Point, width, height int) {
	if len(points) < 2 {
		return
	}
	disp := p.Displacements(points)
	for i := range points {
		points[i].X = clampCoord(int(float64(points[i].X)+disp[i].X), 0, width)
		points[i].Y = clampCoord(int(float64(points[i].Y)+disp[i].Y), 0, height)
	}
}
