package voronoi

// compositor paints classified pixels and overlays the seed markers.
type compositor struct {
	marker      []gridOffset
	markerColor RGB565
}

func newCompositor(markerRadius int, markerColor RGB565) *compositor {
	return &compositor{marker: discFootprint(markerRadius), markerColor: markerColor}
}

// compose colors every labelled pixel with its point's color, leaving
// unlabelled pixels untouched, then draws a marker on every point so no
// region ever hides one.
func (c *compositor) compose(frame *Frame, labels []int16, points []Point) {
	for i, l := range labels {
		if l < 0 || int(l) >= len(points) {
			continue
		}
		frame.Pix[i] = points[l].Color
	}
	for _, p := range points {
		c.stampMarker(frame, p)
	}
}

// stampMarker draws a single point marker.
func (c *compositor) stampMarker(frame *Frame, p Point) {
	frame.stamp(p.X, p.Y, c.marker, c.markerColor)
}
