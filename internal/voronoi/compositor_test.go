package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscFootprint(t *testing.T) {
	assert.Len(t, discFootprint(0), 1)
	assert.Len(t, discFootprint(1), 5)
	assert.Len(t, discFootprint(3), 29)
	for _, off := range discFootprint(3) {
		assert.LessOrEqual(t, off.dx*off.dx+off.dy*off.dy, 9)
	}
}

func TestComposePaintsLabelsThenMarkers(t *testing.T) {
	red := PackRGB565(255, 0, 0)
	blue := PackRGB565(0, 0, 255)
	grey := PackRGB565(128, 128, 128)
	pts := []Point{{X: 2, Y: 2, Color: red}, {X: 12, Y: 2, Color: blue}}

	f := NewFrame(16, 5)
	for i := range f.Pix {
		f.Pix[i] = grey
	}
	labels := make([]int16, 16*5)
	for i := range labels {
		switch x := i % 16; {
		case x < 7:
			labels[i] = 0
		case x < 14:
			labels[i] = 1
		default:
			labels[i] = noSeed
		}
	}

	c := newCompositor(1, MarkerWhite)
	c.compose(f, labels, pts)

	assert.Equal(t, red, f.At(5, 0))
	assert.Equal(t, blue, f.At(8, 4))
	assert.Equal(t, grey, f.At(15, 3), "unclassified pixels keep their value")

	for _, p := range pts {
		assert.Equal(t, MarkerWhite, f.At(p.X, p.Y))
		assert.Equal(t, MarkerWhite, f.At(p.X+1, p.Y))
		assert.Equal(t, MarkerWhite, f.At(p.X, p.Y-1))
	}
	assert.Equal(t, red, f.At(3, 3), "diagonal is outside a radius 1 disc")
}

func TestComposeIgnoresStaleLabels(t *testing.T) {
	f := NewFrame(2, 1)
	c := newCompositor(0, MarkerWhite)
	c.compose(f, []int16{5, 0}, []Point{{X: 1, Y: 0, Color: 0x1234}})
	assert.Equal(t, RGB565(0), f.At(0, 0))
	assert.Equal(t, MarkerWhite, f.At(1, 0))
}

func TestMarkerIsClippedAtTheEdge(t *testing.T) {
	f := NewFrame(4, 4)
	c := newCompositor(3, MarkerWhite)
	c.stampMarker(f, Point{X: 4, Y: 4})
	assert.Equal(t, MarkerWhite, f.At(3, 3))
	assert.Equal(t, MarkerWhite, f.At(2, 3))
	assert.Equal(t, RGB565(0), f.At(0, 0))
}
