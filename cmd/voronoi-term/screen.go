package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Distortions81/voronoi-touch/internal/voronoi"
)

// halfBlock draws the upper pixel in the foreground color and the lower pixel
// in the background color.
const halfBlock = '▀'

// displaySize maps a terminal of cols x rows cells to display pixels.
func displaySize(cols, rows int) (int, int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows * 2
}

// cellToDisplay maps a character cell to the display pixel a click on it
// commits.
func cellToDisplay(x, y int) (int, int) {
	return x, y * 2
}

// halfBlockPresenter paints frames onto a tcell screen, two pixel rows per
// character row. tcell screens are safe for concurrent use, so Present can run
// on the render goroutine while the input loop polls events.
type halfBlockPresenter struct {
	screen tcell.Screen
}

func newHalfBlockPresenter(screen tcell.Screen) *halfBlockPresenter {
	return &halfBlockPresenter{screen: screen}
}

// Present implements voronoi.Presenter.
func (p *halfBlockPresenter) Present(frame *voronoi.Frame) {
	for y := 0; y*2 < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			top := frame.At(x, y*2)
			bottom := frame.At(x, y*2+1)
			style := tcell.StyleDefault.
				Foreground(termColor(top)).
				Background(termColor(bottom))
			p.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	p.screen.Show()
}

func termColor(c voronoi.RGB565) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
