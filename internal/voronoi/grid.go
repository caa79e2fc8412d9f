package voronoi

import (
	"errors"
	"fmt"
	"unsafe"
)

// noSeed marks a cell that no seed has reached yet.
const noSeed = -1

// SeedCell records the best known seed for one pixel: the seed's coordinates
// and its index in the point store.
type SeedCell struct {
	X    int16
	Y    int16
	Seed int16
}

// cellBytes is the in-memory size of a SeedCell. The OpenCL kernel relies on
// three packed int16 values per cell.
const cellBytes = int(unsafe.Sizeof(SeedCell{}))

var errGridBudget = errors.New("seed grids exceed the configured memory budget")

// cellAllocator reserves n seed cells.
type cellAllocator func(n int) ([]SeedCell, error)

// heapCells allocates from the Go heap, turning runtime allocation panics
// (oversized makeslice) into errors.
func heapCells(n int) (cells []SeedCell, err error) {
	defer func() {
		if r := recover(); r != nil {
			cells = nil
			err = fmt.Errorf("allocating %d seed cells: %v", n, r)
		}
	}()
	return make([]SeedCell, n), nil
}

// seedGrid owns the two ping-pong classification buffers. One buffer is the
// source of the current pass and the other its destination; callers cannot
// reach either slice directly, only cells through the accessors.
type seedGrid struct {
	width, height int
	cells         [2][]SeedCell
	front         int // index of the buffer the next pass reads
	passes        int
}

// newSeedGrid allocates both buffers or neither.
func newSeedGrid(width, height int, budget int64, alloc cellAllocator) (*seedGrid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid grid size %dx%d", width, height)
	}
	if width > maxGridSide || height > maxGridSide {
		return nil, fmt.Errorf("grid %dx%d exceeds int16 coordinates", width, height)
	}
	n := width * height
	if need := 2 * int64(n) * int64(cellBytes); budget > 0 && need > budget {
		return nil, fmt.Errorf("%dx%d needs %d bytes: %w", width, height, need, errGridBudget)
	}
	if alloc == nil {
		alloc = heapCells
	}
	a, err := alloc(n)
	if err != nil {
		return nil, fmt.Errorf("grid A: %w", err)
	}
	b, err := alloc(n)
	if err != nil {
		return nil, fmt.Errorf("grid B: %w", err)
	}
	if len(a) != n || len(b) != n {
		return nil, fmt.Errorf("allocator returned %d and %d cells, want %d", len(a), len(b), n)
	}
	return &seedGrid{width: width, height: height, cells: [2][]SeedCell{a, b}}, nil
}

// maxGridSide keeps every coordinate representable in a SeedCell.
const maxGridSide = 1<<15 - 1

// reset clears grid A and makes it the source of the first pass.
func (g *seedGrid) reset() {
	a := g.cells[0]
	for i := range a {
		a[i] = SeedCell{Seed: noSeed}
	}
	g.front = 0
	g.passes = 0
}

// plant seeds point i at its pixel.
func (g *seedGrid) plant(i int, p Point) {
	plantCell(g.cells[g.front], g.width, g.height, i, p)
}

// plantCell writes point i into its pixel of cells. Points on the inclusive
// right or bottom edge land in the last column or row but keep their true
// coordinates. When two points share a pixel the one nearer to it stays, the
// earlier one on a tie, so an edge point never displaces an in-bounds point
// sitting on that pixel.
func plantCell(cells []SeedCell, width, height, i int, p Point) {
	cx := clampCoord(p.X, 0, width-1)
	cy := clampCoord(p.Y, 0, height-1)
	idx := cy*width + cx
	if cur := cells[idx]; cur.Seed >= 0 {
		cd := sq(cx-int(cur.X)) + sq(cy-int(cur.Y))
		nd := sq(cx-p.X) + sq(cy-p.Y)
		if cd < nd || (cd == nd && int(cur.Seed) < i) {
			return
		}
	}
	cells[idx] = SeedCell{X: int16(p.X), Y: int16(p.Y), Seed: int16(i)}
}

func sq(v int) int { return v * v }

// src returns the buffer read by the current pass.
func (g *seedGrid) src() []SeedCell { return g.cells[g.front] }

// dst returns the buffer written by the current pass.
func (g *seedGrid) dst() []SeedCell { return g.cells[1-g.front] }

// swap makes the buffer just written the source of the next pass.
func (g *seedGrid) swap() {
	g.front = 1 - g.front
	g.passes++
}

// settle guarantees grid A holds the result, copying B over it when an odd
// number of passes left the result in B.
func (g *seedGrid) settle() {
	if g.front != 0 {
		copy(g.cells[0], g.cells[1])
		g.front = 0
	}
}

// at reads a cell of the authoritative grid.
func (g *seedGrid) at(x, y int) SeedCell {
	return g.cells[0][y*g.width+x]
}

// release drops both buffers together.
func (g *seedGrid) release() {
	g.cells = [2][]SeedCell{}
}
