package voronoi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialStep(t *testing.T) {
	tests := []struct {
		w, h int
		want int
	}{
		{1, 1, 1},
		{2, 1, 1},
		{3, 7, 4},
		{64, 64, 32},
		{100, 100, 64},
		{320, 240, 256},
		{17, 90, 64},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, initialStep(tt.w, tt.h), "%dx%d", tt.w, tt.h)
	}
}

func TestSeedGridSettlesIntoGridA(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		wantPasses int
	}{
		{"even pass count", 64, 64, 6},
		{"odd pass count", 100, 100, 7},
		{"single pass", 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := newSeedGrid(tt.w, tt.h, 0, nil)
			require.NoError(t, err)
			jf := newJumpFlood(grid, nil)
			labels := make([]int16, tt.w*tt.h)

			jf.Classify([]Point{{X: 0, Y: 0}, {X: tt.w - 1, Y: tt.h - 1}}, labels)

			assert.Equal(t, tt.wantPasses, grid.passes)
			assert.Equal(t, 0, grid.front, "grid A must be the authoritative buffer")
			for y := 0; y < tt.h; y++ {
				for x := 0; x < tt.w; x++ {
					require.Equal(t, grid.at(x, y).Seed, labels[y*tt.w+x], "pixel (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestSeedGridSwapAndSettle(t *testing.T) {
	grid, err := newSeedGrid(2, 1, 0, nil)
	require.NoError(t, err)
	grid.reset()
	grid.dst()[1] = SeedCell{X: 1, Y: 0, Seed: 3}
	grid.swap()
	assert.Equal(t, 1, grid.front)
	assert.Equal(t, int16(noSeed), grid.at(1, 0).Seed, "grid A is untouched before settle")

	grid.settle()
	assert.Equal(t, 0, grid.front)
	assert.Equal(t, int16(3), grid.at(1, 0).Seed)

	grid.settle()
	assert.Equal(t, int16(3), grid.at(1, 0).Seed, "settle is idempotent")
}

func TestPlantKeepsEdgeCoordinates(t *testing.T) {
	grid, err := newSeedGrid(10, 10, 0, nil)
	require.NoError(t, err)
	grid.reset()
	grid.plant(2, Point{X: 10, Y: 10})
	assert.Equal(t, SeedCell{X: 10, Y: 10, Seed: 2}, grid.at(9, 9))
}

func TestPlantKeepsTheNearestSeedPerPixel(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		y      int
		want   SeedCell
	}{
		{"edge point after in-bounds point", []Point{{X: 9, Y: 5}, {X: 10, Y: 5}}, 5, SeedCell{X: 9, Y: 5, Seed: 0}},
		{"in-bounds point after edge point", []Point{{X: 10, Y: 5}, {X: 9, Y: 5}}, 5, SeedCell{X: 9, Y: 5, Seed: 1}},
		{"corner loses to bottom edge", []Point{{X: 10, Y: 10}, {X: 9, Y: 10}}, 9, SeedCell{X: 9, Y: 10, Seed: 1}},
		{"tie keeps the earlier point", []Point{{X: 10, Y: 9}, {X: 9, Y: 10}}, 9, SeedCell{X: 10, Y: 9, Seed: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := newSeedGrid(10, 10, 0, nil)
			require.NoError(t, err)
			grid.reset()
			for i, p := range tt.points {
				grid.plant(i, p)
			}
			assert.Equal(t, tt.want, grid.at(9, tt.y))
		})
	}
}

func TestNewSeedGridFailsAsAPair(t *testing.T) {
	calls := 0
	failSecond := func(n int) ([]SeedCell, error) {
		calls++
		if calls == 2 {
			return nil, errors.New("pool exhausted")
		}
		return make([]SeedCell, n), nil
	}
	grid, err := newSeedGrid(8, 8, 0, failSecond)
	require.Error(t, err)
	assert.Nil(t, grid)
	assert.Contains(t, err.Error(), "grid B")
	assert.Equal(t, 2, calls)
}

func TestNewSeedGridBudget(t *testing.T) {
	need := int64(2 * 10 * 10 * cellBytes)

	_, err := newSeedGrid(10, 10, need-1, nil)
	assert.True(t, errors.Is(err, errGridBudget))

	grid, err := newSeedGrid(10, 10, need, nil)
	require.NoError(t, err)
	assert.Len(t, grid.src(), 100)
	assert.Len(t, grid.dst(), 100)
}

func TestNewSeedGridRejectsBadSizes(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, -1}, {maxGridSide + 1, 1}} {
		_, err := newSeedGrid(size[0], size[1], 0, nil)
		assert.Error(t, err, "%v", size)
	}
}

func TestHeapCellsRecoversFromAllocationPanic(t *testing.T) {
	cells, err := heapCells(-1)
	assert.Error(t, err)
	assert.Nil(t, cells)

	cells, err = heapCells(4)
	require.NoError(t, err)
	assert.Len(t, cells, 4)
}

func TestSeedCellLayout(t *testing.T) {
	assert.Equal(t, 6, cellBytes)
}
