package voronoi

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignRowBandsCoversEveryRow(t *testing.T) {
	tests := []struct {
		workers, height int
		wantBands       int
	}{
		{1, 10, 1},
		{4, 10, 4},
		{3, 9, 3},
		{16, 5, 5},
		{0, 7, 1},
		{4, 0, 0},
	}
	for _, tt := range tests {
		bands := assignRowBands(tt.workers, tt.height)
		require.Len(t, bands, tt.wantBands, "%d workers, %d rows", tt.workers, tt.height)
		next := 0
		for _, b := range bands {
			assert.Equal(t, next, b.y0)
			assert.Greater(t, b.y1, b.y0)
			next = b.y1
		}
		assert.Equal(t, tt.height, next)
	}
}

func TestRowWorkersRunEachRowOnce(t *testing.T) {
	const height = 37
	p := newRowWorkers(4, height)
	defer p.close()

	for round := 0; round < 25; round++ {
		var hits [height]atomic.Int32
		p.run(func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				hits[y].Add(1)
			}
		})
		for y := range hits {
			require.Equal(t, int32(1), hits[y].Load(), "round %d row %d", round, y)
		}
	}
}

func TestRowWorkersRunInlineAfterClose(t *testing.T) {
	p := newRowWorkers(3, 6)
	p.close()
	rows := 0
	p.run(func(y0, y1 int) { rows += y1 - y0 })
	assert.Equal(t, 6, rows)

	var nilPool *rowWorkers
	nilPool.run(func(int, int) { t.Fatal("nil pool must not run jobs") })
	nilPool.close()
}
