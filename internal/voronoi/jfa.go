package voronoi

// jumpFlood approximates nearest-seed labels in O(log n) full-grid passes.
// Each pass lets every cell adopt the seed of one of its eight neighbours at
// distance step when that seed is strictly closer, then halves step.
type jumpFlood struct {
	grid    *seedGrid
	workers *rowWorkers
}

// neighbourOffsets lists the eight probe directions in evaluation order. The
// order decides which of two equidistant seeds a cell keeps.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func newJumpFlood(grid *seedGrid, workers *rowWorkers) *jumpFlood {
	return &jumpFlood{grid: grid, workers: workers}
}

func (j *jumpFlood) Name() string { return ModeJumpFlood }

func (j *jumpFlood) Close() {
	if j.grid != nil {
		j.grid.release()
		j.grid = nil
	}
}

// initialStep is the first probe distance: the smallest power of two that is
// at least half the longer side. Any offset inside the grid can then be
// composed from the halving steps without leaving the grid.
func initialStep(width, height int) int {
	longest := width
	if height > longest {
		longest = height
	}
	step := 1
	for step*2 < longest {
		step *= 2
	}
	return step
}

func (j *jumpFlood) Classify(points []Point, labels []int16) {
	g := j.grid
	if len(points) == 0 || g == nil {
		fillLabels(labels, noSeed)
		return
	}
	g.reset()
	for i, p := range points {
		g.plant(i, p)
	}
	for step := initialStep(g.width, g.height); step > 0; step /= 2 {
		j.pass(step)
		g.swap()
	}
	g.settle()
	for i, c := range g.cells[0] {
		labels[i] = c.Seed
	}
}

// pass runs one flood step from the source grid into the destination grid.
func (j *jumpFlood) pass(step int) {
	g := j.grid
	src, dst := g.src(), g.dst()
	width, height := g.width, g.height
	job := func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < width; x++ {
				idx := y*width + x
				best := src[idx]
				bestDist := -1
				if best.Seed >= 0 {
					bestDist = seedDist(x, y, best)
				}
				for _, off := range neighbourOffsets {
					nx := x + off[0]*step
					ny := y + off[1]*step
					if nx < 0 || nx >= width || ny < 0 || ny >= height {
						continue
					}
					cand := src[ny*width+nx]
					if cand.Seed < 0 {
						continue
					}
					if d := seedDist(x, y, cand); bestDist < 0 || d < bestDist {
						best = cand
						bestDist = d
					}
				}
				dst[idx] = best
			}
		}
	}
	if j.workers != nil {
		j.workers.run(job)
		return
	}
	job(0, height)
}

// seedDist is the squared distance from (x, y) to the cell's seed.
func seedDist(x, y int, c SeedCell) int {
	dx := x - int(c.X)
	dy := y - int(c.Y)
	return dx*dx + dy*dy
}
