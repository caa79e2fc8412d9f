package voronoi

import (
	"log"
	"math"
)

// Classifier labels every pixel with the index of its nearest point, or -1
// when there are no points. labels has one entry per pixel in row-major order.
type Classifier interface {
	Classify(points []Point, labels []int16)
	Name() string
	Close()
}

// Classifier names reported by Engine.Mode.
const (
	ModeBruteForce      = "brute-force"
	ModeJumpFlood       = "jump-flood"
	ModeOpenCLJumpFlood = "jump-flood/opencl"
)

// bruteForce scans every point for every pixel. It is exact and needs no
// grids.
type bruteForce struct {
	width, height int
	workers       *rowWorkers
}

func newBruteForce(width, height int, workers *rowWorkers) *bruteForce {
	return &bruteForce{width: width, height: height, workers: workers}
}

func (b *bruteForce) Name() string { return ModeBruteForce }

func (b *bruteForce) Close() {}

func (b *bruteForce) Classify(points []Point, labels []int16) {
	if len(points) == 0 {
		fillLabels(labels, noSeed)
		return
	}
	job := func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := labels[y*b.width : (y+1)*b.width]
			for x := range row {
				row[x] = int16(nearestPoint(points, x, y))
			}
		}
	}
	if b.workers != nil {
		b.workers.run(job)
		return
	}
	job(0, b.height)
}

// nearestPoint returns the index of the point closest to (x, y). Ties go to
// the lowest index; -1 means there are no points.
func nearestPoint(points []Point, x, y int) int {
	nearest := noSeed
	best := math.MaxInt
	for i, p := range points {
		dx := x - p.X
		dy := y - p.Y
		if d2 := dx*dx + dy*dy; d2 < best {
			best = d2
			nearest = i
		}
	}
	return nearest
}

func fillLabels(labels []int16, v int16) {
	for i := range labels {
		labels[i] = v
	}
}

// selectClassifier picks the fastest classifier the environment supports:
// the OpenCL jump flood when requested and available, host jump flood grids
// when they can be allocated, and brute force otherwise.
func selectClassifier(cfg Config, workers *rowWorkers, alloc cellAllocator) Classifier {
	if cfg.PreferOpenCL {
		if c, err := newOpenCLJumpFlood(cfg.Width, cfg.Height); err != nil {
			log.Printf("OpenCL jump flood unavailable: %v", err)
		} else {
			log.Printf("OpenCL jump flood enabled (device: %s)", c.DeviceName())
			return c
		}
	}
	grid, err := newSeedGrid(cfg.Width, cfg.Height, cfg.GridBudget, alloc)
	if err != nil {
		log.Printf("Seed grid allocation failed, using brute force: %v", err)
		return newBruteForce(cfg.Width, cfg.Height, workers)
	}
	return newJumpFlood(grid, workers)
}
