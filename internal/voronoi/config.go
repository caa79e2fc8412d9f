package voronoi

import "runtime"

// Engine defaults for a small touch panel.
const (
	MaxPointCount     = 16
	RepulsionRadius   = 150.0
	RepulsionStrength = 15000.0
	MarkerRadius      = 3
)

// Config describes a fixed display and the engine parameters used for its
// lifetime. Width and Height cannot change after New.
type Config struct {
	Width  int
	Height int

	// MaxPoints bounds the point store; the oldest point is evicted first.
	MaxPoints int

	RepulsionRadius   float64
	RepulsionStrength float64

	MarkerRadius int
	MarkerColor  RGB565

	// Workers is the number of goroutines sharing classifier rows.
	Workers int

	// GridBudget caps the bytes the two seed grids may occupy together.
	// Zero means unlimited.
	GridBudget int64

	// PreferOpenCL tries the GPU jump flood before host grids. It only has an
	// effect in binaries built with -tags opencl.
	PreferOpenCL bool

	// Seed feeds the palette picker. Zero seeds from the clock.
	Seed int64
}

// DefaultConfig returns the stock parameters for a width x height display.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:             width,
		Height:            height,
		MaxPoints:         MaxPointCount,
		RepulsionRadius:   RepulsionRadius,
		RepulsionStrength: RepulsionStrength,
		MarkerRadius:      MarkerRadius,
		MarkerColor:       MarkerWhite,
		Workers:           runtime.NumCPU(),
	}
}

// normalize fills zero fields with defaults so partially populated configs
// behave like DefaultConfig.
func (c Config) normalize() Config {
	if c.Width < 1 {
		c.Width = 1
	}
	if c.Height < 1 {
		c.Height = 1
	}
	if c.MaxPoints < 1 {
		c.MaxPoints = MaxPointCount
	}
	if c.RepulsionRadius <= 0 {
		c.RepulsionRadius = RepulsionRadius
	}
	if c.RepulsionStrength <= 0 {
		c.RepulsionStrength = RepulsionStrength
	}
	if c.MarkerRadius < 0 {
		c.MarkerRadius = 0
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return c
}
