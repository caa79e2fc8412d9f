package main

import "flag"

// Command-line flags for the window frontend. Engine parameters that are not
// exposed here keep their voronoi.DefaultConfig values.
var (
	// widthFlag and heightFlag fix the display resolution for the whole run.
	widthFlag  = flag.Int("width", defaultWidth, "display width in pixels")
	heightFlag = flag.Int("height", defaultHeight, "display height in pixels")

	// scaleFlag multiplies the window size; the diagram itself is not scaled.
	scaleFlag = flag.Int("scale", windowScale, "window scale factor")

	// drawIntervalFlag is the render task period. Commits also wake it.
	drawIntervalFlag = flag.Duration("draw-interval", defaultDrawInterval, "interval between animation frames")

	// tpsFlag sets how often pointer input is polled.
	tpsFlag = flag.Int("tps", defaultTPS, "input polls per second")

	// openCLFlag prefers the OpenCL jump flood when built with -tags opencl.
	openCLFlag = flag.Bool("opencl", false, "classify on an OpenCL device when available")

	// gridBudgetMBFlag caps the memory of the two seed grids.
	gridBudgetMBFlag = flag.Int("grid-budget-mb", 0, "memory budget for the seed grids in MiB (0 = unlimited)")

	workersFlag = flag.Int("workers", 0, "classifier goroutines (0 = one per CPU)")

	// seedFlag makes palette picks reproducible.
	seedFlag = flag.Int64("seed", 0, "palette random seed (0 = time based)")

	// debugFlag enables the stats overlay and the debug hotkeys.
	debugFlag = flag.Bool("debug", false, "show FPS and classifier overlay")

	// enableAudioFlag toggles the touch feedback tone.
	enableAudioFlag = flag.Bool("enable-audio", true, "play a tone for every committed touch")

	// touchWavFlag replaces the synthesized touch tone with a WAV file.
	touchWavFlag = flag.String("touch-wav", "", "WAV file to play instead of the touch tone")

	startupChimeFlag = flag.Bool("startup-chime", true, "play three tones at startup")

	// autoTouchFlag commits random touches for the given duration, then exits.
	autoTouchFlag = flag.Duration("auto-touch", 0, "commit random touches for this long and exit (e.g. 15s)")

	// recordDefaultPGO runs auto-touch while capturing default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "touch randomly for 15s while capturing default.pgo")

	// cpuProfileFlag writes a CPU profile, usable as default.pgo.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")
)
